// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/jeranaias/rigrun-composer/internal/composer"
	"github.com/jeranaias/rigrun-composer/internal/config"
)

func newFormatCommand() *cobra.Command {
	var kinds []string
	for _, k := range composer.FormatKinds() {
		kinds = append(kinds, k.String())
	}

	cmd := &cobra.Command{
		Use:   "format <kind> [text...]",
		Short: "Apply a formatting command to text",
		Long: fmt.Sprintf(`Apply a formatting command to text as the composer toolbar would.

Wrapping kinds (bold, italic, strikethrough, code) act on the whole text,
and empty text gets the configured placeholder. List and quote kinds start
a new block after the text.

Kinds: %s

Examples:
  rigrun-composer format bold "important"
  rigrun-composer format quote < reply.txt
  rigrun-composer format code`, strings.Join(kinds, ", ")),
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := composer.ParseFormatKind(args[0])
			if !ok {
				return NewUsageError("kind", args[0], "unknown format", "one of: "+strings.Join(kinds, ", "))
			}

			var text string
			switch {
			case len(args) > 1:
				text = strings.Join(args[1:], " ")
			case isTerminalReader(cmd.InOrStdin()):
				// Nothing piped: format an empty selection.
			default:
				in, err := readInput(cmd, nil)
				if err != nil {
					return err
				}
				text = trimFinalNewline(in)
			}

			n := utf8.RuneCountInString(text)
			sel := composer.Cursor{Start: 0, End: n}
			switch kind {
			case composer.FormatUnorderedList, composer.FormatOrderedList, composer.FormatQuote:
				sel = composer.Caret(n)
			}
			res := config.Global().Placeholders().Apply(text, sel, kind)
			fmt.Fprintln(cmd.OutOrStdout(), res.Buffer)
			return nil
		},
	}
	return cmd
}
