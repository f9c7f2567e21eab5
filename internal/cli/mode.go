// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeranaias/rigrun-composer/internal/composer"
)

// modeResult is the JSON form of a mode report.
type modeResult struct {
	Mode    string   `json:"mode"`
	Hint    string   `json:"hint"`
	Reasons []string `json:"reasons"`
}

func newModeCommand() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "mode [text...]",
		Short: "Show which mode the composer would be in",
		Long: `Show whether Enter would send the given text or insert a new line,
and which parts of the text made it multiline.

Text comes from the arguments, or stdin when there are none.

Examples:
  rigrun-composer mode "hello"
  rigrun-composer mode "- first item"
  printf '# Title\nbody' | rigrun-composer mode --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			if len(args) > 0 {
				text = strings.Join(args, " ")
			} else {
				in, err := readInput(cmd, nil)
				if err != nil {
					return err
				}
				text = trimFinalNewline(in)
			}

			report := composer.Analyze(text)
			res := modeResult{
				Mode:    report.Mode.String(),
				Hint:    report.Mode.Hint(composeSendKey),
				Reasons: make([]string, 0, len(report.Reasons)),
			}
			for _, r := range report.Reasons {
				res.Reasons = append(res.Reasons, r.String())
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}

			fmt.Fprintf(out, "%s: %s\n", res.Mode, res.Hint)
			for _, r := range res.Reasons {
				fmt.Fprintf(out, "  - %s\n", r)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the report as JSON")
	return cmd
}

// composeSendKey is how the interactive composer labels its send key.
const composeSendKey = "Alt+Enter"
