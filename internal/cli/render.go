// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeranaias/rigrun-composer/internal/config"
	"github.com/jeranaias/rigrun-composer/internal/render"
)

type renderFlags struct {
	escape    bool
	sanitize  bool
	highlight bool
	style     string
	tailwind  bool
	ansi      bool
	plain     bool
	width     int
	list      bool
}

func newRenderCommand() *cobra.Command {
	f := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render composer Markdown",
		Long: `Render composer Markdown from a file or stdin.

The default output is the HTML subset sent messages are displayed with.
--plain prints the visible text of that HTML and --ansi renders for the
terminal instead. HTML options default to the [render] section of the
config file.

Examples:
  rigrun-composer render message.md
  echo '- one\n- two' | rigrun-composer render
  rigrun-composer render --highlight --style github notes.md
  rigrun-composer render --ansi --width 60 notes.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, f)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&f.escape, "escape", true, "HTML-escape text outside code blocks")
	flags.BoolVar(&f.sanitize, "sanitize", true, "drop tags the renderer does not emit")
	flags.BoolVar(&f.highlight, "highlight", false, "syntax-highlight fenced code")
	flags.StringVar(&f.style, "style", "", "chroma style for --highlight (see --list-styles)")
	flags.BoolVar(&f.tailwind, "tailwind", false, "add Tailwind utility classes")
	flags.BoolVar(&f.ansi, "ansi", false, "render for the terminal")
	flags.BoolVar(&f.plain, "plain", false, "print the visible text only")
	flags.IntVar(&f.width, "width", 0, "wrap width for --ansi (default: terminal width)")
	flags.BoolVar(&f.list, "list-styles", false, "list highlight styles and exit")
	cmd.MarkFlagsMutuallyExclusive("ansi", "plain")
	return cmd
}

func runRender(cmd *cobra.Command, args []string, f *renderFlags) error {
	if f.list {
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(render.HighlightStyles(), "\n"))
		return nil
	}

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if f.ansi {
		width := f.width
		if width <= 0 {
			width = GetTerminalWidth()
		}
		style := config.Global().Render.TerminalStyle
		if !ColorsEnabled() {
			style = render.StyleNoTTY
		}
		rendered, err := render.ANSI(text, width, style)
		if err != nil {
			return NewCommandError("render", "ansi", "terminal rendering failed", err)
		}
		fmt.Fprintln(out, rendered)
		return nil
	}

	opts := config.Global().RenderOptions()
	flags := cmd.Flags()
	if flags.Changed("escape") {
		opts.EscapeText = f.escape
	}
	if flags.Changed("sanitize") {
		opts.Sanitize = f.sanitize
	}
	if flags.Changed("highlight") {
		opts.Highlight = f.highlight
	}
	if f.style != "" {
		opts.HighlightStyle = f.style
	}
	if f.tailwind {
		opts.Classes = render.TailwindClasses()
	}

	html := opts.Render(text)
	if f.plain {
		fmt.Fprintln(out, render.PlainText(html))
		return nil
	}
	fmt.Fprintln(out, html)
	return nil
}
