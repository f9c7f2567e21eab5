// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jeranaias/rigrun-composer/internal/config"
	"github.com/jeranaias/rigrun-composer/internal/export"
	"github.com/jeranaias/rigrun-composer/internal/model"
	"github.com/jeranaias/rigrun-composer/internal/ui/compose"
)

type composeFlags struct {
	exportPath   string
	exportFormat string
	altScreen    bool
	noWatch      bool
}

func newComposeCommand(a *app) *cobra.Command {
	f := &composeFlags{}

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Open the interactive composer",
		Long: `Open the interactive composer.

Enter sends a one-line message and continues lists. Once a message has
several lines, a list, a heading or a code fence, Enter inserts a new line
and Alt+Enter (or Ctrl+S) sends.

Examples:
  rigrun-composer compose
  rigrun-composer compose --export notes.md
  rigrun-composer compose --export out --export-format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompose(cmd, a, f)
		},
	}

	cmd.Flags().StringVar(&f.exportPath, "export", "", "write the transcript to this file on exit")
	cmd.Flags().StringVar(&f.exportFormat, "export-format", "", "html, markdown or json (default: from --export extension)")
	cmd.Flags().BoolVar(&f.altScreen, "alt-screen", true, "draw on the alternate screen")
	cmd.Flags().BoolVar(&f.noWatch, "no-watch", false, "do not reload the config file when it changes")
	return cmd
}

func runCompose(cmd *cobra.Command, a *app, f *composeFlags) error {
	if err := RequiresTTY("compose messages"); err != nil {
		return err
	}

	// Resolve the exporter before the session so a bad flag fails fast.
	opts := export.DefaultOptions()
	var exporter export.Exporter
	if f.exportFormat != "" {
		if f.exportPath == "" {
			return NewUsageError("--export-format", f.exportFormat, "requires --export", "--export chat.html")
		}
		var err error
		if exporter, err = export.ForFormat(f.exportFormat, opts); err != nil {
			return NewUsageError("--export-format", f.exportFormat, err.Error(), "--export-format markdown")
		}
	} else if f.exportPath != "" {
		if _, err := export.ForFormat(filepath.Ext(f.exportPath), opts); err != nil {
			return NewUsageError("--export", f.exportPath, "cannot tell the format from the extension", "--export chat.html")
		}
	}

	runOpts := compose.RunOptions{
		AltScreen: f.altScreen,
		OnSubmit: func(msg model.SentMessage) {
			slog.Debug("submitted", "id", msg.ID, "lines", msg.LineCount())
		},
	}
	if !f.noWatch {
		path, err := a.resolvedConfigPath()
		if err == nil {
			if _, statErr := os.Stat(path); statErr == nil {
				runOpts.ConfigPath = path
			}
		}
	}

	transcript, err := compose.Run(cmd.Context(), config.Global(), runOpts)
	if err != nil {
		return NewCommandError("compose", "run", "composer stopped unexpectedly", err)
	}

	// The session may have hot-reloaded the config; export with the latest.
	cfg := config.Global()
	opts.Render = cfg.RenderOptions()

	stderr := cmd.ErrOrStderr()
	fmt.Fprintf(stderr, "%d message(s) sent\n", transcript.Len())

	if f.exportPath == "" {
		return nil
	}
	path, err := export.ExportToPath(transcript, exporter, f.exportPath, opts)
	if errors.Is(err, export.ErrEmptyTranscript) {
		fmt.Fprintln(stderr, newTheme(stderr, cfg.UI.Theme).Info("nothing to export"))
		return nil
	}
	if err != nil {
		return NewCommandError("compose", "export", "cannot export transcript", err)
	}
	fmt.Fprintln(stderr, newTheme(stderr, cfg.UI.Theme).Success("exported to "+path))
	return nil
}
