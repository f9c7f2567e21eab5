// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package compose

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/rigrun-composer/internal/config"
	"github.com/jeranaias/rigrun-composer/internal/model"
	"github.com/jeranaias/rigrun-composer/internal/ui/styles"
)

// RunOptions configures an interactive session.
type RunOptions struct {
	// ConfigPath is watched for changes when set.
	ConfigPath string
	// Input and Output default to the terminal.
	Input  io.Reader
	Output io.Writer
	// AltScreen draws on the alternate screen buffer.
	AltScreen bool
	// OnSubmit runs for every sent message.
	OnSubmit func(model.SentMessage)
}

// Run starts the composer and blocks until the user quits or ctx is done.
// It returns the transcript of the session.
func Run(ctx context.Context, cfg *config.Config, opts RunOptions) (model.Transcript, error) {
	m := New(cfg, styles.NewTheme(cfg.UI.Theme)).OnSubmit(opts.OnSubmit)

	p := tea.NewProgram(m, programOptions(ctx, cfg, opts)...)

	if opts.ConfigPath != "" {
		w, err := config.NewWatcher(opts.ConfigPath, config.DefaultDebounce, func(c *config.Config, err error) {
			if err == nil {
				config.SetGlobal(c)
			}
			p.Send(ConfigReloadedMsg{Config: c, Err: err})
		})
		if err != nil {
			slog.Warn("config hot reload disabled", "path", opts.ConfigPath, "error", err)
		} else {
			watchCtx, cancel := context.WithCancel(ctx)
			defer cancel()
			go func() {
				if err := w.Run(watchCtx); err != nil {
					slog.Warn("config watcher stopped", "error", err)
				}
			}()
		}
	}

	final, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return model.Transcript{}, fmt.Errorf("run composer: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.Transcript(), nil
	}
	return m.Transcript(), nil
}

// programOptions builds the bubbletea options for a session. The mouse is
// only captured when ui.mouse is set, so terminal text selection works by
// default.
func programOptions(ctx context.Context, cfg *config.Config, opts RunOptions) []tea.ProgramOption {
	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UI.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}
	return progOpts
}
