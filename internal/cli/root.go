// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeranaias/rigrun-composer/internal/config"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// app carries state shared by every command of one invocation.
type app struct {
	configPath string
	logFile    string
	logLevel   string
	jsonErrors bool
	noColor    bool

	closeLog func() error
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "rigrun-composer",
		Short: "Markdown chat composer for the terminal",
		Long: `rigrun-composer is a chat composer: type Markdown, and lists continue on
Enter, structured messages switch Enter to "new line", and sent messages
are rendered to a small, safe HTML subset.

Examples:
  rigrun-composer                            # open the composer
  rigrun-composer compose --export chat.html # export the session on exit
  echo '**hi**' | rigrun-composer render     # Markdown to HTML
  rigrun-composer mode "- item"              # why Enter would not send
  rigrun-composer config set ui.theme light`,
		Version:           fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate),
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default ~/.rigrun-composer/config.toml)")
	flags.StringVar(&a.logFile, "log-file", "", "write logs to this file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.BoolVar(&a.jsonErrors, "json-errors", false, "report errors as JSON on stderr")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored output")

	compose := newComposeCommand(a)
	root.RunE = compose.RunE
	root.Flags().AddFlagSet(compose.Flags())

	root.AddCommand(
		compose,
		newRenderCommand(),
		newModeCommand(),
		newFormatCommand(),
		newConfigCommand(a),
		newVersionCommand(),
	)
	return root
}

// Execute runs the CLI and exits with a code that reflects the error kind.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := NewRootCommand()
	if err := root.ExecuteContext(ctx); err != nil {
		jsonMode, _ := root.PersistentFlags().GetBool("json-errors")
		DisplayError(root.ErrOrStderr(), err, jsonMode)
		stop()
		os.Exit(GetExitCode(err))
	}
}

// setup loads the configuration, publishes it with config.SetGlobal and
// starts logging. Commands read the configuration through config.Global.
func (a *app) setup(cmd *cobra.Command) error {
	if a.noColor {
		ForceColorsEnabled(false)
	}

	cfg, err := a.loadConfig()
	if err != nil {
		// A broken file is not fatal; the defaults still work.
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v (using defaults)\n", err)
	}

	if a.logFile != "" {
		cfg.Logging.File = a.logFile
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}

	closeLog, err := setupLogging(cfg.Logging)
	if err != nil {
		return NewCommandError("logging", "open", "cannot open log file", err)
	}

	a.closeLog = closeLog
	config.SetGlobal(cfg)
	return nil
}

func (a *app) teardown() error {
	if a.closeLog == nil {
		return nil
	}
	err := a.closeLog()
	a.closeLog = nil
	return err
}

// loadConfig reads --config when given, otherwise the default locations.
// It always returns a usable config.
func (a *app) loadConfig() (*config.Config, error) {
	if a.configPath == "" {
		return config.Load()
	}

	if _, err := os.Stat(a.configPath); os.IsNotExist(err) {
		cfg := config.Default()
		cfg.ApplyEnvOverrides()
		cfg.SetDefaults()
		return cfg, nil
	}

	cfg, err := config.LoadFromPath(a.configPath)
	if err != nil {
		return config.Default(), err
	}
	return cfg, nil
}

// resolvedConfigPath is the file config commands and the watcher use.
func (a *app) resolvedConfigPath() (string, error) {
	if a.configPath != "" {
		return a.configPath, nil
	}
	return config.ConfigPathTOML()
}

// readInput returns the text of the named file, or stdin when no file (or
// "-") is given. A terminal on stdin is refused rather than waited on.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", NewCommandError(cmd.Name(), "read", "cannot read input file", err)
		}
		return string(data), nil
	}

	in := cmd.InOrStdin()
	if isTerminalReader(in) {
		return "", NewUsageError("input", "", "nothing piped on stdin",
			"echo '**hello**' | rigrun-composer "+cmd.Name())
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", NewCommandError(cmd.Name(), "read", "cannot read stdin", err)
	}
	return string(data), nil
}

// trimFinalNewline drops the newline echo and editors append to input.
func trimFinalNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "rigrun-composer %s\n", Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", GitCommit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", BuildDate)
			return nil
		},
	}
}
