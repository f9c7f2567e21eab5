// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jeranaias/rigrun-composer/internal/config"
)

func newConfigCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit the configuration",
		Long: `Inspect and edit the configuration file.

Examples:
  rigrun-composer config              # effective configuration as TOML
  rigrun-composer config path
  rigrun-composer config get ui.theme
  rigrun-composer config set render.highlight_code true
  rigrun-composer config keys`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return showConfig(cmd)
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file path",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := a.resolvedConfigPath()
				if err != nil {
					return NewCommandError("config", "path", "cannot resolve config path", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "keys",
			Short: "List every settable key",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				for _, k := range config.GetAllKeys() {
					fmt.Fprintln(cmd.OutOrStdout(), k)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "get <key>",
			Short: "Print one configuration value",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := config.Global().Get(args[0])
				if err != nil {
					return NewUsageError("key", args[0], err.Error(), "rigrun-composer config keys")
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Change one value in the config file",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return setConfig(cmd, a, args[0], args[1])
			},
		},
	)
	return cmd
}

func showConfig(cmd *cobra.Command) error {
	text, err := config.Global().EncodeTOML()
	if err != nil {
		return NewCommandError("config", "show", "cannot encode configuration", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), text)
	return nil
}

// setConfig edits the file itself. Environment overrides are left out so
// they never get written to disk.
func setConfig(cmd *cobra.Command, a *app, key, value string) error {
	path, err := a.resolvedConfigPath()
	if err != nil {
		return NewCommandError("config", "set", "cannot resolve config path", err)
	}

	cfg := config.Default()
	if _, statErr := os.Stat(path); statErr == nil {
		if err := config.LoadTOML(cfg, path); err != nil {
			return NewCommandError("config", "set", "cannot read "+path, err)
		}
	}

	if err := cfg.Set(key, value); err != nil {
		return NewUsageError("key", key, err.Error(), "rigrun-composer config keys")
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.SaveTOML(cfg, path); err != nil {
		return NewCommandError("config", "set", "cannot write "+path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", key, value)
	return nil
}
