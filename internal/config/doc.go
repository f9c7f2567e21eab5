// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for
// the composer.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, validation, and hot reload.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - ComposerConfig: formatting placeholders and display bullets
//   - RenderConfig: HTML escaping, sanitizing, highlighting and classes
//   - UIConfig: theme and input box geometry
//   - Watcher: reloads the file when it changes on disk
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (COMPOSER_*)
//   - ~/.rigrun-composer/config.toml
//   - ~/.rigrun-composer/config.json
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Printf("config: %v (using defaults)", err)
//	}
//
// Feed it to the composer and renderer:
//
//	state.Placeholders = cfg.Placeholders()
//	html := cfg.RenderOptions().Render(msg.Content)
package config
