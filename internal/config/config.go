// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/rigrun-composer/internal/composer"
	"github.com/jeranaias/rigrun-composer/internal/render"
	"github.com/jeranaias/rigrun-composer/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete composer configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	// Composer editing behavior
	Composer ComposerConfig `toml:"composer" json:"composer"`

	// Render controls how sent messages become HTML and terminal output
	Render RenderConfig `toml:"render" json:"render"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`

	// Logging configuration
	Logging LoggingConfig `toml:"logging" json:"logging"`
}

// ComposerConfig contains editing settings.
type ComposerConfig struct {
	// Placeholder words inserted by formatting commands on an empty selection
	BoldPlaceholder          string `toml:"bold_placeholder" json:"bold_placeholder"`
	ItalicPlaceholder        string `toml:"italic_placeholder" json:"italic_placeholder"`
	StrikethroughPlaceholder string `toml:"strikethrough_placeholder" json:"strikethrough_placeholder"`
	CodePlaceholder          string `toml:"code_placeholder" json:"code_placeholder"`

	// DisplayBullets shows unordered list markers as • while editing
	DisplayBullets bool `toml:"display_bullets" json:"display_bullets"`
}

// RenderConfig contains display renderer settings.
type RenderConfig struct {
	// EscapeHTML escapes raw text outside code blocks
	EscapeHTML bool `toml:"escape_html" json:"escape_html"`
	// Sanitize strips any tag the renderer does not emit
	Sanitize bool `toml:"sanitize" json:"sanitize"`
	// HighlightCode colors fenced code blocks
	HighlightCode bool `toml:"highlight_code" json:"highlight_code"`
	// HighlightStyle is the chroma style used for highlighting
	HighlightStyle string `toml:"highlight_style" json:"highlight_style"`
	// TerminalStyle is the glamour style for the transcript: auto, dark, light, notty
	TerminalStyle string `toml:"terminal_style" json:"terminal_style"`
	// Classes maps an HTML tag to its class attribute
	Classes map[string]string `toml:"classes" json:"classes,omitempty"`
}

// UIConfig contains terminal UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "dark", "light", "auto"
	Theme string `toml:"theme" json:"theme"`
	// MaxInputLines caps the height of the input box
	MaxInputLines int `toml:"max_input_lines" json:"max_input_lines"`
	// Width fixes the layout width; 0 follows the terminal
	Width int `toml:"width" json:"width"`
	// ShowModeReasons lists why the composer is in multiline mode
	ShowModeReasons bool `toml:"show_mode_reasons" json:"show_mode_reasons"`
	// Mouse captures the mouse for wheel scrolling; terminal text selection
	// stops working while it is on
	Mouse bool `toml:"mouse" json:"mouse"`
}

// LoggingConfig contains log settings. Logs never go to the terminal the
// composer draws on.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error
	Level string `toml:"level" json:"level"`
	// File receives the log; empty discards logs
	File string `toml:"file" json:"file"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	p := composer.DefaultPlaceholders()
	return &Config{
		Version: "1.0.0",

		Composer: ComposerConfig{
			BoldPlaceholder:          p.Bold,
			ItalicPlaceholder:        p.Italic,
			StrikethroughPlaceholder: p.Strikethrough,
			CodePlaceholder:          p.Code,
			DisplayBullets:           true,
		},

		Render: RenderConfig{
			EscapeHTML:     true,
			Sanitize:       true,
			HighlightCode:  false,
			HighlightStyle: render.DefaultHighlightStyle,
			TerminalStyle:  render.StyleAuto,
		},

		UI: UIConfig{
			Theme:           "dark",
			MaxInputLines:   8,
			Width:           0,
			ShowModeReasons: true,
		},

		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Placeholders returns the formatting placeholders for the composer.
func (c *Config) Placeholders() composer.Placeholders {
	return composer.Placeholders{
		Bold:          c.Composer.BoldPlaceholder,
		Italic:        c.Composer.ItalicPlaceholder,
		Strikethrough: c.Composer.StrikethroughPlaceholder,
		Code:          c.Composer.CodePlaceholder,
	}
}

// RenderOptions returns the HTML renderer options.
func (c *Config) RenderOptions() render.Options {
	return render.Options{
		EscapeText:     c.Render.EscapeHTML,
		Sanitize:       c.Render.Sanitize,
		Highlight:      c.Render.HighlightCode,
		HighlightStyle: c.Render.HighlightStyle,
		Classes:        c.Render.Classes,
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".rigrun-composer"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last. A file that fails to parse is
// reported alongside the defaults so the caller can warn and carry on.
func Load() (*Config, error) {
	var loadErr error

	for _, pathFn := range []func() (string, error){ConfigPathTOML, ConfigPathJSON} {
		path, err := pathFn()
		if err != nil {
			continue
		}
		if _, statErr := os.Stat(path); statErr != nil {
			continue
		}
		cfg, err := LoadFromPath(path)
		if err == nil {
			return cfg, nil
		}
		loadErr = err
		break
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid environment overrides: %w", err)
	}
	return cfg, loadErr
}

// LoadTOML decodes a TOML file over cfg. Keys missing from the file keep
// the value already in cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON decodes a JSON file over cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// LoadFromPath loads configuration from a specific file path with full validation.
func LoadFromPath(path string) (*Config, error) {
	// Decode over the defaults so omitted booleans keep their default.
	cfg := Default()

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// SaveTOML saves the configuration to a TOML file atomically.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString("# rigrun-composer configuration file\n")
	buf.WriteString("# Generated by rigrun-composer - edit with care\n\n")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFileWithDir(path, buf.Bytes(), 0644, 0755); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// EncodeTOML returns the configuration as TOML text.
func (c *Config) EncodeTOML() (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.String(), nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

var (
	validThemes         = []string{"dark", "light", "auto"}
	validLogLevels      = []string{"debug", "info", "warn", "error"}
	validTerminalStyles = []string{render.StyleAuto, render.StyleDark, render.StyleLight, render.StyleNoTTY, "ascii", "dracula", "pink", "tokyo-night"}
	validClassTags      = []string{"h1", "h2", "h3", "ul", "ol", "li", "strong", "em", "del", "pre"}
)

// MaxInputLinesLimit is the largest accepted ui.max_input_lines.
const MaxInputLinesLimit = 50

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	// Composer
	placeholders := map[string]string{
		"composer.bold_placeholder":          c.Composer.BoldPlaceholder,
		"composer.italic_placeholder":        c.Composer.ItalicPlaceholder,
		"composer.strikethrough_placeholder": c.Composer.StrikethroughPlaceholder,
		"composer.code_placeholder":          c.Composer.CodePlaceholder,
	}
	for _, field := range slices.Sorted(maps.Keys(placeholders)) {
		if strings.ContainsAny(placeholders[field], "\r\n") {
			errs = append(errs, ValidationError{Field: field, Message: "must be a single line"})
		}
	}

	// Render
	if c.Render.HighlightStyle != "" && !slices.Contains(render.HighlightStyles(), c.Render.HighlightStyle) {
		errs = append(errs, ValidationError{
			Field:   "render.highlight_style",
			Message: fmt.Sprintf("unknown style '%s'", c.Render.HighlightStyle),
		})
	}
	if !slices.Contains(validTerminalStyles, strings.ToLower(c.Render.TerminalStyle)) {
		errs = append(errs, ValidationError{
			Field:   "render.terminal_style",
			Message: fmt.Sprintf("invalid style '%s', must be one of: %s", c.Render.TerminalStyle, strings.Join(validTerminalStyles, ", ")),
		})
	}
	for _, tag := range slices.Sorted(maps.Keys(c.Render.Classes)) {
		if !slices.Contains(validClassTags, tag) {
			errs = append(errs, ValidationError{
				Field:   "render.classes." + tag,
				Message: "not a tag the renderer emits",
			})
		}
	}

	// UI
	if !slices.Contains(validThemes, strings.ToLower(c.UI.Theme)) {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: %s", c.UI.Theme, strings.Join(validThemes, ", ")),
		})
	}
	if c.UI.MaxInputLines < 1 || c.UI.MaxInputLines > MaxInputLinesLimit {
		errs = append(errs, ValidationError{
			Field:   "ui.max_input_lines",
			Message: fmt.Sprintf("must be between 1 and %d, got %d", MaxInputLinesLimit, c.UI.MaxInputLines),
		})
	}
	if c.UI.Width < 0 {
		errs = append(errs, ValidationError{
			Field:   "ui.width",
			Message: fmt.Sprintf("must not be negative, got %d", c.UI.Width),
		})
	}

	// Logging
	if !slices.Contains(validLogLevels, strings.ToLower(c.Logging.Level)) {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: %s", c.Logging.Level, strings.Join(validLogLevels, ", ")),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults sets default values for any missing or zero-value configuration fields.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}

	if c.Composer.BoldPlaceholder == "" {
		c.Composer.BoldPlaceholder = defaults.Composer.BoldPlaceholder
	}
	if c.Composer.ItalicPlaceholder == "" {
		c.Composer.ItalicPlaceholder = defaults.Composer.ItalicPlaceholder
	}
	if c.Composer.StrikethroughPlaceholder == "" {
		c.Composer.StrikethroughPlaceholder = defaults.Composer.StrikethroughPlaceholder
	}
	if c.Composer.CodePlaceholder == "" {
		c.Composer.CodePlaceholder = defaults.Composer.CodePlaceholder
	}

	if c.Render.HighlightStyle == "" {
		c.Render.HighlightStyle = defaults.Render.HighlightStyle
	}
	if c.Render.TerminalStyle == "" {
		c.Render.TerminalStyle = defaults.Render.TerminalStyle
	}

	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	if c.UI.MaxInputLines == 0 {
		c.UI.MaxInputLines = defaults.UI.MaxInputLines
	}

	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
// Supported variables:
//   - COMPOSER_THEME: overrides ui.theme
//   - COMPOSER_MAX_INPUT_LINES: overrides ui.max_input_lines
//   - COMPOSER_ESCAPE_HTML: overrides render.escape_html
//   - COMPOSER_SANITIZE: overrides render.sanitize
//   - COMPOSER_HIGHLIGHT: overrides render.highlight_code
//   - COMPOSER_LOG_LEVEL: overrides logging.level
//   - COMPOSER_LOG_FILE: overrides logging.file
func (c *Config) ApplyEnvOverrides() {
	if theme := os.Getenv("COMPOSER_THEME"); theme != "" {
		c.UI.Theme = theme
	}

	if lines := os.Getenv("COMPOSER_MAX_INPUT_LINES"); lines != "" {
		if n, err := strconv.Atoi(lines); err == nil {
			c.UI.MaxInputLines = n
		}
	}

	if v := os.Getenv("COMPOSER_ESCAPE_HTML"); v != "" {
		c.Render.EscapeHTML = parseBool(v)
	}
	if v := os.Getenv("COMPOSER_SANITIZE"); v != "" {
		c.Render.Sanitize = parseBool(v)
	}
	if v := os.Getenv("COMPOSER_HIGHLIGHT"); v != "" {
		c.Render.HighlightCode = parseBool(v)
	}

	if level := os.Getenv("COMPOSER_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if file := os.Getenv("COMPOSER_LOG_FILE"); file != "" {
		c.Logging.File = file
	}
}

func parseBool(s string) bool {
	s = strings.ToLower(s)
	return s == "1" || s == "true" || s == "yes"
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g., "ui.theme").
func (c *Config) Get(key string) (interface{}, error) {
	field, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	return field.Interface(), nil
}

// Set sets a configuration value using dot notation (e.g., "ui.theme").
// String values are converted to the field's type.
func (c *Config) Set(key string, value interface{}) error {
	field, err := c.lookup(key)
	if err != nil {
		return err
	}
	if !field.CanSet() {
		return fmt.Errorf("cannot set field: %s", key)
	}
	return setFieldValue(field, value)
}

func (c *Config) lookup(key string) (reflect.Value, error) {
	if key == "" {
		return reflect.Value{}, errors.New("empty key")
	}
	parts := strings.Split(key, ".")

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)

		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})
		if !field.IsValid() {
			return reflect.Value{}, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		if i == len(parts)-1 {
			return field, nil
		}

		if field.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
		v = field
	}

	return reflect.Value{}, fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go field equivalent.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			result.WriteString(strings.ToUpper(string(part[0])))
			result.WriteString(strings.ToLower(part[1:]))
		}
	}

	return result.String()
}

// setFieldValue sets a reflect.Value from an interface{} value with type conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %v", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Bool:
			field.SetBool(parseBool(strVal))
			return nil
		}
	}

	val := reflect.ValueOf(value)
	if !val.IsValid() {
		return fmt.Errorf("cannot assign nil to %s", field.Type())
	}
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}
	if isInt(val.Kind()) && isInt(field.Kind()) {
		field.SetInt(val.Int())
		return nil
	}

	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

func isInt(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

// GetAllKeys returns all scalar configuration keys in dot notation, in
// declaration order.
func GetAllKeys() []string {
	var keys []string
	var walk func(t reflect.Type, prefix string)
	walk = func(t reflect.Type, prefix string) {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
			if name == "" || name == "-" {
				continue
			}
			if f.Type.Kind() == reflect.Struct {
				walk(f.Type, prefix+name+".")
				continue
			}
			if f.Type.Kind() == reflect.Map {
				continue
			}
			keys = append(keys, prefix+name)
		}
	}
	walk(reflect.TypeOf(Config{}), "")
	return keys
}

// =============================================================================
// DISPLAY
// =============================================================================

// String returns a string representation of the config for debugging.
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		}
		globalConfigMu.Lock()
		if globalConfig == nil {
			globalConfig = cfg
		}
		globalConfigMu.Unlock()
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
// This should only be used in tests to reset state between test runs.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
