// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/rigrun-composer/internal/composer"
)

// isolateHome points the config directory at a fresh temp dir.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	for _, key := range []string{
		"COMPOSER_THEME", "COMPOSER_MAX_INPUT_LINES", "COMPOSER_ESCAPE_HTML",
		"COMPOSER_SANITIZE", "COMPOSER_HIGHLIGHT", "COMPOSER_LOG_LEVEL", "COMPOSER_LOG_FILE",
	} {
		t.Setenv(key, "")
	}
	return home
}

// TestConfig_ConcurrentAccess tests that Global() and SetGlobal() can be
// called concurrently, as the CLI and the reload watcher do.
// Run with: go test -race -v ./internal/config/
func TestConfig_ConcurrentAccess(t *testing.T) {
	isolateHome(t)
	ResetGlobalForTesting()
	defer ResetGlobalForTesting()

	var wg sync.WaitGroup

	// 50 writers using SetGlobal, 50 readers using Global
	for i := 0; i < 50; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()
			c := Default()
			c.UI.Theme = "light"
			SetGlobal(c)
		}()

		go func() {
			defer wg.Done()
			if cfg := Global(); cfg == nil {
				t.Error("Global() returned nil")
			}
		}()
	}

	wg.Wait()
}

func TestConfig_SetGlobalBeforeFirstUse(t *testing.T) {
	isolateHome(t)
	ResetGlobalForTesting()
	defer ResetGlobalForTesting()

	c := Default()
	c.UI.Theme = "light"
	SetGlobal(c)

	assert.Equal(t, "light", Global().UI.Theme, "first Global() must not clobber SetGlobal")
}

func TestConfig_Default(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.Render.EscapeHTML)
	assert.True(t, cfg.Render.Sanitize)
	assert.False(t, cfg.Render.HighlightCode)
	assert.True(t, cfg.Composer.DisplayBullets)
	assert.Equal(t, 8, cfg.UI.MaxInputLines)
	assert.Equal(t, composer.DefaultPlaceholders(), cfg.Placeholders())
}

// TestConfig_Validate tests configuration validation.
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantField string
	}{
		{"valid default config", func(c *Config) {}, ""},
		{"invalid theme", func(c *Config) { c.UI.Theme = "neon" }, "ui.theme"},
		{"theme is case insensitive", func(c *Config) { c.UI.Theme = "Dark" }, ""},
		{"zero input lines", func(c *Config) { c.UI.MaxInputLines = 0 }, "ui.max_input_lines"},
		{"too many input lines", func(c *Config) { c.UI.MaxInputLines = MaxInputLinesLimit + 1 }, "ui.max_input_lines"},
		{"negative width", func(c *Config) { c.UI.Width = -1 }, "ui.width"},
		{"invalid log level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"unknown highlight style", func(c *Config) { c.Render.HighlightStyle = "no-such-style" }, "render.highlight_style"},
		{"known highlight style", func(c *Config) { c.Render.HighlightStyle = "monokai" }, ""},
		{"invalid terminal style", func(c *Config) { c.Render.TerminalStyle = "sparkly" }, "render.terminal_style"},
		{"class on unknown tag", func(c *Config) { c.Render.Classes = map[string]string{"script": "x"} }, "render.classes.script"},
		{"class on known tag", func(c *Config) { c.Render.Classes = map[string]string{"li": "ml-4"} }, ""},
		{"multiline placeholder", func(c *Config) { c.Composer.BoldPlaceholder = "a\nb" }, "composer.bold_placeholder"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verrs ValidateErrors
			require.ErrorAs(t, err, &verrs)
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.wantField, verrs[0].Field)
		})
	}
}

func TestValidateErrors_Error(t *testing.T) {
	errs := ValidateErrors{
		{Field: "ui.theme", Message: "bad"},
		{Field: "ui.width", Message: "worse"},
	}
	assert.Equal(t, "ui.theme: bad; ui.width: worse", errs.Error())
	assert.Equal(t, "no validation errors", ValidateErrors{}.Error())
}

func TestConfig_SetDefaults(t *testing.T) {
	c := &Config{}
	c.SetDefaults()

	assert.Equal(t, "1.0.0", c.Version)
	assert.Equal(t, "bold text", c.Composer.BoldPlaceholder)
	assert.Equal(t, 8, c.UI.MaxInputLines)
	assert.Equal(t, "dark", c.UI.Theme)
	assert.Equal(t, "info", c.Logging.Level)
	assert.NoError(t, c.Validate())
}

func TestConfig_ApplyEnvOverrides(t *testing.T) {
	isolateHome(t)
	t.Setenv("COMPOSER_THEME", "light")
	t.Setenv("COMPOSER_MAX_INPUT_LINES", "12")
	t.Setenv("COMPOSER_ESCAPE_HTML", "false")
	t.Setenv("COMPOSER_HIGHLIGHT", "yes")
	t.Setenv("COMPOSER_LOG_LEVEL", "debug")
	t.Setenv("COMPOSER_LOG_FILE", "/tmp/composer.log")

	c := Default()
	c.ApplyEnvOverrides()

	assert.Equal(t, "light", c.UI.Theme)
	assert.Equal(t, 12, c.UI.MaxInputLines)
	assert.False(t, c.Render.EscapeHTML)
	assert.True(t, c.Render.Sanitize, "unset variables leave fields alone")
	assert.True(t, c.Render.HighlightCode)
	assert.Equal(t, "debug", c.Logging.Level)
	assert.Equal(t, "/tmp/composer.log", c.Logging.File)
}

func TestLoadFromPath_TOML(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[composer]
bold_placeholder = "strong words"

[render]
highlight_code = true
highlight_style = "monokai"

[render.classes]
li = "ml-4"

[ui]
theme = "light"
`), 0644))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "strong words", cfg.Composer.BoldPlaceholder)
	assert.Equal(t, "italic text", cfg.Composer.ItalicPlaceholder)
	assert.True(t, cfg.Render.HighlightCode)
	assert.True(t, cfg.Render.EscapeHTML, "omitted booleans keep their default")
	assert.Equal(t, map[string]string{"li": "ml-4"}, cfg.Render.Classes)
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.Equal(t, 8, cfg.UI.MaxInputLines)

	opts := cfg.RenderOptions()
	assert.True(t, opts.Highlight)
	assert.Equal(t, "monokai", opts.HighlightStyle)
}

func TestLoadFromPath_JSON(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"ui": {"max_input_lines": 4}}`), 0644))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.UI.MaxInputLines)
	assert.Equal(t, "dark", cfg.UI.Theme)
}

func TestLoadFromPath_Invalid(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[ui\ntheme="), 0644))
	_, err := LoadFromPath(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.toml")
	require.NoError(t, os.WriteFile(invalid, []byte("[ui]\ntheme = \"neon\"\n"), 0644))
	_, err = LoadFromPath(invalid)
	var verrs ValidateErrors
	assert.ErrorAs(t, err, &verrs)

	_, err = LoadFromPath(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestLoad_FallsBackToDefaults(t *testing.T) {
	isolateHome(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default().UI, cfg.UI)
}

func TestLoad_ReportsBrokenFile(t *testing.T) {
	isolateHome(t)
	path, err := ConfigPathTOML()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("not toml ["), 0644))

	cfg, err := Load()
	assert.Error(t, err)
	require.NotNil(t, cfg, "defaults are still returned")
	assert.Equal(t, "dark", cfg.UI.Theme)
}

func TestSaveTOML_RoundTrip(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	c := Default()
	c.UI.Theme = "light"
	c.Render.Classes = map[string]string{"h1": "title"}
	require.NoError(t, SaveTOML(c, path))

	loaded, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, c, loaded)
}

// TestConfig_GetSet tests dot notation access.
func TestConfig_GetSet(t *testing.T) {
	c := Default()

	v, err := c.Get("ui.theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", v)

	require.NoError(t, c.Set("ui.max_input_lines", "5"))
	assert.Equal(t, 5, c.UI.MaxInputLines)

	require.NoError(t, c.Set("render.escape_html", "false"))
	assert.False(t, c.Render.EscapeHTML)

	require.NoError(t, c.Set("ui.width", 72))
	assert.Equal(t, 72, c.UI.Width)

	require.NoError(t, c.Set("composer.bold_placeholder", "loud"))
	assert.Equal(t, "loud", c.Placeholders().Bold)

	_, err = c.Get("ui.nope")
	assert.Error(t, err)
	_, err = c.Get("ui.theme.deeper")
	assert.Error(t, err)
	assert.Error(t, c.Set("ui.max_input_lines", "many"))
	assert.Error(t, c.Set("ui.theme", 3))
	_, err = c.Get("")
	assert.Error(t, err)
}

func TestGetAllKeys(t *testing.T) {
	keys := GetAllKeys()
	assert.Contains(t, keys, "version")
	assert.Contains(t, keys, "render.escape_html")
	assert.Contains(t, keys, "ui.max_input_lines")
	assert.NotContains(t, keys, "render.classes")

	c := Default()
	for _, key := range keys {
		_, err := c.Get(key)
		assert.NoError(t, err, key)
	}
}

func TestConfig_EncodeTOML(t *testing.T) {
	out, err := Default().EncodeTOML()
	require.NoError(t, err)
	assert.Contains(t, out, "[render]")
	assert.Contains(t, out, "escape_html = true")
	assert.Contains(t, Default().String(), `"max_input_lines": 8`)
}
