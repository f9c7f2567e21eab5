// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme names accepted by NewTheme.
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Theme holds all the styled components for the composer.
type Theme struct {
	Name         string
	IsDark       bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	renderer *lipgloss.Renderer

	// ==========================================================================
	// HEADER
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style

	// ==========================================================================
	// TRANSCRIPT
	// ==========================================================================

	Message      lipgloss.Style
	MessageIndex lipgloss.Style
	MessageTime  lipgloss.Style
	EmptyNotice  lipgloss.Style

	// ==========================================================================
	// INPUT AREA
	// ==========================================================================

	InputContainer   lipgloss.Style
	InputPrompt      lipgloss.Style
	InputText        lipgloss.Style
	InputPlaceholder lipgloss.Style
	Caret            lipgloss.Style
	Selection        lipgloss.Style

	// ==========================================================================
	// STATUS BAR
	// ==========================================================================

	StatusBar    lipgloss.Style
	ModeSingle   lipgloss.Style
	ModeMulti    lipgloss.Style
	ModeReason   lipgloss.Style
	Hint         lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// NOTICES
	// ==========================================================================

	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	InfoStyle    lipgloss.Style
}

// NewTheme creates a theme for stdout. name is "dark", "light" or "auto";
// anything else is treated as auto.
func NewTheme(name string) *Theme {
	return NewThemeWithRenderer(lipgloss.NewRenderer(os.Stdout), name)
}

// NewThemeWithRenderer creates a theme whose styles render through r.
func NewThemeWithRenderer(r *lipgloss.Renderer, name string) *Theme {
	switch name {
	case ThemeDark:
		r.SetHasDarkBackground(true)
	case ThemeLight:
		r.SetHasDarkBackground(false)
	default:
		name = ThemeAuto
	}

	t := &Theme{
		Name:         name,
		IsDark:       r.HasDarkBackground(),
		ColorProfile: r.ColorProfile(),
		renderer:     r,
	}
	t.initStyles()
	return t
}

// Renderer returns the lipgloss renderer the theme styles are bound to.
func (t *Theme) Renderer() *lipgloss.Renderer {
	return t.renderer
}

func (t *Theme) initStyles() {
	r := t.renderer

	// Header
	t.Header = r.NewStyle().
		Background(SurfaceDim).
		Padding(0, 1)

	t.HeaderTitle = r.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.HeaderSubtitle = r.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Transcript
	t.Message = r.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(Purple).
		PaddingLeft(1).
		MarginBottom(1)

	t.MessageIndex = r.NewStyle().
		Foreground(Purple).
		Bold(true)

	t.MessageTime = r.NewStyle().
		Foreground(TextMuted)

	t.EmptyNotice = r.NewStyle().
		Foreground(TextMuted).
		Italic(true).
		Padding(1, 2)

	// Input area
	t.InputContainer = r.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputPrompt = r.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.InputText = r.NewStyle().
		Foreground(TextPrimary)

	t.InputPlaceholder = r.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.Caret = r.NewStyle().
		Reverse(true)

	t.Selection = r.NewStyle().
		Background(SelectionBg).
		Foreground(TextPrimary)

	// Status bar
	t.StatusBar = r.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.ModeSingle = r.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ModeMulti = r.NewStyle().
		Foreground(Amber).
		Bold(true)

	t.ModeReason = r.NewStyle().
		Foreground(TextMuted)

	t.Hint = r.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	t.ShortcutKey = r.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = r.NewStyle().
		Foreground(TextMuted)

	// Notices
	t.SuccessStyle = r.NewStyle().
		Foreground(SuccessHighContrast).
		Bold(true)

	t.ErrorStyle = r.NewStyle().
		Foreground(ErrorHighContrast).
		Bold(true)

	t.WarningStyle = r.NewStyle().
		Foreground(WarningHighContrast).
		Bold(true)

	t.InfoStyle = r.NewStyle().
		Foreground(InfoHighContrast).
		Bold(true)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)

// =============================================================================
// NOTICES
// =============================================================================

// Success renders a success notice with its shape indicator.
func (t *Theme) Success(message string) string {
	return t.SuccessStyle.Render(StatusIndicators.Success + " " + message)
}

// Error renders an error notice with its shape indicator.
func (t *Theme) Error(message string) string {
	return t.ErrorStyle.Render(StatusIndicators.Error + " " + message)
}

// Warning renders a warning notice with its shape indicator.
func (t *Theme) Warning(message string) string {
	return t.WarningStyle.Render(StatusIndicators.Warning + " " + message)
}

// Info renders an info notice with its shape indicator.
func (t *Theme) Info(message string) string {
	return t.InfoStyle.Render(StatusIndicators.Info + " " + message)
}
