// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package compose

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/rigrun-composer/internal/composer"
	"github.com/jeranaias/rigrun-composer/internal/config"
	"github.com/jeranaias/rigrun-composer/internal/model"
	"github.com/jeranaias/rigrun-composer/internal/ui/styles"
)

// Fixed rows around the transcript: header, input border, status bar.
const (
	headerHeight      = 1
	inputBorderHeight = 2
	statusBarHeight   = 1
	promptWidth       = 2 // "> "
	inputChrome       = 4 // border and padding, both sides
)

// =============================================================================
// MODEL
// =============================================================================

// Model is the bubbletea model hosting one composer session.
type Model struct {
	state composer.State
	cfg   *config.Config
	theme *styles.Theme
	keys  KeyMap
	help  help.Model

	viewport    viewport.Model
	// termWidth is the terminal's width; width is termWidth capped by ui.width.
	termWidth   int
	width       int
	height      int
	inputHeight int
	showHelp    bool

	notice     string
	noticeKind noticeKind

	// rendered caches terminal output per message ID at renderedWidth.
	rendered      map[string]string
	renderedWidth int

	onSubmit func(model.SentMessage)
}

// New creates a composer host for cfg drawn with theme.
func New(cfg *config.Config, theme *styles.Theme) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if theme == nil {
		theme = styles.NewTheme(cfg.UI.Theme)
	}

	state := composer.NewState()
	state.Placeholders = cfg.Placeholders()

	h := help.New()
	h.Styles.ShortKey = theme.ShortcutKey
	h.Styles.ShortDesc = theme.ShortcutDesc
	h.Styles.FullKey = theme.ShortcutKey
	h.Styles.FullDesc = theme.ShortcutDesc
	h.ShowAll = true

	return Model{
		state:       state,
		cfg:         cfg,
		theme:       theme,
		keys:        DefaultKeyMap(),
		help:        h,
		viewport:    viewport.New(0, 0),
		inputHeight: 1,
		rendered:    make(map[string]string),
	}
}

// OnSubmit registers fn to run for every sent message.
func (m Model) OnSubmit(fn func(model.SentMessage)) Model {
	m.onSubmit = fn
	return m
}

// Transcript returns the messages sent so far.
func (m Model) Transcript() model.Transcript {
	return m.state.Transcript
}

// State returns the composer state.
func (m Model) State() composer.State {
	return m.state
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ConfigReloadedMsg:
		return m.handleConfigReloaded(msg)

	case clipboardResultMsg:
		if msg.err != nil {
			slog.Warn("clipboard copy failed", "error", msg.err)
			m.setNotice(noticeError, "copy failed: "+msg.err.Error())
		} else {
			m.setNotice(noticeSuccess, "copied last message as HTML")
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	return m.render()
}

// =============================================================================
// MESSAGE HANDLERS
// =============================================================================

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.termWidth = msg.Width
	m.width = msg.Width
	if w := m.cfg.UI.Width; w > 0 && w < msg.Width {
		m.width = w
	}
	m.height = msg.Height
	m.theme.SetSize(m.width, m.height)
	m.help.Width = m.width

	inputWidth := m.width - inputChrome - promptWidth
	if inputWidth < 1 {
		inputWidth = 1
	}
	m = m.apply(composer.ResizeEvent{Width: inputWidth, MaxLines: m.cfg.UI.MaxInputLines})
	m.refreshTranscript()
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.HalfViewDown()
		return m, nil

	case key.Matches(msg, m.keys.CopyLast):
		return m, m.copyLast()

	case key.Matches(msg, m.keys.SendButton):
		return m.apply(composer.SubmitEvent{}), nil

	case key.Matches(msg, m.keys.Send):
		return m.apply(composer.KeyEvent{Key: composer.KeyEnter, Mods: composer.Modifiers{Meta: true}}), nil

	case key.Matches(msg, m.keys.Newline):
		return m.apply(composer.KeyEvent{Key: composer.KeyEnter, Mods: composer.Modifiers{Shift: true}}), nil
	}

	if kind, ok := m.keys.formatFor(msg); ok {
		return m.apply(composer.FormatEvent{Kind: kind}), nil
	}

	if ev, ok := translateKey(msg); ok {
		return m.apply(ev), nil
	}
	return m, nil
}

func (m Model) handleConfigReloaded(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	if errors.Is(msg.Err, fs.ErrNotExist) {
		m.setNotice(noticeWarning, "config file removed; keeping current settings")
		return m, nil
	}
	if msg.Err != nil {
		m.setNotice(noticeError, "config not reloaded: "+msg.Err.Error())
		return m, nil
	}

	cfg := msg.Config
	if cfg.UI.Theme != m.theme.Name {
		m.theme = styles.NewThemeWithRenderer(m.theme.Renderer(), cfg.UI.Theme)
		m.theme.SetSize(m.width, m.height)
	}
	m.cfg = cfg
	m.state.Placeholders = cfg.Placeholders()
	m.rendered = make(map[string]string)
	m.setNotice(noticeInfo, "config reloaded")

	if m.termWidth > 0 {
		return m.handleResize(tea.WindowSizeMsg{Width: m.termWidth, Height: m.height})
	}
	return m, nil
}

// apply runs one event through the core and applies its effect.
func (m Model) apply(ev composer.Event) Model {
	var eff composer.Effect
	m.state, eff = m.state.Update(ev)

	m.inputHeight = eff.Height
	if eff.Sent != nil {
		slog.Info("message sent", "id", eff.Sent.ID, "lines", eff.Sent.LineCount())
		if m.onSubmit != nil {
			m.onSubmit(*eff.Sent)
		}
		m.refreshTranscript()
	}
	m.layout()
	return m
}

// layout sizes the transcript viewport to whatever the other rows leave.
func (m *Model) layout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	reserved := headerHeight + inputBorderHeight + m.inputHeight + statusBarHeight
	if m.showHelp {
		reserved += lipgloss.Height(m.renderHelp())
	}

	h := m.height - reserved
	if h < 1 {
		h = 1
	}
	m.viewport.Width = m.width
	m.viewport.Height = h
}

func (m *Model) setNotice(kind noticeKind, text string) {
	m.noticeKind = kind
	m.notice = text
}
