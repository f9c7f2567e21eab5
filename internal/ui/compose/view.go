// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package compose

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/rigrun-composer/internal/composer"
	"github.com/jeranaias/rigrun-composer/internal/model"
	"github.com/jeranaias/rigrun-composer/internal/render"
	"github.com/jeranaias/rigrun-composer/internal/ui/styles"
	"github.com/jeranaias/rigrun-composer/internal/util"
)

const placeholderText = "Write a message. Markdown lists, headings and code blocks are supported."

// =============================================================================
// MAIN RENDER
// =============================================================================

// render lays out header, transcript, input, optional help and status bar.
// The viewport height is set by layout() so the rows add up to m.height.
func (m Model) render() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	parts := []string{
		m.renderHeader(),
		m.viewport.View(),
		m.renderInput(),
	}
	if m.showHelp {
		parts = append(parts, m.renderHelp())
	}
	parts = append(parts, m.renderStatusBar())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderHeader() string {
	title := m.theme.HeaderTitle.Render("rigrun composer")
	sub := m.theme.HeaderSubtitle.Render(fmt.Sprintf("%d sent", m.state.Transcript.Len()))
	return m.theme.Header.Width(m.width).Render(title + "  " + sub)
}

// renderHelp shows every binding, or one line of them on narrow terminals.
func (m Model) renderHelp() string {
	h := m.help
	h.ShowAll = m.theme.GetLayoutMode() != styles.LayoutNarrow
	return h.View(m.keys)
}

// =============================================================================
// TRANSCRIPT
// =============================================================================

// refreshTranscript rebuilds the viewport content and scrolls to the newest
// message.
func (m *Model) refreshTranscript() {
	width := m.messageWidth()
	if width != m.renderedWidth {
		m.rendered = make(map[string]string)
		m.renderedWidth = width
	}

	if m.state.Transcript.IsEmpty() {
		m.viewport.SetContent(m.theme.EmptyNotice.Render("Nothing sent yet."))
		return
	}

	var b strings.Builder
	for i, msg := range m.state.Transcript.Messages() {
		meta := m.theme.MessageIndex.Render(fmt.Sprintf("#%d", i+1)) + " " +
			m.theme.MessageTime.Render(msg.SentAt.Format("15:04:05"))
		b.WriteString(m.theme.Message.Render(meta + "\n" + m.renderMessage(msg, width)))
		b.WriteString("\n")
	}
	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}

// renderMessage returns the terminal rendering of msg, cached by ID.
func (m *Model) renderMessage(msg model.SentMessage, width int) string {
	if out, ok := m.rendered[msg.ID]; ok {
		return out
	}

	out, err := render.ANSI(msg.Content, width, m.terminalStyle())
	if err != nil {
		slog.Warn("terminal render failed", "id", msg.ID, "error", err)
		out = msg.Content
	}
	m.rendered[msg.ID] = out
	return out
}

// terminalStyle resolves "auto" against the theme so glamour never queries
// the terminal while bubbletea owns it.
func (m Model) terminalStyle() string {
	style := m.cfg.Render.TerminalStyle
	if style != "" && style != render.StyleAuto {
		return style
	}
	if m.theme.IsDark {
		return render.StyleDark
	}
	return render.StyleLight
}

func (m Model) messageWidth() int {
	w := m.width - 4 // border, padding, scrollbar slack
	if w < 20 {
		w = 20
	}
	return w
}

// =============================================================================
// INPUT
// =============================================================================

func (m Model) renderInput() string {
	rows, caretRow := m.inputRows()

	// Keep the caret row inside the visible window.
	height := m.inputHeight
	if height < 1 {
		height = 1
	}
	start := 0
	if caretRow >= height {
		start = caretRow - height + 1
	}
	end := min(start+height, len(rows))
	visible := rows[start:end]

	for i := range visible {
		prefix := "  "
		if start+i == 0 {
			prefix = m.theme.InputPrompt.Render("> ")
		}
		visible[i] = prefix + visible[i]
	}

	return m.theme.InputContainer.Width(m.width - 2).Render(strings.Join(visible, "\n"))
}

// inputRows hard-wraps the display value at the input width and marks the
// caret and selection. It returns the rows and the row holding the caret.
func (m Model) inputRows() ([]string, int) {
	width := m.state.Layout.Width

	if m.state.Buffer == "" {
		placeholder := m.theme.InputPlaceholder.Render(util.TruncateWidth(placeholderText, max(width-1, 1)))
		return []string{m.theme.Caret.Render(" ") + placeholder}, 0
	}

	text := m.state.Buffer
	if m.cfg.Composer.DisplayBullets {
		text = composer.DisplayValue(text)
	}
	runes := []rune(text)
	cur := m.state.Cursor

	var (
		rows     []string
		row      strings.Builder
		col      int
		caretRow int
	)
	breakRow := func() {
		rows = append(rows, row.String())
		row.Reset()
		col = 0
	}

	for i := 0; i <= len(runes); i++ {
		atCaret := cur.IsCollapsed() && i == cur.Start
		if atCaret {
			caretRow = len(rows)
		}

		if i == len(runes) || runes[i] == '\n' {
			if atCaret {
				row.WriteString(m.theme.Caret.Render(" "))
			}
			if i < len(runes) {
				breakRow()
			}
			continue
		}

		r := runes[i]
		ch := string(r)
		if r == '\t' {
			ch = "    "
		}
		w := runewidth.StringWidth(ch)
		if width > 0 && col > 0 && col+w > width {
			breakRow()
			if atCaret {
				caretRow = len(rows)
			}
		}

		switch {
		case atCaret:
			row.WriteString(m.theme.Caret.Render(ch))
		case i >= cur.Start && i < cur.End:
			row.WriteString(m.theme.Selection.Render(ch))
			if i == cur.Start {
				caretRow = len(rows)
			}
		default:
			row.WriteString(ch)
		}
		col += w
	}
	rows = append(rows, row.String())
	return rows, caretRow
}

// =============================================================================
// STATUS BAR
// =============================================================================

func (m Model) renderStatusBar() string {
	report := m.state.Report()

	var label string
	if report.Mode == composer.Multiline {
		label = m.theme.ModeMulti.Render(report.Mode.String())
	} else {
		label = m.theme.ModeSingle.Render(report.Mode.String())
	}

	parts := []string{label}
	narrow := m.theme.GetLayoutMode() == styles.LayoutNarrow
	if m.cfg.UI.ShowModeReasons && !narrow && len(report.Reasons) > 0 {
		reasons := make([]string, len(report.Reasons))
		for i, r := range report.Reasons {
			reasons[i] = r.String()
		}
		parts = append(parts, m.theme.ModeReason.Render("("+strings.Join(reasons, ", ")+")"))
	}
	parts = append(parts, m.theme.Hint.Render(report.Mode.Hint(sendKeyLabel)))

	if m.notice != "" {
		switch m.noticeKind {
		case noticeError:
			parts = append(parts, m.theme.Error(m.notice))
		case noticeSuccess:
			parts = append(parts, m.theme.Success(m.notice))
		case noticeWarning:
			parts = append(parts, m.theme.Warning(m.notice))
		default:
			parts = append(parts, m.theme.Info(m.notice))
		}
	}

	// Overflow wraps onto a second row, which MaxHeight drops.
	return m.theme.StatusBar.Width(m.width).MaxHeight(1).Render(strings.Join(parts, "  "))
}
