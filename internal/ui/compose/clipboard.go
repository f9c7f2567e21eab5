// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package compose

import (
	"errors"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// copyLast copies the rendered HTML of the most recent message.
func (m Model) copyLast() tea.Cmd {
	last, ok := m.state.Transcript.Last()
	if !ok {
		return func() tea.Msg {
			return clipboardResultMsg{err: errors.New("nothing sent yet")}
		}
	}

	markup := m.cfg.RenderOptions().Render(last.Content)
	return func() tea.Msg {
		return clipboardResultMsg{err: writeClipboard(markup)}
	}
}
