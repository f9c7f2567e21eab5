// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package compose

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/jeranaias/rigrun-composer/internal/composer"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want composer.KeyEvent
		ok   bool
	}{
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, composer.KeyEvent{Key: composer.KeyEnter}, true},
		{"alt enter", tea.KeyMsg{Type: tea.KeyEnter, Alt: true},
			composer.KeyEvent{Key: composer.KeyEnter, Mods: composer.Modifiers{Meta: true}}, true},
		{"ctrl j", tea.KeyMsg{Type: tea.KeyCtrlJ},
			composer.KeyEvent{Key: composer.KeyEnter, Mods: composer.Modifiers{Shift: true}}, true},
		{"runes", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hé")},
			composer.KeyEvent{Key: composer.KeyRunes, Runes: []rune("hé")}, true},
		{"alt runes", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z"), Alt: true}, composer.KeyEvent{}, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, composer.KeyEvent{Key: composer.KeyRunes, Runes: []rune{' '}}, true},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, composer.KeyEvent{Key: composer.KeyBackspace}, true},
		{"delete", tea.KeyMsg{Type: tea.KeyDelete}, composer.KeyEvent{Key: composer.KeyDelete}, true},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, composer.KeyEvent{Key: composer.KeyLeft}, true},
		{"shift right", tea.KeyMsg{Type: tea.KeyShiftRight},
			composer.KeyEvent{Key: composer.KeyRight, Mods: composer.Modifiers{Shift: true}}, true},
		{"ctrl a", tea.KeyMsg{Type: tea.KeyCtrlA}, composer.KeyEvent{Key: composer.KeyHome}, true},
		{"shift end", tea.KeyMsg{Type: tea.KeyShiftEnd},
			composer.KeyEvent{Key: composer.KeyEnd, Mods: composer.Modifiers{Shift: true}}, true},
		{"f5", tea.KeyMsg{Type: tea.KeyF5}, composer.KeyEvent{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translateKey(tt.msg)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyMap_FormatFor(t *testing.T) {
	keys := DefaultKeyMap()

	for r, want := range map[rune]composer.FormatKind{
		'b': composer.FormatBold,
		'i': composer.FormatItalic,
		'x': composer.FormatStrikethrough,
		'u': composer.FormatUnorderedList,
		'o': composer.FormatOrderedList,
		'q': composer.FormatQuote,
		'c': composer.FormatCode,
	} {
		got, ok := keys.formatFor(alt(r))
		assert.True(t, ok, "alt+%c", r)
		assert.Equal(t, want, got, "alt+%c", r)
	}

	_, ok := keys.formatFor(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	assert.False(t, ok, "plain b is text, not bold")
}

func TestKeyMap_HelpGroups(t *testing.T) {
	keys := DefaultKeyMap()
	assert.NotEmpty(t, keys.ShortHelp())
	for _, group := range keys.FullHelp() {
		assert.NotEmpty(t, group)
	}
}
