// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package compose

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/rigrun-composer/internal/composer"
)

// sendKeyLabel names the modifier-Enter chord in the mode hint.
const sendKeyLabel = "Alt+Enter"

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines the host's own bindings. Plain editing keys are not listed;
// they go straight to the core.
type KeyMap struct {
	Send          key.Binding
	SendButton    key.Binding
	Newline       key.Binding
	Bold          key.Binding
	Italic        key.Binding
	Strikethrough key.Binding
	UnorderedList key.Binding
	OrderedList   key.Binding
	Quote         key.Binding
	Code          key.Binding
	CopyLast      key.Binding
	PageUp        key.Binding
	PageDown      key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Send: key.NewBinding(
			key.WithKeys("alt+enter"),
			key.WithHelp("A-Enter", "send"),
		),
		SendButton: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "send"),
		),
		Newline: key.NewBinding(
			key.WithKeys("ctrl+j"),
			key.WithHelp("C-j", "new line"),
		),
		Bold: key.NewBinding(
			key.WithKeys("alt+b"),
			key.WithHelp("A-b", "bold"),
		),
		Italic: key.NewBinding(
			key.WithKeys("alt+i"),
			key.WithHelp("A-i", "italic"),
		),
		Strikethrough: key.NewBinding(
			key.WithKeys("alt+x"),
			key.WithHelp("A-x", "strikethrough"),
		),
		UnorderedList: key.NewBinding(
			key.WithKeys("alt+u"),
			key.WithHelp("A-u", "bullet list"),
		),
		OrderedList: key.NewBinding(
			key.WithKeys("alt+o"),
			key.WithHelp("A-o", "numbered list"),
		),
		Quote: key.NewBinding(
			key.WithKeys("alt+q"),
			key.WithHelp("A-q", "quote"),
		),
		Code: key.NewBinding(
			key.WithKeys("alt+c"),
			key.WithHelp("A-c", "code block"),
		),
		CopyLast: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("C-y", "copy last as HTML"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "scroll down"),
		),
		Help: key.NewBinding(
			key.WithKeys("alt+h"),
			key.WithHelp("A-h", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("C-c/C-q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the one-line help.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Send, k.Newline, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the expanded help, grouped.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Send, k.SendButton, k.Newline, k.CopyLast},
		{k.Bold, k.Italic, k.Strikethrough, k.Code},
		{k.UnorderedList, k.OrderedList, k.Quote},
		{k.PageUp, k.PageDown, k.Help, k.Quit},
	}
}

// formatFor returns the formatting command bound to msg.
func (k KeyMap) formatFor(msg tea.KeyMsg) (composer.FormatKind, bool) {
	switch {
	case key.Matches(msg, k.Bold):
		return composer.FormatBold, true
	case key.Matches(msg, k.Italic):
		return composer.FormatItalic, true
	case key.Matches(msg, k.Strikethrough):
		return composer.FormatStrikethrough, true
	case key.Matches(msg, k.UnorderedList):
		return composer.FormatUnorderedList, true
	case key.Matches(msg, k.OrderedList):
		return composer.FormatOrderedList, true
	case key.Matches(msg, k.Quote):
		return composer.FormatQuote, true
	case key.Matches(msg, k.Code):
		return composer.FormatCode, true
	}
	return 0, false
}

// =============================================================================
// KEY TRANSLATION
// =============================================================================

// translateKey maps a terminal key to a core key event. Terminals cannot
// report Ctrl+Enter or Shift+Enter, so Alt+Enter stands in for the submit
// chord and Ctrl+J (a bare line feed) for the newline chord.
func translateKey(msg tea.KeyMsg) (composer.KeyEvent, bool) {
	switch msg.Type {
	case tea.KeyEnter:
		return composer.KeyEvent{Key: composer.KeyEnter, Mods: composer.Modifiers{Meta: msg.Alt}}, true
	case tea.KeyCtrlJ:
		return composer.KeyEvent{Key: composer.KeyEnter, Mods: composer.Modifiers{Shift: true}}, true
	case tea.KeyRunes:
		if msg.Alt {
			return composer.KeyEvent{}, false
		}
		return composer.KeyEvent{Key: composer.KeyRunes, Runes: msg.Runes}, true
	case tea.KeySpace:
		return composer.KeyEvent{Key: composer.KeyRunes, Runes: []rune{' '}}, true
	case tea.KeyTab:
		return composer.KeyEvent{Key: composer.KeyRunes, Runes: []rune{'\t'}}, true
	case tea.KeyBackspace:
		return composer.KeyEvent{Key: composer.KeyBackspace}, true
	case tea.KeyDelete:
		return composer.KeyEvent{Key: composer.KeyDelete}, true
	}

	if k, shift, ok := movementKey(msg.Type); ok {
		return composer.KeyEvent{Key: k, Mods: composer.Modifiers{Shift: shift}}, true
	}
	return composer.KeyEvent{}, false
}

func movementKey(t tea.KeyType) (composer.Key, bool, bool) {
	switch t {
	case tea.KeyLeft:
		return composer.KeyLeft, false, true
	case tea.KeyRight:
		return composer.KeyRight, false, true
	case tea.KeyUp:
		return composer.KeyUp, false, true
	case tea.KeyDown:
		return composer.KeyDown, false, true
	case tea.KeyHome, tea.KeyCtrlA:
		return composer.KeyHome, false, true
	case tea.KeyEnd, tea.KeyCtrlE:
		return composer.KeyEnd, false, true
	case tea.KeyShiftLeft:
		return composer.KeyLeft, true, true
	case tea.KeyShiftRight:
		return composer.KeyRight, true, true
	case tea.KeyShiftUp:
		return composer.KeyUp, true, true
	case tea.KeyShiftDown:
		return composer.KeyDown, true, true
	case tea.KeyShiftHome:
		return composer.KeyHome, true, true
	case tea.KeyShiftEnd:
		return composer.KeyEnd, true, true
	}
	return 0, false, false
}
