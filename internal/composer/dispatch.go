// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package composer

// =============================================================================
// KEYS
// =============================================================================

// Key identifies the key in a keydown event.
type Key int

const (
	KeyRunes Key = iota // printable text in KeyEvent.Runes
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
)

// Modifiers held during a keydown.
type Modifiers struct {
	Shift bool
	Ctrl  bool
	Meta  bool
}

// None reports whether no modifier is held.
func (m Modifiers) None() bool {
	return !m.Shift && !m.Ctrl && !m.Meta
}

// =============================================================================
// ACTIONS
// =============================================================================

// ActionKind is what the host must do with a keydown.
type ActionKind int

const (
	// ActionPass lets the host's default key behavior run.
	ActionPass ActionKind = iota
	// ActionApply suppresses the default and commits Action.Edit.
	ActionApply
	// ActionSubmit suppresses the default and sends the buffer.
	ActionSubmit
)

// String returns the action name for logs.
func (k ActionKind) String() string {
	switch k {
	case ActionPass:
		return "pass"
	case ActionApply:
		return "apply"
	case ActionSubmit:
		return "submit"
	default:
		return "unknown"
	}
}

// Action is the dispatch decision for one keydown.
type Action struct {
	Kind ActionKind
	Edit EditResult
}

// Suppress reports whether the key's default action must be prevented.
func (a Action) Suppress() bool {
	return a.Kind != ActionPass
}

// OnKeyDown applies the Enter priority rules, first match wins:
//  1. Enter+Meta or Enter+Ctrl submits regardless of mode;
//  2. Enter+Shift passes through (newline, never submit);
//  3. plain Enter runs list continuation; if that passes, Multiline passes
//     through and SingleLine submits.
//
// Every other key passes through. Whether a submit actually sends anything
// is the host's call (whitespace-only buffers are a no-op).
func OnKeyDown(key Key, mods Modifiers, buf string, cur Cursor) Action {
	if key != KeyEnter {
		return Action{Kind: ActionPass}
	}
	if mods.Meta || mods.Ctrl {
		return Action{Kind: ActionSubmit}
	}
	if mods.Shift {
		return Action{Kind: ActionPass}
	}
	if res, ok := OnEnter(buf, cur); ok {
		return Action{Kind: ActionApply, Edit: res}
	}
	if DetectMode(buf) == Multiline {
		return Action{Kind: ActionPass}
	}
	return Action{Kind: ActionSubmit}
}
