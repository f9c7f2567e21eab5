// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package composer implements the text-editing decision engine of the chat
composer: the rules that decide what a keystroke does to the buffer.

# Components

  - Mode detection (mode.go): SingleLine (Enter submits) or Multiline
    (Enter inserts a newline), recomputed from the whole buffer.
  - List continuation (list.go): Enter on a list item continues the list or,
    on an empty item, exits it.
  - Formatting (format.go): toolbar commands that wrap the selection or insert
    a block marker.
  - Display mapping (display.go): bullet glyphs shown to the user versus the
    canonical '-' marker stored in the buffer.
  - Key dispatch (dispatch.go): the fixed priority order for Enter with and
    without modifiers.
  - State reducer (state.go): (State, Event) -> (State, Effect) for hosts that
    let the core own the buffer.

Every function here is pure. The buffer is a plain string and cursors are rune
offsets into it. Side effects the host must perform after committing a new
buffer (placing the caret, resizing the input) are returned as data in Effect.

# Usage

	st := composer.NewState()
	st, eff := st.Update(composer.KeyEvent{Key: composer.KeyRunes, Runes: []rune("- milk")})
	st, eff = st.Update(composer.KeyEvent{Key: composer.KeyEnter})
	// st.Buffer == "- milk\n- ", eff.Cursor.Start == 9
*/
package composer
