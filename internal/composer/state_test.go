// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// typeText feeds text to the state one rune at a time, sending KeyEnter for
// '\n' the way a terminal would.
func typeText(s State, text string) State {
	for _, r := range text {
		if r == '\n' {
			s, _ = s.Update(KeyEvent{Key: KeyEnter})
			continue
		}
		s, _ = s.Update(KeyEvent{Key: KeyRunes, Runes: []rune{r}})
	}
	return s
}

func TestState_TypeAndSubmit(t *testing.T) {
	s := typeText(NewState(), "hello")
	assert.Equal(t, "hello", s.Buffer)
	assert.Equal(t, Caret(5), s.Cursor)
	assert.Equal(t, SingleLine, s.Mode())

	s, eff := s.Update(KeyEvent{Key: KeyEnter})
	assert.Equal(t, ActionSubmit, eff.Action)
	assert.True(t, eff.Suppress())
	require.NotNil(t, eff.Sent)
	assert.Equal(t, "hello", eff.Sent.Content)
	assert.True(t, eff.Changed)

	assert.Empty(t, s.Buffer)
	assert.Equal(t, Caret(0), s.Cursor)
	assert.Equal(t, 1, s.Transcript.Len())
	last, ok := s.Transcript.Last()
	require.True(t, ok)
	assert.Equal(t, "hello", last.Content)
}

func TestState_WhitespaceSubmitIsNoop(t *testing.T) {
	s := typeText(NewState(), "   ")

	next, eff := s.Update(SubmitEvent{})
	assert.Nil(t, eff.Sent)
	assert.False(t, eff.Changed)
	assert.Equal(t, "   ", next.Buffer)
	assert.Equal(t, 0, next.Transcript.Len())

	// Enter in single-line mode is still consumed.
	_, eff = s.Update(KeyEvent{Key: KeyEnter})
	assert.Equal(t, ActionSubmit, eff.Action)
	assert.Nil(t, eff.Sent)
}

func TestState_ListSession(t *testing.T) {
	s := typeText(NewState(), "- milk")
	assert.Equal(t, Multiline, s.Mode())

	s, eff := s.Update(KeyEvent{Key: KeyEnter})
	assert.Equal(t, ActionApply, eff.Action)
	assert.Equal(t, "- milk\n- ", s.Buffer)
	assert.Equal(t, Caret(9), eff.Cursor)

	s = typeText(s, "eggs")
	s, _ = s.Update(KeyEvent{Key: KeyEnter})
	assert.Equal(t, "- milk\n- eggs\n- ", s.Buffer)

	// Enter on the empty item leaves the list.
	s, eff = s.Update(KeyEvent{Key: KeyEnter})
	assert.Equal(t, ActionApply, eff.Action)
	assert.Equal(t, "- milk\n- eggs\n", s.Buffer)
	assert.Equal(t, Caret(14), s.Cursor)

	// Multiline: plain Enter is a newline, not a send.
	s = typeText(s, "thanks")
	s, eff = s.Update(KeyEvent{Key: KeyEnter})
	assert.Equal(t, ActionPass, eff.Action)
	assert.Nil(t, eff.Sent)
	assert.Equal(t, "- milk\n- eggs\nthanks\n", s.Buffer)

	s, eff = s.Update(KeyEvent{Key: KeyEnter, Mods: Modifiers{Meta: true}})
	require.NotNil(t, eff.Sent)
	assert.Equal(t, "- milk\n- eggs\nthanks\n", eff.Sent.Content)
	assert.Empty(t, s.Buffer)
	assert.Equal(t, SingleLine, s.Mode())
}

func TestState_OrderedList(t *testing.T) {
	s := typeText(NewState(), "1. a\nb\nc\n")
	assert.Equal(t, "1. a\n2. b\n3. c\n4. ", s.Buffer)
}

func TestState_ShiftEnterInsertsNewline(t *testing.T) {
	s := typeText(NewState(), "hi")
	s, eff := s.Update(KeyEvent{Key: KeyEnter, Mods: Modifiers{Shift: true}})
	assert.Equal(t, ActionPass, eff.Action)
	assert.Equal(t, "hi\n", s.Buffer)
	assert.Equal(t, Multiline, s.Mode())
	assert.Equal(t, 0, s.Transcript.Len())
}

func TestState_ChangeEventNormalizesBullets(t *testing.T) {
	s, eff := NewState().Update(ChangeEvent{Value: "• foo", Cursor: Caret(5)})
	assert.Equal(t, "- foo", s.Buffer)
	assert.Equal(t, "• foo", s.DisplayValue())
	assert.True(t, eff.Changed)
	assert.Equal(t, Caret(5), eff.Cursor)
}

func TestState_ChangeEventCleansControls(t *testing.T) {
	s, _ := NewState().Update(ChangeEvent{Value: "a\r\nb\x07c\td", Cursor: Caret(99)})
	assert.Equal(t, "a\nbc\td", s.Buffer)
	assert.Equal(t, Caret(6), s.Cursor)
}

func TestState_Format(t *testing.T) {
	s, _ := NewState().Update(ChangeEvent{Value: "hello", Cursor: Caret(5)})
	s, _ = s.Update(SelectEvent{Cursor: Cursor{Start: 0, End: 5}})

	s, eff := s.Update(FormatEvent{Kind: FormatBold})
	assert.Equal(t, "**hello**", s.Buffer)
	assert.Equal(t, Caret(2), eff.Cursor)
	assert.Equal(t, ActionPass, eff.Action)
}

func TestState_FormatCustomPlaceholder(t *testing.T) {
	s := NewState()
	s.Placeholders = Placeholders{Bold: "loud"}
	s, _ = s.Update(FormatEvent{Kind: FormatBold})
	assert.Equal(t, "**loud**", s.Buffer)
}

func TestState_SelectClamps(t *testing.T) {
	s, _ := NewState().Update(ChangeEvent{Value: "abc"})
	s, eff := s.Update(SelectEvent{Cursor: Cursor{Start: 10, End: -1}})
	assert.Equal(t, Cursor{Start: 0, End: 3}, s.Cursor)
	assert.False(t, eff.Changed)
}

func TestState_Editing(t *testing.T) {
	s := typeText(NewState(), "abcd")

	s, _ = s.Update(KeyEvent{Key: KeyBackspace})
	assert.Equal(t, "abc", s.Buffer)

	s, _ = s.Update(KeyEvent{Key: KeyHome})
	assert.Equal(t, Caret(0), s.Cursor)
	s, _ = s.Update(KeyEvent{Key: KeyBackspace})
	assert.Equal(t, "abc", s.Buffer, "backspace at start is a no-op")

	s, _ = s.Update(KeyEvent{Key: KeyDelete})
	assert.Equal(t, "bc", s.Buffer)

	s, _ = s.Update(KeyEvent{Key: KeyEnd})
	s, _ = s.Update(KeyEvent{Key: KeyDelete})
	assert.Equal(t, "bc", s.Buffer, "delete at end is a no-op")
}

func TestState_ShiftSelection(t *testing.T) {
	s := typeText(NewState(), "abcd")
	s, _ = s.Update(SelectEvent{Cursor: Caret(2)})

	shift := Modifiers{Shift: true}
	s, _ = s.Update(KeyEvent{Key: KeyLeft, Mods: shift})
	assert.Equal(t, Cursor{Start: 1, End: 2}, s.Cursor)
	s, _ = s.Update(KeyEvent{Key: KeyLeft, Mods: shift})
	assert.Equal(t, Cursor{Start: 0, End: 2}, s.Cursor)

	// Crossing back over the anchor flips the selection direction.
	s, _ = s.Update(KeyEvent{Key: KeyRight, Mods: shift})
	s, _ = s.Update(KeyEvent{Key: KeyRight, Mods: shift})
	s, _ = s.Update(KeyEvent{Key: KeyRight, Mods: shift})
	assert.Equal(t, Cursor{Start: 2, End: 3}, s.Cursor)

	// Typing replaces the selection.
	s, _ = s.Update(KeyEvent{Key: KeyRunes, Runes: []rune("X")})
	assert.Equal(t, "abXd", s.Buffer)
	assert.Equal(t, Caret(3), s.Cursor)
}

func TestState_ArrowCollapsesSelection(t *testing.T) {
	s, _ := NewState().Update(ChangeEvent{Value: "abcd"})
	s, _ = s.Update(SelectEvent{Cursor: Cursor{Start: 1, End: 3}})

	left, _ := s.Update(KeyEvent{Key: KeyLeft})
	assert.Equal(t, Caret(1), left.Cursor)

	right, _ := s.Update(KeyEvent{Key: KeyRight})
	assert.Equal(t, Caret(3), right.Cursor)
}

func TestState_VerticalMovement(t *testing.T) {
	s, _ := NewState().Update(ChangeEvent{Value: "abcdef\nxy\nlonger"})
	s, _ = s.Update(SelectEvent{Cursor: Caret(5)})

	s, _ = s.Update(KeyEvent{Key: KeyDown})
	assert.Equal(t, Caret(9), s.Cursor, "column clamps to the shorter line")

	s, _ = s.Update(KeyEvent{Key: KeyDown})
	assert.Equal(t, Caret(12), s.Cursor)

	s, _ = s.Update(KeyEvent{Key: KeyUp})
	s, _ = s.Update(KeyEvent{Key: KeyUp})
	assert.Equal(t, Caret(2), s.Cursor)

	s, _ = s.Update(KeyEvent{Key: KeyUp})
	assert.Equal(t, Caret(0), s.Cursor, "up on the first line goes to the start")
}

func TestState_Height(t *testing.T) {
	s, eff := NewState().Update(ResizeEvent{Width: 10, MaxLines: 3})
	assert.Equal(t, 1, eff.Height)

	s, eff = s.Update(ChangeEvent{Value: "a\nb"})
	assert.Equal(t, 2, eff.Height)

	_, eff = s.Update(ChangeEvent{Value: "a\nb\nc\nd\ne"})
	assert.Equal(t, 3, eff.Height)
}

func TestState_UpdateDoesNotMutateReceiver(t *testing.T) {
	s := typeText(NewState(), "keep")
	_, _ = s.Update(KeyEvent{Key: KeyEnter})
	assert.Equal(t, "keep", s.Buffer)
	assert.Equal(t, 0, s.Transcript.Len())
}

func TestState_TranscriptGrows(t *testing.T) {
	s := NewState()
	for _, msg := range []string{"one", "two", "three"} {
		s = typeText(s, msg)
		s, _ = s.Update(SubmitEvent{})
	}
	require.Equal(t, 3, s.Transcript.Len())
	msgs := s.Transcript.Messages()
	assert.Equal(t, "one", msgs[0].Content)
	assert.Equal(t, "three", msgs[2].Content)
}
