// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package composer

import (
	"strings"
	"unicode"
)

// defaultKey is what a plain text control does with a key the dispatcher
// passed through.
func (s State) defaultKey(ev KeyEvent) State {
	switch ev.Key {
	case KeyEnter:
		return s.insert("\n")
	case KeyRunes:
		return s.insert(cleanText(string(ev.Runes)))
	case KeyBackspace:
		return s.deleteBackward()
	case KeyDelete:
		return s.deleteForward()
	case KeyLeft, KeyRight, KeyUp, KeyDown, KeyHome, KeyEnd:
		return s.move(ev.Key, ev.Mods.Shift)
	}
	return s
}

// insert replaces the selection with text.
func (s State) insert(text string) State {
	if text == "" {
		return s
	}
	before, rest := splitAt(s.Buffer, s.Cursor.Start)
	_, after := splitAt(rest, s.Cursor.End-s.Cursor.Start)
	return s.commit(before+text+after, Caret(s.Cursor.Start+runeLen(text)))
}

func (s State) deleteRange(start, end int) State {
	before, rest := splitAt(s.Buffer, start)
	_, after := splitAt(rest, end-start)
	return s.commit(before+after, Caret(start))
}

func (s State) deleteBackward() State {
	if !s.Cursor.IsCollapsed() {
		return s.deleteRange(s.Cursor.Start, s.Cursor.End)
	}
	if s.Cursor.Start == 0 {
		return s
	}
	return s.deleteRange(s.Cursor.Start-1, s.Cursor.Start)
}

func (s State) deleteForward() State {
	if !s.Cursor.IsCollapsed() {
		return s.deleteRange(s.Cursor.Start, s.Cursor.End)
	}
	if s.Cursor.End >= runeLen(s.Buffer) {
		return s
	}
	return s.deleteRange(s.Cursor.Start, s.Cursor.Start+1)
}

// =============================================================================
// CARET MOVEMENT
// =============================================================================

// selAnchor is the fixed end of the selection. A stale anchor (one that is
// not an end of the current selection) falls back to Start.
func (s State) selAnchor() int {
	if s.anchor == s.Cursor.End && !s.Cursor.IsCollapsed() {
		return s.Cursor.End
	}
	return s.Cursor.Start
}

// head is the moving end of the selection.
func (s State) head() int {
	if s.selAnchor() == s.Cursor.Start {
		return s.Cursor.End
	}
	return s.Cursor.Start
}

func (s State) move(key Key, extend bool) State {
	runes := []rune(s.Buffer)

	if !extend && !s.Cursor.IsCollapsed() {
		switch key {
		case KeyLeft:
			return s.collapseTo(s.Cursor.Start)
		case KeyRight:
			return s.collapseTo(s.Cursor.End)
		}
	}

	from := s.Cursor.Start
	if extend {
		from = s.head()
	}

	var to int
	switch key {
	case KeyLeft:
		to = clampInt(from-1, 0, len(runes))
	case KeyRight:
		to = clampInt(from+1, 0, len(runes))
	case KeyHome:
		to = lineStart(runes, from)
	case KeyEnd:
		to = lineEnd(runes, from)
	case KeyUp:
		to = lineUp(runes, from)
	case KeyDown:
		to = lineDown(runes, from)
	default:
		return s
	}

	if !extend {
		return s.collapseTo(to)
	}
	anchor := s.selAnchor()
	if to < anchor {
		s.Cursor = Cursor{Start: to, End: anchor}
	} else {
		s.Cursor = Cursor{Start: anchor, End: to}
	}
	s.anchor = anchor
	return s
}

func (s State) collapseTo(pos int) State {
	s.Cursor = Caret(pos)
	s.anchor = pos
	return s
}

func lineStart(runes []rune, pos int) int {
	for pos > 0 && runes[pos-1] != '\n' {
		pos--
	}
	return pos
}

func lineEnd(runes []rune, pos int) int {
	for pos < len(runes) && runes[pos] != '\n' {
		pos++
	}
	return pos
}

func lineUp(runes []rune, pos int) int {
	start := lineStart(runes, pos)
	if start == 0 {
		return 0
	}
	col := pos - start
	prevEnd := start - 1
	prevStart := lineStart(runes, prevEnd)
	return prevStart + min(col, prevEnd-prevStart)
}

func lineDown(runes []rune, pos int) int {
	end := lineEnd(runes, pos)
	if end == len(runes) {
		return end
	}
	col := pos - lineStart(runes, pos)
	nextStart := end + 1
	nextEnd := lineEnd(runes, nextStart)
	return nextStart + min(col, nextEnd-nextStart)
}

// cleanText keeps the buffer free of control characters other than '\n' and
// '\t'. Carriage returns become newlines.
func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' || !unicode.IsControl(r) {
			return r
		}
		return -1
	}, s)
}
