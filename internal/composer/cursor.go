// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package composer

import "unicode/utf8"

// Cursor is a selection inside the buffer as rune offsets.
// Start == End is a collapsed caret.
type Cursor struct {
	Start int
	End   int
}

// Caret returns a collapsed cursor at off.
func Caret(off int) Cursor {
	return Cursor{Start: off, End: off}
}

// IsCollapsed reports whether the selection is empty.
func (c Cursor) IsCollapsed() bool {
	return c.Start == c.End
}

// Clamp orders the cursor and bounds it into buf.
// Out-of-range offsets are a caller bug; clamping keeps the core total.
func (c Cursor) Clamp(buf string) Cursor {
	n := utf8.RuneCountInString(buf)
	start := clampInt(c.Start, 0, n)
	end := clampInt(c.End, 0, n)
	if start > end {
		start, end = end, start
	}
	return Cursor{Start: start, End: end}
}

// EditResult is a new buffer plus the cursor the host should apply once the
// buffer is committed.
type EditResult struct {
	Buffer string
	Cursor Cursor
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// byteOffset converts a rune offset to a byte offset, clamped to len(s).
func byteOffset(s string, off int) int {
	if off <= 0 {
		return 0
	}
	i := 0
	for pos := range s {
		if i == off {
			return pos
		}
		i++
	}
	return len(s)
}

// splitAt splits s at rune offset off.
func splitAt(s string, off int) (string, string) {
	b := byteOffset(s, off)
	return s[:b], s[b:]
}
