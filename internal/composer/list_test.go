// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnEnter(t *testing.T) {
	tests := []struct {
		name       string
		buf        string
		cursor     int
		wantOK     bool
		wantBuf    string
		wantCursor int
	}{
		{
			name: "continue unordered", buf: "- item", cursor: 6,
			wantOK: true, wantBuf: "- item\n- ", wantCursor: 9,
		},
		{
			name: "continue keeps star marker", buf: "* a", cursor: 3,
			wantOK: true, wantBuf: "* a\n* ", wantCursor: 6,
		},
		{
			name: "continue keeps indent", buf: "  + nested", cursor: 10,
			wantOK: true, wantBuf: "  + nested\n  + ", wantCursor: 15,
		},
		{
			name: "ordered increments", buf: "3. foo", cursor: 6,
			wantOK: true, wantBuf: "3. foo\n4. ", wantCursor: 10,
		},
		{
			name: "ordered gains a digit", buf: "9. nine", cursor: 7,
			wantOK: true, wantBuf: "9. nine\n10. ", wantCursor: 12,
		},
		{
			name: "exit empty unordered", buf: "- ", cursor: 2,
			wantOK: true, wantBuf: "", wantCursor: 0,
		},
		{
			name: "exit empty item after content", buf: "- a\n- ", cursor: 6,
			wantOK: true, wantBuf: "- a\n", wantCursor: 4,
		},
		{
			name: "exit whitespace only ordered", buf: "1. x\n2.    ", cursor: 11,
			wantOK: true, wantBuf: "1. x\n", wantCursor: 5,
		},
		{
			name: "split item mid line", buf: "- hello", cursor: 4,
			wantOK: true, wantBuf: "- he\n- llo", wantCursor: 7,
		},
		{
			name: "text after caret survives exit", buf: "- a\n- |tail", cursor: 6,
			wantOK: true, wantBuf: "- a\n|tail", wantCursor: 4,
		},
		{
			name: "no renumbering of following items", buf: "1. a\n2. b", cursor: 4,
			wantOK: true, wantBuf: "1. a\n2. \n2. b", wantCursor: 8,
		},
		{
			name: "plain line passes", buf: "hello", cursor: 5, wantOK: false,
		},
		{
			name: "only caret line counts", buf: "- item\nplain", cursor: 12, wantOK: false,
		},
		{
			name: "unicode content", buf: "- héllo 🙂", cursor: 9,
			wantOK: true, wantBuf: "- héllo 🙂\n- ", wantCursor: 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, ok := OnEnter(tt.buf, Caret(tt.cursor))
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantBuf, res.Buffer)
			assert.Equal(t, Caret(tt.wantCursor), res.Cursor)
		})
	}
}

func TestOnEnter_UsesSelectionStart(t *testing.T) {
	// The split happens at the selection start; the selected text is kept.
	res, ok := OnEnter("- abc", Cursor{Start: 3, End: 5})
	require.True(t, ok)
	assert.Equal(t, "- a\n- bc", res.Buffer)
	assert.Equal(t, Caret(6), res.Cursor)
}

func TestOnEnter_ClampsCursor(t *testing.T) {
	res, ok := OnEnter("- item", Caret(99))
	require.True(t, ok)
	assert.Equal(t, "- item\n- ", res.Buffer)

	_, ok = OnEnter("- item", Caret(-5))
	assert.False(t, ok, "caret at 0 sees an empty current line")
}
