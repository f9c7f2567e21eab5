// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOnKeyDown(t *testing.T) {
	tests := []struct {
		name string
		key  Key
		mods Modifiers
		buf  string
		want ActionKind
	}{
		{"ctrl enter submits", KeyEnter, Modifiers{Ctrl: true}, "hello", ActionSubmit},
		{"meta enter submits", KeyEnter, Modifiers{Meta: true}, "hello", ActionSubmit},
		{"ctrl enter beats list continuation", KeyEnter, Modifiers{Ctrl: true}, "- item", ActionSubmit},
		{"meta enter in multiline", KeyEnter, Modifiers{Meta: true}, "a\nb", ActionSubmit},
		{"shift enter passes", KeyEnter, Modifiers{Shift: true}, "hello", ActionPass},
		{"shift enter in list passes", KeyEnter, Modifiers{Shift: true}, "- item", ActionPass},
		{"enter continues list", KeyEnter, Modifiers{}, "- item", ActionApply},
		{"enter exits list", KeyEnter, Modifiers{}, "- ", ActionApply},
		{"enter submits single line", KeyEnter, Modifiers{}, "hello", ActionSubmit},
		{"enter passes multiline", KeyEnter, Modifiers{}, "a\nb", ActionPass},
		{"enter passes in heading", KeyEnter, Modifiers{}, "# Title", ActionPass},
		{"enter passes in fence", KeyEnter, Modifiers{}, "```go", ActionPass},
		{"enter on empty buffer submits", KeyEnter, Modifiers{}, "", ActionSubmit},
		{"other keys pass", KeyRunes, Modifiers{}, "- item", ActionPass},
		{"backspace passes", KeyBackspace, Modifiers{Ctrl: true}, "x", ActionPass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cur := Caret(len([]rune(tt.buf)))
			got := OnKeyDown(tt.key, tt.mods, tt.buf, cur)
			assert.Equal(t, tt.want, got.Kind)
			assert.Equal(t, tt.want != ActionPass, got.Suppress())
		})
	}
}

func TestOnKeyDown_ApplyCarriesEdit(t *testing.T) {
	got := OnKeyDown(KeyEnter, Modifiers{}, "3. foo", Caret(6))
	assert.Equal(t, ActionApply, got.Kind)
	assert.Equal(t, "3. foo\n4. ", got.Edit.Buffer)
	assert.Equal(t, Caret(10), got.Edit.Cursor)
}

func TestModifiers_None(t *testing.T) {
	assert.True(t, Modifiers{}.None())
	assert.False(t, Modifiers{Shift: true}.None())
}
