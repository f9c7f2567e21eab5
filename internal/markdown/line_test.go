// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Kind
		indent  string
		marker  string
		content string
	}{
		{"plain text", "hello world", KindPlain, "", "", "hello world"},
		{"empty line", "", KindPlain, "", "", ""},
		{"dash item", "- item", KindUnordered, "", "-", "item"},
		{"star item", "* item", KindUnordered, "", "*", "item"},
		{"plus item", "+ item", KindUnordered, "", "+", "item"},
		{"indented item", "    - nested", KindUnordered, "    ", "-", "nested"},
		{"tab indent", "\t* tabbed", KindUnordered, "\t", "*", "tabbed"},
		{"empty unordered", "- ", KindUnordered, "", "-", ""},
		{"marker without space", "-item", KindPlain, "", "", "-item"},
		{"bare marker", "-", KindPlain, "", "", "-"},
		{"ordered", "1. first", KindOrdered, "", "1.", "first"},
		{"ordered multi digit", "42. answer", KindOrdered, "", "42.", "answer"},
		{"indented ordered", "  3. foo", KindOrdered, "  ", "3.", "foo"},
		{"empty ordered", "7. ", KindOrdered, "", "7.", ""},
		{"ordered without space", "1.first", KindPlain, "", "", "1.first"},
		{"number paren", "1) first", KindPlain, "", "", "1) first"},
		{"marker mid line", "text - not a list", KindPlain, "", "", "text - not a list"},
		{"emphasis is not a list", "*bold*", KindPlain, "", "", "*bold*"},
		{"content keeps extra spaces", "-   spaced", KindUnordered, "", "-", "  spaced"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.line)
			assert.Equal(t, tt.want, got.Kind)
			assert.Equal(t, tt.content, got.Content)
			if tt.want != KindPlain {
				assert.Equal(t, tt.indent, got.Indent)
				assert.Equal(t, tt.marker, got.Marker)
			}
		})
	}
}

func TestClassify_OrderedNumber(t *testing.T) {
	got := Classify("12. dozen")
	assert.Equal(t, 12, got.Number)
	assert.Equal(t, "12", got.Digits)
	assert.Equal(t, "13.", got.NextMarker())
}

func TestLine_NextMarker(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"- a", "-"},
		{"* a", "*"},
		{"+ a", "+"},
		{"1. a", "2."},
		{"3. foo", "4."},
		{"9. a", "10."},
		{"99. a", "100."},
		{"007. bond", "8."},
		{"99999999999999999999999. big", "100000000000000000000000."},
		{"plain", ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.line).NextMarker())
		})
	}
}

func TestLine_IsEmptyItem(t *testing.T) {
	assert.True(t, Classify("- ").IsEmptyItem())
	assert.True(t, Classify("-    ").IsEmptyItem())
	assert.True(t, Classify("  1. \t").IsEmptyItem())
	assert.False(t, Classify("- x").IsEmptyItem())
	assert.False(t, Classify("").IsEmptyItem(), "plain lines are never empty items")
}

func TestIsHeading(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"# Title", true},
		{"###### six", true},
		{"####### seven", false},
		{"#nospace", false},
		{" # indented", false},
		{"text # not", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, IsHeading(tt.line))
		})
	}
}

func TestHasFence(t *testing.T) {
	assert.True(t, HasFence("```go"))
	assert.True(t, HasFence("before ``` unclosed"))
	assert.False(t, HasFence("``two ticks``"))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "plain", KindPlain.String())
	assert.Equal(t, "unordered", KindUnordered.String())
	assert.Equal(t, "ordered", KindOrdered.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
