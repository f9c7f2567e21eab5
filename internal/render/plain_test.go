// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"inline tags", "<strong>a</strong> <em>b</em>", "a b"},
		{"breaks", "a<br/>b<br/><br/>c", "a\nb\n\nc"},
		{"heading", "<h1>T</h1>body", "T\nbody"},
		{"unordered", "<ul><li>x</li><li>y</li></ul>", "- x\n- y"},
		{"ordered", "<ol><li>x</li><li>y</li></ol>", "1. x\n2. y"},
		{"entities", "&lt;b&gt; &amp; &#34;q&#34;", `<b> & "q"`},
		{"code block", "<pre><code>a\nb</code></pre>", "a\nb"},
		{"script skipped", "<script>bad()</script>ok", "ok"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainText(tt.in))
		})
	}
}

func TestPlainText_OfRender(t *testing.T) {
	got := PlainText(Render("# Plan\n- **milk**\n- eggs\nthanks"))
	assert.Equal(t, "Plan\n- milk\n- eggs\nthanks", got)
}
