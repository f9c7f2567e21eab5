// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize_KeepsRenderedMarkup(t *testing.T) {
	opts := Options{Sanitize: true}
	assert.Equal(t, "<strong>a</strong>", opts.Render("**a**"))
	assert.Equal(t, "a<br/>b", opts.Render("a\nb"))
	assert.Equal(t, "<ol><li>x</li></ol>", opts.Render("1. x"))
	assert.Equal(t, "<pre><code>&lt;b&gt;</code></pre>", opts.Render("```<b>```"))
}

func TestSanitize_KeepsClasses(t *testing.T) {
	opts := Options{Sanitize: true, Classes: TailwindClasses()}
	assert.Equal(t, `<h3 class="text-lg font-semibold my-2">x</h3>`, opts.Render("### x"))
}

func TestSanitize_StripsInjectedMarkup(t *testing.T) {
	opts := Options{Sanitize: true}

	out := opts.Render("<script>alert(1)</script>hi")
	assert.NotContains(t, out, "script")
	assert.NotContains(t, out, "alert")
	assert.Contains(t, out, "hi")

	out = opts.Render(`<img src=x onerror="alert(1)">**ok**`)
	assert.NotContains(t, out, "onerror")
	assert.NotContains(t, out, "<img")
	assert.Contains(t, out, "<strong>ok</strong>")

	out = opts.Render(`<strong onclick="x()">a</strong>`)
	assert.Equal(t, "<strong>a</strong>", out)
}

func TestSanitize_Direct(t *testing.T) {
	assert.Equal(t, "<em>x</em>", Sanitize(`<em>x</em><iframe src="evil"></iframe>`))
}
