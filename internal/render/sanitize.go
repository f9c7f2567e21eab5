// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// renderedElements is every tag Options.Render can emit.
var renderedElements = []string{
	"h1", "h2", "h3",
	"ul", "ol", "li",
	"strong", "em", "del",
	"br", "pre", "code", "span",
}

// policy is built once; a bluemonday Policy is safe for concurrent use after
// construction.
var policy = sync.OnceValue(func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(renderedElements...)
	p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements(renderedElements...)

	// Highlighted code carries inline colors.
	p.AllowAttrs("style").OnElements("span")
	p.AllowStyles("color", "background-color", "font-weight", "font-style", "text-decoration").OnElements("span")
	return p
})

// Sanitize drops every tag and attribute the renderer does not produce,
// including scripts and event handlers smuggled in through raw text.
func Sanitize(markup string) string {
	return policy().Sanitize(markup)
}
