// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
	"golang.org/x/net/html"
)

// DefaultHighlightStyle is used when Options.HighlightStyle is empty.
const DefaultHighlightStyle = "github"

// infoPattern matches a fence info string such as "go" or "c++".
var infoPattern = regexp.MustCompile(`^[\w+#.-]+$`)

// codeBlock renders the text between two fences. The content is kept
// verbatim and escaped, and never sees the Markdown passes. A one-word first
// line ("```go") also names the language: it becomes a class and the
// highlighter's lexer hint, but stays visible as text.
func (o Options) codeBlock(body string) string {
	lang, info, code := splitInfo(body)

	inner := html.EscapeString(body)
	if o.Highlight {
		if hl, ok := highlight(code, lang, o.HighlightStyle); ok {
			inner = html.EscapeString(info) + hl
		}
	}

	codeOpen := "<code>"
	if lang != "" {
		codeOpen = `<code class="language-` + html.EscapeString(lang) + `">`
	}
	return o.open("pre") + codeOpen + inner + "</code></pre>"
}

// splitInfo reads the language off the opening fence line. info is the
// line (with its break) and code what follows it, so info+code == body.
// A fence with no line break ("```x```") has no language.
func splitInfo(body string) (lang, info, code string) {
	i := strings.IndexByte(body, '\n')
	if i < 0 {
		return "", "", body
	}
	first := strings.TrimSpace(body[:i])
	if first == "" || !infoPattern.MatchString(first) {
		return "", "", body
	}
	return first, body[:i+1], body[i+1:]
}

// highlight colors code with inline styles. ok is false when no lexer fits.
func highlight(code, lang, styleName string) (string, bool) {
	var lexer chroma.Lexer
	if lang != "" {
		lexer = lexers.Get(lang)
	}
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		return "", false
	}
	lexer = chroma.Coalesce(lexer)

	if styleName == "" {
		styleName = DefaultHighlightStyle
	}
	style := chromaStyles.Get(styleName)
	if style == nil {
		style = chromaStyles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", false
	}

	formatter := chromahtml.New(chromahtml.PreventSurroundingPre(true))
	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return "", false
	}
	return buf.String(), true
}

// HighlightStyles lists the chroma style names accepted by HighlightStyle.
func HighlightStyles() []string {
	return chromaStyles.Names()
}
