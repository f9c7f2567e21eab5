// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// PlainText returns the visible text of rendered markup. Block elements and
// <br/> become line breaks; list items get "- " or "N. " prefixes.
func PlainText(markup string) string {
	z := html.NewTokenizer(strings.NewReader(markup))

	type listState struct {
		ordered bool
		counter int
	}
	var lists []listState
	var sb strings.Builder
	skip := 0 // depth inside script/style

	newline := func() {
		s := sb.String()
		if s != "" && !strings.HasSuffix(s, "\n") {
			sb.WriteByte('\n')
		}
	}

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		tok := z.Token()

		switch tt {
		case html.TextToken:
			if skip == 0 {
				sb.WriteString(tok.Data)
			}

		case html.StartTagToken, html.SelfClosingTagToken:
			switch tok.Data {
			case "script", "style":
				if tt == html.StartTagToken {
					skip++
				}
			case "br":
				sb.WriteByte('\n')
			case "ul", "ol":
				newline()
				lists = append(lists, listState{ordered: tok.Data == "ol"})
			case "li":
				newline()
				if n := len(lists); n > 0 && lists[n-1].ordered {
					lists[n-1].counter++
					sb.WriteString(strconv.Itoa(lists[n-1].counter) + ". ")
				} else {
					sb.WriteString("- ")
				}
			case "h1", "h2", "h3", "h4", "h5", "h6", "p", "div", "pre", "blockquote":
				newline()
			}

		case html.EndTagToken:
			switch tok.Data {
			case "script", "style":
				if skip > 0 {
					skip--
				}
			case "ul", "ol":
				if len(lists) > 0 {
					lists = lists[:len(lists)-1]
				}
				newline()
			case "li", "h1", "h2", "h3", "h4", "h5", "h6", "p", "div", "pre", "blockquote":
				newline()
			}
		}
	}

	return strings.Trim(sb.String(), "\n")
}
