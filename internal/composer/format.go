// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package composer

import "github.com/jeranaias/rigrun-composer/internal/markdown"

// =============================================================================
// FORMAT KINDS
// =============================================================================

// FormatKind is a toolbar formatting command.
type FormatKind int

const (
	FormatBold FormatKind = iota
	FormatItalic
	FormatStrikethrough
	FormatUnorderedList
	FormatOrderedList
	FormatQuote
	FormatCode
)

var formatNames = map[FormatKind]string{
	FormatBold:          "bold",
	FormatItalic:        "italic",
	FormatStrikethrough: "strikethrough",
	FormatUnorderedList: "unordered-list",
	FormatOrderedList:   "ordered-list",
	FormatQuote:         "quote",
	FormatCode:          "code",
}

// String returns the command name ("bold", "unordered-list", ...).
func (k FormatKind) String() string {
	if name, ok := formatNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseFormatKind maps a command name back to its kind.
func ParseFormatKind(name string) (FormatKind, bool) {
	for k, n := range formatNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// FormatKinds lists every command in toolbar order.
func FormatKinds() []FormatKind {
	return []FormatKind{
		FormatBold, FormatItalic, FormatStrikethrough,
		FormatUnorderedList, FormatOrderedList, FormatQuote, FormatCode,
	}
}

// =============================================================================
// PLACEHOLDERS
// =============================================================================

// Placeholders are the words inserted when a wrapping command runs on an
// empty selection.
type Placeholders struct {
	Bold          string
	Italic        string
	Strikethrough string
	Code          string
}

// DefaultPlaceholders returns the stock placeholder words.
func DefaultPlaceholders() Placeholders {
	return Placeholders{
		Bold:          "bold text",
		Italic:        "italic text",
		Strikethrough: "strikethrough text",
		Code:          "code",
	}
}

// withDefaults fills empty fields from DefaultPlaceholders.
func (p Placeholders) withDefaults() Placeholders {
	d := DefaultPlaceholders()
	if p.Bold == "" {
		p.Bold = d.Bold
	}
	if p.Italic == "" {
		p.Italic = d.Italic
	}
	if p.Strikethrough == "" {
		p.Strikethrough = d.Strikethrough
	}
	if p.Code == "" {
		p.Code = d.Code
	}
	return p
}

// =============================================================================
// APPLY
// =============================================================================

// ApplyFormat runs a formatting command with the default placeholders.
func ApplyFormat(buf string, sel Cursor, kind FormatKind) EditResult {
	return DefaultPlaceholders().Apply(buf, sel, kind)
}

// Apply runs a formatting command over the selection.
//
// Wrapping kinds surround the selected text (or the placeholder) with their
// token pair and put the caret just inside the opening token. Block kinds
// replace the selection with a newline and marker and put the caret after
// the marker. Code wraps the selection in a fenced block and puts the caret
// after the opening fence line. Every kind succeeds on any input.
func (p Placeholders) Apply(buf string, sel Cursor, kind FormatKind) EditResult {
	p = p.withDefaults()
	sel = sel.Clamp(buf)

	before, rest := splitAt(buf, sel.Start)
	selected, after := splitAt(rest, sel.End-sel.Start)

	orDefault := func(placeholder string) string {
		if selected == "" {
			return placeholder
		}
		return selected
	}

	switch kind {
	case FormatBold:
		return wrap(before, after, "**", orDefault(p.Bold), sel.Start)
	case FormatItalic:
		return wrap(before, after, "*", orDefault(p.Italic), sel.Start)
	case FormatStrikethrough:
		return wrap(before, after, "~~", orDefault(p.Strikethrough), sel.Start)
	case FormatUnorderedList:
		return prefix(before, after, "\n- ", sel.Start)
	case FormatOrderedList:
		return prefix(before, after, "\n1. ", sel.Start)
	case FormatQuote:
		return prefix(before, after, "\n> ", sel.Start)
	case FormatCode:
		open := markdown.Fence + "\n"
		return EditResult{
			Buffer: before + open + orDefault(p.Code) + "\n" + markdown.Fence + after,
			Cursor: Caret(sel.Start + runeLen(open)),
		}
	default:
		return EditResult{Buffer: buf, Cursor: sel}
	}
}

func wrap(before, after, token, inner string, start int) EditResult {
	return EditResult{
		Buffer: before + token + inner + token + after,
		Cursor: Caret(start + runeLen(token)),
	}
}

func prefix(before, after, marker string, start int) EditResult {
	return EditResult{
		Buffer: before + marker + after,
		Cursor: Caret(start + runeLen(marker)),
	}
}
