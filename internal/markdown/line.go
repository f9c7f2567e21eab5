// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package markdown

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// =============================================================================
// PATTERNS
// =============================================================================

var (
	// unorderedPattern: indent, one of - * +, one whitespace, content.
	unorderedPattern = regexp.MustCompile(`^(\s*)([-*+])\s(.*)$`)

	// orderedPattern: indent, digits, '.', one whitespace, content.
	orderedPattern = regexp.MustCompile(`^(\s*)(\d+)\.\s(.*)$`)

	// headingPattern: 1-6 '#' then whitespace.
	headingPattern = regexp.MustCompile(`^#{1,6}\s`)
)

// Fence is the token that opens and closes a code block.
const Fence = "```"

// =============================================================================
// LINE KIND
// =============================================================================

// Kind is the structural kind of a single line.
type Kind int

const (
	KindPlain     Kind = iota // Not a list item
	KindUnordered             // "- item", "* item", "+ item"
	KindOrdered               // "1. item"
)

// String returns the display name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindUnordered:
		return "unordered"
	case KindOrdered:
		return "ordered"
	default:
		return "unknown"
	}
}

// Line is the classification of one line of text.
//
// Indent and Content are only meaningful for list items. For unordered items
// Marker is the bullet character; for ordered items it is the digit run
// followed by '.' and Number holds its value.
type Line struct {
	Kind    Kind
	Indent  string
	Marker  string
	Number  int
	Digits  string
	Content string
}

// IsList reports whether the line is a list item of either kind.
func (l Line) IsList() bool {
	return l.Kind == KindUnordered || l.Kind == KindOrdered
}

// IsEmptyItem reports whether the line is a list item with blank content.
func (l Line) IsEmptyItem() bool {
	return l.IsList() && strings.TrimSpace(l.Content) == ""
}

// NextMarker returns the marker for the item that follows this one.
// Unordered markers repeat verbatim; ordered markers count up by one.
// Plain lines have no next marker.
func (l Line) NextMarker() string {
	switch l.Kind {
	case KindUnordered:
		return l.Marker
	case KindOrdered:
		return nextNumber(l.Digits) + "."
	default:
		return ""
	}
}

// Classify inspects a single line (no '\n') and returns its kind.
// Unordered items are checked before ordered ones; the marker classes are
// disjoint so the order never changes the result.
func Classify(line string) Line {
	if m := unorderedPattern.FindStringSubmatch(line); m != nil {
		return Line{
			Kind:    KindUnordered,
			Indent:  m[1],
			Marker:  m[2],
			Content: m[3],
		}
	}
	if m := orderedPattern.FindStringSubmatch(line); m != nil {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			n = -1 // digit run too long for int; Digits stays authoritative
		}
		return Line{
			Kind:    KindOrdered,
			Indent:  m[1],
			Marker:  m[2] + ".",
			Number:  n,
			Digits:  m[2],
			Content: m[3],
		}
	}
	return Line{Kind: KindPlain, Content: line}
}

// IsHeading reports whether the line opens with 1-6 '#' and whitespace.
func IsHeading(line string) bool {
	return headingPattern.MatchString(line)
}

// HasFence reports whether text contains a code fence token anywhere.
// An unclosed fence counts.
func HasFence(text string) bool {
	return strings.Contains(text, Fence)
}

// nextNumber increments a decimal digit string. Leading zeros are dropped,
// so "007" becomes "8". Works for digit runs of any length.
func nextNumber(digits string) string {
	if n, err := strconv.Atoi(digits); err == nil && n < math.MaxInt {
		return strconv.Itoa(n + 1)
	}

	trimmed := strings.TrimLeft(digits, "0")
	b := []byte(trimmed)
	i := len(b) - 1
	for ; i >= 0; i-- {
		if b[i] < '9' {
			b[i]++
			return string(b)
		}
		b[i] = '0'
	}
	return "1" + string(b)
}
