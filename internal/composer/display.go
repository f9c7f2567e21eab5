// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package composer

import (
	"regexp"
	"strings"
)

// Bullet is the glyph shown in place of an unordered marker while editing.
// It is one rune, like the marker it replaces, so offsets survive the swap.
const Bullet = "•"

var displayMarkerPattern = regexp.MustCompile(`^(\s*)[-*+]\s`)

// DisplayValue returns the buffer as shown in the input: every unordered
// list marker becomes a bullet. Display-only; never store the result.
func DisplayValue(buf string) string {
	lines := strings.Split(buf, "\n")
	for i, line := range lines {
		lines[i] = displayMarkerPattern.ReplaceAllString(line, "${1}"+Bullet+" ")
	}
	return strings.Join(lines, "\n")
}

// NormalizeInput maps a raw value from the input control back to canonical
// buffer text: every "• " becomes "- ".
func NormalizeInput(raw string) string {
	return strings.ReplaceAll(raw, Bullet+" ", "- ")
}
