// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package composer

import (
	"strings"

	"github.com/jeranaias/rigrun-composer/internal/markdown"
)

// OnEnter applies list continuation for a plain Enter at cur.Start.
//
// The line holding the caret (up to the caret) is classified:
//   - list item with blank content: the item is deleted back to the start of
//     its line and the caret lands there (exit list);
//   - list item with content: "\n" + indent + next marker + " " is inserted at
//     the caret (continue list);
//   - anything else: ok is false and the host's default Enter handling runs.
//
// Only the new item is numbered; neighbouring ordered items keep whatever
// number the user typed.
func OnEnter(buf string, cur Cursor) (res EditResult, ok bool) {
	cur = cur.Clamp(buf)
	before, after := splitAt(buf, cur.Start)

	current := before
	if i := strings.LastIndexByte(before, '\n'); i >= 0 {
		current = before[i+1:]
	}

	line := markdown.Classify(current)
	if !line.IsList() {
		return EditResult{}, false
	}

	if line.IsEmptyItem() {
		lineStart := before[:len(before)-len(current)]
		at := cur.Start - runeLen(current)
		return EditResult{Buffer: lineStart + after, Cursor: Caret(at)}, true
	}

	insert := "\n" + line.Indent + line.NextMarker() + " "
	return EditResult{
		Buffer: before + insert + after,
		Cursor: Caret(cur.Start + runeLen(insert)),
	}, true
}
