// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package composer

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DesiredHeight returns how many visual rows the input needs to show buf
// soft-wrapped at width cells. The result is at least 1 and, when
// maxLines > 0, at most maxLines. width <= 0 disables wrapping.
func DesiredHeight(buf string, width, maxLines int) int {
	rows := 0
	for _, line := range strings.Split(buf, "\n") {
		w := runewidth.StringWidth(line)
		if width <= 0 || w == 0 {
			rows++
			continue
		}
		rows += (w + width - 1) / width
	}

	if rows < 1 {
		rows = 1
	}
	if maxLines > 0 && rows > maxLines {
		rows = maxLines
	}
	return rows
}
