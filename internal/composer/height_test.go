// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package composer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDesiredHeight(t *testing.T) {
	tests := []struct {
		name     string
		buf      string
		width    int
		maxLines int
		want     int
	}{
		{"empty", "", 40, 8, 1},
		{"one short line", "hi", 40, 8, 1},
		{"three lines", "a\nb\nc", 40, 8, 3},
		{"blank lines count", "a\n\n\nb", 40, 8, 4},
		{"wraps long line", strings.Repeat("x", 100), 40, 8, 3},
		{"exact width", strings.Repeat("x", 40), 40, 8, 1},
		{"wide runes", strings.Repeat("日", 25), 40, 8, 2},
		{"capped", strings.Repeat("l\n", 20), 40, 8, 8},
		{"no cap", strings.Repeat("l\n", 20), 40, 0, 21},
		{"no wrap", strings.Repeat("x", 100), 0, 8, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DesiredHeight(tt.buf, tt.width, tt.maxLines))
		})
	}
}
