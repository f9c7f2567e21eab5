// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// ANSI styles accepted by ANSI besides "auto".
const (
	StyleAuto  = "auto"
	StyleDark  = "dark"
	StyleLight = "light"
	StyleNoTTY = "notty"
)

type rendererKey struct {
	width int
	style string
}

// termRenderers caches glamour renderers by width and style; building one
// parses a full style sheet.
var termRenderers sync.Map // map[rendererKey]*glamour.TermRenderer

func termRenderer(width int, style string) (*glamour.TermRenderer, error) {
	key := rendererKey{width: width, style: style}
	if cached, ok := termRenderers.Load(key); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" || style == StyleAuto {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("create terminal renderer: %w", err)
	}
	actual, _ := termRenderers.LoadOrStore(key, r)
	return actual.(*glamour.TermRenderer), nil
}

// ANSI renders Markdown for a terminal of the given width.
func ANSI(text string, width int, style string) (string, error) {
	if text == "" {
		return "", nil
	}
	r, err := termRenderer(width, style)
	if err != nil {
		return "", err
	}
	out, err := r.Render(text)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return strings.Trim(out, "\n"), nil
}
