// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes a session transcript to disk.
//
// # Formats
//
//   - HTML: a standalone page, every message passed through the display
//     renderer with the configured render.Options
//   - Markdown: the messages as sent, with YAML frontmatter
//   - JSON: message metadata plus rendered HTML and plain text
//
// # Usage
//
//	opts := export.DefaultOptions()
//	opts.Render = cfg.RenderOptions()
//	path, err := export.ExportToFile(state.Transcript, export.NewHTMLExporter(opts), opts)
//
// Files are written atomically. An empty transcript is ErrEmptyTranscript.
package export
