// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package markdown holds the line-level Markdown vocabulary shared by the
// composer and the display renderer.
//
// It recognizes exactly three kinds of line: plain text, unordered list items
// (`-`, `*`, `+`) and ordered list items (`N.`). Headings and code fences are
// exposed as separate predicates because they only matter to mode detection
// and rendering, never to list continuation.
//
// Classification is a total function: every string yields a result and no
// state is kept between calls.
package markdown
