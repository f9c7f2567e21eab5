// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package render turns a submitted message into display markup.
//
// Render is one-way and runs once per sent message, never on the live
// editing buffer. The passes run in a fixed order:
//
//  1. fenced code blocks are lifted out and escaped; nothing inside them is
//     touched by later passes
//  2. headings (### before ## before #)
//  3. contiguous ordered-list lines become one <ol>
//  4. contiguous unordered-list lines become one <ul>
//  5. emphasis, longest token first: ***, **, *, then ~~
//  6. remaining line breaks become <br/>
//
// The zero Options value escapes nothing outside code blocks. Hosts that put
// the output in front of a browser should set EscapeText or Sanitize (the
// composer config enables both by default).
//
// ANSI renders the same Markdown for a terminal through glamour, and
// PlainText recovers the visible text of rendered markup.
package render
