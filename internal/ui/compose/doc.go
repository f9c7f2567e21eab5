// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package compose is the terminal host for the composer core.
//
// It owns nothing the core does not already model: every key is translated
// into a composer.Event, the returned State replaces the old one, and the
// returned Effect drives the input height and the transcript. Sent messages
// are shown through glamour in a scrolling viewport.
//
// # Key bindings
//
//	Enter        list continuation, newline or send (decided by the core)
//	Alt+Enter    send regardless of mode
//	Ctrl+J       newline, never send
//	Ctrl+S       send button
//	Alt+B/I/X    bold, italic, strikethrough
//	Alt+U/O/Q/C  bullet list, numbered list, quote, code block
//	Ctrl+Y       copy the last message as HTML
//	PgUp/PgDn    scroll the transcript
//	Alt+H        toggle help
//	Ctrl+C/Q     quit
package compose
