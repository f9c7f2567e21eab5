// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the rigrun-composer command line.
//
// Commands:
//
//	rigrun-composer [compose]     interactive terminal composer
//	rigrun-composer render [file] Markdown to HTML, ANSI or plain text
//	rigrun-composer mode [text]   detected composer mode and why
//	rigrun-composer format <kind> apply a formatting command to text
//	rigrun-composer config ...    show, path, keys, get, set
//	rigrun-composer version
//
// Every command loads the configuration once in the root's pre-run hook
// and logs to the configured file, never to the terminal.
package cli
