// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the composer's outer layers.
//
// # Key Functions
//
// String Utilities:
//   - TruncateRunes: UTF-8 safe string truncation with ellipsis
//   - TruncateWidth: truncation by terminal cells (go-runewidth)
//   - FirstLine: text up to the first line break
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync
//
// # Usage
//
//	preview := util.TruncateRunes(util.FirstLine(msg), 50)
//	err := util.AtomicWriteFile(path, data, 0644)
package util
