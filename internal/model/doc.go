// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for sent messages.
//
// # Key Types
//
//   - SentMessage: one submitted buffer with an ID and timestamp
//   - Transcript: the ordered, append-only list of messages sent this session
//
// Transcript is a value type. Append returns a new Transcript and never
// touches the slice held by earlier copies, so a caller can keep an old
// snapshot while the composer moves on.
//
// # Usage
//
//	t := model.NewTranscript()
//	if model.Sendable(buf) {
//	    t = t.Append(model.NewSentMessage(buf))
//	}
package model
