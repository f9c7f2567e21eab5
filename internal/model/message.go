// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for submitted messages and the
// transcript that orders them.
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/rigrun-composer/internal/util"
)

// =============================================================================
// SENT MESSAGE
// =============================================================================

// SentMessage is an immutable copy of the composer buffer taken at submit
// time. It is never edited or removed once created.
type SentMessage struct {
	ID      string    `json:"id"`
	Content string    `json:"content"`
	SentAt  time.Time `json:"sent_at"`
}

// NewSentMessage snapshots content into a new message with a fresh ID.
// Content is stored exactly as typed; callers decide whether it is sendable.
func NewSentMessage(content string) SentMessage {
	return SentMessage{
		ID:      uuid.NewString(),
		Content: content,
		SentAt:  time.Now(),
	}
}

// Sendable reports whether content has anything besides whitespace.
func Sendable(content string) bool {
	return strings.TrimSpace(content) != ""
}

// Preview returns the first line of the message truncated to maxLen runes.
func (m SentMessage) Preview(maxLen int) string {
	return util.TruncateRunes(util.FirstLine(strings.TrimSpace(m.Content)), maxLen)
}

// LineCount returns the number of lines in the message.
func (m SentMessage) LineCount() int {
	return strings.Count(m.Content, "\n") + 1
}
