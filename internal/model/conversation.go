// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "time"

// titleMaxLen bounds the transcript title derived from the first message.
const titleMaxLen = 50

// =============================================================================
// TRANSCRIPT
// =============================================================================

// Transcript is the ordered, append-only sequence of submitted messages.
// Insertion order is display order.
//
// Transcript is a value: Append returns a new Transcript and never writes
// into storage shared with the receiver, so older snapshots stay valid.
type Transcript struct {
	messages  []SentMessage
	startedAt time.Time
}

// NewTranscript creates an empty transcript.
func NewTranscript() Transcript {
	return Transcript{startedAt: time.Now()}
}

// Append returns a transcript with msg added at the end.
func (t Transcript) Append(msg SentMessage) Transcript {
	next := make([]SentMessage, len(t.messages), len(t.messages)+1)
	copy(next, t.messages)
	next = append(next, msg)

	started := t.startedAt
	if started.IsZero() {
		started = msg.SentAt
	}
	return Transcript{messages: next, startedAt: started}
}

// Messages returns a copy of the messages in display order.
func (t Transcript) Messages() []SentMessage {
	out := make([]SentMessage, len(t.messages))
	copy(out, t.messages)
	return out
}

// Len returns the number of messages.
func (t Transcript) Len() int {
	return len(t.messages)
}

// IsEmpty returns true if nothing has been sent.
func (t Transcript) IsEmpty() bool {
	return len(t.messages) == 0
}

// Last returns the most recent message.
func (t Transcript) Last() (SentMessage, bool) {
	if len(t.messages) == 0 {
		return SentMessage{}, false
	}
	return t.messages[len(t.messages)-1], true
}

// StartedAt returns when the transcript was created (or its first message
// was sent, for a zero-value transcript).
func (t Transcript) StartedAt() time.Time {
	return t.startedAt
}

// Title derives a short title from the first message.
func (t Transcript) Title() string {
	if len(t.messages) == 0 {
		return "Untitled"
	}
	return t.messages[0].Preview(titleMaxLen)
}
