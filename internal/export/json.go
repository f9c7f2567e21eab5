// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"time"

	"github.com/jeranaias/rigrun-composer/internal/model"
	"github.com/jeranaias/rigrun-composer/internal/render"
)

// =============================================================================
// JSON EXPORTER
// =============================================================================

// JSONExporter exports transcripts to JSON. Each message carries its raw
// content plus the rendered HTML and its plain-text reading.
type JSONExporter struct {
	options *Options
}

// NewJSONExporter creates a new JSON exporter.
func NewJSONExporter(opts *Options) *JSONExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &JSONExporter{options: opts}
}

type jsonTranscript struct {
	Title      string        `json:"title"`
	StartedAt  time.Time     `json:"started_at"`
	ExportedAt time.Time     `json:"exported_at"`
	Messages   []jsonMessage `json:"messages"`
}

type jsonMessage struct {
	ID      string     `json:"id"`
	Content string     `json:"content"`
	HTML    string     `json:"html"`
	Text    string     `json:"text"`
	SentAt  *time.Time `json:"sent_at,omitempty"`
}

// Export converts a transcript to indented JSON.
func (e *JSONExporter) Export(t model.Transcript) ([]byte, error) {
	if t.IsEmpty() {
		return nil, ErrEmptyTranscript
	}

	out := jsonTranscript{
		Title:      t.Title(),
		StartedAt:  t.StartedAt(),
		ExportedAt: time.Now(),
		Messages:   make([]jsonMessage, 0, t.Len()),
	}
	for _, msg := range t.Messages() {
		markup := e.options.Render.Render(msg.Content)
		jm := jsonMessage{
			ID:      msg.ID,
			Content: msg.Content,
			HTML:    markup,
			Text:    render.PlainText(markup),
		}
		if e.options.IncludeTimestamps {
			sentAt := msg.SentAt
			jm.SentAt = &sentAt
		}
		out.Messages = append(out.Messages, jm)
	}

	return json.MarshalIndent(out, "", "  ")
}

// FileExtension returns the file extension for JSON.
func (e *JSONExporter) FileExtension() string {
	return ".json"
}

// MimeType returns the MIME type for JSON.
func (e *JSONExporter) MimeType() string {
	return "application/json"
}
