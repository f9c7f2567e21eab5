// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package composer

import (
	"strings"

	"github.com/jeranaias/rigrun-composer/internal/markdown"
)

// =============================================================================
// MODE
// =============================================================================

// Mode decides what a plain Enter does.
type Mode int

const (
	SingleLine Mode = iota // Enter submits
	Multiline              // Enter inserts a newline; explicit submit required
)

// String returns the display name of the mode.
func (m Mode) String() string {
	switch m {
	case SingleLine:
		return "single-line"
	case Multiline:
		return "multiline"
	default:
		return "unknown"
	}
}

// Hint returns the status line text for the mode. sendKey names the
// modifier-Enter chord of the host (e.g. "Alt+Enter").
func (m Mode) Hint(sendKey string) string {
	if m == Multiline {
		return "Enter for new line • " + sendKey + " to send"
	}
	return "Enter to send"
}

// =============================================================================
// REASONS
// =============================================================================

// Reason is one structural feature that forces Multiline mode.
type Reason int

const (
	ReasonNewline Reason = iota
	ReasonUnorderedList
	ReasonOrderedList
	ReasonHeading
	ReasonCodeFence
)

// String describes the reason for help overlays.
func (r Reason) String() string {
	switch r {
	case ReasonNewline:
		return "used a line break"
	case ReasonUnorderedList:
		return "started an unordered list"
	case ReasonOrderedList:
		return "started an ordered list"
	case ReasonHeading:
		return "used a heading"
	case ReasonCodeFence:
		return "is typing inside a code block"
	default:
		return "unknown"
	}
}

// ModeReport is the detected mode with every reason that triggered it.
type ModeReport struct {
	Mode    Mode
	Reasons []Reason
}

// Has reports whether r contributed to the mode.
func (r ModeReport) Has(reason Reason) bool {
	for _, got := range r.Reasons {
		if got == reason {
			return true
		}
	}
	return false
}

// =============================================================================
// DETECTION
// =============================================================================

// DetectMode returns Multiline when the buffer holds a newline, a list item on
// any line, a heading, or a code fence (closed or not). It stops at the first
// trigger; Analyze collects them all.
func DetectMode(buf string) Mode {
	if strings.Contains(buf, "\n") || markdown.HasFence(buf) {
		return Multiline
	}
	// No newline: the whole buffer is one line.
	if markdown.Classify(buf).IsList() || markdown.IsHeading(buf) {
		return Multiline
	}
	return SingleLine
}

// Analyze scans the whole buffer and reports every Multiline trigger in
// Reason order.
func Analyze(buf string) ModeReport {
	var unordered, ordered, heading bool
	for _, line := range strings.Split(buf, "\n") {
		switch markdown.Classify(line).Kind {
		case markdown.KindUnordered:
			unordered = true
		case markdown.KindOrdered:
			ordered = true
		}
		if markdown.IsHeading(line) {
			heading = true
		}
	}

	var reasons []Reason
	if strings.Contains(buf, "\n") {
		reasons = append(reasons, ReasonNewline)
	}
	if unordered {
		reasons = append(reasons, ReasonUnorderedList)
	}
	if ordered {
		reasons = append(reasons, ReasonOrderedList)
	}
	if heading {
		reasons = append(reasons, ReasonHeading)
	}
	if markdown.HasFence(buf) {
		reasons = append(reasons, ReasonCodeFence)
	}

	report := ModeReport{Mode: SingleLine, Reasons: reasons}
	if len(reasons) > 0 {
		report.Mode = Multiline
	}
	return report
}
