// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package composer

import "github.com/jeranaias/rigrun-composer/internal/model"

// =============================================================================
// STATE
// =============================================================================

// Layout is the geometry the host reports for the input control.
type Layout struct {
	Width    int // input width in cells; 0 disables soft wrap
	MaxLines int // cap for Effect.Height; 0 means uncapped
}

// State is everything the composer owns. It is a value: Update returns a new
// State and leaves the receiver untouched.
//
// Mode is deliberately not a field. It is derived from Buffer on demand so it
// can never drift from the text.
type State struct {
	Buffer       string
	Cursor       Cursor
	Transcript   model.Transcript
	Layout       Layout
	Placeholders Placeholders

	anchor int // fixed end of a shift-extended selection
}

// NewState returns an empty composer.
func NewState() State {
	return State{
		Transcript:   model.NewTranscript(),
		Placeholders: DefaultPlaceholders(),
	}
}

// Mode returns the mode derived from the current buffer.
func (s State) Mode() Mode {
	return DetectMode(s.Buffer)
}

// Report returns the mode with the reasons behind it.
func (s State) Report() ModeReport {
	return Analyze(s.Buffer)
}

// DisplayValue returns the buffer as the input should show it.
func (s State) DisplayValue() string {
	return DisplayValue(s.Buffer)
}

// =============================================================================
// EVENTS
// =============================================================================

// Event is an input delivered to State.Update.
type Event interface {
	isEvent()
}

// KeyEvent is a keydown. Runes carries the text for KeyRunes.
type KeyEvent struct {
	Key   Key
	Mods  Modifiers
	Runes []rune
}

// ChangeEvent replaces the buffer with the raw value of a native input
// control. Display bullets in Value are normalized back to markers.
type ChangeEvent struct {
	Value  string
	Cursor Cursor
}

// SelectEvent moves the caret or selection without editing.
type SelectEvent struct {
	Cursor Cursor
}

// FormatEvent runs a toolbar formatting command on the selection.
type FormatEvent struct {
	Kind FormatKind
}

// SubmitEvent is an explicit send (the send button).
type SubmitEvent struct{}

// ResizeEvent reports new input geometry.
type ResizeEvent struct {
	Width    int
	MaxLines int
}

func (KeyEvent) isEvent()    {}
func (ChangeEvent) isEvent() {}
func (SelectEvent) isEvent() {}
func (FormatEvent) isEvent() {}
func (SubmitEvent) isEvent() {}
func (ResizeEvent) isEvent() {}

// =============================================================================
// EFFECTS
// =============================================================================

// Effect is what the host applies after committing the new State: place the
// caret at Cursor, size the input to Height rows, and deliver Sent.
type Effect struct {
	// Action is the key dispatch decision (ActionPass for non-key events).
	Action  ActionKind
	Changed bool
	Cursor  Cursor
	Height  int
	// Sent is set when this event produced a message.
	Sent *model.SentMessage
}

// Suppress reports whether a native host must prevent the key's default.
func (e Effect) Suppress() bool {
	return e.Action != ActionPass
}

// =============================================================================
// UPDATE
// =============================================================================

// Update applies one event. Events must be delivered in order; Update never
// blocks and keeps no reference to its input.
func (s State) Update(ev Event) (State, Effect) {
	prev := s.Buffer
	var eff Effect

	switch ev := ev.(type) {
	case KeyEvent:
		s, eff = s.handleKey(ev)
	case ChangeEvent:
		s = s.commit(cleanText(ev.Value), ev.Cursor)
	case SelectEvent:
		s.Cursor = ev.Cursor.Clamp(s.Buffer)
		s.anchor = s.Cursor.Start
	case FormatEvent:
		res := s.Placeholders.Apply(s.Buffer, s.Cursor, ev.Kind)
		s = s.commit(res.Buffer, res.Cursor)
	case SubmitEvent:
		s, eff.Sent = s.submit()
	case ResizeEvent:
		s.Layout = Layout{Width: ev.Width, MaxLines: ev.MaxLines}
	}

	eff.Changed = s.Buffer != prev
	eff.Cursor = s.Cursor
	eff.Height = DesiredHeight(s.DisplayValue(), s.Layout.Width, s.Layout.MaxLines)
	return s, eff
}

func (s State) handleKey(ev KeyEvent) (State, Effect) {
	act := OnKeyDown(ev.Key, ev.Mods, s.Buffer, s.Cursor)
	eff := Effect{Action: act.Kind}

	switch act.Kind {
	case ActionApply:
		return s.commit(act.Edit.Buffer, act.Edit.Cursor), eff
	case ActionSubmit:
		s, eff.Sent = s.submit()
		return s, eff
	}
	return s.defaultKey(ev), eff
}

// commit installs a new buffer. Normalization swaps "• " for "- " and never
// changes the rune count, so cur stays meaningful.
func (s State) commit(buf string, cur Cursor) State {
	s.Buffer = NormalizeInput(buf)
	s.Cursor = cur.Clamp(s.Buffer)
	s.anchor = s.Cursor.Start
	return s
}

// submit sends the buffer if it has any non-whitespace content.
func (s State) submit() (State, *model.SentMessage) {
	if !model.Sendable(s.Buffer) {
		return s, nil
	}
	msg := model.NewSentMessage(s.Buffer)
	s.Transcript = s.Transcript.Append(msg)
	s.Buffer = ""
	s.Cursor = Caret(0)
	s.anchor = 0
	return s, &msg
}
