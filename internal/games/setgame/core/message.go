package core

import "time"

// DefaultMessageDuration is how long a message stays visible.
const DefaultMessageDuration = time.Second

// Message is a transient overlay text. Setting new text replaces the old
// one immediately and restarts the display timer.
type Message struct {
	text     string
	updated  time.Time
	duration time.Duration
	now      func() time.Time
}

// NewMessage creates an empty, hidden message. A nil clock uses time.Now.
func NewMessage(duration time.Duration, now func() time.Time) *Message {
	if now == nil {
		now = time.Now
	}
	if duration <= 0 {
		duration = DefaultMessageDuration
	}
	return &Message{duration: duration, now: now}
}

// Set replaces the text and restarts the timer.
func (m *Message) Set(text string) {
	m.text = text
	m.updated = m.now()
}

// Text returns the current text, visible or not.
func (m *Message) Text() string {
	return m.text
}

// Visible reports whether the message should render now.
func (m *Message) Visible() bool {
	if m.updated.IsZero() {
		return false
	}
	return m.now().Sub(m.updated) < m.duration
}
