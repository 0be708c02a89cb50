// Package notify renders transient banner messages. A view holds one
// notifier; at most one message is live at a time and a new one preempts
// the previous outright, no queueing.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Tone tags the severity of a message.
type Tone string

const (
	ToneInfo    Tone = "info"
	ToneSuccess Tone = "success"
	ToneError   Tone = "error"
)

// DefaultTTL is the auto-clear delay when none is configured. One
// constant for every call site.
const DefaultTTL = 2500 * time.Millisecond

// Message is a shown notification.
type Message struct {
	ID        string
	Text      string
	Tone      Tone
	CreatedAt time.Time
}

// Notifier holds the single live message for a view.
type Notifier struct {
	mu      sync.Mutex
	ttl     time.Duration
	current *Message
	timer   *time.Timer
}

// New creates a notifier. A non-positive ttl falls back to DefaultTTL.
func New(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Notifier{ttl: ttl}
}

// Show replaces any visible message and schedules this one's own
// auto-clear, measured from its own show time.
func (n *Notifier) Show(text string, tone Tone) Message {
	if tone == "" {
		tone = ToneInfo
	}

	msg := Message{
		ID:        uuid.New().String(),
		Text:      text,
		Tone:      tone,
		CreatedAt: time.Now(),
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}
	n.current = &msg
	n.timer = time.AfterFunc(n.ttl, func() { n.clear(msg.ID) })

	return msg
}

// Current returns the live message, if any.
func (n *Notifier) Current() (Message, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return Message{}, false
	}
	return *n.current, true
}

// Dismiss clears the live message immediately.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.current = nil
}

// clear drops the message only if it is still the live one; clearing an
// already-replaced or already-cleared message is a no-op.
func (n *Notifier) clear(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current != nil && n.current.ID == id {
		n.current = nil
		n.timer = nil
	}
}
