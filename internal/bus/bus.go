// Package bus implements the cross-view invalidation channel. Topics
// carry no payload: a subscriber always re-fetches its own copy of the
// affected entity kind rather than trusting data pushed at it, which
// keeps derived fields consistent across views. Delivery is synchronous,
// in publish order, best effort, with no replay for late subscribers.
// A mounting view must always do its own initial fetch.
package bus

import "sync"

// Topic identifies an entity kind whose stored state changed.
type Topic int

const (
	// TopicSkills signals that the user's skill set changed.
	TopicSkills Topic = iota
	// TopicSpaces signals that projects/groups changed.
	TopicSpaces
)

func (t Topic) String() string {
	switch t {
	case TopicSkills:
		return "skills-changed"
	case TopicSpaces:
		return "spaces-changed"
	default:
		return "unknown"
	}
}

// Handler reacts to an invalidation signal.
type Handler func(Topic)

type subscriber struct {
	id int
	fn Handler
}

// Bus fans a publish out to every current subscriber of the topic,
// exactly once each.
type Bus struct {
	mu   sync.RWMutex
	next int
	subs map[Topic][]subscriber
}

func New() *Bus {
	return &Bus{subs: make(map[Topic][]subscriber)}
}

// Subscription is the handle returned by Subscribe; cancel it on unmount.
// A dangling subscription fires into a destroyed view.
type Subscription struct {
	bus   *Bus
	topic Topic
	id    int
}

// Subscribe registers a handler for a topic.
func (b *Bus) Subscribe(t Topic, fn Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.next++
	b.subs[t] = append(b.subs[t], subscriber{id: b.next, fn: fn})
	return &Subscription{bus: b, topic: t, id: b.next}
}

// Unsubscribe removes the handler. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.bus == nil {
		return
	}
	b := s.bus
	b.mu.Lock()
	defer b.mu.Unlock()

	list := b.subs[s.topic]
	for i, sub := range list {
		if sub.id == s.id {
			b.subs[s.topic] = append(list[:i], list[i+1:]...)
			break
		}
	}
	s.bus = nil
}

// Publish delivers the signal to all current subscribers of the topic,
// synchronously and in subscription order.
func (b *Bus) Publish(t Topic) {
	b.mu.RLock()
	list := make([]subscriber, len(b.subs[t]))
	copy(list, b.subs[t])
	b.mu.RUnlock()

	// handlers run outside the lock so they may subscribe, unsubscribe
	// or publish again
	for _, sub := range list {
		sub.fn(t)
	}
}

// SubscriberCount reports how many handlers a topic currently has.
func (b *Bus) SubscriberCount(t Topic) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[t])
}
