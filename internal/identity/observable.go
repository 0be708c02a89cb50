package identity

import "sync"

// Observable is a single-slot observable value for the active display
// name. It is deliberately separate from the entity bus: identity has one
// value and one subscriber set, not a set of topics.
type Observable struct {
	mu    sync.RWMutex
	value string
	set   bool
	next  int
	subs  map[int]func(string)
}

func NewObservable() *Observable {
	return &Observable{subs: make(map[int]func(string))}
}

// Get returns the current value and whether one has been set.
func (o *Observable) Get() (string, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.value, o.set
}

// Set stores the value and notifies every subscriber.
func (o *Observable) Set(v string) {
	o.mu.Lock()
	o.value = v
	o.set = true
	fns := make([]func(string), 0, len(o.subs))
	for _, fn := range o.subs {
		fns = append(fns, fn)
	}
	o.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}

// Subscribe registers a listener and returns its cancel function.
func (o *Observable) Subscribe(fn func(string)) (cancel func()) {
	o.mu.Lock()
	o.next++
	id := o.next
	o.subs[id] = fn
	o.mu.Unlock()

	return func() {
		o.mu.Lock()
		delete(o.subs, id)
		o.mu.Unlock()
	}
}
