package dom

import (
	"sync"
	"sync/atomic"

	"github.com/tidwall/gjson"
)

// Listener receives DOM events that passed a registration's filter.
type Listener func(Event)

// Event is a DOM event as delivered to a listener.
type Event struct {
	// Type is the DOM event type, e.g. "keydown".
	Type string

	// Element is the element the listener was registered on.
	Element *Element

	// Target is the element the event was dispatched at.
	Target *Element

	// Payload holds the evaluated event data as a JSON object keyed by expression.
	Payload string
}

// Get returns the value of an event data expression from the payload.
func (e Event) Get(expression string) gjson.Result {
	return gjson.Get(e.Payload, escapePath(expression))
}

// Has reports whether the payload carries a value for an expression.
func (e Event) Has(expression string) bool {
	return e.Get(expression).Exists()
}

// ListenerRegistration is a DOM listener registration.
//
// The filter and event data should be configured before the first event is
// dispatched; changes apply to subsequent dispatches.
type ListenerRegistration struct {
	id        string
	element   *Element
	eventType string
	listener  Listener

	mu        sync.RWMutex
	filter    string
	eventData []string

	removed atomic.Bool
}

// ID returns the registration's unique identifier.
func (r *ListenerRegistration) ID() string {
	return r.id
}

// Element returns the element the listener is registered on.
func (r *ListenerRegistration) Element() *Element {
	return r.element
}

// EventType returns the DOM event type.
func (r *ListenerRegistration) EventType() string {
	return r.eventType
}

// SetFilter sets the expression deciding whether an event is delivered.
// An empty filter delivers every event.
func (r *ListenerRegistration) SetFilter(expression string) *ListenerRegistration {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filter = expression
	return r
}

// Filter returns the filter expression.
func (r *ListenerRegistration) Filter() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter
}

// AddEventData adds an expression to evaluate and send with each delivered
// event. Adding the same expression twice has no effect.
func (r *ListenerRegistration) AddEventData(expression string) *ListenerRegistration {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.eventData {
		if existing == expression {
			return r
		}
	}
	r.eventData = append(r.eventData, expression)
	return r
}

// EventData returns a copy of the event data expressions in insertion order.
func (r *ListenerRegistration) EventData() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]string, len(r.eventData))
	copy(result, r.eventData)
	return result
}

// IsRemoved reports whether Remove has been called.
func (r *ListenerRegistration) IsRemoved() bool {
	return r.removed.Load()
}

// Remove unregisters the listener. Subsequent calls do nothing.
func (r *ListenerRegistration) Remove() {
	if !r.removed.CompareAndSwap(false, true) {
		return
	}
	r.element.removeListener(r)
}
