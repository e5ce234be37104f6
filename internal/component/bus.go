package component

import (
	"sync"
	"sync/atomic"

	"github.com/dshills/keybridge/internal/dom"
)

// busListener receives events fired on the server.
type busListener struct {
	handle  func(Event)
	removed atomic.Bool
}

// eventBus holds a component's listeners for server-fired events, keyed by
// event type name. Client events arrive through the element's DOM listeners.
type eventBus struct {
	mu        sync.RWMutex
	listeners map[string][]*busListener
}

func newEventBus() *eventBus {
	return &eventBus{listeners: make(map[string][]*busListener)}
}

func (b *eventBus) add(name string, handle func(Event)) Registration {
	l := &busListener{handle: handle}

	b.mu.Lock()
	b.listeners[name] = append(b.listeners[name], l)
	b.mu.Unlock()

	return dom.NewRegistration(func() {
		l.removed.Store(true)
		b.mu.Lock()
		defer b.mu.Unlock()
		list := b.listeners[name]
		for i, existing := range list {
			if existing == l {
				b.listeners[name] = append(list[:i], list[i+1:]...)
				break
			}
		}
		if len(b.listeners[name]) == 0 {
			delete(b.listeners, name)
		}
	})
}

func (b *eventBus) fire(name string, event Event) int {
	b.mu.RLock()
	snapshot := make([]*busListener, len(b.listeners[name]))
	copy(snapshot, b.listeners[name])
	b.mu.RUnlock()

	delivered := 0
	for _, l := range snapshot {
		if l.removed.Load() {
			continue
		}
		l.handle(event)
		delivered++
	}
	return delivered
}

// AddListener registers handler for events of type t on c.
//
// The DOM listener for t.Name is registered on c's element with t's event data
// expressions; primer, if non-nil, is called once with the DOM registration
// before any event can be delivered. The handler also receives events fired on
// the server with Fire. The returned Registration removes both.
func AddListener[E Event](c Component, t DomEventType[E], handler func(E), primer func(*dom.ListenerRegistration)) (Registration, error) {
	if IsNil(c) {
		return nil, ErrNilComponent
	}
	if handler == nil {
		return nil, ErrNilHandler
	}

	domReg := c.Element().AddEventListener(t.Name, func(e dom.Event) {
		handler(t.Decode(c, e))
	})
	for _, expr := range t.Data {
		domReg.AddEventData(expr)
	}
	if primer != nil {
		primer(domReg)
	}

	busReg := c.bus().add(t.Name, func(e Event) {
		if typed, ok := e.(E); ok {
			handler(typed)
		}
	})

	return dom.Combine(domReg, busReg), nil
}

// Fire delivers a server-side event to c's listeners for t and returns the
// number of listeners it reached.
func Fire[E Event](c Component, t DomEventType[E], event E) int {
	if IsNil(c) {
		return 0
	}
	return c.bus().fire(t.Name, event)
}

// ListenerCount returns the number of DOM listeners registered on c's element
// for an event type.
func ListenerCount(c Component, eventName string) int {
	if IsNil(c) {
		return 0
	}
	return c.Element().ListenerCount(eventName)
}
