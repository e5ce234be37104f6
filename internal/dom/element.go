package dom

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Errors returned by tree operations.
var (
	// ErrNilElement is returned when a nil element is passed to a tree operation.
	ErrNilElement = errors.New("element cannot be nil")

	// ErrHierarchy is returned when an append would create a cycle or move a body.
	ErrHierarchy = errors.New("invalid element hierarchy")
)

// LifecycleListener is called when an element is attached or detached.
// It receives the element the listener was added to.
type LifecycleListener func(el *Element)

type lifecycleListener struct {
	attach  bool
	fn      LifecycleListener
	removed atomic.Bool
}

// Element is a node in the element tree.
//
// Tree mutation (AppendChild, RemoveChild) must happen on the owning UI's
// goroutine. Listener registration and removal may happen from anywhere.
type Element struct {
	id  string
	tag string

	parent   *Element
	children []*Element
	document *Document // set on a document body only
	attached bool

	mu        sync.RWMutex
	attrs     map[string]string
	text      string
	listeners map[string][]*ListenerRegistration
	lifecycle []*lifecycleListener
}

// NewElement creates a detached element with the given tag name.
func NewElement(tag string) *Element {
	return &Element{
		id:        uuid.NewString(),
		tag:       tag,
		attrs:     make(map[string]string),
		listeners: make(map[string][]*ListenerRegistration),
	}
}

// ID returns the element's unique identifier.
func (e *Element) ID() string {
	return e.id
}

// Tag returns the element's tag name.
func (e *Element) Tag() string {
	return e.tag
}

// Parent returns the parent element, or nil.
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns a copy of the element's children.
func (e *Element) Children() []*Element {
	result := make([]*Element, len(e.children))
	copy(result, e.children)
	return result
}

// SetAttribute sets an attribute value.
func (e *Element) SetAttribute(name, value string) *Element {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.attrs[name] = value
	return e
}

// Attribute returns an attribute value and whether it is set.
func (e *Element) Attribute(name string) (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v, ok := e.attrs[name]
	return v, ok
}

// SetText sets the element's text content.
func (e *Element) SetText(text string) *Element {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.text = text
	return e
}

// Text returns the element's text content.
func (e *Element) Text() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.text
}

// IsAttached reports whether the element is part of a document.
func (e *Element) IsAttached() bool {
	return e.attached
}

// Document returns the document the element is attached to, or nil.
func (e *Element) Document() *Document {
	if !e.attached {
		return nil
	}
	root := e
	for root.parent != nil {
		root = root.parent
	}
	return root.document
}

// AppendChild appends child to e, moving it from its previous parent.
// Attach listeners fire if e is attached.
func (e *Element) AppendChild(child *Element) error {
	if child == nil {
		return ErrNilElement
	}
	if child.document != nil {
		return ErrHierarchy
	}
	for p := e; p != nil; p = p.parent {
		if p == child {
			return ErrHierarchy
		}
	}

	if child.parent != nil {
		child.parent.RemoveChild(child)
	}

	child.parent = e
	e.children = append(e.children, child)

	if e.attached {
		child.setAttached(true)
	}
	return nil
}

// RemoveChild removes child from e. Detach listeners fire if e is attached.
// Returns false if child is not a child of e.
func (e *Element) RemoveChild(child *Element) bool {
	if child == nil || child.parent != e {
		return false
	}

	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			break
		}
	}
	child.parent = nil

	if child.attached {
		child.setAttached(false)
	}
	return true
}

// RemoveFromParent detaches the element from its parent, if any.
func (e *Element) RemoveFromParent() {
	if e.parent != nil {
		e.parent.RemoveChild(e)
	}
}

// setAttached updates the attach state of the subtree rooted at e.
// Parents are notified before children on attach, after them on detach.
func (e *Element) setAttached(attached bool) {
	if e.attached == attached {
		return
	}
	if attached {
		e.attached = true
		e.fireLifecycle(true)
		for _, c := range e.Children() {
			c.setAttached(true)
		}
		return
	}

	for _, c := range e.Children() {
		c.setAttached(false)
	}
	e.attached = false
	e.fireLifecycle(false)
}

func (e *Element) fireLifecycle(attach bool) {
	e.mu.RLock()
	listeners := make([]*lifecycleListener, 0, len(e.lifecycle))
	for _, l := range e.lifecycle {
		if l.attach == attach {
			listeners = append(listeners, l)
		}
	}
	e.mu.RUnlock()

	for _, l := range listeners {
		if !l.removed.Load() {
			l.fn(e)
		}
	}
}

// AddAttachListener adds a listener called each time the element is attached.
func (e *Element) AddAttachListener(fn LifecycleListener) Registration {
	return e.addLifecycleListener(true, fn)
}

// AddDetachListener adds a listener called each time the element is detached.
func (e *Element) AddDetachListener(fn LifecycleListener) Registration {
	return e.addLifecycleListener(false, fn)
}

func (e *Element) addLifecycleListener(attach bool, fn LifecycleListener) Registration {
	if fn == nil {
		return NewRegistration(nil)
	}
	l := &lifecycleListener{attach: attach, fn: fn}

	e.mu.Lock()
	e.lifecycle = append(e.lifecycle, l)
	e.mu.Unlock()

	return NewRegistration(func() {
		l.removed.Store(true)
		e.mu.Lock()
		defer e.mu.Unlock()
		for i, existing := range e.lifecycle {
			if existing == l {
				e.lifecycle = append(e.lifecycle[:i], e.lifecycle[i+1:]...)
				break
			}
		}
	})
}

// LifecycleListenerCount returns the number of attach and detach listeners.
func (e *Element) LifecycleListenerCount() (attach, detach int) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, l := range e.lifecycle {
		if l.attach {
			attach++
		} else {
			detach++
		}
	}
	return attach, detach
}

// AddEventListener registers a listener for a DOM event type.
// The returned registration can be primed with a filter and event data
// before the first event is dispatched.
func (e *Element) AddEventListener(eventType string, listener Listener) *ListenerRegistration {
	reg := &ListenerRegistration{
		id:        uuid.NewString(),
		element:   e,
		eventType: eventType,
		listener:  listener,
	}

	e.mu.Lock()
	e.listeners[eventType] = append(e.listeners[eventType], reg)
	e.mu.Unlock()

	return reg
}

// ListenerCount returns the number of active listeners for an event type.
func (e *Element) ListenerCount(eventType string) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.listeners[eventType])
}

// listenersFor returns a snapshot of the listeners for an event type.
func (e *Element) listenersFor(eventType string) []*ListenerRegistration {
	e.mu.RLock()
	defer e.mu.RUnlock()

	regs := e.listeners[eventType]
	if len(regs) == 0 {
		return nil
	}
	result := make([]*ListenerRegistration, len(regs))
	copy(result, regs)
	return result
}

func (e *Element) removeListener(reg *ListenerRegistration) {
	e.mu.Lock()
	defer e.mu.Unlock()

	regs := e.listeners[reg.eventType]
	for i, r := range regs {
		if r == reg {
			e.listeners[reg.eventType] = append(regs[:i], regs[i+1:]...)
			break
		}
	}
	if len(e.listeners[reg.eventType]) == 0 {
		delete(e.listeners, reg.eventType)
	}
}
