package component

import (
	"errors"
	"reflect"

	"github.com/dshills/keybridge/internal/dom"
)

// Errors returned by component operations.
var (
	// ErrNilComponent is returned when a nil component is passed.
	ErrNilComponent = errors.New("component cannot be nil")

	// ErrNilHandler is returned when a nil handler is passed.
	ErrNilHandler = errors.New("handler cannot be nil")
)

// Registration is a handle for removing a listener.
type Registration = dom.Registration

// Component is anything backed by an element that can carry component
// listeners. Implementations embed *Base.
type Component interface {
	// Element returns the component's root element.
	Element() *dom.Element

	bus() *eventBus
}

// Base is the embeddable implementation of Component.
type Base struct {
	el     *dom.Element
	events *eventBus
}

// NewBase creates a Base with a new element of the given tag.
func NewBase(tag string) *Base {
	return newBaseFor(dom.NewElement(tag))
}

func newBaseFor(el *dom.Element) *Base {
	return &Base{el: el, events: newEventBus()}
}

// Element returns the component's root element.
func (b *Base) Element() *dom.Element {
	if b == nil {
		return nil
	}
	return b.el
}

// ID returns the id of the component's element.
func (b *Base) ID() string {
	return b.el.ID()
}

// SetID sets the "id" attribute used to look the component up by name.
func (b *Base) SetID(id string) {
	b.el.SetAttribute("id", id)
}

// Name returns the "id" attribute, or "" if none was set.
func (b *Base) Name() string {
	name, _ := b.el.Attribute("id")
	return name
}

// IsAttached reports whether the component is attached to a UI.
func (b *Base) IsAttached() bool {
	return b.el.IsAttached()
}

func (b *Base) bus() *eventBus {
	if b == nil {
		return nil
	}
	return b.events
}

// IsNil reports whether c is nil, a typed nil, or has no Base.
func IsNil(c Component) bool {
	if c == nil {
		return true
	}
	if v := reflect.ValueOf(c); v.Kind() == reflect.Pointer && v.IsNil() {
		return true
	}
	return c.Element() == nil || c.bus() == nil
}

// AttachEvent is fired when a component is attached to a UI.
type AttachEvent struct {
	source Component
}

// Source returns the attached component.
func (e *AttachEvent) Source() Component { return e.source }

// IsFromClient is always false.
func (e *AttachEvent) IsFromClient() bool { return false }

// DetachEvent is fired when a component is detached from a UI.
type DetachEvent struct {
	source Component
}

// Source returns the detached component.
func (e *DetachEvent) Source() Component { return e.source }

// IsFromClient is always false.
func (e *DetachEvent) IsFromClient() bool { return false }

// AddAttachListener calls fn each time c is attached.
func AddAttachListener(c Component, fn func(*AttachEvent)) (Registration, error) {
	if IsNil(c) {
		return nil, ErrNilComponent
	}
	if fn == nil {
		return nil, ErrNilHandler
	}
	return c.Element().AddAttachListener(func(*dom.Element) {
		fn(&AttachEvent{source: c})
	}), nil
}

// AddDetachListener calls fn each time c is detached, including when an
// ancestor is removed.
func AddDetachListener(c Component, fn func(*DetachEvent)) (Registration, error) {
	if IsNil(c) {
		return nil, ErrNilComponent
	}
	if fn == nil {
		return nil, ErrNilHandler
	}
	return c.Element().AddDetachListener(func(*dom.Element) {
		fn(&DetachEvent{source: c})
	}), nil
}
