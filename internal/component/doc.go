// Package component provides the component layer on top of the dom element
// tree: the Component capability, a typed component event bus, attach and
// detach notifications, and a small set of concrete components.
//
// A type becomes a Component by embedding *Base:
//
//	type Toolbar struct {
//		*component.Base
//	}
//
//	func NewToolbar() *Toolbar {
//		return &Toolbar{Base: component.NewBase("nav")}
//	}
//
// Typed listeners are registered with AddListener, which registers the
// underlying DOM listener, adds the event type's data expressions and lets the
// caller prime the registration (filter, extra event data) before the first
// event is delivered:
//
//	reg, err := component.AddListener(input, component.KeyDown,
//		func(e *component.KeyDownEvent) { ... },
//		func(r *dom.ListenerRegistration) { r.SetFilter("event.key == 'Enter'") })
//
// There is no ambient current UI. Callers hold a *UI and pass it, or the
// components attached to it, explicitly.
package component
