package shortcut

import (
	"github.com/dshills/keybridge/internal/component"
	"github.com/dshills/keybridge/internal/input/key"
)

// Event is delivered to a Listener each time a shortcut fires.
type Event struct {
	shortcut       Shortcut
	source         component.Component
	componentEvent *component.KeyDownEvent
}

// Listener handles shortcut events.
type Listener func(Event)

// Shortcut returns the shortcut that fired.
func (e Event) Shortcut() Shortcut {
	return e.shortcut
}

// Configuration returns the key combination that fired.
func (e Event) Configuration() Configuration {
	return e.shortcut.Configuration()
}

// Key returns the shortcut's non-modifier key.
func (e Event) Key() key.Key {
	keys := e.shortcut.config.keys
	if len(keys) == 0 {
		return key.Key{}
	}
	return keys[0]
}

// Modifiers returns the shortcut's modifier keys.
func (e Event) Modifiers() []key.Key {
	return e.shortcut.config.Modifiers()
}

// ComponentEvent returns the keydown event that triggered the shortcut, or
// nil when the shortcut was registered directly on an element.
func (e Event) ComponentEvent() *component.KeyDownEvent {
	return e.componentEvent
}

// Source returns the component the shortcut was registered on, or nil when
// it was registered directly on an element.
func (e Event) Source() component.Component {
	return e.source
}

// BrowserKey returns the key value reported by the browser, or "" when no
// component event is available.
func (e Event) BrowserKey() string {
	if e.componentEvent == nil {
		return ""
	}
	return e.componentEvent.Key
}

// BrowserModifiers returns the modifiers reported by the browser, falling
// back to the shortcut's modifiers when no component event is available.
func (e Event) BrowserModifiers() key.Modifier {
	if e.componentEvent == nil {
		return e.shortcut.config.ModifierMask()
	}
	return e.componentEvent.Modifiers
}
