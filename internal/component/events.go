package component

import (
	"github.com/dshills/keybridge/internal/dom"
	"github.com/dshills/keybridge/internal/input/key"
)

// Event is a component event.
type Event interface {
	// Source returns the component the event was fired on.
	Source() Component

	// IsFromClient reports whether the event originated in the browser.
	IsFromClient() bool
}

// DomEventType describes a component event backed by a DOM event.
type DomEventType[E Event] struct {
	// Name is the DOM event type, e.g. "keydown".
	Name string

	// Data lists the event data expressions the decoder reads.
	Data []string

	// Decode builds the typed event from a delivered DOM event.
	Decode func(source Component, e dom.Event) E
}

// modifierData reads the state of every modifier.
var modifierData = []string{
	"event.getModifierState('Shift')",
	"event.getModifierState('Control')",
	"event.getModifierState('Alt')",
	"event.getModifierState('Meta')",
	"event.getModifierState('AltGraph')",
}

func decodeModifiers(e dom.Event) key.Modifier {
	var mods key.Modifier
	for _, expr := range modifierData {
		if !e.Get(expr).Bool() {
			continue
		}
		// expr is event.getModifierState('<name>')
		name := expr[len("event.getModifierState('") : len(expr)-2]
		mods = mods.With(key.ModifierForState(name))
	}
	return mods
}

// KeyDown is the keydown component event type.
var KeyDown = DomEventType[*KeyDownEvent]{
	Name: dom.EventKeyDown,
	Data: append([]string{
		"event.key",
		"event.code",
		"event.repeat",
		"event.location",
	}, modifierData...),
	Decode: func(source Component, e dom.Event) *KeyDownEvent {
		return &KeyDownEvent{
			source:     source,
			fromClient: true,
			Key:        e.Get("event.key").String(),
			Code:       e.Get("event.code").String(),
			Repeat:     e.Get("event.repeat").Bool(),
			Location:   int(e.Get("event.location").Int()),
			Modifiers:  decodeModifiers(e),
		}
	},
}

// KeyDownEvent is fired when a key is pressed in a component.
type KeyDownEvent struct {
	source     Component
	fromClient bool

	// Key is the browser's key value, e.g. "f" or "Enter".
	Key string

	// Code is the physical key code.
	Code string

	// Modifiers are the modifiers held when the key was pressed.
	Modifiers key.Modifier

	// Repeat is set for auto-repeated presses.
	Repeat bool

	// Location is the key location on the keyboard.
	Location int
}

// Source returns the component the listener was registered on.
func (e *KeyDownEvent) Source() Component { return e.source }

// IsFromClient reports whether the event came from the browser.
func (e *KeyDownEvent) IsFromClient() bool { return e.fromClient }

// KeyValue returns the pressed key as a Key.
func (e *KeyDownEvent) KeyValue() key.Key {
	return key.Of(e.Key)
}

// Click is the click component event type.
var Click = DomEventType[*ClickEvent]{
	Name: dom.EventClick,
	Data: append([]string{"event.detail"}, modifierData...),
	Decode: func(source Component, e dom.Event) *ClickEvent {
		return &ClickEvent{
			source:     source,
			fromClient: true,
			ClickCount: int(e.Get("event.detail").Int()),
			Modifiers:  decodeModifiers(e),
		}
	},
}

// ClickEvent is fired when a component is clicked, or when a click is
// simulated on the server.
type ClickEvent struct {
	source     Component
	fromClient bool

	// ClickCount is the number of consecutive clicks.
	ClickCount int

	// Modifiers are the modifiers held during the click.
	Modifiers key.Modifier
}

// NewClickEvent creates a server-side click event for source.
func NewClickEvent(source Component) *ClickEvent {
	return &ClickEvent{source: source, ClickCount: 1}
}

// Source returns the clicked component.
func (e *ClickEvent) Source() Component { return e.source }

// IsFromClient reports whether the click came from the browser.
func (e *ClickEvent) IsFromClient() bool { return e.fromClient }
