package dom

import (
	"github.com/rs/zerolog"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keybridge/internal/input/key"
	"github.com/dshills/keybridge/internal/logging"
)

// DOM event types understood by the document.
const (
	EventKeyDown = "keydown"
	EventKeyUp   = "keyup"
	EventClick   = "click"
)

// BrowserEvent is an event as produced by the user agent.
type BrowserEvent struct {
	// Type is the DOM event type, e.g. "keydown".
	Type string

	// Key is the KeyboardEvent.key value, e.g. "f" or "Enter".
	Key string

	// Code is the physical key code, e.g. "KeyF".
	Code string

	// Modifiers are the modifier keys held during the event.
	Modifiers key.Modifier

	// Repeat is set for auto-repeated key events.
	Repeat bool

	// Location is the KeyboardEvent.location value.
	Location int

	// Detail is the click count for mouse events.
	Detail int
}

// KeyDown returns a keydown event for a key value and modifier state.
func KeyDown(keyValue string, mods key.Modifier) BrowserEvent {
	return BrowserEvent{Type: EventKeyDown, Key: keyValue, Modifiers: mods}
}

// KeyUp returns a keyup event for a key value and modifier state.
func KeyUp(keyValue string, mods key.Modifier) BrowserEvent {
	return BrowserEvent{Type: EventKeyUp, Key: keyValue, Modifiers: mods}
}

// Click returns a single click event.
func Click() BrowserEvent {
	return BrowserEvent{Type: EventClick, Detail: 1}
}

// DispatchResult describes what happened to a dispatched event.
type DispatchResult struct {
	// Delivered is the number of listeners the event was delivered to.
	Delivered int

	// DefaultPrevented is set if a listener's event data called preventDefault.
	DefaultPrevented bool

	// PropagationStopped is set if a listener's event data called stopPropagation.
	PropagationStopped bool
}

// Document owns a body element and the remote context used to evaluate
// listener expressions.
type Document struct {
	body   *Element
	script *scriptContext
	logger zerolog.Logger
}

// NewDocument creates a document with an attached, empty body.
func NewDocument() *Document {
	d := &Document{
		script: newScriptContext(),
		logger: logging.For("dom"),
	}
	body := NewElement("body")
	body.document = d
	body.attached = true
	d.body = body
	return d
}

// Body returns the document's root element.
func (d *Document) Body() *Element {
	return d.body
}

// Close releases the remote context. Dispatch after Close delivers nothing.
func (d *Document) Close() {
	d.script.close()
}

// Dispatch delivers a browser event to target and its ancestors.
//
// For each listener the filter is evaluated first; the listener only runs if
// it evaluated to exactly true. Event data is then evaluated into the
// payload. A target that is not attached to this document receives nothing.
func (d *Document) Dispatch(target *Element, event BrowserEvent) DispatchResult {
	var result DispatchResult
	if target == nil || target.Document() != d {
		return result
	}

	state := &dispatchState{event: event}

	d.script.mu.Lock()
	if d.script.closed {
		d.script.mu.Unlock()
		return result
	}
	tbl := d.script.eventTable(state)
	d.script.mu.Unlock()

	for el := target; el != nil; el = el.parent {
		for _, reg := range el.listenersFor(event.Type) {
			if reg.IsRemoved() {
				continue
			}

			payload, ok := d.evaluateListener(reg, tbl)
			if !ok {
				continue
			}

			result.Delivered++
			if reg.listener != nil {
				reg.listener(Event{
					Type:    event.Type,
					Element: el,
					Target:  target,
					Payload: payload,
				})
			}
		}
		if state.propagationStopped {
			break
		}
	}

	result.DefaultPrevented = state.defaultPrevented
	result.PropagationStopped = state.propagationStopped
	return result
}

// evaluateListener runs a registration's filter and event data.
// It returns the payload and whether the event should be delivered.
func (d *Document) evaluateListener(reg *ListenerRegistration, tbl *lua.LTable) (string, bool) {
	filter := reg.Filter()
	data := reg.EventData()

	d.script.mu.Lock()
	defer d.script.mu.Unlock()

	if filter != "" {
		value, err := d.script.evaluate(filter, tbl)
		if err != nil {
			d.logger.Warn().Err(err).
				Str("registration", reg.id).
				Str("filter", filter).
				Msg("filter evaluation failed")
			return "", false
		}
		if value != lua.LTrue {
			return "", false
		}
	}

	payload := "{}"
	for _, expression := range data {
		value, err := d.script.evaluate(expression, tbl)
		if err != nil {
			d.logger.Warn().Err(err).
				Str("registration", reg.id).
				Str("expression", expression).
				Msg("event data evaluation failed")
			continue
		}
		updated, err := setPayload(payload, expression, toGo(value))
		if err != nil {
			d.logger.Warn().Err(err).
				Str("expression", expression).
				Msg("encoding event data")
			continue
		}
		payload = updated
	}

	return payload, true
}
