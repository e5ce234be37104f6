package shortcut

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dshills/keybridge/internal/component"
	"github.com/dshills/keybridge/internal/dom"
	"github.com/dshills/keybridge/internal/logging"
)

// Event data expressions added to primed registrations.
const (
	preventDefaultData  = "event.preventDefault()"
	stopPropagationData = "event.stopPropagation()"
)

// AddShortcut registers listener to run when s is pressed inside c.
//
// The keydown event may originate from c or any of its descendants. All
// arguments are checked before anything is registered.
func AddShortcut(c component.Component, s Shortcut, listener Listener) (Registration, error) {
	if component.IsNil(c) {
		return nil, nilArgument("component")
	}
	if listener == nil {
		return nil, nilArgument("listener")
	}
	filter, err := s.Configuration().Filter()
	if err != nil {
		return nil, err
	}

	logger := logging.For("shortcut")
	inner, err := component.AddListener(c, component.KeyDown,
		func(e *component.KeyDownEvent) {
			// Server-fired keydowns never went through the browser filter.
			if !e.IsFromClient() && !filter.Matches(e.Key, e.Modifiers) {
				return
			}
			listener(Event{shortcut: s, source: c, componentEvent: e})
		},
		func(r *dom.ListenerRegistration) {
			prime(r, s, filter)
		})
	if err != nil {
		return nil, fmt.Errorf("registering shortcut %s: %w", s, err)
	}

	reg := newRegistration(inner, logger)
	logRegistered(logger, reg, s, filter, "component")
	return reg, nil
}

// AddShortcutFunc registers fn to run when s is pressed inside c.
func AddShortcutFunc(c component.Component, s Shortcut, fn func()) (Registration, error) {
	if fn == nil {
		if component.IsNil(c) {
			return nil, nilArgument("component")
		}
		return nil, nilArgument("callback")
	}
	return AddShortcut(c, s, func(Event) { fn() })
}

// AddElementShortcut registers listener directly on an element, bypassing
// the component event bus. Events delivered this way carry no component
// event.
func AddElementShortcut(el *dom.Element, s Shortcut, listener Listener) (Registration, error) {
	if el == nil {
		return nil, nilArgument("element")
	}
	if listener == nil {
		return nil, nilArgument("listener")
	}
	filter, err := s.Configuration().Filter()
	if err != nil {
		return nil, err
	}

	logger := logging.For("shortcut")
	domReg := el.AddEventListener(dom.EventKeyDown, func(dom.Event) {
		listener(Event{shortcut: s})
	})
	prime(domReg, s, filter)

	reg := newRegistration(domReg, logger)
	logRegistered(logger, reg, s, filter, "element")
	return reg, nil
}

// Register registers listener on target, which must be a component or an
// element. Other targets fail with ErrUnsupportedSource.
func Register(target any, s Shortcut, listener Listener) (Registration, error) {
	switch t := target.(type) {
	case nil:
		return nil, nilArgument("target")
	case component.Component:
		return AddShortcut(t, s, listener)
	case *dom.Element:
		return AddElementShortcut(t, s, listener)
	default:
		return nil, &SourceError{Type: fmt.Sprintf("%T", target)}
	}
}

// prime configures a DOM registration with the shortcut's filter and flags.
func prime(r *dom.ListenerRegistration, s Shortcut, filter Filter) {
	r.SetFilter(filter.Expression())
	if s.PreventDefault() {
		r.AddEventData(preventDefaultData)
	}
	if s.StopPropagation() {
		r.AddEventData(stopPropagationData)
	}
}

func logRegistered(logger zerolog.Logger, reg *registration, s Shortcut, filter Filter, path string) {
	logger.Debug().
		Str("registration", reg.id).
		Str("shortcut", s.String()).
		Str("filter", filter.Expression()).
		Str("path", path).
		Bool("preventDefault", s.PreventDefault()).
		Bool("stopPropagation", s.StopPropagation()).
		Msg("shortcut registered")
}
