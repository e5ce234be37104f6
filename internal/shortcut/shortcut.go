package shortcut

import (
	"unicode"

	"github.com/dshills/keybridge/internal/component"
	"github.com/dshills/keybridge/internal/input/key"
)

// Shortcut describes a key combination, how the matching browser event is
// treated, and optionally which components may originate it.
//
// Shortcut is an immutable value: every With method returns a new Shortcut
// and leaves the receiver unchanged. The zero Shortcut has no keys, prevents
// the default action and stops propagation.
type Shortcut struct {
	config           Configuration
	allowDefault     bool
	allowPropagation bool
	sources          []component.Component
}

// Of creates a shortcut from keys. Modifier keys are separated from the
// others automatically; zero keys and duplicates are ignored.
func Of(keys ...key.Key) Shortcut {
	return Shortcut{config: newConfiguration(keys)}
}

// OfChar creates a shortcut for a character key held with modifiers.
// The character is lower-cased. A zero or unprintable rune adds no key.
func OfChar(r rune, modifiers ...key.Key) Shortcut {
	keys := make([]key.Key, 0, len(modifiers)+1)
	keys = append(keys, modifiers...)
	if k, ok := charKey(r); ok {
		keys = append(keys, k)
	}
	return Of(keys...)
}

// Parse creates a shortcut from a specification such as "Ctrl+S" or "<M-f>".
// The result is validated.
func Parse(spec string) (Shortcut, error) {
	keys, err := key.Parse(spec)
	if err != nil {
		return Shortcut{}, err
	}
	s := Of(keys...)
	if err := s.Validate(); err != nil {
		return Shortcut{}, err
	}
	return s, nil
}

func charKey(r rune) (key.Key, bool) {
	if r == 0 || !unicode.IsPrint(r) {
		return key.Key{}, false
	}
	return key.Of(string(unicode.ToLower(r))), true
}

// WithKey returns a copy with k added.
func (s Shortcut) WithKey(k key.Key) Shortcut {
	keys := append(s.config.Keys(), s.config.Modifiers()...)
	s.config = newConfiguration(append(keys, k))
	return s
}

// WithChar returns a copy with a character key added.
func (s Shortcut) WithChar(r rune) Shortcut {
	k, ok := charKey(r)
	if !ok {
		return s
	}
	return s.WithKey(k)
}

// WithAllowDefault returns a copy that lets the browser perform the event's
// default action.
func (s Shortcut) WithAllowDefault() Shortcut {
	s.allowDefault = true
	return s
}

// WithAllowPropagation returns a copy that lets the event propagate to
// ancestors after the shortcut handled it.
func (s Shortcut) WithAllowPropagation() Shortcut {
	s.allowPropagation = true
	return s
}

// WithAllowBubbling is an alias for WithAllowPropagation.
func (s Shortcut) WithAllowBubbling() Shortcut {
	return s.WithAllowPropagation()
}

// WithSources returns a copy whose sources are exactly components.
// It replaces any previously set sources. Repeated components are kept once.
func (s Shortcut) WithSources(components ...component.Component) Shortcut {
	s.sources = uniqueSources(components)
	return s
}

// uniqueSources copies components, dropping repeats and keeping first-seen
// order.
func uniqueSources(components []component.Component) []component.Component {
	seen := make(map[component.Component]struct{}, len(components))
	result := make([]component.Component, 0, len(components))
	for _, c := range components {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		result = append(result, c)
	}
	return result
}

// Sources returns a copy of the source components.
func (s Shortcut) Sources() []component.Component {
	result := make([]component.Component, len(s.sources))
	copy(result, s.sources)
	return result
}

// PreventDefault reports whether the browser's default action is prevented.
func (s Shortcut) PreventDefault() bool {
	return !s.allowDefault
}

// StopPropagation reports whether the event stops propagating once handled.
func (s Shortcut) StopPropagation() bool {
	return !s.allowPropagation
}

// Configuration returns the key combination identifying the shortcut.
func (s Shortcut) Configuration() Configuration {
	return s.config
}

// Validate reports whether the shortcut has exactly one non-modifier key.
func (s Shortcut) Validate() error {
	return s.config.Validate()
}

// String returns the key combination in "Ctrl+Shift+S" form.
func (s Shortcut) String() string {
	return s.config.String()
}
