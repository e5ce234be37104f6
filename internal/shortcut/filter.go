package shortcut

import (
	"strings"

	"github.com/dshills/keybridge/internal/input/key"
)

// Filter is the predicate deciding whether a keyboard event triggers a
// shortcut. Expression is evaluated in the browser; Matches is its
// in-process equivalent.
type Filter struct {
	key        string
	modifiers  []key.Key
	expression string
}

// Filter generates the filter for the configuration. It fails with
// ErrInvalidShortcut unless there is exactly one non-modifier key.
//
// The expression compares the lower-cased event key and requires every
// modifier to be held, in the configuration's sorted modifier order:
//
//	event.key.toLowerCase() == 'f' && event.getModifierState('Meta')
//
// With no modifiers the modifier clause is "true".
func (c Configuration) Filter() (Filter, error) {
	if err := c.Validate(); err != nil {
		return Filter{}, err
	}

	f := Filter{
		key:       strings.ToLower(c.keys[0].Primary()),
		modifiers: c.Modifiers(),
	}

	var b strings.Builder
	b.WriteString("event.key.toLowerCase() == ")
	b.WriteString(quote(f.key))
	b.WriteString(" && ")
	if len(f.modifiers) == 0 {
		b.WriteString("true")
	}
	for i, m := range f.modifiers {
		if i > 0 {
			b.WriteString(" && ")
		}
		b.WriteString("event.getModifierState(")
		b.WriteString(quote(m.Primary()))
		b.WriteString(")")
	}
	f.expression = b.String()
	return f, nil
}

// quote returns s as a single-quoted string literal.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}

// Key returns the lower-cased key value the filter compares against.
func (f Filter) Key() string {
	return f.key
}

// Modifiers returns the getModifierState names the filter requires.
func (f Filter) Modifiers() []string {
	names := make([]string, len(f.modifiers))
	for i, m := range f.modifiers {
		names[i] = m.Primary()
	}
	return names
}

// Expression returns the filter as a browser-side expression.
func (f Filter) Expression() string {
	return f.expression
}

// Matches reports whether a key value pressed with mods satisfies the
// filter. Modifiers held beyond the required ones do not prevent a match.
func (f Filter) Matches(keyValue string, mods key.Modifier) bool {
	if f.expression == "" || strings.ToLower(keyValue) != f.key {
		return false
	}
	for _, m := range f.modifiers {
		if !mods.Has(m.Modifier()) {
			return false
		}
	}
	return true
}
