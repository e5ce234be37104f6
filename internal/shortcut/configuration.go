package shortcut

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/dshills/keybridge/internal/input/key"
)

// Configuration is the identifying part of a shortcut: its keys and
// modifiers. Keys and modifiers are kept sorted and free of duplicates, so
// configurations built in different orders are identical.
type Configuration struct {
	keys      []key.Key
	modifiers []key.Key
	id        string
}

func newConfiguration(all []key.Key) Configuration {
	var c Configuration
	seen := make(map[key.Key]bool, len(all))
	for _, k := range all {
		if k.IsZero() || seen[k] {
			continue
		}
		seen[k] = true
		if key.IsModifier(k) {
			c.modifiers = append(c.modifiers, k)
		} else {
			c.keys = append(c.keys, k)
		}
	}
	sortKeys(c.keys)
	sortKeys(c.modifiers)
	c.id = keyIdentifier(c.keys, c.modifiers)
	return c
}

func fold(s string) string {
	// A Caser holds state; one per call keeps Configuration goroutine-safe.
	return cases.Fold().String(s)
}

func sortKeys(keys []key.Key) {
	sort.SliceStable(keys, func(i, j int) bool {
		a, b := fold(keys[i].Primary()), fold(keys[j].Primary())
		if a != b {
			return a < b
		}
		return strings.Join(keys[i].Aliases(), " ") < strings.Join(keys[j].Aliases(), " ")
	})
}

// keyIdentifier joins the case-folded aliases of every key and modifier in
// sorted order.
func keyIdentifier(keys, modifiers []key.Key) string {
	var aliases []string
	for _, group := range [][]key.Key{keys, modifiers} {
		for _, k := range group {
			for _, a := range k.Aliases() {
				aliases = append(aliases, fold(a))
			}
		}
	}
	sort.Strings(aliases)
	return strings.Join(aliases, "+")
}

// Keys returns the non-modifier keys.
func (c Configuration) Keys() []key.Key {
	result := make([]key.Key, len(c.keys))
	copy(result, c.keys)
	return result
}

// Modifiers returns the modifier keys.
func (c Configuration) Modifiers() []key.Key {
	result := make([]key.Key, len(c.modifiers))
	copy(result, c.modifiers)
	return result
}

// ModifierMask returns the modifiers as a bitmask.
func (c Configuration) ModifierMask() key.Modifier {
	var mods key.Modifier
	for _, m := range c.modifiers {
		mods = mods.With(m.Modifier())
	}
	return mods
}

// ID returns the canonical identifier of the key combination. Two
// configurations with the same keys and modifiers have the same ID
// regardless of construction order or alias case.
func (c Configuration) ID() string {
	return c.id
}

// Equal reports whether both configurations describe the same combination.
func (c Configuration) Equal(other Configuration) bool {
	return c.id == other.id
}

// Validate reports whether the configuration has exactly one non-modifier key.
func (c Configuration) Validate() error {
	switch len(c.keys) {
	case 0:
		return errNoKey
	case 1:
		return nil
	default:
		return errMultipleKeys
	}
}

// String returns the combination in "Ctrl+Shift+S" form.
func (c Configuration) String() string {
	all := make([]key.Key, 0, len(c.keys)+len(c.modifiers))
	all = append(all, c.modifiers...)
	all = append(all, c.keys...)
	return key.FormatSpec(all)
}
