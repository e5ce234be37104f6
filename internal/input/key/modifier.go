package key

import "strings"

// Modifier represents the modifier keys held during a keyboard event.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModMeta indicates the Meta key (Cmd on macOS, Win on Windows).
	ModMeta

	// ModAltGraph indicates the AltGr key found on international layouts.
	ModAltGraph
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// HasShift returns true if Shift is pressed.
func (m Modifier) HasShift() bool {
	return m.Has(ModShift)
}

// HasCtrl returns true if Control is pressed.
func (m Modifier) HasCtrl() bool {
	return m.Has(ModCtrl)
}

// HasAlt returns true if Alt is pressed.
func (m Modifier) HasAlt() bool {
	return m.Has(ModAlt)
}

// HasMeta returns true if Meta is pressed.
func (m Modifier) HasMeta() bool {
	return m.Has(ModMeta)
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// Keys returns the modifier keys contained in m.
func (m Modifier) Keys() []Key {
	var keys []Key
	if m.HasCtrl() {
		keys = append(keys, Control)
	}
	if m.HasAlt() {
		keys = append(keys, Alt)
	}
	if m.HasShift() {
		keys = append(keys, Shift)
	}
	if m.HasMeta() {
		keys = append(keys, Meta)
	}
	if m.Has(ModAltGraph) {
		keys = append(keys, AltGraph)
	}
	return keys
}

// String returns a human-readable representation like "Ctrl+Alt".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.HasCtrl() {
		parts = append(parts, "Ctrl")
	}
	if m.HasAlt() {
		parts = append(parts, "Alt")
	}
	if m.HasShift() {
		parts = append(parts, "Shift")
	}
	if m.HasMeta() {
		parts = append(parts, "Meta")
	}
	if m.Has(ModAltGraph) {
		parts = append(parts, "AltGraph")
	}
	return strings.Join(parts, "+")
}

// stateNames maps KeyboardEvent.getModifierState arguments to Modifier values.
// Browsers match these names case-sensitively.
var stateNames = map[string]Modifier{
	"Shift":    ModShift,
	"Control":  ModCtrl,
	"Alt":      ModAlt,
	"Meta":     ModMeta,
	"AltGraph": ModAltGraph,
}

// ModifierForState returns the Modifier for a getModifierState name.
// Returns ModNone if the name is not recognized.
func ModifierForState(name string) Modifier {
	return stateNames[name]
}

// modifierNameMap maps modifier names (lowercase) to Modifier values.
var modifierNameMap = map[string]Modifier{
	"ctrl":     ModCtrl,
	"control":  ModCtrl,
	"c":        ModCtrl,
	"alt":      ModAlt,
	"a":        ModAlt,
	"option":   ModAlt,
	"opt":      ModAlt,
	"shift":    ModShift,
	"s":        ModShift,
	"meta":     ModMeta,
	"m":        ModMeta,
	"cmd":      ModMeta,
	"command":  ModMeta,
	"win":      ModMeta,
	"super":    ModMeta,
	"d":        ModMeta, // Vim uses D for command/meta
	"altgraph": ModAltGraph,
	"altgr":    ModAltGraph,
}

// ModifierFromName returns the Modifier for a given lowercase name.
// Returns ModNone if the name is not recognized.
func ModifierFromName(name string) Modifier {
	if m, ok := modifierNameMap[name]; ok {
		return m
	}
	return ModNone
}
