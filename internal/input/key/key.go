package key

import "strings"

// aliasSep separates aliases inside Key.aliases.
const aliasSep = "\x1f"

// Key identifies a keyboard key or modifier by its aliases.
//
// Key is a comparable value: two Keys with the same aliases and modifier
// classification are equal and interchangeable.
type Key struct {
	aliases  string
	modifier bool
}

// known interns predefined keys by every alias they carry.
var known = make(map[string]Key)

func define(modifier bool, aliases ...string) Key {
	k := Key{
		aliases:  strings.Join(aliases, aliasSep),
		modifier: modifier,
	}
	for _, a := range aliases {
		known[a] = k
	}
	return k
}

// Modifier keys.
var (
	Shift    = define(true, "Shift")
	Control  = define(true, "Control")
	Alt      = define(true, "Alt")
	AltGraph = define(true, "AltGraph")
	Meta     = define(true, "Meta")
)

// Named keys, using the browser's KeyboardEvent.key values.
var (
	Enter      = define(false, "Enter")
	Escape     = define(false, "Escape", "Esc")
	Tab        = define(false, "Tab")
	Backspace  = define(false, "Backspace")
	Delete     = define(false, "Delete", "Del")
	Insert     = define(false, "Insert")
	Home       = define(false, "Home")
	End        = define(false, "End")
	PageUp     = define(false, "PageUp")
	PageDown   = define(false, "PageDown")
	ArrowUp    = define(false, "ArrowUp", "Up")
	ArrowDown  = define(false, "ArrowDown", "Down")
	ArrowLeft  = define(false, "ArrowLeft", "Left")
	ArrowRight = define(false, "ArrowRight", "Right")
	Space      = define(false, " ", "Spacebar")

	F1  = define(false, "F1")
	F2  = define(false, "F2")
	F3  = define(false, "F3")
	F4  = define(false, "F4")
	F5  = define(false, "F5")
	F6  = define(false, "F6")
	F7  = define(false, "F7")
	F8  = define(false, "F8")
	F9  = define(false, "F9")
	F10 = define(false, "F10")
	F11 = define(false, "F11")
	F12 = define(false, "F12")
)

// Of returns the Key for the given aliases.
//
// If alias names a predefined key, that key is returned and additional
// aliases are ignored. Otherwise a new non-modifier key is created from
// alias followed by additional. An empty alias yields the zero Key.
func Of(alias string, additional ...string) Key {
	if alias == "" {
		return Key{}
	}
	if k, ok := known[alias]; ok {
		return k
	}
	aliases := make([]string, 0, 1+len(additional))
	aliases = append(aliases, alias)
	for _, a := range additional {
		if a != "" {
			aliases = append(aliases, a)
		}
	}
	return Key{aliases: strings.Join(aliases, aliasSep)}
}

// IsModifier reports whether k is a modifier key.
func IsModifier(k Key) bool {
	return k.modifier
}

// IsModifier reports whether the key is a modifier key.
func (k Key) IsModifier() bool {
	return k.modifier
}

// IsZero reports whether the key carries no alias.
func (k Key) IsZero() bool {
	return k.aliases == ""
}

// Aliases returns a copy of the key's aliases, primary alias first.
func (k Key) Aliases() []string {
	if k.aliases == "" {
		return nil
	}
	return strings.Split(k.aliases, aliasSep)
}

// Primary returns the primary alias.
func (k Key) Primary() string {
	if i := strings.Index(k.aliases, aliasSep); i >= 0 {
		return k.aliases[:i]
	}
	return k.aliases
}

// Modifier returns the modifier bit for a modifier key, or ModNone.
func (k Key) Modifier() Modifier {
	if !k.modifier {
		return ModNone
	}
	return ModifierForState(k.Primary())
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case Key{}:
		return "None"
	case Space:
		return "Space"
	case Control:
		return "Ctrl"
	}
	return k.Primary()
}
