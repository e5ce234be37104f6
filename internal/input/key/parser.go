package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptySpec        = errors.New("empty key specification")
	ErrInvalidSpec      = errors.New("invalid key specification")
	ErrUnmatchedBracket = errors.New("unmatched bracket in key specification")
)

// Parse parses a key specification string into keys.
// Modifiers come first in the result, followed by the non-modifier key.
//
// Supported formats:
//   - Single character: "a", "F", "1", "@"
//   - Named keys: "Enter", "Escape", "Tab", "Backspace", "Space", "F5"
//   - With modifiers: "Ctrl+S", "Alt+F4", "Ctrl+Shift+P", "Ctrl++"
//   - Vim-style: "<C-s>", "<A-f>", "<C-S-p>", "<CR>", "<Esc>"
//
// Single characters keep their case; a shortcut built from them lower-cases
// the key itself.
func Parse(spec string) ([]Key, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, ErrEmptySpec
	}

	// Check for Vim-style <...> notation
	if strings.HasPrefix(spec, "<") && len(spec) > 1 {
		if !strings.HasSuffix(spec, ">") {
			return nil, ErrUnmatchedBracket
		}
		return parseVimStyle(spec[1 : len(spec)-1])
	}

	// Check for modifier+key format (Ctrl+S, Alt+F4)
	if len(spec) > 1 && strings.Contains(spec, "+") {
		return parseModifierStyle(spec)
	}

	k, err := parseKey(spec)
	if err != nil {
		return nil, err
	}
	return []Key{k}, nil
}

// parseVimStyle parses Vim-style notation like "C-s", "A-F4", "CR", "Esc"
func parseVimStyle(inner string) ([]Key, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return nil, ErrInvalidSpec
	}

	parts := strings.Split(inner, "-")
	keyPart := parts[len(parts)-1]
	if keyPart == "" && len(parts) > 1 {
		// "<C-->" binds the minus key
		keyPart = "-"
		parts = parts[:len(parts)-1]
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		switch p {
		case "c", "a", "s", "m", "d":
			mods = mods.With(ModifierFromName(p))
		default:
			return nil, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
	}

	k, err := parseKey(keyPart)
	if err != nil {
		return nil, err
	}
	return append(mods.Keys(), k), nil
}

// parseModifierStyle parses "Ctrl+S" style notation
func parseModifierStyle(spec string) ([]Key, error) {
	// A trailing "++" means the plus key itself.
	keyPart := ""
	if strings.HasSuffix(spec, "++") {
		keyPart = "+"
		spec = strings.TrimSuffix(spec, "++")
	} else {
		i := strings.LastIndex(spec, "+")
		keyPart = strings.TrimSpace(spec[i+1:])
		spec = spec[:i]
	}
	if keyPart == "" {
		return nil, fmt.Errorf("%w: missing key in %q", ErrInvalidSpec, spec)
	}

	var mods Modifier
	for _, p := range strings.Split(spec, "+") {
		p = strings.TrimSpace(p)
		mod := ModifierFromName(strings.ToLower(p))
		if mod == ModNone {
			return nil, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	// "Ctrl+Shift" style specs name only modifiers; keep the last one as a key
	// so the caller sees the modifier-only combination and rejects it.
	if mod := ModifierFromName(strings.ToLower(keyPart)); mod != ModNone && utf8.RuneCountInString(keyPart) > 1 {
		return mods.With(mod).Keys(), nil
	}

	k, err := parseKey(keyPart)
	if err != nil {
		return nil, err
	}
	return append(mods.Keys(), k), nil
}

// keyNames maps lowercase key names and Vim aliases to predefined keys.
var keyNames = map[string]Key{
	"cr":         Enter,
	"return":     Enter,
	"enter":      Enter,
	"esc":        Escape,
	"escape":     Escape,
	"tab":        Tab,
	"bs":         Backspace,
	"backspace":  Backspace,
	"del":        Delete,
	"delete":     Delete,
	"ins":        Insert,
	"insert":     Insert,
	"space":      Space,
	"spacebar":   Space,
	"up":         ArrowUp,
	"arrowup":    ArrowUp,
	"down":       ArrowDown,
	"arrowdown":  ArrowDown,
	"left":       ArrowLeft,
	"arrowleft":  ArrowLeft,
	"right":      ArrowRight,
	"arrowright": ArrowRight,
	"home":       Home,
	"end":        End,
	"pageup":     PageUp,
	"pgup":       PageUp,
	"pagedown":   PageDown,
	"pgdn":       PageDown,
	"f1":         F1,
	"f2":         F2,
	"f3":         F3,
	"f4":         F4,
	"f5":         F5,
	"f6":         F6,
	"f7":         F7,
	"f8":         F8,
	"f9":         F9,
	"f10":        F10,
	"f11":        F11,
	"f12":        F12,
	"lt":         Of("<"),
	"gt":         Of(">"),
	"bar":        Of("|"),
	"bslash":     Of("\\"),
	"plus":       Of("+"),
	"minus":      Of("-"),
}

// KeyFromName returns the predefined key for a lowercase name.
func KeyFromName(name string) (Key, bool) {
	k, ok := keyNames[name]
	return k, ok
}

// parseKey parses a single key name or character.
func parseKey(part string) (Key, error) {
	if part == "" {
		return Key{}, ErrInvalidSpec
	}
	if part != " " {
		part = strings.TrimSpace(part)
	}

	if k, ok := keyNames[strings.ToLower(part)]; ok {
		return k, nil
	}
	if utf8.RuneCountInString(part) == 1 {
		return Of(part), nil
	}
	if mod := ModifierFromName(strings.ToLower(part)); mod != ModNone {
		return mod.Keys()[0], nil
	}

	return Key{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, part)
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) []Key {
	keys, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return keys
}

// FormatSpec formats keys as a "Ctrl+Shift+S" style specification.
// Modifiers are written in a fixed order, followed by other keys.
func FormatSpec(keys []Key) string {
	var mods Modifier
	var rest []string
	for _, k := range keys {
		if k.IsModifier() {
			mods = mods.With(k.Modifier())
			continue
		}
		name := k.String()
		if utf8.RuneCountInString(name) == 1 {
			name = strings.ToUpper(name)
		}
		rest = append(rest, name)
	}
	parts := make([]string, 0, len(rest)+1)
	if s := mods.String(); s != "" {
		parts = append(parts, s)
	}
	parts = append(parts, rest...)
	return strings.Join(parts, "+")
}
