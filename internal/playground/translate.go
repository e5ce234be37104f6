package playground

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keybridge/internal/dom"
	"github.com/dshills/keybridge/internal/input/key"
)

// namedKeys maps tcell keys to browser KeyboardEvent.key values.
var namedKeys = map[tcell.Key]key.Key{
	tcell.KeyEnter:      key.Enter,
	tcell.KeyTab:        key.Tab,
	tcell.KeyBackspace:  key.Backspace,
	tcell.KeyBackspace2: key.Backspace,
	tcell.KeyEscape:     key.Escape,
	tcell.KeyDelete:     key.Delete,
	tcell.KeyInsert:     key.Insert,
	tcell.KeyHome:       key.Home,
	tcell.KeyEnd:        key.End,
	tcell.KeyPgUp:       key.PageUp,
	tcell.KeyPgDn:       key.PageDown,
	tcell.KeyUp:         key.ArrowUp,
	tcell.KeyDown:       key.ArrowDown,
	tcell.KeyLeft:       key.ArrowLeft,
	tcell.KeyRight:      key.ArrowRight,
	tcell.KeyF1:         key.F1,
	tcell.KeyF2:         key.F2,
	tcell.KeyF3:         key.F3,
	tcell.KeyF4:         key.F4,
	tcell.KeyF5:         key.F5,
	tcell.KeyF6:         key.F6,
	tcell.KeyF7:         key.F7,
	tcell.KeyF8:         key.F8,
	tcell.KeyF9:         key.F9,
	tcell.KeyF10:        key.F10,
	tcell.KeyF11:        key.F11,
	tcell.KeyF12:        key.F12,
}

// TranslateKey converts a terminal key event into a browser keydown.
// It returns false for keys with no browser equivalent.
//
// Control characters are reported by terminals without the letter, so
// Ctrl+F arrives as KeyCtrlF and becomes key "f" with the Control
// modifier. Tab, Enter, Backspace and Escape share codes with Ctrl+I,
// Ctrl+M, Ctrl+H and Ctrl+[ and are reported as the named keys.
func TranslateKey(ev *tcell.EventKey) (dom.BrowserEvent, bool) {
	if ev == nil {
		return dom.BrowserEvent{}, false
	}
	mods := translateModifiers(ev.Modifiers())

	switch k := ev.Key(); {
	case k == tcell.KeyRune:
		r := ev.Rune()
		if r == 0 || unicode.IsControl(r) {
			return dom.BrowserEvent{}, false
		}
		if unicode.IsUpper(r) {
			mods = mods.With(key.ModShift)
		}
		return dom.KeyDown(string(r), mods), true

	case !namedKeys[k].IsZero():
		return dom.KeyDown(namedKeys[k].Primary(), mods), true

	case k == tcell.KeyCtrlSpace:
		return dom.KeyDown(key.Space.Primary(), mods.With(key.ModCtrl)), true

	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		letter := rune('a' + (k - tcell.KeyCtrlA))
		return dom.KeyDown(string(letter), mods.With(key.ModCtrl)), true
	}
	return dom.BrowserEvent{}, false
}

func translateModifiers(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModMeta)
	}
	return mods
}
