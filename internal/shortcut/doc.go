// Package shortcut binds keyboard shortcuts to components and elements.
//
// A Shortcut is an immutable description of a key combination plus how the
// matching keydown is treated in the browser:
//
//	save := shortcut.OfChar('s', key.Control)
//	find := shortcut.OfChar('f', key.Meta).WithAllowDefault()
//
// Registering a shortcut adds a keydown listener whose filter expression
// is generated from the key combination and evaluated where the event
// happens, so only matching events reach the server:
//
//	reg, err := shortcut.AddShortcut(form, save, func(e shortcut.Event) {
//		submit()
//	})
//	...
//	reg.Remove()
//
// A Binding registers the same shortcut on several source components and can
// release registrations automatically when sources or a designated
// component are detached.
//
// Shortcuts with zero or several non-modifier keys are rejected with
// ErrInvalidShortcut when a filter is generated or a registration is made.
package shortcut
