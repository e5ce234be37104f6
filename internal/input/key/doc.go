// Package key provides the key model used by the shortcut system.
//
// This package defines the fundamental types for describing keyboard input
// the way a browser reports it:
//
//   - Key: a physical key or modifier identified by one or more aliases
//     ("Escape", "Esc"). Keys are comparable values and can be map keys.
//   - Modifier: a bitmask of the modifiers held during a keyboard event
//     (Shift, Ctrl, Alt, Meta, AltGraph).
//
// # Aliases
//
// The first alias of a Key is its primary alias. It is the value a browser
// reports in KeyboardEvent.key (or, for modifiers, the name accepted by
// KeyboardEvent.getModifierState). Additional aliases cover legacy values
// such as "Esc" or "Spacebar".
//
// Of returns the predefined Key when the alias is known, so
//
//	key.Of("Control") == key.Control
//	key.Of("Esc") == key.Escape
//
// Case is preserved. Lower-casing for comparison against browser events is
// done when a filter expression is generated, not here.
//
// # Key Specifications
//
// Parse accepts human readable specifications:
//
//   - Simple keys: "a", "F", "Enter", "Escape"
//   - With modifiers: "Ctrl+S", "Meta+F", "Ctrl+Shift+P"
//   - Vim-style: "<C-s>", "<A-f>", "<C-S-p>", "<CR>", "<Esc>"
package key
