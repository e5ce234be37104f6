// Package playground is a terminal demo of keyboard shortcuts.
//
// It builds three nested containers, each holding an input and a label,
// and binds a keymap to them. Keys typed in the terminal are translated to
// browser keydown events and dispatched at the focused input, so the
// effect of preventDefault and stopPropagation on nested shortcuts can be
// seen directly: each container that handles the shortcut writes the key
// and modifiers into its label.
package playground
