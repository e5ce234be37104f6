// Package keymap provides declarative shortcut definitions for keybridge.
//
// A keymap file lists shortcuts by key spec, the component they belong to
// and the action they run. Files are TOML or YAML:
//
//	name = "editor"
//
//	[[shortcuts]]
//	name = "search"
//	keys = "Meta+F"
//	target = "search-form"
//	action = "search.focus"
//
//	[[shortcuts]]
//	name = "save"
//	keys = "Ctrl+S"
//	sources = ["title", "body"]
//	action = "document.save"
//	remove_on_detach = true
//
// # Key Concepts
//
// Definition: One shortcut. Keys accepts the same formats as key.Parse
// ("Ctrl+S", "<C-s>", "C-s"). A definition names either a single Target or
// a list of Sources.
//
// Registry: Holds definitions and rejects duplicates. Two definitions on
// the same target whose keys are equal after normalization collide, so
// "Shift+Ctrl+S" and "ctrl+shift+s" cannot both be registered on one
// component.
//
// Binder: Resolves targets and actions and registers the shortcuts. Bind
// is all-or-nothing and replaces whatever was bound before.
//
// Watcher: Reloads a keymap file when it changes and rebinds it. A file
// that fails to load or bind leaves the previous bindings in place.
//
// # Usage
//
//	binder := keymap.NewBinder(keymap.Targets{"search-form": form}, keymap.Actions{
//	    "search.focus": func(shortcut.Event) { input.Focus() },
//	})
//	km, err := keymap.NewLoader().LoadFile("keymap.toml")
//	if err != nil {
//	    return err
//	}
//	if err := binder.Bind(km); err != nil {
//	    return err
//	}
//	defer binder.Unbind()
package keymap
