package keymap

import "slices"

// Keymap is a named collection of shortcut definitions.
type Keymap struct {
	// Name is the keymap identifier.
	Name string `toml:"name,omitempty" yaml:"name,omitempty"`

	// Source indicates where this keymap was defined.
	// Examples: "default", "user", or a file path.
	Source string `toml:"source,omitempty" yaml:"source,omitempty"`

	// Shortcuts are the definitions, in file order.
	Shortcuts []Definition `toml:"shortcuts" yaml:"shortcuts"`
}

// NewKeymap creates a new keymap with the given name.
func NewKeymap(name string) *Keymap {
	return &Keymap{
		Name:      name,
		Shortcuts: make([]Definition, 0),
	}
}

// WithSource sets the source for this keymap.
func (k *Keymap) WithSource(source string) *Keymap {
	k.Source = source
	return k
}

// Add adds a definition of keys on target running action.
func (k *Keymap) Add(keys, target, action string) *Keymap {
	return k.AddDefinition(NewDefinition(keys, target, action))
}

// AddDefinition adds a fully configured definition.
func (k *Keymap) AddDefinition(d Definition) *Keymap {
	k.Shortcuts = append(k.Shortcuts, d)
	return k
}

// Validate checks every definition and reports duplicates.
func (k *Keymap) Validate() error {
	return NewRegistry().AddKeymap(k)
}

// Clone creates a deep copy of the keymap.
func (k *Keymap) Clone() *Keymap {
	clone := &Keymap{
		Name:      k.Name,
		Source:    k.Source,
		Shortcuts: make([]Definition, len(k.Shortcuts)),
	}
	for i, d := range k.Shortcuts {
		d.Sources = slices.Clone(d.Sources)
		clone.Shortcuts[i] = d
	}
	return clone
}
