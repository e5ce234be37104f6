package keymap

import (
	"fmt"

	"github.com/dshills/keybridge/internal/shortcut"
)

// Definition is a single declarative shortcut.
type Definition struct {
	// Name identifies the definition in errors and logs.
	Name string `toml:"name,omitempty" yaml:"name,omitempty"`

	// Keys is the key spec, e.g. "Ctrl+S" or "<M-f>".
	Keys string `toml:"keys" yaml:"keys"`

	// Target names the component or element the shortcut is registered on.
	Target string `toml:"target,omitempty" yaml:"target,omitempty"`

	// Sources names several components sharing the shortcut. Mutually
	// exclusive with Target.
	Sources []string `toml:"sources,omitempty" yaml:"sources,omitempty"`

	// Action is the handler to run.
	Action string `toml:"action" yaml:"action"`

	// AllowDefault lets the browser perform its default action.
	AllowDefault bool `toml:"allow_default,omitempty" yaml:"allow_default,omitempty"`

	// AllowPropagation lets the keydown reach ancestor listeners.
	AllowPropagation bool `toml:"allow_propagation,omitempty" yaml:"allow_propagation,omitempty"`

	// RemoveOnDetach releases a source's registration when it is detached.
	RemoveOnDetach bool `toml:"remove_on_detach,omitempty" yaml:"remove_on_detach,omitempty"`

	// Description is shown in help listings.
	Description string `toml:"description,omitempty" yaml:"description,omitempty"`
}

// NewDefinition creates a definition of keys on target running action.
func NewDefinition(keys, target, action string) Definition {
	return Definition{
		Keys:   keys,
		Target: target,
		Action: action,
	}
}

// WithName sets the definition name.
func (d Definition) WithName(name string) Definition {
	d.Name = name
	return d
}

// WithDescription sets the description.
func (d Definition) WithDescription(desc string) Definition {
	d.Description = desc
	return d
}

// WithAllowPropagation lets the keydown bubble past the target.
func (d Definition) WithAllowPropagation() Definition {
	d.AllowPropagation = true
	return d
}

// WithAllowDefault lets the browser default action run.
func (d Definition) WithAllowDefault() Definition {
	d.AllowDefault = true
	return d
}

// Shortcut parses Keys and applies the definition's flags. Sources are
// resolved later by the Binder.
func (d Definition) Shortcut() (shortcut.Shortcut, error) {
	s, err := shortcut.Parse(d.Keys)
	if err != nil {
		return shortcut.Shortcut{}, fmt.Errorf("keys %q: %w", d.Keys, err)
	}
	if d.AllowDefault {
		s = s.WithAllowDefault()
	}
	if d.AllowPropagation {
		s = s.WithAllowPropagation()
	}
	return s, nil
}

// Scope returns the names the definition is registered on.
func (d Definition) Scope() []string {
	if len(d.Sources) > 0 {
		return d.Sources
	}
	if d.Target == "" {
		return nil
	}
	return []string{d.Target}
}

// UsesBinding reports whether the definition is registered through a
// multi-source binding rather than a single registration.
func (d Definition) UsesBinding() bool {
	return len(d.Sources) > 0 || d.RemoveOnDetach
}

// Validate checks the definition without resolving names.
func (d Definition) Validate() error {
	if d.Keys == "" {
		return fmt.Errorf("%w: empty keys", ErrInvalidDefinition)
	}
	if d.Action == "" {
		return fmt.Errorf("%w: empty action", ErrInvalidDefinition)
	}
	switch {
	case d.Target == "" && len(d.Sources) == 0:
		return fmt.Errorf("%w: target or sources required", ErrInvalidDefinition)
	case d.Target != "" && len(d.Sources) > 0:
		return fmt.Errorf("%w: target and sources are mutually exclusive", ErrInvalidDefinition)
	}
	for i, name := range d.Sources {
		if name == "" {
			return fmt.Errorf("%w: source %d is empty", ErrInvalidDefinition, i)
		}
	}
	if _, err := d.Shortcut(); err != nil {
		return err
	}
	return nil
}
