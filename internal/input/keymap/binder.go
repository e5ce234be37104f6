package keymap

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/dshills/keybridge/internal/component"
	"github.com/dshills/keybridge/internal/logging"
	"github.com/dshills/keybridge/internal/shortcut"
)

// Resolver maps target names to components or elements.
type Resolver interface {
	Resolve(name string) (any, bool)
}

// Targets is a Resolver backed by a map.
type Targets map[string]any

// Resolve returns the target registered under name.
func (t Targets) Resolve(name string) (any, bool) {
	v, ok := t[name]
	return v, ok
}

// NamedTargets indexes components by their "id" attribute. Components
// without one are skipped.
func NamedTargets(components ...component.Component) Targets {
	t := make(Targets, len(components))
	for _, c := range components {
		if component.IsNil(c) {
			continue
		}
		if name, ok := c.Element().Attribute("id"); ok && name != "" {
			t[name] = c
		}
	}
	return t
}

// Actions maps action names to shortcut listeners.
type Actions map[string]shortcut.Listener

// bound is one definition's live registration.
type bound struct {
	def     Definition
	reg     shortcut.Registration
	binding *shortcut.Binding
}

func (b bound) release() {
	b.reg.Remove()
	if b.binding != nil {
		b.binding.Close()
	}
}

// Binder registers keymaps on components.
type Binder struct {
	resolver Resolver
	actions  Actions
	logger   zerolog.Logger

	mu       sync.Mutex
	bound    []bound
	registry *Registry
}

// NewBinder creates a binder resolving names through resolver and
// handlers through actions.
func NewBinder(resolver Resolver, actions Actions) *Binder {
	return &Binder{
		resolver: resolver,
		actions:  actions,
		logger:   logging.For("keymap"),
		registry: NewRegistry(),
	}
}

// Bind registers every definition in km, replacing the previous keymap.
// If any definition fails, nothing from km stays registered and the
// previous bindings are kept.
func (b *Binder) Bind(km *Keymap) error {
	if km == nil {
		return ErrNilKeymap
	}
	reg := NewRegistry()
	if err := reg.AddKeymap(km); err != nil {
		return err
	}

	fresh := make([]bound, 0, len(km.Shortcuts))
	for i, d := range km.Shortcuts {
		bd, err := b.bindOne(d)
		if err != nil {
			for _, done := range fresh {
				done.release()
			}
			return &DefinitionError{Index: i, Name: d.Name, Err: err}
		}
		fresh = append(fresh, bd)
	}

	b.mu.Lock()
	old := b.bound
	b.bound = fresh
	b.registry = reg
	b.mu.Unlock()

	for _, bd := range old {
		bd.release()
	}

	b.logger.Info().
		Str("keymap", km.Name).
		Str("source", km.Source).
		Int("shortcuts", len(fresh)).
		Int("replaced", len(old)).
		Msg("keymap bound")
	return nil
}

func (b *Binder) bindOne(d Definition) (bound, error) {
	s, err := d.Shortcut()
	if err != nil {
		return bound{}, err
	}
	listener, ok := b.actions[d.Action]
	if !ok || listener == nil {
		return bound{}, fmt.Errorf("%w: %q", ErrUnknownAction, d.Action)
	}

	if !d.UsesBinding() {
		target, err := b.resolve(d.Target)
		if err != nil {
			return bound{}, err
		}
		r, err := shortcut.Register(target, s, listener)
		if err != nil {
			return bound{}, err
		}
		return bound{def: d, reg: r}, nil
	}

	sources := make([]component.Component, 0, len(d.Scope()))
	for _, name := range d.Scope() {
		target, err := b.resolve(name)
		if err != nil {
			return bound{}, err
		}
		c, ok := target.(component.Component)
		if !ok {
			return bound{}, fmt.Errorf("%w: %q is a %T, sources must be components", shortcut.ErrUnsupportedSource, name, target)
		}
		sources = append(sources, c)
	}

	binding, err := shortcut.NewBinding(s, sources...)
	if err != nil {
		return bound{}, err
	}
	if d.RemoveOnDetach {
		binding.RemoveOnDetach()
	}
	r, err := binding.AddListener(listener)
	if err != nil {
		binding.Close()
		return bound{}, err
	}
	return bound{def: d, reg: r, binding: binding}, nil
}

func (b *Binder) resolve(name string) (any, error) {
	if b.resolver == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, name)
	}
	target, ok := b.resolver.Resolve(name)
	if !ok || target == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, name)
	}
	return target, nil
}

// Unbind releases every registration made by the last Bind.
func (b *Binder) Unbind() {
	b.mu.Lock()
	old := b.bound
	b.bound = nil
	b.registry = NewRegistry()
	b.mu.Unlock()

	for _, bd := range old {
		bd.release()
	}
	if len(old) > 0 {
		b.logger.Debug().Int("released", len(old)).Msg("keymap unbound")
	}
}

// Bound returns the definitions currently bound.
func (b *Binder) Bound() []Definition {
	b.mu.Lock()
	defer b.mu.Unlock()

	result := make([]Definition, len(b.bound))
	for i, bd := range b.bound {
		result[i] = bd.def
	}
	return result
}

// Registry returns the registry of the current keymap.
func (b *Binder) Registry() *Registry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.registry
}
