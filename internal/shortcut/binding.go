package shortcut

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/dshills/keybridge/internal/component"
	"github.com/dshills/keybridge/internal/dom"
	"github.com/dshills/keybridge/internal/logging"
)

// Binding registers one shortcut on several source components at once.
//
// Every AddListener call registers the shortcut on each source and returns a
// single handle for all of them. Cleanup on detach is opt-in:
// RemoveOnDetach releases a source's registrations when that source is
// detached, RemoveOnComponentDetach releases everything the binding created
// when a designated component is detached. Both may be active together.
type Binding struct {
	shortcut Shortcut
	sources  []component.Component
	logger   zerolog.Logger

	mu             sync.Mutex
	all            []*registration
	perSource      map[component.Component][]*registration
	removeOnDetach bool
	hooks          []component.Registration
}

// NewBinding creates a binding of s over sources. When no sources are given,
// s.Sources() is used. A component listed more than once is bound once. It fails with ErrInvalidShortcut if s is invalid or
// there are no sources, and with ErrNilArgument if a source is nil.
func NewBinding(s Shortcut, sources ...component.Component) (*Binding, error) {
	if len(sources) == 0 {
		sources = s.Sources()
	}
	if len(sources) == 0 {
		return nil, errNoSources
	}
	for i, src := range sources {
		if component.IsNil(src) {
			return nil, fmt.Errorf("source %d: %w", i, nilArgument("source"))
		}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &Binding{
		shortcut:  s,
		sources:   uniqueSources(sources),
		logger:    logging.For("shortcut"),
		perSource: make(map[component.Component][]*registration),
	}, nil
}

// Shortcut returns the bound shortcut.
func (b *Binding) Shortcut() Shortcut {
	return b.shortcut
}

// Sources returns a copy of the binding's sources.
func (b *Binding) Sources() []component.Component {
	result := make([]component.Component, len(b.sources))
	copy(result, b.sources)
	return result
}

// AddListener registers listener on every source. The returned handle
// removes exactly the registrations made by this call. If any source fails,
// the registrations already made by this call are removed.
func (b *Binding) AddListener(listener Listener) (Registration, error) {
	if listener == nil {
		return nil, nilArgument("listener")
	}

	regs := make([]*registration, 0, len(b.sources))
	for i, src := range b.sources {
		r, err := AddShortcut(src, b.shortcut, listener)
		if err != nil {
			for _, done := range regs {
				done.Remove()
			}
			return nil, fmt.Errorf("source %d: %w", i, err)
		}
		regs = append(regs, r.(*registration))
	}

	b.mu.Lock()
	b.pruneLocked()
	b.all = append(b.all, regs...)
	if b.removeOnDetach {
		for i, src := range b.sources {
			b.perSource[src] = append(b.perSource[src], regs[i])
		}
	}
	b.mu.Unlock()

	inner := make([]dom.Registration, len(regs))
	for i, r := range regs {
		inner[i] = r
	}
	return newRegistration(dom.Combine(inner...), b.logger), nil
}

// AddCallback registers fn on every source.
func (b *Binding) AddCallback(fn func()) (Registration, error) {
	if fn == nil {
		return nil, nilArgument("callback")
	}
	return b.AddListener(func(Event) { fn() })
}

// RemoveOnDetach makes the binding release a source's registrations when
// that source is detached. Only registrations created after this call are
// covered. Calling it again has no effect.
func (b *Binding) RemoveOnDetach() *Binding {
	b.mu.Lock()
	if b.removeOnDetach {
		b.mu.Unlock()
		return b
	}
	b.removeOnDetach = true
	b.mu.Unlock()

	for _, src := range b.sources {
		src := src
		hook, err := component.AddDetachListener(src, func(*component.DetachEvent) {
			b.releaseSource(src)
		})
		if err != nil {
			// Sources were checked in NewBinding.
			continue
		}
		b.addHook(hook)
	}
	return b
}

// RemoveOnComponentDetach makes the binding release every registration it
// has created, across all sources, whenever c is detached.
func (b *Binding) RemoveOnComponentDetach(c component.Component) error {
	if component.IsNil(c) {
		return nilArgument("component")
	}
	hook, err := component.AddDetachListener(c, func(*component.DetachEvent) {
		b.releaseAll()
	})
	if err != nil {
		return err
	}
	b.addHook(hook)
	return nil
}

// Close removes the detach hooks installed by the binding. Registrations
// stay active.
func (b *Binding) Close() {
	b.mu.Lock()
	hooks := b.hooks
	b.hooks = nil
	b.mu.Unlock()

	for _, h := range hooks {
		h.Remove()
	}
}

// ActiveCount returns the number of registrations that are still active.
func (b *Binding) ActiveCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pruneLocked()
	return len(b.all)
}

func (b *Binding) addHook(hook component.Registration) {
	b.mu.Lock()
	b.hooks = append(b.hooks, hook)
	b.mu.Unlock()
}

func (b *Binding) releaseSource(src component.Component) {
	b.mu.Lock()
	regs := b.perSource[src]
	delete(b.perSource, src)
	b.mu.Unlock()

	for _, r := range regs {
		r.Remove()
	}
	if len(regs) > 0 {
		b.logger.Debug().
			Str("shortcut", b.shortcut.String()).
			Int("released", len(regs)).
			Msg("source detached")
	}
}

func (b *Binding) releaseAll() {
	b.mu.Lock()
	regs := b.all
	b.all = nil
	b.perSource = make(map[component.Component][]*registration)
	b.mu.Unlock()

	for _, r := range regs {
		r.Remove()
	}
	if len(regs) > 0 {
		b.logger.Debug().
			Str("shortcut", b.shortcut.String()).
			Int("released", len(regs)).
			Msg("trigger component detached")
	}
}

// pruneLocked drops released registrations from tracking. Caller holds mu.
func (b *Binding) pruneLocked() {
	b.all = pruneRemoved(b.all)
	for src, regs := range b.perSource {
		if regs = pruneRemoved(regs); len(regs) == 0 {
			delete(b.perSource, src)
		} else {
			b.perSource[src] = regs
		}
	}
}

func pruneRemoved(regs []*registration) []*registration {
	kept := regs[:0]
	for _, r := range regs {
		if !r.isRemoved() {
			kept = append(kept, r)
		}
	}
	return kept
}
