package keymap

import (
	"sort"
	"strconv"
	"sync"
)

// Entry is a registered definition with its normalized key identifier.
type Entry struct {
	Definition Definition
	// ID is the shortcut's key identifier; equal for key specs that differ
	// only in order or case.
	ID string
}

// scopeKey identifies a shortcut on one target.
type scopeKey struct {
	target string
	id     string
}

// Registry stores definitions and rejects duplicates per target.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
	index   map[scopeKey]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[scopeKey]int),
	}
}

// Add validates d and registers it. It fails with ErrDuplicateShortcut if
// any of d's targets already has a definition with equivalent keys.
func (r *Registry) Add(d Definition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.addLocked(d)
}

func (r *Registry) addLocked(d Definition) error {
	if err := d.Validate(); err != nil {
		return err
	}
	s, _ := d.Shortcut()
	id := s.Configuration().ID()

	scope := d.Scope()
	for _, target := range scope {
		if i, ok := r.index[scopeKey{target, id}]; ok {
			return &DuplicateError{
				Target:   target,
				ID:       id,
				Existing: displayName(r.entries[i].Definition, i),
				Name:     displayName(d, len(r.entries)),
			}
		}
	}

	idx := len(r.entries)
	r.entries = append(r.entries, Entry{Definition: d, ID: id})
	for _, target := range scope {
		r.index[scopeKey{target, id}] = idx
	}
	return nil
}

// AddKeymap registers every definition in km. Nothing is registered if
// any definition fails.
func (r *Registry) AddKeymap(km *Keymap) error {
	if km == nil {
		return ErrNilKeymap
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.entries)
	for i, d := range km.Shortcuts {
		if err := r.addLocked(d); err != nil {
			r.truncateLocked(n)
			return &DefinitionError{Index: i, Name: d.Name, Err: err}
		}
	}
	return nil
}

// truncateLocked drops entries from n on. Caller holds mu.
func (r *Registry) truncateLocked(n int) {
	for _, e := range r.entries[n:] {
		for _, target := range e.Definition.Scope() {
			delete(r.index, scopeKey{target, e.ID})
		}
	}
	r.entries = r.entries[:n]
}

// Lookup returns the definition registered on target with keys
// equivalent to id.
func (r *Registry) Lookup(target, id string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[scopeKey{target, id}]
	if !ok {
		return Definition{}, false
	}
	return r.entries[i].Definition, true
}

// Entries returns all entries in registration order.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Entry, len(r.entries))
	copy(result, r.entries)
	return result
}

// Definitions returns all definitions in registration order.
func (r *Registry) Definitions() []Definition {
	entries := r.Entries()
	result := make([]Definition, len(entries))
	for i, e := range entries {
		result[i] = e.Definition
	}
	return result
}

// Targets returns the sorted distinct target names in use.
func (r *Registry) Targets() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	for k := range r.index {
		seen[k.target] = true
	}
	result := make([]string, 0, len(seen))
	for t := range seen {
		result = append(result, t)
	}
	sort.Strings(result)
	return result
}

// Len returns the number of definitions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Clear removes every definition.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
	r.index = make(map[scopeKey]int)
}

func displayName(d Definition, i int) string {
	if d.Name != "" {
		return d.Name
	}
	return "shortcut " + strconv.Itoa(i)
}
