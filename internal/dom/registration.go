package dom

import "sync"

// Registration is a handle for removing a listener.
// Remove is idempotent and safe to call concurrently.
type Registration interface {
	Remove()
}

// registrationFunc runs its remove function at most once.
type registrationFunc struct {
	once sync.Once
	fn   func()
}

// NewRegistration returns a Registration that calls fn on the first Remove.
// A nil fn yields a Registration whose Remove does nothing.
func NewRegistration(fn func()) Registration {
	return &registrationFunc{fn: fn}
}

func (r *registrationFunc) Remove() {
	r.once.Do(func() {
		if r.fn != nil {
			r.fn()
		}
	})
}

// Combine returns a Registration that removes every non-nil registration,
// in order, the first time it is removed.
func Combine(regs ...Registration) Registration {
	list := make([]Registration, 0, len(regs))
	for _, r := range regs {
		if r != nil {
			list = append(list, r)
		}
	}
	return NewRegistration(func() {
		for _, r := range list {
			r.Remove()
		}
	})
}
