package shortcut

import (
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dshills/keybridge/internal/dom"
)

// Registration is a handle for removing a shortcut.
// Remove is idempotent, safe to call concurrently and never panics.
type Registration interface {
	// ID returns the registration's unique identifier.
	ID() string

	// Remove unregisters the shortcut.
	Remove()
}

type registration struct {
	id      string
	inner   dom.Registration
	logger  zerolog.Logger
	removed atomic.Bool
}

func newRegistration(inner dom.Registration, logger zerolog.Logger) *registration {
	return &registration{
		id:     uuid.NewString(),
		inner:  inner,
		logger: logger,
	}
}

func (r *registration) ID() string {
	return r.id
}

func (r *registration) Remove() {
	if !r.removed.CompareAndSwap(false, true) {
		return
	}
	if r.inner != nil {
		r.inner.Remove()
	}
	r.logger.Debug().Str("registration", r.id).Msg("shortcut removed")
}

func (r *registration) isRemoved() bool {
	return r.removed.Load()
}
