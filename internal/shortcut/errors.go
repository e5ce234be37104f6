package shortcut

import (
	"errors"
	"fmt"
)

// Sentinel errors for shortcut registration.
var (
	// ErrNilArgument is returned when a required argument is nil.
	ErrNilArgument = errors.New("argument cannot be nil")

	// ErrInvalidShortcut is returned when a shortcut cannot be matched or
	// registered as configured.
	ErrInvalidShortcut = errors.New("invalid shortcut")

	// ErrUnsupportedSource is returned when a registration target is neither a
	// component nor an element.
	ErrUnsupportedSource = errors.New("unsupported shortcut source")
)

var (
	errNoKey        = fmt.Errorf("%w: at least one non-modifier key required", ErrInvalidShortcut)
	errMultipleKeys = fmt.Errorf("%w: multiple non-modifier keys are not supported", ErrInvalidShortcut)
	errNoSources    = fmt.Errorf("%w: at least one source component required", ErrInvalidShortcut)
)

// ArgumentError reports a nil required argument.
type ArgumentError struct {
	// Name is the parameter name, e.g. "listener".
	Name string
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return e.Name + " cannot be nil"
}

// Is allows errors.Is to match ArgumentError with ErrNilArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrNilArgument
}

func nilArgument(name string) error {
	return &ArgumentError{Name: name}
}

// SourceError reports a registration target of an unsupported type.
type SourceError struct {
	// Type is the dynamic type of the rejected target.
	Type string
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	return "unsupported shortcut source of type " + e.Type
}

// Is allows errors.Is to match SourceError with ErrUnsupportedSource.
func (e *SourceError) Is(target error) bool {
	return target == ErrUnsupportedSource
}
