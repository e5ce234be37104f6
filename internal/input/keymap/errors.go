package keymap

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrUnsupportedFormat is returned for keymap files that are neither
	// TOML nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported keymap format")

	// ErrInvalidDefinition is returned for malformed definitions.
	ErrInvalidDefinition = errors.New("invalid shortcut definition")

	// ErrDuplicateShortcut is returned when a target already has a
	// definition with equivalent keys.
	ErrDuplicateShortcut = errors.New("duplicate shortcut")

	// ErrUnknownTarget is returned when a target or source name does not
	// resolve.
	ErrUnknownTarget = errors.New("unknown target")

	// ErrUnknownAction is returned when an action name has no handler.
	ErrUnknownAction = errors.New("unknown action")

	// ErrNilKeymap is returned when a nil keymap is passed.
	ErrNilKeymap = errors.New("nil keymap")
)

// DefinitionError wraps an error with the definition it concerns.
type DefinitionError struct {
	Index int
	Name  string
	Err   error
}

func (e *DefinitionError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("shortcut %d (%s): %v", e.Index, e.Name, e.Err)
	}
	return fmt.Sprintf("shortcut %d: %v", e.Index, e.Err)
}

func (e *DefinitionError) Unwrap() error {
	return e.Err
}

// DuplicateError describes a collision in the Registry.
type DuplicateError struct {
	// Target is the target or source name both definitions use.
	Target string
	// ID is the normalized key identifier both definitions share.
	ID string
	// Existing is the name of the definition already registered.
	Existing string
	// Name is the name of the rejected definition.
	Name string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s on %q conflicts with %s (keys %s)", e.Name, e.Target, e.Existing, e.ID)
}

// Is reports whether target is ErrDuplicateShortcut.
func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicateShortcut
}
