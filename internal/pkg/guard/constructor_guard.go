// Package guard provides the constructor guard pattern used by commands and
// entities to prevent usage of zero-value instances that bypassed validation.
package guard

import "errors"

// ErrObjectIsNotConstructed is the default error returned when validating a
// zero-value guard and no specific error was supplied.
var ErrObjectIsNotConstructed = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as having been created through its constructor.
// The zero value is invalid, so any instance obtained by direct struct literal
// fails validation. Embed it as an unexported field and set it with
// NewConstructorGuard inside the constructor.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil for a properly constructed guard.
// For a zero-value guard it returns notConstructedErr, or
// ErrObjectIsNotConstructed when notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.constructed {
		return nil
	}

	if notConstructedErr == nil {
		return ErrObjectIsNotConstructed
	}

	return notConstructedErr
}
