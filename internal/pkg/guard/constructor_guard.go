// Package guard provides the ConstructorGuard pattern used by domain value
// objects and commands to enforce creation through their constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a zero-value guard
// is validated with a nil error, so validation always fails with a message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was created through its designated
// constructor or as a zero value. Embedding a guard in a domain object and
// calling Validate before use keeps invariants enforced: a zero-value object
// never passes validation.
//
// The guard holds a single flag that only the NewConstructorGuard factory sets,
// so any struct literal or zero value fails Validate.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its owner as properly constructed.
// Call it from the owning type's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the owner was created through its constructor.
// For a zero-value guard it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
