// Package guard provides a defensive programming primitive that ensures value
// objects, commands, and queries are only created through their designated
// constructor functions. Embedding a ConstructorGuard in a struct makes a
// zero-value instance distinguishable from a properly constructed one.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// The zero value fails Validate, so structs embedding the guard cannot be
// used after direct literal initialization.
//
// Example:
//
//	type TransferStatusCommand struct {
//	    waybillID kernel.UUID
//	    guard     guard.ConstructorGuard
//	}
//
//	func NewTransferStatusCommand(id kernel.UUID) (TransferStatusCommand, error) {
//	    return TransferStatusCommand{
//	        waybillID: id,
//	        guard:     guard.NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (c TransferStatusCommand) Validate() error {
//	    return c.guard.Validate(ErrTransferStatusCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly constructed.
// Call it inside the object's constructor and store the result in the guard field.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the guarded object was created through its constructor.
// Returns nil for constructed objects. For zero-value objects it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
