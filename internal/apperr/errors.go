// Package apperr defines the error kinds shared across services so that
// controllers can map them to HTTP statuses with errors.Is.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks a referenced entity that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrPermission marks a mutation attempted by someone who is not the
	// owner, or a read of a resource the requester may not see. At the
	// persistence boundary this usually surfaces as zero rows affected.
	ErrPermission = errors.New("permission denied")
	// ErrValidation marks rejected input (empty fields, no correct answer, ...).
	ErrValidation = errors.New("validation failed")
)

// NotFoundf wraps ErrNotFound with a formatted message.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrNotFound}, args...)...)
}

// Permissionf wraps ErrPermission with a formatted message.
func Permissionf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrPermission}, args...)...)
}

// Validationf wraps ErrValidation with a formatted message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}

// ForkFailedError wraps any failure inside the fork transaction. The
// transaction is always rolled back before this is returned, so a
// ForkFailedError guarantees no partial copy was committed.
type ForkFailedError struct {
	Err error
}

func (e *ForkFailedError) Error() string {
	return "fork failed: " + e.Err.Error()
}

func (e *ForkFailedError) Unwrap() error {
	return e.Err
}
