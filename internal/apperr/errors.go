// Package apperr defines the error classes shared by every business
// package. Concrete errors wrap exactly one class, so transports can map
// them with errors.Is without knowing the concrete error.
package apperr

import "errors"

var (
	// ErrValidation is returned when input fails domain validation.
	ErrValidation = errors.New("validation failed")

	ErrNotFound = errors.New("not found")

	// ErrUnauthorized means the actor exists but may not perform the action
	// on this resource (wrong role, not verified, not the owner).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidState means the resource is not in a status that admits the
	// operation.
	ErrInvalidState = errors.New("invalid state")

	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrAlreadyTaken is returned to the losers of a concurrent claim.
	ErrAlreadyTaken = errors.New("already taken")

	ErrDuplicateApplication = errors.New("duplicate application")

	ErrExpired = errors.New("expired")

	ErrAlreadyDismissed = errors.New("already dismissed")
)

// IsBusiness reports whether err belongs to one of the classes above.
// Everything else is an infrastructure failure.
func IsBusiness(err error) bool {
	for _, class := range classes {
		if errors.Is(err, class) {
			return true
		}
	}
	return false
}

var classes = []error{
	ErrValidation,
	ErrNotFound,
	ErrUnauthorized,
	ErrInvalidState,
	ErrInvalidTransition,
	ErrAlreadyTaken,
	ErrDuplicateApplication,
	ErrExpired,
	ErrAlreadyDismissed,
}
