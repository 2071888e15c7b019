package domain

import "errors"

// Sentinel errors shared across layers. Wrap them with fmt.Errorf("...: %w", err)
// and test with errors.Is.
var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidRequest is returned when input fails validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnauthorized is returned when a caller has no valid identity.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when a caller may not act on a resource.
	ErrForbidden = errors.New("forbidden")
)
