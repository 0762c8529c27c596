package domain

import "errors"

// Sentinel errors returned by the domain and the layers around it.
// Callers match them with errors.Is.
var (
	// ErrValidation marks malformed input such as an empty title or a bad id.
	ErrValidation = errors.New("validation failed")
	// ErrConflict marks a write that collides with existing state.
	ErrConflict = errors.New("conflict")
	// ErrBusinessRule marks a command rejected by an aggregate rule.
	ErrBusinessRule = errors.New("business rule violated")
	// ErrNotFound marks a missing aggregate.
	ErrNotFound = errors.New("not found")
	// ErrInconsistentStream marks an event history that cannot be replayed.
	ErrInconsistentStream = errors.New("inconsistent event stream")
	// ErrInvalidPayload marks a stored or received event that cannot be decoded.
	ErrInvalidPayload = errors.New("invalid event payload")
)
