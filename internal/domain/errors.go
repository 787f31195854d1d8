package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrUnauthorized is returned when a request carries no valid identity.
	ErrUnauthorized = errors.New("unauthorized operation")

	// ErrForbidden is returned when an authenticated user attempts an
	// operation they are not permitted to perform, such as deleting a
	// card owned by another user.
	ErrForbidden = errors.New("forbidden operation")
)

// ValidationError wraps a sentinel error with the field that failed and a
// complete human-readable message safe to show to clients. It supports
// errors.Is against the wrapped sentinel.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap returns the wrapped sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}
