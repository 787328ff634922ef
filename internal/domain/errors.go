// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when user input fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidModelTier is returned when a requested model identifier
	// is not on the allow-list. It wraps ErrValidation so API error
	// mapping treats it as client input failure.
	ErrInvalidModelTier = fmt.Errorf("%w: invalid model version", ErrValidation)
)

// ValidationError carries the field that failed validation alongside a
// human-readable message. It wraps an underlying sentinel error so callers
// can match with errors.Is while still surfacing a field-level message.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for the given field.
// If wrapped is nil, ErrValidation is used as the underlying error.
func NewValidationError(field, message string, wrapped error) *ValidationError {
	if wrapped == nil {
		wrapped = ErrValidation
	}
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     wrapped,
	}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the underlying sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
