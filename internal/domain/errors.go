package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when request parameters fail validation.
	// This is usually wrapped in a ValidationError naming the field.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidResult is returned when a generated result is structurally unusable,
	// e.g. a question whose correct answer matches none of its options.
	ErrInvalidResult = errors.New("invalid generated result")
)

// ValidationError describes which field failed and why.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError wrapping err.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s", e.Field, e.Message)
	}
	return fmt.Sprintf("%v: %s %s", e.Err, e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalidParam(field, message string) error {
	return NewValidationError(field, message, ErrValidation)
}

func invalidResult(field, message string) error {
	return NewValidationError(field, message, ErrInvalidResult)
}
