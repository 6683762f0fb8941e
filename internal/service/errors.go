package service

import (
	"errors"
	"fmt"
)

// ErrMissingDependency is returned by constructors given a nil dependency.
var ErrMissingDependency = errors.New("missing service dependency")

// GenerationError wraps a failure that happened while producing a result.
type GenerationError struct {
	// Thing names what was being generated (e.g. "MCQs", "curriculum")
	Thing string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for GenerationError.
func (e *GenerationError) Error() string {
	return fmt.Sprintf("failed to generate %s: %v", e.Thing, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *GenerationError) Unwrap() error {
	return e.Err
}

// NewGenerationError wraps err, returning nil when err is nil.
func NewGenerationError(thing string, err error) error {
	if err == nil {
		return nil
	}
	return &GenerationError{Thing: thing, Err: err}
}

func missing(name string) error {
	return fmt.Errorf("%w: %s cannot be nil", ErrMissingDependency, name)
}
