package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound           = errors.New("resource not found")
	ErrSubmissionNotFound = fmt.Errorf("%w: submission", ErrNotFound)
	ErrDiagnosisNotFound  = fmt.Errorf("%w: diagnosis", ErrNotFound)
	ErrPatternNotFound    = fmt.Errorf("%w: pattern", ErrNotFound)

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
)

// Error constructors with context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

func NewInvalidInputError(field string, reason string) error {
	return fmt.Errorf("%w: field %s: %s", ErrInvalidInput, field, reason)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInvalidInputError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
