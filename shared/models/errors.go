package models

import (
	"errors"
	"fmt"
)

// Application-wide standard errors
var (
	// Common Resource Errors
	ErrNotFound        = errors.New("resource not found") // General not found
	ErrProductNotFound = fmt.Errorf("product %w", ErrNotFound)

	// Input Errors
	ErrValidation = errors.New("validation error")

	// Authentication Errors
	ErrUnauthorized = errors.New("unauthorized") // Authentication required or failed

	// Token Errors
	ErrTokenInvalid   = errors.New("token is invalid")
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenExpired   = errors.New("token has expired")
)

// ValidationError carries a human-readable message for a rejected input.
// errors.Is(err, ErrValidation) is true for every ValidationError.
type ValidationError struct {
	Message string
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NotFoundError carries a human-readable message for a missing resource.
// errors.Is(err, ErrNotFound) is true for every NotFoundError.
type NotFoundError struct {
	Message string
	Err     error // underlying cause, e.g. ErrProductNotFound
}

// NewNotFoundError creates a NotFoundError wrapping cause.
func NewNotFoundError(message string, cause error) *NotFoundError {
	return &NotFoundError{Message: message, Err: cause}
}

func (e *NotFoundError) Error() string { return e.Message }

func (e *NotFoundError) Unwrap() error {
	if e.Err == nil {
		return ErrNotFound
	}
	return e.Err
}
