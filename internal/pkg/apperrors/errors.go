package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrResourceNotFound is the root of the not-found family; the
	// specific members below wrap it.
	ErrResourceNotFound = errors.New("resource not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrTooManyIDs       = errors.New("too many ids")

	// Data store errors
	ErrQueryFailed      = errors.New("query failed")
	ErrStoreUnavailable = errors.New("data store unavailable")
)

// School errors
var (
	ErrSchoolNotFound = fmt.Errorf("school not found: %w", ErrResourceNotFound)
)

// Program errors
var (
	ErrProgramNotFound = fmt.Errorf("no program data found: %w", ErrResourceNotFound)
	ErrUnknownMajor    = errors.New("unknown major field")
)

// NewTooManyIDsError creates an id-list-over-limit error with a message
func NewTooManyIDsError(message string) error {
	return &CustomError{
		Err:     ErrTooManyIDs,
		Message: message,
	}
}

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewQueryError wraps a data-store failure. The original error is kept
// for server-side logging; clients only see a generic message.
func NewQueryError(err error) error {
	return &CustomError{
		Err:     ErrQueryFailed,
		Message: "query failed",
		Cause:   err,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Cause   error
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}
