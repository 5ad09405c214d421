package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
)

// ValidationError carries every field-level problem found in a request.
type ValidationError struct {
	Details []string
}

// NewValidationError creates a new validation error
func NewValidationError(details ...string) *ValidationError {
	return &ValidationError{Details: details}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Details, "; "))
}

// HTTPStatus returns the HTTP status for this error
func (e *ValidationError) HTTPStatus() int {
	return http.StatusBadRequest
}

// MalformedInputError represents a request body that could not be decoded.
// The cause is kept for server-side logging and never sent to clients.
type MalformedInputError struct {
	Err error
}

// NewMalformedInputError creates a new malformed input error
func NewMalformedInputError(err error) *MalformedInputError {
	return &MalformedInputError{Err: err}
}

// Error implements the error interface
func (e *MalformedInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed input: %v", e.Err)
	}
	return "malformed input"
}

// Unwrap returns the wrapped error
func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the HTTP status for this error
func (e *MalformedInputError) HTTPStatus() int {
	return http.StatusBadRequest
}

// InternalError represents an internal server error with context
type InternalError struct {
	Message string
	Err     error
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *InternalError {
	return &InternalError{
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface
func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *InternalError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the HTTP status for this error
func (e *InternalError) HTTPStatus() int {
	return http.StatusInternalServerError
}

// HTTPStatuser is implemented by errors that map to an HTTP status code.
type HTTPStatuser interface {
	HTTPStatus() int
}

// StatusOf returns the HTTP status carried by err, or 500 when err has none.
func StatusOf(err error) int {
	var s HTTPStatuser
	if As(err, &s) {
		return s.HTTPStatus()
	}
	return http.StatusInternalServerError
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}
