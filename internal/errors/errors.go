// Package errors provides shared error types for the Statsig backend clients.
package errors

import (
	"fmt"
)

// NotFoundError indicates a remote Statsig resource does not exist.
type NotFoundError struct {
	Resource string // "Gate", "Experiment", "Dynamic config", ...
	ID       string // resource identifier or lookup key
}

func (e *NotFoundError) Error() string {
	if e.Resource != "" {
		return fmt.Sprintf("%s '%s' not found", e.Resource, e.ID)
	}
	return fmt.Sprintf("'%s' not found", e.ID)
}

// NewNotFoundError creates a NotFoundError for a resource lookup.
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		ID:       id,
	}
}

// ValidationError indicates invalid input parameters. It is raised before any
// backend call is attempted.
type ValidationError struct {
	Field   string // argument name that failed validation
	Value   string // the invalid value (may be empty for sensitive data)
	Message string // human-readable error message
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("validation failed for %s=%q: %s", e.Field, e.Value, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// NotInitializedError indicates a client was used before Initialize or after
// Close. Tool dispatch converts it into an error result instead of panicking.
type NotInitializedError struct {
	Client string // "console" or "evaluation"
}

func (e *NotInitializedError) Error() string {
	return fmt.Sprintf("%s client not initialized", e.Client)
}

// NewNotInitializedError creates a NotInitializedError.
func NewNotInitializedError(client string) *NotInitializedError {
	return &NotInitializedError{Client: client}
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

// IsValidation returns true if the error is a ValidationError.
func IsValidation(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// IsNotInitialized returns true if the error is a NotInitializedError.
func IsNotInitialized(err error) bool {
	_, ok := err.(*NotInitializedError)
	return ok
}
