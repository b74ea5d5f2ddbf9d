package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *NotFoundError
		expected string
	}{
		{
			name: "with resource",
			err: &NotFoundError{
				Resource: "Gate",
				ID:       "missing_id",
			},
			expected: "Gate 'missing_id' not found",
		},
		{
			name: "without resource",
			err: &NotFoundError{
				ID: "exp_123",
			},
			expected: "'exp_123' not found",
		},
		{
			name: "multi-word resource",
			err: &NotFoundError{
				Resource: "Dynamic config",
				ID:       "pricing_tiers",
			},
			expected: "Dynamic config 'pricing_tiers' not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("NotFoundError.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("Experiment", "checkout_test")

	if err.Resource != "Experiment" {
		t.Errorf("Resource = %q, want %q", err.Resource, "Experiment")
	}
	if err.ID != "checkout_test" {
		t.Errorf("ID = %q, want %q", err.ID, "checkout_test")
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ValidationError
		expected string
	}{
		{
			name:     "with field and value",
			err:      NewValidationError("gate_id", "x y", "must not contain spaces"),
			expected: `validation failed for gate_id="x y": must not contain spaces`,
		},
		{
			name:     "with field only",
			err:      NewValidationError("user_id", "", "is required"),
			expected: "validation failed for user_id: is required",
		},
		{
			name:     "message only",
			err:      &ValidationError{Message: "bad input"},
			expected: "validation failed: bad input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("ValidationError.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNotInitializedError_Error(t *testing.T) {
	err := NewNotInitializedError("console")
	if got := err.Error(); got != "console client not initialized" {
		t.Errorf("NotInitializedError.Error() = %q", got)
	}
}

func TestPredicates(t *testing.T) {
	notFound := NewNotFoundError("Gate", "g1")
	validation := NewValidationError("limit", "0", "must be positive")
	notInit := NewNotInitializedError("evaluation")
	plain := errors.New("plain")

	if !IsNotFound(notFound) || IsNotFound(validation) || IsNotFound(plain) {
		t.Error("IsNotFound misclassified an error")
	}
	if !IsValidation(validation) || IsValidation(notFound) || IsValidation(plain) {
		t.Error("IsValidation misclassified an error")
	}
	if !IsNotInitialized(notInit) || IsNotInitialized(notFound) {
		t.Error("IsNotInitialized misclassified an error")
	}
}

func TestErrorsAs(t *testing.T) {
	wrapped := fmt.Errorf("get_gate: %w", NewNotFoundError("Gate", "g1"))

	var notFound *NotFoundError
	if !errors.As(wrapped, &notFound) {
		t.Fatal("errors.As failed to unwrap NotFoundError")
	}
	if notFound.ID != "g1" {
		t.Errorf("ID = %q, want %q", notFound.ID, "g1")
	}
}
