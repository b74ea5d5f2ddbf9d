package evaluate

import (
	"strings"

	apierrors "github.com/statsig-community/statsig-mcp-server/internal/errors"
)

// MaxNameLength bounds user IDs and resource names sent to the backend.
const MaxNameLength = 200

// ValidateUserID checks that a user identifier is present and within bounds.
func ValidateUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return apierrors.NewValidationError("user_id", userID, "user_id is required")
	}
	if len(userID) > MaxNameLength {
		return apierrors.NewValidationError("user_id", userID, "user_id exceeds maximum length")
	}
	return nil
}

// ValidateResourceName checks a gate, config, experiment, or layer name.
func ValidateResourceName(field, name string) error {
	if strings.TrimSpace(name) == "" {
		return apierrors.NewValidationError(field, name, field+" is required")
	}
	if len(name) > MaxNameLength {
		return apierrors.NewValidationError(field, name, field+" exceeds maximum length")
	}
	return nil
}
