package console

import (
	"regexp"

	apierrors "github.com/statsig-community/statsig-mcp-server/internal/errors"
)

// MaxIDLength bounds resource identifiers to keep URLs sane.
const MaxIDLength = 200

// MaxListLimit is the largest page size the Console API accepts.
const MaxListLimit = 1000

var idRegex = regexp.MustCompile(`^[^\s/]+$`)

// ValidateID validates a resource identifier used in a URL path.
func ValidateID(field, id string) error {
	if id == "" {
		return apierrors.NewValidationError(field, "", "is required")
	}
	if len(id) > MaxIDLength {
		return apierrors.NewValidationError(field, "", "exceeds maximum length")
	}
	if !idRegex.MatchString(id) {
		return apierrors.NewValidationError(field, id, "must not contain whitespace or slashes")
	}
	return nil
}

// ValidateName validates a resource name for create operations.
func ValidateName(field, name string) error {
	if name == "" {
		return apierrors.NewValidationError(field, "", "is required")
	}
	if len(name) > MaxIDLength {
		return apierrors.NewValidationError(field, "", "exceeds maximum length")
	}
	return nil
}

// ValidateLimit validates an optional list page size. Zero means unset.
func ValidateLimit(limit int) error {
	if limit < 0 {
		return apierrors.NewValidationError("limit", "", "must not be negative")
	}
	if limit > MaxListLimit {
		return apierrors.NewValidationError("limit", "", "exceeds maximum of 1000")
	}
	return nil
}

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateEmail validates a team-member email address.
func ValidateEmail(email string) error {
	if email == "" {
		return apierrors.NewValidationError("email", "", "is required")
	}
	if !emailRegex.MatchString(email) {
		return apierrors.NewValidationError("email", email, "must be a valid email address")
	}
	return nil
}

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateDate validates an optional YYYY-MM-DD date filter.
func ValidateDate(field, date string) error {
	if date == "" {
		return nil
	}
	if !dateRegex.MatchString(date) {
		return apierrors.NewValidationError(field, date, "must be formatted as YYYY-MM-DD")
	}
	return nil
}

// ValidateExportFormat validates a pulse export format. Empty means json.
func ValidateExportFormat(format string) error {
	switch format {
	case "", "json", "csv":
		return nil
	default:
		return apierrors.NewValidationError("format", format, "must be 'json' or 'csv'")
	}
}
