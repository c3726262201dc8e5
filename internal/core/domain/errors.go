package domain

import "errors"

// Validation and business errors. These are expected, caller-correctable,
// and surfaced verbatim as 4xx responses.
var (
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrPasswordTooShort   = errors.New("password must be at least 4 characters")
	ErrEmailExists        = errors.New("email already exists in the system")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAdminRequired      = errors.New("admin access required")
	ErrUnauthorized       = errors.New("authentication required")

	ErrAlreadyLiked     = errors.New("user has already liked this vacation")
	ErrNotLiked         = errors.New("user has not liked this vacation")
	ErrLikeDeleteFailed = errors.New("failed to unlike vacation")

	ErrVacationNotFound = errors.New("vacation does not exist")
	ErrCountryNotFound  = errors.New("country does not exist")
	ErrUserNotFound     = errors.New("user not found")
	ErrRoleNotFound     = errors.New("role not found")
	ErrPriceOutOfRange  = errors.New("price must be between 0 and 10,000")
	ErrEndBeforeStart   = errors.New("end date cannot be earlier than start date")
	ErrPastStartDate    = errors.New("past dates cannot be selected for vacation period")
	ErrEmptyDescription = errors.New("description cannot be empty")
	ErrUpdateFailed     = errors.New("failed to update vacation")
	ErrDeleteFailed     = errors.New("failed to delete vacation")
)

// ErrRoleNotConfigured signals that a well-known role row is missing from the
// store. This is a deployment fault, not user input: it maps to a 500, never
// to a validation response.
var ErrRoleNotConfigured = errors.New("required role is not configured in the database")

// MissingFieldError reports a blank mandatory field by name.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return e.Field + " is mandatory"
}

// IsValidation reports whether err belongs to the caller-correctable tier.
func IsValidation(err error) bool {
	var mf *MissingFieldError
	if errors.As(err, &mf) {
		return true
	}
	for _, v := range []error{
		ErrInvalidEmailFormat, ErrPasswordTooShort, ErrEmailExists,
		ErrAlreadyLiked, ErrNotLiked, ErrLikeDeleteFailed,
		ErrPriceOutOfRange, ErrEndBeforeStart, ErrPastStartDate,
		ErrEmptyDescription, ErrUpdateFailed, ErrDeleteFailed,
		ErrCountryNotFound,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
