package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail       = errors.New("invalid email address")
	ErrEmptyPassword      = errors.New("password is required")
	ErrEmptyTitle         = errors.New("title is required")
	ErrInvalidJobStatus   = errors.New("invalid job status")
	ErrInvalidSalary      = errors.New("invalid salary range")
	ErrEmptyName          = errors.New("first or last name is required")
	ErrInvalidAppStatus   = errors.New("invalid application status")
	ErrEmptyApplicationID = errors.New("application id is required")
	ErrInvalidSchedule    = errors.New("interview time is required")
	ErrInvalidDuration    = errors.New("interview duration must be positive")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrEmptyFeedback      = errors.New("feedback is required")
)
