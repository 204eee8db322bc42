package validators

import (
	"context"
	"net/mail"
	"slices"
	"strings"

	"github.com/MKhiriev/go-ats-gateway/models"
)

// Field names accepted by [InputValidator.Validate].
const (
	FieldEmail         = "email"
	FieldPassword      = "password"
	FieldTitle         = "title"
	FieldStatus        = "status"
	FieldSalary        = "salary"
	FieldName          = "name"
	FieldApplicationID = "application_id"
	FieldScheduledAt   = "scheduled_at"
	FieldDuration      = "duration"
	FieldRating        = "rating"
	FieldFeedback      = "feedback"
)

const (
	minRating = 1
	maxRating = 5
)

var (
	jobStatuses = []models.JobStatus{
		models.JobStatusDraft,
		models.JobStatusOpen,
		models.JobStatusPaused,
		models.JobStatusClosed,
	}
	applicationStatuses = []models.ApplicationStatus{
		models.ApplicationApplied,
		models.ApplicationScreening,
		models.ApplicationInterview,
		models.ApplicationOffer,
		models.ApplicationHired,
		models.ApplicationRejected,
	}
)

// InputValidator validates the write payloads of the recruiting resources
// and login credentials. Both values and pointers are accepted.
type InputValidator struct{}

// NewInputValidator returns an [InputValidator] as a [Validator].
func NewInputValidator() Validator {
	return &InputValidator{}
}

func (v *InputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.JobInput:
		return v.validateJobInput(value, fields...)
	case *models.JobInput:
		return v.validateJobInput(*value, fields...)

	case models.AIJobRequest:
		return v.validateAIJobRequest(value, fields...)
	case *models.AIJobRequest:
		return v.validateAIJobRequest(*value, fields...)

	case models.CandidateInput:
		return v.validateCandidateInput(value, fields...)
	case *models.CandidateInput:
		return v.validateCandidateInput(*value, fields...)

	case models.ApplicationStatusUpdate:
		return v.validateStatusUpdate(value, fields...)
	case *models.ApplicationStatusUpdate:
		return v.validateStatusUpdate(*value, fields...)

	case models.InterviewInput:
		return v.validateInterviewInput(value, fields...)
	case *models.InterviewInput:
		return v.validateInterviewInput(*value, fields...)

	case models.InterviewFeedback:
		return v.validateFeedback(value, fields...)
	case *models.InterviewFeedback:
		return v.validateFeedback(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *InputValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isEmail(c.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if c.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *InputValidator) validateJobInput(in models.JobInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldStatus, FieldSalary}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(in.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldStatus:
			// empty lets the backend pick its default
			if in.Status != "" && !slices.Contains(jobStatuses, in.Status) {
				return ErrInvalidJobStatus
			}
		case FieldSalary:
			if (in.SalaryMin != nil && *in.SalaryMin < 0) || (in.SalaryMax != nil && *in.SalaryMax < 0) {
				return ErrInvalidSalary
			}
			if in.SalaryMin != nil && in.SalaryMax != nil && *in.SalaryMin > *in.SalaryMax {
				return ErrInvalidSalary
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *InputValidator) validateAIJobRequest(req models.AIJobRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(req.Title) == "" {
				return ErrEmptyTitle
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *InputValidator) validateCandidateInput(in models.CandidateInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(in.FirstName) == "" && strings.TrimSpace(in.LastName) == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if !isEmail(in.Email) {
				return ErrInvalidEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *InputValidator) validateStatusUpdate(u models.ApplicationStatusUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldStatus:
			if !slices.Contains(applicationStatuses, u.Status) {
				return ErrInvalidAppStatus
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *InputValidator) validateInterviewInput(in models.InterviewInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldApplicationID, FieldScheduledAt, FieldDuration}
	}

	for _, f := range fields {
		switch f {
		case FieldApplicationID:
			if strings.TrimSpace(in.ApplicationID) == "" {
				return ErrEmptyApplicationID
			}
		case FieldScheduledAt:
			if in.ScheduledAt.IsZero() {
				return ErrInvalidSchedule
			}
		case FieldDuration:
			if in.DurationMinutes <= 0 {
				return ErrInvalidDuration
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *InputValidator) validateFeedback(fb models.InterviewFeedback, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRating, FieldFeedback}
	}

	for _, f := range fields {
		switch f {
		case FieldRating:
			if fb.Rating < minRating || fb.Rating > maxRating {
				return ErrInvalidRating
			}
		case FieldFeedback:
			if strings.TrimSpace(fb.Feedback) == "" {
				return ErrEmptyFeedback
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
