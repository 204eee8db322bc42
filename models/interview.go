package models

import "time"

// InterviewStatus is the lifecycle state of an interview.
type InterviewStatus string

const (
	InterviewScheduled InterviewStatus = "scheduled"
	InterviewCompleted InterviewStatus = "completed"
	InterviewCancelled InterviewStatus = "cancelled"
)

// Interview is a scheduled conversation for an application.
type Interview struct {
	ID              string          `json:"id"`
	ApplicationID   string          `json:"application_id"`
	ScheduledAt     time.Time       `json:"scheduled_at"`
	DurationMinutes int             `json:"duration_minutes"`
	Type            string          `json:"type"`
	InterviewerIDs  []string        `json:"interviewer_ids,omitempty"`
	Status          InterviewStatus `json:"status"`
	Feedback        string          `json:"feedback,omitempty"`
	// AIScore is produced by the backend grading service.
	AIScore *float64 `json:"ai_score,omitempty"`
}

// InterviewInput is the body of POST /interviews.
type InterviewInput struct {
	ApplicationID   string    `json:"application_id"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Type            string    `json:"type"`
	InterviewerIDs  []string  `json:"interviewer_ids,omitempty"`
}

// InterviewFeedback is the body of POST /interviews/{id}/feedback.
type InterviewFeedback struct {
	Rating   int    `json:"rating"`
	Feedback string `json:"feedback"`
	Decision string `json:"decision,omitempty"`
}
