package models

import "time"

// ApplicationStatus is the pipeline stage of an application.
type ApplicationStatus string

const (
	ApplicationApplied   ApplicationStatus = "applied"
	ApplicationScreening ApplicationStatus = "screening"
	ApplicationInterview ApplicationStatus = "interview"
	ApplicationOffer     ApplicationStatus = "offer"
	ApplicationHired     ApplicationStatus = "hired"
	ApplicationRejected  ApplicationStatus = "rejected"
)

// Application links a candidate to a job.
type Application struct {
	ID          string            `json:"id"`
	JobID       string            `json:"job_id"`
	CandidateID string            `json:"candidate_id"`
	Status      ApplicationStatus `json:"status"`
	// Score is computed by the backend matching service; nil until scored.
	Score       *float64  `json:"score,omitempty"`
	CoverLetter string    `json:"cover_letter,omitempty"`
	AppliedAt   time.Time `json:"applied_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ApplicationInput is the body of application create calls.
type ApplicationInput struct {
	JobID       string `json:"job_id"`
	CandidateID string `json:"candidate_id"`
	CoverLetter string `json:"cover_letter,omitempty"`
}

// ApplicationStatusUpdate is the body of PATCH /applications/{id}/status.
type ApplicationStatusUpdate struct {
	Status ApplicationStatus `json:"status"`
	Note   string            `json:"note,omitempty"`
}
