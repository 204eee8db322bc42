package models

import "time"

// JobStatus is the publication state of a job posting.
type JobStatus string

const (
	JobStatusDraft  JobStatus = "draft"
	JobStatusOpen   JobStatus = "open"
	JobStatusPaused JobStatus = "paused"
	JobStatusClosed JobStatus = "closed"
)

// Job is a job posting.
type Job struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Requirements   []string  `json:"requirements,omitempty"`
	DepartmentID   string    `json:"department_id,omitempty"`
	CategoryID     string    `json:"category_id,omitempty"`
	Location       string    `json:"location,omitempty"`
	EmploymentType string    `json:"employment_type,omitempty"`
	Status         JobStatus `json:"status"`
	SalaryMin      *int      `json:"salary_min,omitempty"`
	SalaryMax      *int      `json:"salary_max,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// JobInput is the body of job create and update calls.
type JobInput struct {
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Requirements   []string  `json:"requirements,omitempty"`
	DepartmentID   string    `json:"department_id,omitempty"`
	CategoryID     string    `json:"category_id,omitempty"`
	Location       string    `json:"location,omitempty"`
	EmploymentType string    `json:"employment_type,omitempty"`
	Status         JobStatus `json:"status,omitempty"`
	SalaryMin      *int      `json:"salary_min,omitempty"`
	SalaryMax      *int      `json:"salary_max,omitempty"`
}

// JobStatusUpdate is the body of PATCH /jobs/{id}/status.
type JobStatusUpdate struct {
	Status JobStatus `json:"status"`
}

// AIJobRequest asks the backend to draft a job posting.
type AIJobRequest struct {
	Title        string   `json:"title"`
	DepartmentID string   `json:"department_id,omitempty"`
	Seniority    string   `json:"seniority,omitempty"`
	Keywords     []string `json:"keywords,omitempty"`
}

// JobDraft is the AI-generated posting. It is not persisted until the caller
// creates a job from it.
type JobDraft struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
}

// Input converts the draft into a create request.
func (d JobDraft) Input() JobInput {
	return JobInput{
		Title:        d.Title,
		Description:  d.Description,
		Requirements: d.Requirements,
		Status:       JobStatusDraft,
	}
}
