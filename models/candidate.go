package models

import "time"

// Candidate is a person tracked by the ATS.
type Candidate struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	ResumeURL string    `json:"resume_url,omitempty"`
	Skills    []string  `json:"skills,omitempty"`
	Source    string    `json:"source,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// FullName joins first and last name.
func (c Candidate) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// CandidateInput is the body of candidate create and update calls.
type CandidateInput struct {
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone,omitempty"`
	ResumeURL string   `json:"resume_url,omitempty"`
	Skills    []string `json:"skills,omitempty"`
	Source    string   `json:"source,omitempty"`
}
