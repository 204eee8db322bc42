// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the typed clients of the ATS backend resources.
//
// Every service talks to the backend through a [gateway.Dispatcher], so
// credential attachment, error normalization and the login redirect are
// handled once, in the gateway.
package service

import (
	"context"

	"github.com/MKhiriev/go-ats-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionKeeper reads and writes the session of the current profile.
// [*session.ClientAccessor] implements it.
type SessionKeeper interface {
	Session(ctx context.Context) (*models.Session, error)
	Save(ctx context.Context, s *models.Session) error
	Clear(ctx context.Context) error
}

// AuthService manages the session lifecycle against the backend.
type AuthService interface {
	// Login exchanges credentials for a session and persists it.
	Login(ctx context.Context, creds models.Credentials) (*models.Session, error)
	// Logout ends the session on the backend and always deletes it locally.
	Logout(ctx context.Context) error
	// Me returns the account behind the current session.
	Me(ctx context.Context) (models.User, error)
	// Refresh trades the refresh token for a new access token.
	Refresh(ctx context.Context) (*models.Session, error)
}

type JobService interface {
	List(ctx context.Context, filter models.JobFilter) (models.Page[models.Job], error)
	Get(ctx context.Context, id string) (models.Job, error)
	Create(ctx context.Context, in models.JobInput) (models.Job, error)
	Update(ctx context.Context, id string, in models.JobInput) (models.Job, error)
	Delete(ctx context.Context, id string) error
	// GenerateWithAI asks the backend to draft a job description.
	GenerateWithAI(ctx context.Context, req models.AIJobRequest) (models.JobDraft, error)
	Publish(ctx context.Context, id string) (models.Job, error)
	Close(ctx context.Context, id string) (models.Job, error)
}

type CandidateService interface {
	List(ctx context.Context, filter models.CandidateFilter) (models.Page[models.Candidate], error)
	Get(ctx context.Context, id string) (models.Candidate, error)
	Create(ctx context.Context, in models.CandidateInput) (models.Candidate, error)
	Update(ctx context.Context, id string, in models.CandidateInput) (models.Candidate, error)
	Delete(ctx context.Context, id string) error
}

type ApplicationService interface {
	List(ctx context.Context, filter models.ApplicationFilter) (models.Page[models.Application], error)
	Get(ctx context.Context, id string) (models.Application, error)
	Create(ctx context.Context, in models.ApplicationInput) (models.Application, error)
	UpdateStatus(ctx context.Context, id string, update models.ApplicationStatusUpdate) (models.Application, error)
	// ListByJob lists the applications received by one job.
	ListByJob(ctx context.Context, jobID string, paging models.Paging) (models.Page[models.Application], error)
}

type InterviewService interface {
	List(ctx context.Context, filter models.InterviewFilter) (models.Page[models.Interview], error)
	Get(ctx context.Context, id string) (models.Interview, error)
	Schedule(ctx context.Context, in models.InterviewInput) (models.Interview, error)
	SubmitFeedback(ctx context.Context, id string, feedback models.InterviewFeedback) (models.Interview, error)
	Cancel(ctx context.Context, id string) error
}

type DepartmentService interface {
	List(ctx context.Context) ([]models.Department, error)
	Get(ctx context.Context, id string) (models.Department, error)
	Create(ctx context.Context, in models.DepartmentInput) (models.Department, error)
	Update(ctx context.Context, id string, in models.DepartmentInput) (models.Department, error)
	Delete(ctx context.Context, id string) error
}

type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id string) (models.Category, error)
	Create(ctx context.Context, in models.CategoryInput) (models.Category, error)
	Update(ctx context.Context, id string, in models.CategoryInput) (models.Category, error)
	Delete(ctx context.Context, id string) error
}

type EmailTemplateService interface {
	List(ctx context.Context, filter models.TemplateFilter) (models.Page[models.EmailTemplate], error)
	Get(ctx context.Context, id string) (models.EmailTemplate, error)
	Create(ctx context.Context, in models.EmailTemplateInput) (models.EmailTemplate, error)
	Update(ctx context.Context, id string, in models.EmailTemplateInput) (models.EmailTemplate, error)
	Delete(ctx context.Context, id string) error
	// Preview renders a template with the given placeholder values.
	Preview(ctx context.Context, id string, vars map[string]string) (models.EmailPreview, error)
}

type AuditLogService interface {
	List(ctx context.Context, filter models.AuditLogFilter) (models.Page[models.AuditLog], error)
}

// DashboardService reads the aggregated hiring metrics.
type DashboardService interface {
	Overview(ctx context.Context, filter models.DashboardFilter) (models.DashboardOverview, error)
	Pipeline(ctx context.Context, filter models.DashboardFilter) ([]models.PipelineStage, error)
	TimeToHire(ctx context.Context, filter models.DashboardFilter) ([]models.TimeToHirePoint, error)
	Sources(ctx context.Context, filter models.DashboardFilter) ([]models.SourceBreakdown, error)
}

// RefreshJob keeps the current session's access token fresh in the
// background.
type RefreshJob interface {
	Start(ctx context.Context)
	Stop()
}
