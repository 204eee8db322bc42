package service

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-ats-gateway/internal/gateway"
	"github.com/MKhiriev/go-ats-gateway/models"
)

const (
	jobsPath       = "/jobs"
	jobsAIGenerate = jobsPath + "/ai-generate"
)

type jobService struct {
	crud[models.Job, models.JobInput]
}

// NewJobService returns a [JobService] backed by d.
func NewJobService(d gateway.Dispatcher) JobService {
	return &jobService{crud: crud[models.Job, models.JobInput]{d: d, base: jobsPath}}
}

func (s *jobService) List(ctx context.Context, filter models.JobFilter) (models.Page[models.Job], error) {
	return s.list(ctx, filter.Values())
}

func (s *jobService) Get(ctx context.Context, id string) (models.Job, error) {
	return s.get(ctx, id)
}

func (s *jobService) Create(ctx context.Context, in models.JobInput) (models.Job, error) {
	return s.create(ctx, in)
}

func (s *jobService) Update(ctx context.Context, id string, in models.JobInput) (models.Job, error) {
	return s.update(ctx, id, in)
}

func (s *jobService) Delete(ctx context.Context, id string) error {
	return s.delete(ctx, id)
}

func (s *jobService) GenerateWithAI(ctx context.Context, req models.AIJobRequest) (models.JobDraft, error) {
	return call[models.JobDraft](ctx, s.d, gateway.Request{Method: http.MethodPost, Path: jobsAIGenerate, Body: req})
}

func (s *jobService) Publish(ctx context.Context, id string) (models.Job, error) {
	return s.setStatus(ctx, id, models.JobStatusOpen)
}

func (s *jobService) Close(ctx context.Context, id string) (models.Job, error) {
	return s.setStatus(ctx, id, models.JobStatusClosed)
}

func (s *jobService) setStatus(ctx context.Context, id string, status models.JobStatus) (models.Job, error) {
	path, err := resourcePath(jobsPath, id)
	if err != nil {
		return models.Job{}, err
	}
	return call[models.Job](ctx, s.d, gateway.Request{
		Method: http.MethodPatch,
		Path:   path + "/status",
		Body:   models.JobStatusUpdate{Status: status},
	})
}
