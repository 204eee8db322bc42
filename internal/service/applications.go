package service

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-ats-gateway/internal/gateway"
	"github.com/MKhiriev/go-ats-gateway/models"
)

const applicationsPath = "/applications"

type applicationService struct {
	crud[models.Application, models.ApplicationInput]
}

// NewApplicationService returns an [ApplicationService] backed by d.
func NewApplicationService(d gateway.Dispatcher) ApplicationService {
	return &applicationService{crud: crud[models.Application, models.ApplicationInput]{d: d, base: applicationsPath}}
}

func (s *applicationService) List(ctx context.Context, filter models.ApplicationFilter) (models.Page[models.Application], error) {
	return s.list(ctx, filter.Values())
}

func (s *applicationService) Get(ctx context.Context, id string) (models.Application, error) {
	return s.get(ctx, id)
}

func (s *applicationService) Create(ctx context.Context, in models.ApplicationInput) (models.Application, error) {
	return s.create(ctx, in)
}

// UpdateStatus moves an application through the hiring pipeline.
func (s *applicationService) UpdateStatus(ctx context.Context, id string, update models.ApplicationStatusUpdate) (models.Application, error) {
	path, err := resourcePath(applicationsPath, id)
	if err != nil {
		return models.Application{}, err
	}
	return call[models.Application](ctx, s.d, gateway.Request{
		Method: http.MethodPatch,
		Path:   path + "/status",
		Body:   update,
	})
}

func (s *applicationService) ListByJob(ctx context.Context, jobID string, paging models.Paging) (models.Page[models.Application], error) {
	path, err := resourcePath(jobsPath, jobID)
	if err != nil {
		return models.Page[models.Application]{}, err
	}
	query := models.ApplicationFilter{Paging: paging}.Values()
	return call[models.Page[models.Application]](ctx, s.d, gateway.Request{
		Method: http.MethodGet,
		Path:   path + applicationsPath,
		Query:  query,
	})
}
