package service

import (
	"context"

	"github.com/MKhiriev/go-ats-gateway/internal/gateway"
	"github.com/MKhiriev/go-ats-gateway/models"
)

const candidatesPath = "/candidates"

type candidateService struct {
	crud[models.Candidate, models.CandidateInput]
}

// NewCandidateService returns a [CandidateService] backed by d.
func NewCandidateService(d gateway.Dispatcher) CandidateService {
	return &candidateService{crud: crud[models.Candidate, models.CandidateInput]{d: d, base: candidatesPath}}
}

func (s *candidateService) List(ctx context.Context, filter models.CandidateFilter) (models.Page[models.Candidate], error) {
	return s.list(ctx, filter.Values())
}

func (s *candidateService) Get(ctx context.Context, id string) (models.Candidate, error) {
	return s.get(ctx, id)
}

func (s *candidateService) Create(ctx context.Context, in models.CandidateInput) (models.Candidate, error) {
	return s.create(ctx, in)
}

func (s *candidateService) Update(ctx context.Context, id string, in models.CandidateInput) (models.Candidate, error) {
	return s.update(ctx, id, in)
}

func (s *candidateService) Delete(ctx context.Context, id string) error {
	return s.delete(ctx, id)
}
