package service

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-ats-gateway/internal/gateway"
	"github.com/MKhiriev/go-ats-gateway/models"
)

const interviewsPath = "/interviews"

type interviewService struct {
	crud[models.Interview, models.InterviewInput]
}

// NewInterviewService returns an [InterviewService] backed by d.
func NewInterviewService(d gateway.Dispatcher) InterviewService {
	return &interviewService{crud: crud[models.Interview, models.InterviewInput]{d: d, base: interviewsPath}}
}

func (s *interviewService) List(ctx context.Context, filter models.InterviewFilter) (models.Page[models.Interview], error) {
	return s.list(ctx, filter.Values())
}

func (s *interviewService) Get(ctx context.Context, id string) (models.Interview, error) {
	return s.get(ctx, id)
}

func (s *interviewService) Schedule(ctx context.Context, in models.InterviewInput) (models.Interview, error) {
	return s.create(ctx, in)
}

func (s *interviewService) SubmitFeedback(ctx context.Context, id string, feedback models.InterviewFeedback) (models.Interview, error) {
	path, err := resourcePath(interviewsPath, id)
	if err != nil {
		return models.Interview{}, err
	}
	return call[models.Interview](ctx, s.d, gateway.Request{
		Method: http.MethodPost,
		Path:   path + "/feedback",
		Body:   feedback,
	})
}

func (s *interviewService) Cancel(ctx context.Context, id string) error {
	return s.delete(ctx, id)
}
