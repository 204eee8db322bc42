package service

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-ats-gateway/internal/gateway"
	"github.com/MKhiriev/go-ats-gateway/models"
)

const (
	dashboardOverviewPath   = "/dashboard/overview"
	dashboardPipelinePath   = "/dashboard/pipeline"
	dashboardTimeToHirePath = "/dashboard/time-to-hire"
	dashboardSourcesPath    = "/dashboard/sources"
)

type dashboardService struct {
	d gateway.Dispatcher
}

// NewDashboardService returns a [DashboardService] backed by d.
func NewDashboardService(d gateway.Dispatcher) DashboardService {
	return &dashboardService{d: d}
}

func (s *dashboardService) Overview(ctx context.Context, filter models.DashboardFilter) (models.DashboardOverview, error) {
	return call[models.DashboardOverview](ctx, s.d, s.request(dashboardOverviewPath, filter))
}

func (s *dashboardService) Pipeline(ctx context.Context, filter models.DashboardFilter) ([]models.PipelineStage, error) {
	return call[[]models.PipelineStage](ctx, s.d, s.request(dashboardPipelinePath, filter))
}

func (s *dashboardService) TimeToHire(ctx context.Context, filter models.DashboardFilter) ([]models.TimeToHirePoint, error) {
	return call[[]models.TimeToHirePoint](ctx, s.d, s.request(dashboardTimeToHirePath, filter))
}

func (s *dashboardService) Sources(ctx context.Context, filter models.DashboardFilter) ([]models.SourceBreakdown, error) {
	return call[[]models.SourceBreakdown](ctx, s.d, s.request(dashboardSourcesPath, filter))
}

func (s *dashboardService) request(path string, filter models.DashboardFilter) gateway.Request {
	return gateway.Request{Method: http.MethodGet, Path: path, Query: filter.Values()}
}
