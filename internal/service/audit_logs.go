package service

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-ats-gateway/internal/gateway"
	"github.com/MKhiriev/go-ats-gateway/models"
)

const auditLogsPath = "/audit-logs"

type auditLogService struct {
	d gateway.Dispatcher
}

// NewAuditLogService returns an [AuditLogService] backed by d. Audit logs
// are read-only.
func NewAuditLogService(d gateway.Dispatcher) AuditLogService {
	return &auditLogService{d: d}
}

func (s *auditLogService) List(ctx context.Context, filter models.AuditLogFilter) (models.Page[models.AuditLog], error) {
	return call[models.Page[models.AuditLog]](ctx, s.d, gateway.Request{
		Method: http.MethodGet,
		Path:   auditLogsPath,
		Query:  filter.Values(),
	})
}
