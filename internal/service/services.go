package service

import (
	"github.com/MKhiriev/go-ats-gateway/internal/gateway"
)

// Services groups the backend resource clients sharing one dispatcher.
type Services struct {
	Auth           AuthService
	Jobs           JobService
	Candidates     CandidateService
	Applications   ApplicationService
	Interviews     InterviewService
	Departments    DepartmentService
	Categories     CategoryService
	EmailTemplates EmailTemplateService
	AuditLogs      AuditLogService
	Dashboard      DashboardService
}

// NewServices wires every resource service to d. keeper backs the
// [AuthService] and may be nil when login is not needed.
func NewServices(d gateway.Dispatcher, keeper SessionKeeper) *Services {
	return &Services{
		Auth:           NewAuthService(d, keeper),
		Jobs:           NewJobService(d),
		Candidates:     NewCandidateService(d),
		Applications:   NewApplicationService(d),
		Interviews:     NewInterviewService(d),
		Departments:    NewDepartmentService(d),
		Categories:     NewCategoryService(d),
		EmailTemplates: NewEmailTemplateService(d),
		AuditLogs:      NewAuditLogService(d),
		Dashboard:      NewDashboardService(d),
	}
}
