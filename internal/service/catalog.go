package service

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-ats-gateway/internal/gateway"
	"github.com/MKhiriev/go-ats-gateway/models"
)

const (
	departmentsPath    = "/departments"
	categoriesPath     = "/categories"
	emailTemplatesPath = "/email-templates"
)

type departmentService struct {
	crud[models.Department, models.DepartmentInput]
}

// NewDepartmentService returns a [DepartmentService] backed by d.
func NewDepartmentService(d gateway.Dispatcher) DepartmentService {
	return &departmentService{crud: crud[models.Department, models.DepartmentInput]{d: d, base: departmentsPath}}
}

func (s *departmentService) List(ctx context.Context) ([]models.Department, error) {
	return s.all(ctx)
}

func (s *departmentService) Get(ctx context.Context, id string) (models.Department, error) {
	return s.get(ctx, id)
}

func (s *departmentService) Create(ctx context.Context, in models.DepartmentInput) (models.Department, error) {
	return s.create(ctx, in)
}

func (s *departmentService) Update(ctx context.Context, id string, in models.DepartmentInput) (models.Department, error) {
	return s.update(ctx, id, in)
}

func (s *departmentService) Delete(ctx context.Context, id string) error {
	return s.delete(ctx, id)
}

type categoryService struct {
	crud[models.Category, models.CategoryInput]
}

// NewCategoryService returns a [CategoryService] backed by d.
func NewCategoryService(d gateway.Dispatcher) CategoryService {
	return &categoryService{crud: crud[models.Category, models.CategoryInput]{d: d, base: categoriesPath}}
}

func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.all(ctx)
}

func (s *categoryService) Get(ctx context.Context, id string) (models.Category, error) {
	return s.get(ctx, id)
}

func (s *categoryService) Create(ctx context.Context, in models.CategoryInput) (models.Category, error) {
	return s.create(ctx, in)
}

func (s *categoryService) Update(ctx context.Context, id string, in models.CategoryInput) (models.Category, error) {
	return s.update(ctx, id, in)
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	return s.delete(ctx, id)
}

type emailTemplateService struct {
	crud[models.EmailTemplate, models.EmailTemplateInput]
}

// NewEmailTemplateService returns an [EmailTemplateService] backed by d.
func NewEmailTemplateService(d gateway.Dispatcher) EmailTemplateService {
	return &emailTemplateService{crud: crud[models.EmailTemplate, models.EmailTemplateInput]{d: d, base: emailTemplatesPath}}
}

func (s *emailTemplateService) List(ctx context.Context, filter models.TemplateFilter) (models.Page[models.EmailTemplate], error) {
	return s.list(ctx, filter.Values())
}

func (s *emailTemplateService) Get(ctx context.Context, id string) (models.EmailTemplate, error) {
	return s.get(ctx, id)
}

func (s *emailTemplateService) Create(ctx context.Context, in models.EmailTemplateInput) (models.EmailTemplate, error) {
	return s.create(ctx, in)
}

func (s *emailTemplateService) Update(ctx context.Context, id string, in models.EmailTemplateInput) (models.EmailTemplate, error) {
	return s.update(ctx, id, in)
}

func (s *emailTemplateService) Delete(ctx context.Context, id string) error {
	return s.delete(ctx, id)
}

func (s *emailTemplateService) Preview(ctx context.Context, id string, vars map[string]string) (models.EmailPreview, error) {
	path, err := resourcePath(emailTemplatesPath, id)
	if err != nil {
		return models.EmailPreview{}, err
	}
	if vars == nil {
		vars = map[string]string{}
	}
	return call[models.EmailPreview](ctx, s.d, gateway.Request{
		Method: http.MethodPost,
		Path:   path + "/preview",
		Body:   map[string]any{"variables": vars},
	})
}
