package models

// Department groups jobs and managers.
type Department struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ManagerID   string `json:"manager_id,omitempty"`
}

// DepartmentInput is the body of department create and update calls.
type DepartmentInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ManagerID   string `json:"manager_id,omitempty"`
}

// Category classifies jobs (engineering, sales, ...).
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// CategoryInput is the body of category create and update calls.
type CategoryInput struct {
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// EmailTemplate is a reusable candidate email.
type EmailTemplate struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	// Type is the pipeline event the template is meant for (e.g. "rejection").
	Type string `json:"type,omitempty"`
}

// EmailTemplateInput is the body of email template create and update calls.
type EmailTemplateInput struct {
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Type    string `json:"type,omitempty"`
}

// EmailPreview is the rendered template returned by the preview endpoint.
type EmailPreview struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
