package models

import "time"

// User roles recognised by the admin application.
const (
	RoleAdmin     = "admin"
	RoleManager   = "manager"
	RoleRecruiter = "recruiter"
	RoleViewer    = "viewer"
)

// User represents an admin-application account as returned by GET /auth/me.
type User struct {
	// ID is the backend identifier of the account.
	ID string `json:"id"`

	// Email is the login of the account.
	Email string `json:"email"`

	// Name is the display name.
	Name string `json:"name"`

	// Role drives which dashboards and actions the backend allows.
	Role string `json:"role"`

	// DepartmentID is set for managers scoped to a single department.
	DepartmentID *string `json:"department_id,omitempty"`

	// IsActive is false for deactivated accounts.
	IsActive bool `json:"is_active"`

	// CreatedAt is the account creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// Credentials is the body of POST /auth/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned by POST /auth/login and POST /auth/refresh.
type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	// ExpiresIn is the access token lifetime in seconds.
	ExpiresIn int  `json:"expires_in"`
	User      User `json:"user"`
}

// RefreshRequest is the body of POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
