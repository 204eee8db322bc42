// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-ats-gateway/internal/config"
	"github.com/MKhiriev/go-ats-gateway/internal/logger"
	"github.com/MKhiriev/go-ats-gateway/internal/mock"
	"github.com/MKhiriev/go-ats-gateway/internal/service"
	"github.com/MKhiriev/go-ats-gateway/internal/session"
	"github.com/MKhiriev/go-ats-gateway/internal/store"
	"github.com/MKhiriev/go-ats-gateway/models"
)

type harness struct {
	in     *bytes.Buffer
	out    *bytes.Buffer
	errOut *bytes.Buffer

	auth         *mock.MockAuthService
	jobs         *mock.MockJobService
	candidates   *mock.MockCandidateService
	applications *mock.MockApplicationService
	interviews   *mock.MockInterviewService
	departments  *mock.MockDepartmentService
	categories   *mock.MockCategoryService
	templates    *mock.MockEmailTemplateService
	auditLogs    *mock.MockAuditLogService
	dashboard    *mock.MockDashboardService
	keeper       *mock.MockSessionKeeper

	app *App
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		in:           &bytes.Buffer{},
		out:          &bytes.Buffer{},
		errOut:       &bytes.Buffer{},
		auth:         mock.NewMockAuthService(ctrl),
		jobs:         mock.NewMockJobService(ctrl),
		candidates:   mock.NewMockCandidateService(ctrl),
		applications: mock.NewMockApplicationService(ctrl),
		interviews:   mock.NewMockInterviewService(ctrl),
		departments:  mock.NewMockDepartmentService(ctrl),
		categories:   mock.NewMockCategoryService(ctrl),
		templates:    mock.NewMockEmailTemplateService(ctrl),
		auditLogs:    mock.NewMockAuditLogService(ctrl),
		dashboard:    mock.NewMockDashboardService(ctrl),
		keeper:       mock.NewMockSessionKeeper(ctrl),
	}

	services := &service.Services{
		Auth:           h.auth,
		Jobs:           h.jobs,
		Candidates:     h.candidates,
		Applications:   h.applications,
		Interviews:     h.interviews,
		Departments:    h.departments,
		Categories:     h.categories,
		EmailTemplates: h.templates,
		AuditLogs:      h.auditLogs,
		Dashboard:      h.dashboard,
	}

	h.app = NewApp(
		models.NewAppBuildInfo("1.4.0", "2026-10-01", "9f1c2ab"),
		WithIO(h.in, h.out, h.errOut),
		WithServices(services, h.keeper),
		WithLogger(logger.Nop()),
	)
	return h
}

func (h *harness) run(args ...string) error {
	return h.app.Execute(context.Background(), args)
}

func TestVersion(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("version"))
	assert.Equal(t, "Build version: 1.4.0\nBuild date: 2026-10-01\nBuild commit: 9f1c2ab\n", h.out.String())
}

func TestVersion_JSONWithoutBuildInfo(t *testing.T) {
	out := &bytes.Buffer{}
	app := NewApp(models.AppBuildInfo{}, WithIO(&bytes.Buffer{}, out, &bytes.Buffer{}))

	require.NoError(t, app.Execute(context.Background(), []string{"version", "--json"}))
	assert.JSONEq(t, `{"version":"N/A","date":"N/A","commit":"N/A"}`, out.String())
}

func TestRoot_RegistersCommands(t *testing.T) {
	root := newHarness(t).app.Command()

	want := []string{
		"login", "logout", "whoami", "jobs", "candidates", "applications", "interviews",
		"departments", "categories", "email-templates", "audit-logs", "dashboard", "serve", "version",
	}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}

	for _, args := range [][]string{
		{"jobs", "list"}, {"jobs", "get"}, {"jobs", "create"}, {"jobs", "delete"}, {"jobs", "ai-generate"},
		{"candidates", "list"}, {"candidates", "get"},
		{"applications", "list"}, {"applications", "status"},
		{"interviews", "list"}, {"departments", "list"}, {"categories", "list"},
		{"email-templates", "list"}, {"audit-logs", "list"}, {"dashboard", "overview"},
	} {
		cmd, _, err := root.Find(args)
		require.NoError(t, err, args)
		assert.Equal(t, args[1], cmd.Name())
	}
}

func TestRoot_BindsConfigFlags(t *testing.T) {
	root := newHarness(t).app.Command()

	for _, name := range []string{"config", "api-url", "runtime", "profile", "seal-key", "db", "redis-addr", "listen", "json"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), name)
	}
}

func TestCommandPath(t *testing.T) {
	h := newHarness(t)
	h.jobs.EXPECT().List(gomock.Any(), gomock.Any()).Return(models.Page[models.Job]{}, nil)

	require.NoError(t, h.run("jobs", "list"))
	assert.Equal(t, "/jobs/list", h.app.currentPath)
}

func TestExecute_InvalidConfig(t *testing.T) {
	h := newHarness(t)

	err := h.run("--runtime", "browser", "departments", "list")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidGatewayConfigs)
}

// TestExecute_ExpiredSessionEndsLocally drives the real gateway against a
// backend that rejects the stored token: the command fails with the 401
// message, the redirect clears the local session before Execute returns.
func TestExecute_ExpiredSessionEndsLocally(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(models.LoginResponse{
				AccessToken:  "access-1",
				RefreshToken: "refresh-1",
				ExpiresIn:    3600,
				User:         models.User{ID: "7", Email: "hr@acme.io", Role: models.RoleRecruiter},
			})
		default:
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Token expired"}`))
		}
	}))
	defer backend.Close()

	dsn := filepath.Join(t.TempDir(), "sessions.db")
	run := func(args ...string) (string, error) {
		errOut := &bytes.Buffer{}
		app := NewApp(models.AppBuildInfo{}, WithIO(&bytes.Buffer{}, &bytes.Buffer{}, errOut), WithLogger(logger.Nop()))
		base := []string{"--api-url", backend.URL, "--db", dsn, "--profile", "test"}
		err := app.Execute(context.Background(), append(base, args...))
		return errOut.String(), err
	}

	stderr, err := run("login", "--email", "hr@acme.io", "--password", "secret")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Signed in as hr@acme.io (recruiter)")
	assert.Equal(t, "access-1", storedSession(t, dsn).AccessToken())

	stderr, err = run("candidates", "list")
	require.ErrorIs(t, err, ErrHandled)
	assert.Contains(t, stderr, "Unauthorized - please login again")
	assert.Contains(t, stderr, "atsctl login")
	assert.False(t, storedSession(t, dsn).HasToken())
}

func storedSession(t *testing.T, dsn string) *models.Session {
	t.Helper()

	db, err := store.NewConnectSQLite(context.Background(), config.DB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	s, err := store.NewSessionRepository(db, nil, logger.Nop()).Get(context.Background(), "test")
	if err != nil {
		require.ErrorIs(t, err, session.ErrNotFound)
		return nil
	}
	return s
}
