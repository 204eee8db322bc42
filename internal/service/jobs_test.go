package service

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-ats-gateway/internal/gateway"
	"github.com/MKhiriev/go-ats-gateway/internal/mock"
	"github.com/MKhiriev/go-ats-gateway/models"
)

func newTestJobService(t *testing.T) (JobService, *mock.MockDispatcher) {
	t.Helper()
	d := mock.NewMockDispatcher(gomock.NewController(t))
	return NewJobService(d), d
}

func TestJobService_List(t *testing.T) {
	svc, d := newTestJobService(t)

	page := models.Page[models.Job]{
		Items:    []models.Job{{ID: "1", Title: "Go Engineer", Status: models.JobStatusOpen}},
		Total:    1,
		Page:     1,
		PageSize: 20,
	}

	var got gateway.Request
	expectRequest(d, http.MethodGet, "/jobs", &got, jsonResponse(t, page), nil)

	res, err := svc.List(context.Background(), models.JobFilter{
		Paging: models.Paging{Page: 1, PageSize: 20},
		Status: models.JobStatusOpen,
		Search: "go",
	})
	require.NoError(t, err)
	assert.Equal(t, page, res)
	assert.Equal(t, url.Values{
		"page":      {"1"},
		"page_size": {"20"},
		"status":    {"open"},
		"search":    {"go"},
	}, got.Query)
}

func TestJobService_Get(t *testing.T) {
	svc, d := newTestJobService(t)

	expectRequest(d, http.MethodGet, "/jobs/42", nil, jsonResponse(t, models.Job{ID: "42", Title: "SRE"}), nil)

	job, err := svc.Get(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "SRE", job.Title)
}

func TestJobService_Get_EmptyID(t *testing.T) {
	svc, _ := newTestJobService(t)

	_, err := svc.Get(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyID)
}

func TestJobService_Get_NotFoundIsAbsent(t *testing.T) {
	svc, d := newTestJobService(t)

	expectRequest(d, http.MethodGet, "/jobs/404", nil, nil,
		&gateway.APIError{Message: "The requested resource was not found", Status: 404, Code: gateway.CodeNotFound})

	_, err := svc.Get(context.Background(), "404")
	assert.True(t, IsAbsent(err))
}

func TestJobService_Create(t *testing.T) {
	svc, d := newTestJobService(t)

	in := models.JobInput{Title: "Go Engineer", Description: "Build things", DepartmentID: "eng"}

	var got gateway.Request
	expectRequest(d, http.MethodPost, "/jobs", &got, jsonResponse(t, models.Job{ID: "7", Title: in.Title}), nil)

	job, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "7", job.ID)
	assert.Equal(t, in, got.Body)
}

func TestJobService_Update(t *testing.T) {
	svc, d := newTestJobService(t)

	in := models.JobInput{Title: "Senior Go Engineer"}
	var got gateway.Request
	expectRequest(d, http.MethodPut, "/jobs/7", &got, jsonResponse(t, models.Job{ID: "7", Title: in.Title}), nil)

	job, err := svc.Update(context.Background(), "7", in)
	require.NoError(t, err)
	assert.Equal(t, in.Title, job.Title)
	assert.Equal(t, in, got.Body)
}

func TestJobService_Delete(t *testing.T) {
	svc, d := newTestJobService(t)

	expectRequest(d, http.MethodDelete, "/jobs/7", nil, &gateway.Response{Status: http.StatusNoContent}, nil)

	require.NoError(t, svc.Delete(context.Background(), "7"))
}

func TestJobService_Delete_Denied(t *testing.T) {
	svc, d := newTestJobService(t)

	expectRequest(d, http.MethodDelete, "/jobs/7", nil, nil,
		&gateway.APIError{Message: "You do not have permission to perform this action", Status: 403, Code: gateway.CodeForbidden})

	err := svc.Delete(context.Background(), "7")
	assert.True(t, IsDenied(err))
}

func TestJobService_GenerateWithAI(t *testing.T) {
	svc, d := newTestJobService(t)

	req := models.AIJobRequest{Title: "Data Engineer", Seniority: "senior", Keywords: []string{"spark"}}
	draft := models.JobDraft{Title: "Senior Data Engineer", Description: "...", Requirements: []string{"Spark"}}

	var got gateway.Request
	expectRequest(d, http.MethodPost, "/jobs/ai-generate", &got, jsonResponse(t, draft), nil)

	res, err := svc.GenerateWithAI(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, draft, res)
	assert.Equal(t, req, got.Body)
}

func TestJobService_PublishAndClose(t *testing.T) {
	tests := []struct {
		name string
		call func(JobService) (models.Job, error)
		want models.JobStatus
	}{
		{
			name: "publish",
			call: func(s JobService) (models.Job, error) { return s.Publish(context.Background(), "7") },
			want: models.JobStatusOpen,
		},
		{
			name: "close",
			call: func(s JobService) (models.Job, error) { return s.Close(context.Background(), "7") },
			want: models.JobStatusClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newTestJobService(t)

			var got gateway.Request
			expectRequest(d, http.MethodPatch, "/jobs/7/status", &got, jsonResponse(t, models.Job{ID: "7", Status: tt.want}), nil)

			job, err := tt.call(svc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, job.Status)
			assert.Equal(t, models.JobStatusUpdate{Status: tt.want}, got.Body)
		})
	}
}
