// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ats-gateway/internal/metrics"
	"github.com/MKhiriev/go-ats-gateway/internal/session"
	"github.com/MKhiriev/go-ats-gateway/models"
)

// spyAuthService counts Refresh calls.
type spyAuthService struct {
	AuthService
	calls atomic.Int64
	err   error
}

func (s *spyAuthService) Refresh(_ context.Context) (*models.Session, error) {
	s.calls.Add(1)
	return &models.Session{}, s.err
}

func staticSession(s *models.Session, err error) session.Accessor {
	return session.AccessorFunc(func(context.Context) (*models.Session, error) {
		return s, err
	})
}

func newTestRefreshJob(t *testing.T, auth AuthService, sessions session.Accessor, interval time.Duration) *refreshJob {
	t.Helper()
	job := NewRefreshJob(auth, sessions, interval, 2*time.Minute, nil).(*refreshJob)
	job.now = func() time.Time { return testNow }
	return job
}

func TestRefreshJob_Refresh(t *testing.T) {
	soon := &models.Session{Tokens: models.Tokens{AccessToken: signedToken(t, "7", testNow.Add(time.Minute))}}
	later := &models.Session{Tokens: models.Tokens{AccessToken: signedToken(t, "7", testNow.Add(time.Hour))}}

	tests := []struct {
		name       string
		sessions   session.Accessor
		refreshErr error
		want       string
		wantCalls  int64
	}{
		{name: "expiring soon", sessions: staticSession(soon, nil), want: "refreshed", wantCalls: 1},
		{name: "still valid", sessions: staticSession(later, nil), want: "skipped"},
		{name: "logged out", sessions: staticSession(&models.Session{}, nil), want: "skipped"},
		{name: "store error", sessions: staticSession(nil, errors.New("boom")), want: "failed"},
		{name: "opaque token", sessions: staticSession(&models.Session{Tokens: models.Tokens{AccessToken: "opaque"}}, nil), want: "failed"},
		{name: "backend refuses", sessions: staticSession(soon, nil), refreshErr: errors.New("401"), want: "failed", wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spy := &spyAuthService{err: tt.refreshErr}
			job := newTestRefreshJob(t, spy, tt.sessions, time.Minute)

			assert.Equal(t, tt.want, job.refresh(context.Background()))
			assert.Equal(t, tt.wantCalls, spy.calls.Load())
		})
	}
}

func TestRefreshJob_TickCountsResult(t *testing.T) {
	job := newTestRefreshJob(t, &spyAuthService{}, staticSession(&models.Session{}, nil), time.Minute)

	before := testutil.ToFloat64(metrics.SessionRefreshTotal.WithLabelValues("skipped"))
	job.tick(context.Background())
	after := testutil.ToFloat64(metrics.SessionRefreshTotal.WithLabelValues("skipped"))

	assert.Equal(t, before+1, after)
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestRefreshJob_Start_RefreshesOnTick(t *testing.T) {
	soon := &models.Session{Tokens: models.Tokens{AccessToken: signedToken(t, "7", testNow.Add(time.Minute))}}
	spy := &spyAuthService{}
	job := newTestRefreshJob(t, spy, staticSession(soon, nil), 10*time.Millisecond)

	job.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
}

func TestRefreshJob_Stop_StopsGoroutine(t *testing.T) {
	soon := &models.Session{Tokens: models.Tokens{AccessToken: signedToken(t, "7", testNow.Add(time.Minute))}}
	spy := &spyAuthService{}
	job := newTestRefreshJob(t, spy, staticSession(soon, nil), 10*time.Millisecond)

	job.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterStop, spy.calls.Load())
}

func TestRefreshJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewRefreshJob(&spyAuthService{}, staticSession(nil, nil), time.Minute, time.Minute, nil)
	assert.NotPanics(t, func() { job.Stop() })
}

func TestRefreshJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewRefreshJob(&spyAuthService{}, staticSession(nil, nil), 10*time.Millisecond, time.Minute, nil)

	job.Start(context.Background())
	job.Stop()
	assert.NotPanics(t, func() { job.Stop() })
}

func TestRefreshJob_ContextCancelStops(t *testing.T) {
	spy := &spyAuthService{}
	job := newTestRefreshJob(t, spy, staticSession(&models.Session{}, nil), 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after context cancellation")
	}
}

func TestNewRefreshJob_DefaultInterval(t *testing.T) {
	job := NewRefreshJob(&spyAuthService{}, staticSession(nil, nil), 0, time.Minute, nil).(*refreshJob)
	require.Equal(t, defaultRefreshInterval, job.interval)
}
