package gateway

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-ats-gateway/internal/config"
	"github.com/MKhiriev/go-ats-gateway/internal/metrics"
	"github.com/MKhiriev/go-ats-gateway/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── fakes ─────────────────────────────────────────────────────────────────────

// fakeAccessor returns tokens[i] on the i-th call; the last entry repeats.
type fakeAccessor struct {
	mu     sync.Mutex
	calls  int
	tokens []string
	err    error
}

func (f *fakeAccessor) Session(context.Context) (*models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if len(f.tokens) == 0 {
		return &models.Session{}, nil
	}

	i := min(f.calls-1, len(f.tokens)-1)
	return &models.Session{Tokens: models.Tokens{AccessToken: f.tokens[i]}, IsAuthenticated: f.tokens[i] != ""}, nil
}

func (f *fakeAccessor) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeNavigator struct {
	mu      sync.Mutex
	current string
	visits  []string
}

func (f *fakeNavigator) CurrentPath() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

func (f *fakeNavigator) Navigate(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.visits = append(f.visits, path)
	f.current = path
}

func (f *fakeNavigator) Visits() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.visits...)
}

// backend records what reached the server.
type backend struct {
	*httptest.Server
	hits    atomic.Int32
	mu      sync.Mutex
	lastReq *http.Request
	body    []byte
}

func newBackend(t *testing.T, handler http.HandlerFunc) *backend {
	t.Helper()

	b := &backend{}
	b.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.hits.Add(1)
		body, _ := io.ReadAll(r.Body)
		b.mu.Lock()
		b.lastReq = r.Clone(context.Background())
		b.body = body
		b.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(b.Close)
	return b
}

func (b *backend) last() (*http.Request, []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastReq, b.body
}

func okJSON(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func status(code int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_, _ = w.Write([]byte(body))
	}
}

func testConfig(baseURL string) *config.StructuredConfig {
	return &config.StructuredConfig{
		API: config.API{
			PublicURL: baseURL,
			Timeout:   2 * time.Second,
		},
		Gateway: config.Gateway{
			Runtime:           config.RuntimeClient,
			LoginPath:         "/login",
			RedirectDelay:     20 * time.Millisecond,
			SessionRetries:    2,
			SessionRetryDelay: time.Millisecond,
		},
	}
}

func newTestGateway(t *testing.T, cfg *config.StructuredConfig, opts ...Option) *Gateway {
	t.Helper()

	g, err := New(cfg, opts...)
	require.NoError(t, err)
	return g
}

func requireAPIError(t *testing.T, err error) *APIError {
	t.Helper()

	require.Error(t, err)
	apiErr, ok := AsAPIError(err)
	require.True(t, ok, "expected *APIError, got %T", err)
	return apiErr
}

// ── example scenarios ─────────────────────────────────────────────────────────

// A single job is public: the session is never consulted.
func TestDispatch_PublicJobSkipsSessionLookup(t *testing.T) {
	srv := newBackend(t, okJSON(`{"id":"123","title":"Backend Engineer"}`))
	sessions := &fakeAccessor{}
	g := newTestGateway(t, testConfig(srv.URL), WithClientSessions(sessions))

	resp, err := g.Dispatch(context.Background(), Request{Method: http.MethodGet, Path: "/jobs/123"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Zero(t, sessions.Calls())
	req, _ := srv.last()
	assert.Empty(t, req.Header.Get("Authorization"))
}

func TestDispatch_CreateJobCarriesBearer(t *testing.T) {
	srv := newBackend(t, status(http.StatusCreated, `{"id":"1"}`))
	g := newTestGateway(t, testConfig(srv.URL), WithClientSessions(&fakeAccessor{tokens: []string{"abc"}}))

	_, err := g.Dispatch(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/jobs/",
		Body:   models.JobInput{Title: "Data Analyst"},
	})

	require.NoError(t, err)
	req, body := srv.last()
	assert.Equal(t, "Bearer abc", req.Header.Get("Authorization"))
	assert.Equal(t, "/jobs/", req.URL.Path)
	assert.Contains(t, string(body), `"title":"Data Analyst"`)
	assert.Contains(t, req.Header.Get("Content-Type"), "application/json")
}

func TestDispatch_AIGenerateWithoutTokenAbortsLocally(t *testing.T) {
	srv := newBackend(t, okJSON(`{}`))
	sessions := &fakeAccessor{tokens: []string{""}}
	g := newTestGateway(t, testConfig(srv.URL), WithClientSessions(sessions))
	aborts := testutil.ToFloat64(metrics.LocalAbortsTotal)

	resp, err := g.Dispatch(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/jobs/ai-generate",
		Body:   models.AIJobRequest{Title: "SRE"},
	})

	assert.Nil(t, resp)
	apiErr := requireAPIError(t, err)
	assert.Equal(t, "Authentication required. Please log in to continue.", apiErr.Message)
	assert.Equal(t, CodeAuthRequired, apiErr.Code)
	assert.ErrorIs(t, err, ErrAuthRequired)
	assert.Equal(t, 3, sessions.Calls(), "first lookup plus two retries")
	assert.Zero(t, srv.hits.Load())
	assert.Equal(t, aborts+1, testutil.ToFloat64(metrics.LocalAbortsTotal))
}

func TestDispatch_UnauthorizedRedirectsToLogin(t *testing.T) {
	srv := newBackend(t, status(http.StatusUnauthorized, `{"detail":"Could not validate credentials"}`))
	nav := &fakeNavigator{current: "/dashboard"}
	g := newTestGateway(t, testConfig(srv.URL),
		WithClientSessions(&fakeAccessor{tokens: []string{"expired"}}),
		WithNavigator(nav),
	)

	_, err := g.Dispatch(context.Background(), Request{Method: http.MethodGet, Path: "/candidates"})

	apiErr := requireAPIError(t, err)
	assert.Equal(t, "Unauthorized - please login again", apiErr.Message)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.ErrorIs(t, err, ErrUnauthorized)

	assert.Empty(t, nav.Visits(), "navigation is deferred")
	assert.Eventually(t, func() bool { return len(nav.Visits()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"/login"}, nav.Visits())
}

func TestDispatch_ServerDetailBecomesMessage(t *testing.T) {
	srv := newBackend(t, status(http.StatusInternalServerError, `{"detail":"db down"}`))
	g := newTestGateway(t, testConfig(srv.URL), WithClientSessions(&fakeAccessor{tokens: []string{"abc"}}))

	_, err := g.Dispatch(context.Background(), Request{Method: http.MethodGet, Path: "/departments"})

	apiErr := requireAPIError(t, err)
	assert.Equal(t, "db down", apiErr.Message)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.ErrorIs(t, err, ErrServer)
}

// ── properties ────────────────────────────────────────────────────────────────

func TestDispatch_ProtectedPathsCarryBearer(t *testing.T) {
	srv := newBackend(t, okJSON(`{}`))
	g := newTestGateway(t, testConfig(srv.URL), WithClientSessions(&fakeAccessor{tokens: []string{"tok-1"}}))

	requests := []Request{
		{Method: http.MethodGet, Path: "/auth/me"},
		{Method: http.MethodGet, Path: "/jobs"},
		{Method: http.MethodPost, Path: "/jobs"},
		{Method: http.MethodPut, Path: "/jobs/9"},
		{Method: http.MethodPatch, Path: "/applications/5/status"},
		{Method: http.MethodDelete, Path: "/candidates/3"},
		{Method: http.MethodGet, Path: "/dashboard/overview?from=2026-01-01"},
	}

	for _, r := range requests {
		t.Run(r.Method+" "+r.Path, func(t *testing.T) {
			require.Equal(t, AccessProtected, g.Classify(r.Method, r.Path))
			_, err := g.Dispatch(context.Background(), r)
			require.NoError(t, err)
			req, _ := srv.last()
			assert.Equal(t, "Bearer tok-1", req.Header.Get("Authorization"))
		})
	}
}

func TestDispatch_PublicPathsNeverLookUpSession(t *testing.T) {
	srv := newBackend(t, okJSON(`{}`))
	sessions := &fakeAccessor{tokens: []string{"tok"}}
	fallback := &fakeAccessor{tokens: []string{"tok"}}
	g := newTestGateway(t, testConfig(srv.URL), WithClientSessions(sessions), WithSessionEndpoint(fallback))

	requests := []Request{
		{Method: http.MethodPost, Path: "/auth/login"},
		{Method: http.MethodPost, Path: "/auth/refresh"},
		{Method: http.MethodGet, Path: "/health"},
		{Method: http.MethodGet, Path: "/careers/acme/jobs"},
		{Method: http.MethodPost, Path: "/applications/apply"},
		{Method: http.MethodGet, Path: "/jobs/42"},
	}

	for _, r := range requests {
		_, err := g.Dispatch(context.Background(), r)
		require.NoError(t, err)
		req, _ := srv.last()
		assert.Empty(t, req.Header.Get("Authorization"), r.Path)
	}

	assert.Zero(t, sessions.Calls())
	assert.Zero(t, fallback.Calls())
}

func TestDispatch_ProtectedWinsOverStructuralPublicRule(t *testing.T) {
	srv := newBackend(t, okJSON(`{}`))
	sessions := &fakeAccessor{tokens: []string{"abc"}}
	g := newTestGateway(t, testConfig(srv.URL), WithClientSessions(sessions))

	assert.Equal(t, AccessPublic, g.Classify(http.MethodGet, "/jobs/7"))
	assert.Equal(t, AccessProtected, g.Classify(http.MethodPost, "/jobs/"))

	_, err := g.Dispatch(context.Background(), Request{Method: http.MethodPost, Path: "/jobs/"})
	require.NoError(t, err)
	assert.Equal(t, 1, sessions.Calls())
}

func TestDispatch_ResponseBodyUnchanged(t *testing.T) {
	raw := "{\"items\":[{\"id\":\"1\",\"title\":\"Café manager\"}],\n \"total\": 1 ,\"extra\":null}\n"
	srv := newBackend(t, okJSON(raw))
	g := newTestGateway(t, testConfig(srv.URL))

	resp, err := g.Dispatch(context.Background(), Request{Method: http.MethodGet, Path: "/public/jobs"})

	require.NoError(t, err)
	assert.Equal(t, []byte(raw), resp.Body)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var page models.Page[models.Job]
	require.NoError(t, resp.Decode(&page))
	assert.Equal(t, 1, page.Total)
}

func TestDispatch_NotFoundDoesNotRedirect(t *testing.T) {
	srv := newBackend(t, status(http.StatusNotFound, `{"detail":"Job not found"}`))
	nav := &fakeNavigator{current: "/jobs"}
	g := newTestGateway(t, testConfig(srv.URL),
		WithClientSessions(&fakeAccessor{tokens: []string{"abc"}}),
		WithNavigator(nav),
	)

	_, err := g.Dispatch(context.Background(), Request{Method: http.MethodGet, Path: "/jobs/404/applications"})

	apiErr := requireAPIError(t, err)
	assert.Equal(t, CodeNotFound, apiErr.Code)
	assert.Equal(t, "Job not found", apiErr.Message)
	assert.ErrorIs(t, err, ErrNotFound)

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, nav.Visits())
}

func TestDispatch_ForbiddenDoesNotRedirect(t *testing.T) {
	srv := newBackend(t, status(http.StatusForbidden, `{}`))
	nav := &fakeNavigator{current: "/audit-logs"}
	g := newTestGateway(t, testConfig(srv.URL),
		WithClientSessions(&fakeAccessor{tokens: []string{"abc"}}),
		WithNavigator(nav),
	)

	_, err := g.Dispatch(context.Background(), Request{Method: http.MethodGet, Path: "/audit-logs"})

	assert.ErrorIs(t, err, ErrForbidden)
	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, nav.Visits())
}

func TestDispatch_ConcurrentUnauthorizedNavigatesOnce(t *testing.T) {
	srv := newBackend(t, status(http.StatusUnauthorized, `{}`))
	nav := &fakeNavigator{current: "/candidates"}
	g := newTestGateway(t, testConfig(srv.URL),
		WithClientSessions(&fakeAccessor{tokens: []string{"expired"}}),
		WithNavigator(nav),
	)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := g.Dispatch(context.Background(), Request{Method: http.MethodGet, Path: "/candidates"})
			assert.ErrorIs(t, err, ErrUnauthorized)
		}()
	}
	wg.Wait()

	assert.Eventually(t, func() bool { return len(nav.Visits()) == 1 }, time.Second, 5*time.Millisecond)

	_, err := g.Dispatch(context.Background(), Request{Method: http.MethodGet, Path: "/candidates"})
	assert.ErrorIs(t, err, ErrUnauthorized)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, []string{"/login"}, nav.Visits())
}

func TestDispatch_UnauthorizedOnLoginPageDoesNotNavigate(t *testing.T) {
	srv := newBackend(t, status(http.StatusUnauthorized, `{}`))
	nav := &fakeNavigator{current: "/login?next=%2Fjobs"}
	g := newTestGateway(t, testConfig(srv.URL),
		WithClientSessions(&fakeAccessor{tokens: []string{"expired"}}),
		WithNavigator(nav),
	)

	_, err := g.Dispatch(context.Background(), Request{Method: http.MethodGet, Path: "/auth/me"})

	assert.ErrorIs(t, err, ErrUnauthorized)
	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, nav.Visits())
}

func TestDispatch_LocalAbortDoesNotNavigate(t *testing.T) {
	srv := newBackend(t, okJSON(`{}`))
	nav := &fakeNavigator{current: "/jobs"}
	g := newTestGateway(t, testConfig(srv.URL), WithClientSessions(&fakeAccessor{}), WithNavigator(nav))

	_, err := g.Dispatch(context.Background(), Request{Method: http.MethodDelete, Path: "/jobs/1"})

	assert.ErrorIs(t, err, ErrAuthRequired)
	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, nav.Visits())
}

// ── credential lookup ─────────────────────────────────────────────────────────

func TestDispatch_TokenAppearsOnRetry(t *testing.T) {
	srv := newBackend(t, okJSON(`{}`))
	sessions := &fakeAccessor{tokens: []string{"", "late"}}
	g := newTestGateway(t, testConfig(srv.URL), WithClientSessions(sessions))

	_, err := g.Dispatch(context.Background(), Request{Method: http.MethodPost, Path: "/candidates", Body: map[string]string{"email": "a@b.c"}})

	require.NoError(t, err)
	assert.Equal(t, 2, sessions.Calls())
	req, _ := srv.last()
	assert.Equal(t, "Bearer late", req.Header.Get("Authorization"))
}

func TestDispatch_FallsBackToSessionEndpoint(t *testing.T) {
	srv := newBackend(t, okJSON(`{}`))
	primary := &fakeAccessor{err: errors.New("store unavailable")}
	fallback := &fakeAccessor{tokens: []string{"from-endpoint"}}
	g := newTestGateway(t, testConfig(srv.URL), WithClientSessions(primary), WithSessionEndpoint(fallback))

	_, err := g.Dispatch(context.Background(), Request{Method: http.MethodPatch, Path: "/jobs/1/status", Body: models.JobStatusUpdate{Status: models.JobStatusOpen}})

	require.NoError(t, err)
	assert.Equal(t, 3, primary.Calls())
	assert.Equal(t, 1, fallback.Calls())
	req, _ := srv.last()
	assert.Equal(t, "Bearer from-endpoint", req.Header.Get("Authorization"))
}

func TestDispatch_ConfiguredSessionEndpoint(t *testing.T) {
	sessionSrv := newBackend(t, okJSON(`{"tokens":{"accessToken":"raw"},"isAuthenticated":true}`))
	srv := newBackend(t, okJSON(`{}`))

	cfg := testConfig(srv.URL)
	cfg.Session.Endpoint = sessionSrv.URL + "/api/auth/session"
	g := newTestGateway(t, cfg)

	_, err := g.Dispatch(context.Background(), Request{Method: http.MethodDelete, Path: "/departments/1"})

	require.NoError(t, err)
	req, _ := srv.last()
	assert.Equal(t, "Bearer raw", req.Header.Get("Authorization"))
}

func TestDispatch_ServerRuntimeUsesServerAccessor(t *testing.T) {
	srv := newBackend(t, okJSON(`{}`))
	server := &fakeAccessor{tokens: []string{"server-token"}}
	client := &fakeAccessor{tokens: []string{"client-token"}}

	cfg := testConfig(srv.URL)
	cfg.Gateway.Runtime = config.RuntimeServer
	g := newTestGateway(t, cfg, WithServerSessions(server), WithClientSessions(client))

	_, err := g.Dispatch(context.Background(), Request{Method: http.MethodGet, Path: "/interviews"})

	require.NoError(t, err)
	req, _ := srv.last()
	assert.Equal(t, "Bearer server-token", req.Header.Get("Authorization"))
	assert.Zero(t, client.Calls())
}

func TestDispatch_ProtectedReadWithoutTokenFailsOpen(t *testing.T) {
	srv := newBackend(t, okJSON(`[]`))
	g := newTestGateway(t, testConfig(srv.URL), WithClientSessions(&fakeAccessor{}))

	resp, err := g.Dispatch(context.Background(), Request{Method: http.MethodGet, Path: "/categories"})

	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), resp.Body)
	assert.Equal(t, int32(1), srv.hits.Load())
	req, _ := srv.last()
	assert.Empty(t, req.Header.Get("Authorization"))
}

func TestDispatch_StrictReadsAbortWithoutToken(t *testing.T) {
	srv := newBackend(t, okJSON(`[]`))
	cfg := testConfig(srv.URL)
	cfg.Gateway.StrictReads = true
	g := newTestGateway(t, cfg, WithClientSessions(&fakeAccessor{}))

	_, err := g.Dispatch(context.Background(), Request{Method: http.MethodGet, Path: "/categories"})

	assert.ErrorIs(t, err, ErrAuthRequired)
	assert.Zero(t, srv.hits.Load())
}

// ── transport ─────────────────────────────────────────────────────────────────

func TestDispatch_SendsQueryAndRequestID(t *testing.T) {
	srv := newBackend(t, okJSON(`{}`))
	g := newTestGateway(t, testConfig(srv.URL), WithClientSessions(&fakeAccessor{tokens: []string{"t"}}))

	filter := models.JobFilter{Status: models.JobStatusOpen, Search: "go"}
	_, err := g.Dispatch(context.Background(), Request{Method: http.MethodGet, Path: "/jobs", Query: filter.Values()})

	require.NoError(t, err)
	req, _ := srv.last()
	assert.Equal(t, "open", req.URL.Query().Get(models.QueryStatus))
	assert.Equal(t, "go", req.URL.Query().Get(models.QuerySearch))
	assert.NotEmpty(t, req.Header.Get(RequestIDHeader))
}

func TestDispatch_KeepsCallerRequestID(t *testing.T) {
	srv := newBackend(t, okJSON(`{}`))
	g := newTestGateway(t, testConfig(srv.URL))

	_, err := g.Dispatch(context.Background(), Request{
		Method: http.MethodGet,
		Path:   "/health",
		Header: http.Header{RequestIDHeader: []string{"req-42"}, "X-Tenant": []string{"acme"}},
	})

	require.NoError(t, err)
	req, _ := srv.last()
	assert.Equal(t, "req-42", req.Header.Get(RequestIDHeader))
	assert.Equal(t, "acme", req.Header.Get("X-Tenant"))
}

func TestDispatch_AbsoluteURLUnderBase(t *testing.T) {
	srv := newBackend(t, okJSON(`{}`))
	sessions := &fakeAccessor{tokens: []string{"t"}}
	g := newTestGateway(t, testConfig(srv.URL), WithClientSessions(sessions))

	_, err := g.Dispatch(context.Background(), Request{Method: http.MethodGet, Path: srv.URL + "/jobs/5?x=1"})

	require.NoError(t, err)
	assert.Zero(t, sessions.Calls(), "classified as a public single job")
	req, _ := srv.last()
	assert.Equal(t, "/jobs/5", req.URL.Path)
}

func TestDispatch_RejectsForeignAbsoluteURL(t *testing.T) {
	srv := newBackend(t, okJSON(`{}`))
	foreign := newBackend(t, okJSON(`{}`))
	sessions := &fakeAccessor{tokens: []string{"secret"}}
	g := newTestGateway(t, testConfig(srv.URL), WithClientSessions(sessions))

	for _, p := range []string{foreign.URL + "/steal", "//" + foreign.Listener.Addr().String() + "/steal", srv.URL + "0/jobs"} {
		t.Run(p, func(t *testing.T) {
			_, err := g.Dispatch(context.Background(), Request{Method: http.MethodPost, Path: p, Body: map[string]string{"a": "b"}})

			require.ErrorIs(t, err, ErrInvalidRequest)
			assert.Equal(t, AccessProtected, g.Classify(http.MethodGet, p))
		})
	}

	assert.Zero(t, foreign.hits.Load())
	assert.Zero(t, srv.hits.Load())
	assert.Zero(t, sessions.Calls())
}

func TestDispatch_QueryMayCarryURL(t *testing.T) {
	srv := newBackend(t, okJSON(`{}`))
	g := newTestGateway(t, testConfig(srv.URL))

	_, err := g.Dispatch(context.Background(), Request{Method: http.MethodGet, Path: "/health?next=http://elsewhere.test/x"})

	require.NoError(t, err)
	req, _ := srv.last()
	assert.Equal(t, "/health", req.URL.Path)
	assert.Equal(t, "http://elsewhere.test/x", req.URL.Query().Get("next"))
}

func TestDispatch_RequestIDHeaderSpelling(t *testing.T) {
	srv := newBackend(t, okJSON(`{}`))
	g := newTestGateway(t, testConfig(srv.URL))

	for _, key := range []string{"X-Request-ID", "x-request-id", "X-Request-Id"} {
		t.Run(key, func(t *testing.T) {
			_, err := g.Dispatch(context.Background(), Request{
				Method: http.MethodGet,
				Path:   "/health",
				Header: http.Header{key: []string{"req-7"}},
			})

			require.NoError(t, err)
			req, _ := srv.last()
			assert.Equal(t, []string{"req-7"}, req.Header.Values(RequestIDHeader))
		})
	}
}

func TestDispatch_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	g := newTestGateway(t, testConfig(url))
	_, err := g.Dispatch(context.Background(), Request{Method: http.MethodGet, Path: "/health"})

	apiErr := requireAPIError(t, err)
	assert.Equal(t, StatusNetworkFailure, apiErr.Status)
	assert.Equal(t, CodeNetwork, apiErr.Code)
	assert.NotEmpty(t, apiErr.Message)
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestDispatch_Timeout(t *testing.T) {
	srv := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(500 * time.Millisecond):
		}
	})
	cfg := testConfig(srv.URL)
	cfg.API.Timeout = 50 * time.Millisecond
	g := newTestGateway(t, cfg)

	_, err := g.Dispatch(context.Background(), Request{Method: http.MethodGet, Path: "/health"})

	apiErr := requireAPIError(t, err)
	assert.Equal(t, CodeTimeout, apiErr.Code)
	assert.Equal(t, StatusNetworkFailure, apiErr.Status)
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestDispatch_NoTransportRetries(t *testing.T) {
	srv := newBackend(t, status(http.StatusServiceUnavailable, `{"message":"maintenance"}`))
	g := newTestGateway(t, testConfig(srv.URL))

	_, err := g.Dispatch(context.Background(), Request{Method: http.MethodGet, Path: "/health"})

	apiErr := requireAPIError(t, err)
	assert.Equal(t, "maintenance", apiErr.Message)
	assert.Equal(t, int32(1), srv.hits.Load())
}

func TestDispatch_InvalidRequests(t *testing.T) {
	g := newTestGateway(t, testConfig("http://localhost:1"))

	_, err := g.Dispatch(context.Background(), Request{Method: "TRACE", Path: "/health"})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = g.Dispatch(context.Background(), Request{Method: http.MethodGet, Path: "  "})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestDispatch_DefaultsToGet(t *testing.T) {
	srv := newBackend(t, okJSON(`{}`))
	g := newTestGateway(t, testConfig(srv.URL))

	_, err := g.Dispatch(context.Background(), Request{Path: "health"})

	require.NoError(t, err)
	req, _ := srv.last()
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/health", req.URL.Path)
}

// ── construction ──────────────────────────────────────────────────────────────

func TestNew_UpgradesProductionBaseURL(t *testing.T) {
	cfg := testConfig("http://ats-api.fly.dev/api/v1/")
	cfg.API.ProductionDomains = config.DefaultProductionDomains
	g := newTestGateway(t, cfg)

	assert.Equal(t, "https://ats-api.fly.dev/api/v1", g.BaseURL())
}

func TestNew_InvalidBaseURL(t *testing.T) {
	_, err := New(testConfig("http://bad host"))
	assert.Error(t, err)
}

func TestGateway_WaitRedirect(t *testing.T) {
	srv := newBackend(t, status(http.StatusUnauthorized, `{}`))
	nav := &fakeNavigator{current: "/jobs"}
	g := newTestGateway(t, testConfig(srv.URL),
		WithClientSessions(&fakeAccessor{tokens: []string{"expired"}}),
		WithNavigator(nav),
	)

	_, err := g.Dispatch(context.Background(), Request{Method: http.MethodGet, Path: "/candidates"})
	require.ErrorIs(t, err, ErrUnauthorized)

	g.WaitRedirect()
	assert.Equal(t, []string{"/login"}, nav.Visits())
}

func TestGateway_WaitRedirect_NothingPending(t *testing.T) {
	g := newTestGateway(t, testConfig("http://localhost:8000/api/v1"))

	done := make(chan struct{})
	go func() {
		g.WaitRedirect()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WaitRedirect blocked without a pending redirect")
	}
}
