// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-ats-gateway/internal/config"
	"github.com/MKhiriev/go-ats-gateway/internal/logger"
	"github.com/MKhiriev/go-ats-gateway/internal/metrics"
	"github.com/MKhiriev/go-ats-gateway/internal/session"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// RequestIDHeader carries the per-dispatch identifier.
const RequestIDHeader = "X-Request-ID"

// Gateway is the HTTP/REST implementation of [Dispatcher]. It is safe for
// concurrent use.
type Gateway struct {
	client      *resty.Client
	baseURL     string
	routes      RouteTable
	credentials *credentials
	redirector  *loginRedirector
	strictReads bool
	logger      *logger.Logger
}

type options struct {
	logger    *logger.Logger
	navigator Navigator
	server    session.Accessor
	client    session.Accessor
	endpoint  session.Accessor
	routes    RouteTable
}

// Option customises a [Gateway].
type Option func(*options)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithNavigator sets the navigator used after a 401. Without one no
// navigation happens.
func WithNavigator(n Navigator) Option {
	return func(o *options) { o.navigator = n }
}

// WithServerSessions sets the accessor consulted in the server runtime.
func WithServerSessions(a session.Accessor) Option {
	return func(o *options) { o.server = a }
}

// WithClientSessions sets the accessor consulted in the client runtime.
func WithClientSessions(a session.Accessor) Option {
	return func(o *options) { o.client = a }
}

// WithSessionEndpoint sets the last-resort accessor, replacing the one built
// from the configured session endpoint.
func WithSessionEndpoint(a session.Accessor) Option {
	return func(o *options) { o.endpoint = a }
}

// WithRoutes replaces [DefaultRoutes].
func WithRoutes(t RouteTable) Option {
	return func(o *options) { o.routes = t }
}

// New constructs a [Gateway] from cfg. The base URL is resolved by
// [ResolveBaseURL]; the session accessor is chosen by cfg.Gateway.Runtime.
//
// Returns an error if the resolved base URL is invalid.
func New(cfg *config.StructuredConfig, opts ...Option) (*Gateway, error) {
	o := options{logger: logger.Nop(), routes: DefaultRoutes()}
	for _, opt := range opts {
		opt(&o)
	}

	baseURL, err := ResolveBaseURL(cfg.API, cfg.Gateway.Runtime)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	primary := o.client
	if cfg.Gateway.Runtime == config.RuntimeServer {
		primary = o.server
	}

	fallback := o.endpoint
	if fallback == nil && strings.TrimSpace(cfg.Session.Endpoint) != "" {
		fallback = session.NewEndpointAccessor(cfg.Session.Endpoint, cfg.API.Timeout)
	}

	loginPath := cfg.Gateway.LoginPath
	if loginPath == "" {
		loginPath = config.DefaultLoginPath
	}

	log := o.logger.WithStr("component", "gateway")

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.API.Timeout).
		SetHeader("Accept", "application/json").
		SetLogger(restyLogger{log})

	return &Gateway{
		client:  client,
		baseURL: baseURL,
		routes:  o.routes,
		credentials: &credentials{
			primary:  primary,
			fallback: fallback,
			attempts: uint(cfg.Gateway.SessionRetries) + 1,
			delay:    cfg.Gateway.SessionRetryDelay,
			logger:   log,
		},
		redirector: &loginRedirector{
			nav:       o.navigator,
			loginPath: loginPath,
			delay:     cfg.Gateway.RedirectDelay,
			logger:    log,
		},
		strictReads: cfg.Gateway.StrictReads,
		logger:      log,
	}, nil
}

// BaseURL returns the resolved backend base URL.
func (g *Gateway) BaseURL() string {
	return g.baseURL
}

// WaitRedirect blocks until a login redirect scheduled by an earlier 401 has
// been handed to the navigator. Short-lived processes call it before exiting.
func (g *Gateway) WaitRedirect() {
	g.redirector.wait()
}

// Classify returns how the gateway treats method and path. Paths outside
// the base URL are protected.
func (g *Gateway) Classify(method, path string) Access {
	target, err := g.target(path)
	if err != nil {
		return AccessProtected
	}
	return g.routes.Classify(method, target)
}

// Dispatch implements [Dispatcher].
//
// Protected requests get the current session's token as a bearer credential.
// Without a token, mutating requests (and reads when strict reads are on)
// fail with [ErrAuthRequired] before any network call; other reads are sent
// without a credential. Failures are never retried.
func (g *Gateway) Dispatch(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	method := strings.ToUpper(strings.TrimSpace(req.Method))
	if method == "" {
		method = http.MethodGet
	}
	if !isSupportedMethod(method) {
		return nil, newInvalidRequestError(fmt.Sprintf("unsupported method %q", req.Method))
	}
	if strings.TrimSpace(req.Path) == "" {
		return nil, newInvalidRequestError("empty request path")
	}

	target, err := g.target(req.Path)
	if err != nil {
		return nil, newInvalidRequestError(err.Error())
	}
	path := normalizePath(target)
	access := g.routes.Classify(method, path)

	header := canonicalHeader(req.Header)
	requestID := header.Get(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	header.Del(RequestIDHeader)

	log := g.logger.WithStr("request_id", requestID).
		WithStr("method", method).
		WithStr("path", path).
		WithStr("access", access.String())

	r := g.client.R().SetContext(ctx)
	if len(header) > 0 {
		r.SetHeaderMultiValues(header)
	}
	r.SetHeader(RequestIDHeader, requestID)
	if len(req.Query) > 0 {
		r.SetQueryParamsFromValues(req.Query)
	}
	if req.Body != nil {
		r.SetBody(req.Body)
	}

	if access == AccessProtected {
		if token := g.credentials.token(ctx); token != "" {
			r.SetHeader("Authorization", "Bearer "+token)
		} else if isMutating(method) || g.strictReads {
			metrics.LocalAbortsTotal.Inc()
			log.Info().Msg("request aborted: no credential")
			apiErr := newAuthRequiredError()
			g.record(access, method, apiErr.Code, start)
			return nil, apiErr
		} else {
			log.Debug().Msg("protected read sent without credential")
		}
	}

	resp, err := r.Execute(method, target)
	if err != nil {
		apiErr := newTransportError(err)
		log.Warn().Err(err).Str("code", apiErr.Code).Msg("request failed")
		g.record(access, method, apiErr.Code, start)
		return nil, apiErr
	}

	status := resp.StatusCode()
	if status >= http.StatusBadRequest {
		apiErr := newHTTPError(status, resp.Body())
		g.record(access, method, strconv.Itoa(status), start)

		switch status {
		case http.StatusUnauthorized:
			scheduled := g.redirector.schedule()
			log.Info().Bool("redirect", scheduled).Msg("unauthorized")
		case http.StatusNotFound:
			log.Debug().Msg("not found")
		case http.StatusForbidden:
			log.Info().Msg("forbidden")
		default:
			log.Warn().Int("status", apiErr.Status).Str("message", apiErr.Message).Msg("request rejected")
		}
		return nil, apiErr
	}

	g.record(access, method, strconv.Itoa(status), start)
	log.Debug().Int("status", status).Dur("took", time.Since(start)).Msg("request completed")

	return &Response{
		Status: status,
		Header: resp.Header(),
		Body:   resp.Body(),
	}, nil
}

// target makes p relative to the base URL when it points below it and
// guarantees a leading slash on relative paths. Absolute URLs on any other
// origin are rejected so credentials never leave the backend.
func (g *Gateway) target(p string) (string, error) {
	p = strings.TrimSpace(p)
	if rest, ok := strings.CutPrefix(p, g.baseURL); ok &&
		(rest == "" || strings.HasPrefix(rest, "/") || strings.HasPrefix(rest, "?")) {
		p = rest
	}

	u, err := url.Parse(p)
	if err != nil {
		return "", fmt.Errorf("invalid request path %q", p)
	}
	if u.Host != "" {
		return "", fmt.Errorf("%s is outside %s", u.Redacted(), g.baseURL)
	}

	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p, nil
}

// canonicalHeader copies h with canonical keys so lookups match however the
// caller spelled them.
func canonicalHeader(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, values := range h {
		for _, v := range values {
			out.Add(k, v)
		}
	}
	return out
}

func (g *Gateway) record(access Access, method, code string, start time.Time) {
	metrics.RequestsTotal.WithLabelValues(access.String(), method, code).Inc()
	metrics.RequestDuration.WithLabelValues(access.String()).Observe(time.Since(start).Seconds())
}

func isSupportedMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

func isMutating(method string) bool {
	return method != http.MethodGet
}

// restyLogger routes resty's own diagnostics into the gateway logger.
type restyLogger struct {
	l *logger.Logger
}

func (r restyLogger) Errorf(format string, v ...any) { r.l.Error().Msgf(format, v...) }
func (r restyLogger) Warnf(format string, v ...any)  { r.l.Warn().Msgf(format, v...) }
func (r restyLogger) Debugf(format string, v ...any) { r.l.Debug().Msgf(format, v...) }
