// Package metrics defines and registers the Prometheus metrics of the ATS
// gateway. It is the single source of truth for metric names, labels, and
// help strings.
//
// All metrics are registered with the default Prometheus registry on package
// initialisation and exposed by the session server on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ats_gateway"

// ── Dispatch metrics ──────────────────────────────────────────────────────────

// RequestsTotal counts completed dispatches.
// Labels:
//   - access: "public" or "protected"
//   - method: HTTP method
//   - code: HTTP status, or the symbolic error code for failures without one
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of backend requests dispatched by the gateway.",
	},
	[]string{"access", "method", "code"},
)

// RequestDuration measures dispatch latency including credential lookup.
// Label:
//   - access: "public" or "protected"
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Duration of gateway dispatches from classification to response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"access"},
)

// ── Credential metrics ────────────────────────────────────────────────────────

// CredentialRetriesTotal counts repeated session lookups.
var CredentialRetriesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "credential_retries_total",
		Help:      "Total number of repeated session lookups while waiting for a token.",
	},
)

// CredentialFallbacksTotal counts lookups served by the raw session endpoint.
// Label:
//   - result: "hit" (token found) or "miss"
var CredentialFallbacksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "credential_fallbacks_total",
		Help:      "Total number of raw session endpoint lookups, labelled by result.",
	},
	[]string{"result"},
)

// LocalAbortsTotal counts requests rejected before reaching the network.
var LocalAbortsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "local_aborts_total",
		Help:      "Total number of requests aborted locally for a missing credential.",
	},
)

// LoginRedirectsTotal counts navigations to the login location.
var LoginRedirectsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_redirects_total",
		Help:      "Total number of login navigations triggered by 401 responses.",
	},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionRefreshTotal counts refresh job outcomes.
// Label:
//   - result: "refreshed", "skipped" or "failed"
var SessionRefreshTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_refresh_total",
		Help:      "Total number of session refresh job runs, labelled by result.",
	},
	[]string{"result"},
)
