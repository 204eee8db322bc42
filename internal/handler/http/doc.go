// Package http implements the local session endpoint.
//
// It exposes the current profile's session to other local processes that
// cannot read the session database (the raw session endpoint the gateway
// falls back to), together with health, version and Prometheus metrics
// routes. Request tracing and access logging are handled here as
// middleware.
package http
