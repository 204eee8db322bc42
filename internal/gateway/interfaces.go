// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package gateway is the single HTTP client through which every call to the
// ATS backend REST API is made.
//
// For each request the [Gateway] classifies the endpoint as public or
// protected ([RouteTable]), attaches the bearer token of the current session
// to protected calls, dispatches the request and coerces every failure into
// an [*APIError]. A 401 additionally schedules a single deferred navigation
// to the login location through a [Navigator].
package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/gateway_mock.go -package=mock

// Dispatcher sends one logical request to the backend. Implementations return
// either a successful response or an [*APIError].
type Dispatcher interface {
	Dispatch(ctx context.Context, req Request) (*Response, error)
}

// Navigator moves the user to another location. A browser would change the
// page; the CLI clears the local session and prints a hint instead.
type Navigator interface {
	// CurrentPath returns the location the user is on.
	CurrentPath() string
	// Navigate moves the user to path.
	Navigate(path string)
}

// Request describes one backend call. Path is relative to the gateway's base
// URL; Body, when non-nil, is sent as JSON unless it is a []byte or string.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   any
}

// Response is a successful backend response. Body holds the bytes exactly as
// received.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Decode unmarshals the JSON body into v. An empty body leaves v untouched.
func (r *Response) Decode(v any) error {
	if len(r.Body) == 0 {
		return nil
	}
	return json.Unmarshal(r.Body, v)
}
