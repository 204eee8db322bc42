// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session provides read access to the sessions issued by the ATS
// authentication provider.
//
// Three [Accessor] implementations mirror the places a session can live:
//   - [NewServerAccessor] reads the session attached to the request context
//     or looks it up by id in a shared [Store] (server runtime).
//   - [NewClientAccessor] reads the locally persisted session of a profile
//     and caches it briefly (client runtime).
//   - [NewEndpointAccessor] fetches the raw session endpoint over HTTP and is
//     used as the last-resort fallback.
package session

import (
	"context"

	"github.com/MKhiriev/go-ats-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_mock.go -package=mock

// Accessor returns the current session. A session without a token is a valid
// result; implementations return an error only when the lookup itself fails.
type Accessor interface {
	Session(ctx context.Context) (*models.Session, error)
}

// Store persists sessions by id.
type Store interface {
	// Get returns the session stored under id or [ErrNotFound].
	Get(ctx context.Context, id string) (*models.Session, error)
	// Save stores s under s.ID, replacing any previous value.
	Save(ctx context.Context, s *models.Session) error
	// Delete removes the session stored under id. Deleting a missing session
	// is not an error.
	Delete(ctx context.Context, id string) error
}

// AccessorFunc adapts a plain function to [Accessor].
type AccessorFunc func(ctx context.Context) (*models.Session, error)

// Session implements [Accessor].
func (f AccessorFunc) Session(ctx context.Context) (*models.Session, error) {
	return f(ctx)
}
