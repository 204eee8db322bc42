package store

import (
	"context"

	"github.com/MKhiriev/go-ats-gateway/internal/session"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionRepository persists the client runtime's sessions, one per profile.
type SessionRepository interface {
	session.Store

	// Profiles lists the profiles that have a stored session.
	Profiles(ctx context.Context) ([]string, error)
}
