package session

import (
	"context"

	"github.com/MKhiriev/go-ats-gateway/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

var (
	sessionCtxKey   = contextKey("session")
	sessionIDCtxKey = contextKey("sessionID")
)

// WithSession returns a copy of ctx carrying s. Server handlers attach the
// session resolved from the incoming request so that backend calls made on
// its behalf are authorised as the same user.
func WithSession(ctx context.Context, s *models.Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey, s)
}

// FromContext returns the session attached by [WithSession].
func FromContext(ctx context.Context) (*models.Session, bool) {
	s, ok := ctx.Value(sessionCtxKey).(*models.Session)
	return s, ok && s != nil
}

// WithID returns a copy of ctx carrying a session id to be looked up in a
// [Store].
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDCtxKey, id)
}

// IDFromContext returns the session id attached by [WithID].
func IDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionIDCtxKey).(string)
	return id, ok && id != ""
}
