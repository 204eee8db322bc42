package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-ats-gateway/internal/session"
)

const (
	sessionIDHeader = "X-Session-ID"
	sessionCookie   = "ats_session"
)

// withSessionID attaches the caller's session id, taken from the
// X-Session-ID header or the ats_session cookie, to the request context.
// Server-runtime accessors resolve it against the shared store; the client
// accessor ignores it.
func (h *Handler) withSessionID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(sessionIDHeader))
		if id == "" {
			if c, err := r.Cookie(sessionCookie); err == nil {
				id = strings.TrimSpace(c.Value)
			}
		}

		if id != "" {
			r = r.WithContext(session.WithID(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}
