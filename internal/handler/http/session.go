// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-ats-gateway/internal/logger"
	"github.com/MKhiriev/go-ats-gateway/internal/session"
)

// getSession writes the current session as JSON. Without a session it
// writes an empty object, which readers treat as "logged out".
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	w.Header().Set("Cache-Control", "no-store")

	s, err := h.sessions.Session(r.Context())
	if errors.Is(err, session.ErrNoSession) {
		writeJSON(w, http.StatusOK, struct{}{})
		return
	}
	if err != nil {
		log.Err(err).Str("func", "*Handler.getSession").Msg("error reading session")
		writeError(w, http.StatusInternalServerError, "session is unavailable")
		return
	}

	if !s.HasToken() {
		writeJSON(w, http.StatusOK, struct{}{})
		return
	}

	writeJSON(w, http.StatusOK, s)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError uses the {"detail": ...} body the gateway understands.
func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
