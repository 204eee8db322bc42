// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// Session is the credential container issued by the authentication provider.
//
// The gateway only reads it: the provider creates it at login, refreshes it
// transparently and destroys it at logout or expiry. The JSON shape matches
// the provider's session endpoint:
//
//	{"tokens": {"accessToken": "..."}, "isAuthenticated": true, "user": {...}}
type Session struct {
	// ID identifies the session inside a session store. For the CLI it is the
	// profile name; for server runtimes it is the opaque session cookie value.
	ID string `json:"id,omitempty"`

	// Tokens holds the bearer credentials.
	Tokens Tokens `json:"tokens"`

	// IsAuthenticated is set by the provider once the login flow completed.
	IsAuthenticated bool `json:"isAuthenticated"`

	// User is the identity the session was issued for.
	User SessionUser `json:"user"`
}

// Tokens is the bearer credential pair of a [Session].
type Tokens struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken,omitempty"`
	ExpiresAt    time.Time `json:"expiresAt,omitzero"`
}

// SessionUser is the identity part of a [Session].
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name,omitempty"`
}

// AccessToken returns the trimmed bearer token, or an empty string when the
// session is nil or carries no token.
func (s *Session) AccessToken() string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(s.Tokens.AccessToken)
}

// HasToken reports whether the session carries a non-empty access token.
func (s *Session) HasToken() bool {
	return s.AccessToken() != ""
}
