package models

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set the backend embeds into access tokens.
//
// The client never verifies the signature (the backend does); the claims are
// inspected only to learn the expiry and the identity behind a session.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Email of the token owner.
	Email string `json:"email,omitempty"`

	// Role of the token owner.
	Role string `json:"role,omitempty"`
}

// ExpiresIn returns how long the token stays valid relative to now. Tokens
// without an exp claim never expire and report a zero duration with ok=false.
func (c *TokenClaims) ExpiresIn(now time.Time) (time.Duration, bool) {
	if c.ExpiresAt == nil {
		return 0, false
	}
	return c.ExpiresAt.Sub(now), true
}

// UserID returns the subject claim.
func (c *TokenClaims) UserID() (string, error) {
	sub, err := c.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting subject from token: %w", err)
	}
	return sub, nil
}
