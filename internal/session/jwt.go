package session

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-ats-gateway/models"
	"github.com/golang-jwt/jwt/v5"
)

// ParseClaims decodes the claims of an access token without verifying its
// signature. The backend owns the signing key; the client only needs to know
// who the token belongs to and when it expires.
func ParseClaims(accessToken string) (*models.TokenClaims, error) {
	claims := &models.TokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return claims, nil
}

// ExpiresWithin reports whether the session's access token expires within d
// of now. Sessions without a token never need refreshing. The token's exp
// claim wins over Tokens.ExpiresAt when both are present.
func ExpiresWithin(s *models.Session, d time.Duration, now time.Time) (bool, error) {
	if !s.HasToken() {
		return false, nil
	}

	claims, err := ParseClaims(s.AccessToken())
	if err != nil {
		return false, err
	}

	left, ok := claims.ExpiresIn(now)
	if !ok {
		if s.Tokens.ExpiresAt.IsZero() {
			return false, nil
		}
		left = s.Tokens.ExpiresAt.Sub(now)
	}

	return left <= d, nil
}
