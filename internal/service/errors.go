package service

import (
	"errors"

	"github.com/MKhiriev/go-ats-gateway/internal/gateway"
)

var (
	ErrEmptyID          = errors.New("resource id is empty")
	ErrEmptyCredentials = errors.New("email and password are required")
	ErrNoRefreshToken   = errors.New("session has no refresh token")
	ErrDecodingResponse = errors.New("error decoding backend response")
)

// IsAbsent reports whether err means the requested resource does not exist.
// Single-item reads use it to render an empty state instead of an error.
func IsAbsent(err error) bool {
	return errors.Is(err, gateway.ErrNotFound)
}

// IsDenied reports whether err is a permission refusal. It is recoverable:
// the session stays valid, only this action is not allowed.
func IsDenied(err error) bool {
	return errors.Is(err, gateway.ErrForbidden)
}

// isLoggedOut reports whether the backend no longer knows the session.
func isLoggedOut(err error) bool {
	return errors.Is(err, gateway.ErrUnauthorized) || errors.Is(err, gateway.ErrAuthRequired)
}
