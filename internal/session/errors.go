package session

import "errors"

var (
	// ErrNotFound is returned by a [Store] when no session exists for an id.
	ErrNotFound = errors.New("session not found")
	// ErrNoSession is returned by the server accessor when the context carries
	// neither a session nor a session id.
	ErrNoSession = errors.New("no session in context")
	// ErrInvalidToken is returned when an access token cannot be inspected.
	ErrInvalidToken = errors.New("invalid access token")
)
