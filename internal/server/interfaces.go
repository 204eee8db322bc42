package server

import "context"

// Server defines the lifecycle contract of the process.
//
// Run blocks until ctx is cancelled (or a termination signal arrives), then
// shuts everything down and returns.
type Server interface {
	Run(ctx context.Context) error
	// Addr is the address the HTTP listener is bound to once Run started.
	Addr() string
}
