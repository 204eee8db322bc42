// Package workers runs the background jobs of a long-lived process.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers as one.
package workers

import "context"

// Worker is a cancellable background loop.
//
// Start must not block: implementations launch their own goroutine and
// return. Stop cancels that goroutine and waits for it to exit.
//
// [service.RefreshJob] is a Worker.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
