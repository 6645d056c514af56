// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns immediately; the work happens on a
// goroutine owned by the worker until ctx is cancelled or Stop is called.
// Stop blocks until that goroutine has exited and is safe to call on a
// worker that is not running.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
