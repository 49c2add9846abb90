// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// Run starts the worker's execution and Stop shuts it down.
//
// Implementations are expected to spawn goroutines internally from Run and
// block in Stop until those goroutines have exited.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}

// Persister is the slice of the application state the autosave worker
// needs. Persist must be called with the lock held.
type Persister interface {
	Lock()
	Unlock()
	Persist(ctx context.Context) error
}
