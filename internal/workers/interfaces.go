// Package workers runs the gateway's startup and background jobs.
//
// It defines the Worker interface and a Workers aggregate that runs several
// workers in registration order.
package workers

import "context"

// Worker is a unit of startup or background work.
//
// Implementations either block for the duration of their work or spawn
// goroutines internally and return.
type Worker interface {
	Run(ctx context.Context)
}
