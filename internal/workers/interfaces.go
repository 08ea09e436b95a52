// Package workers runs the registry's background jobs.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled or the job
// has nothing left to do.
type Worker interface {
	Run(ctx context.Context)
}
