// Package workers holds the background jobs that run next to the HTTP
// server. Workers never read or hold key material.
package workers

import "context"

// Worker is a long-running background task. Run blocks until ctx is
// cancelled.
type Worker interface {
	Run(ctx context.Context)
}
