package secondary

import (
	"context"
	"time"
)

// RunGuard rejects a second evaluation for the same key while one is running.
type RunGuard interface {
	// Acquire returns errs.ErrRunInFlight when key is already held. The
	// returned release func must be called once the run finished.
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(), err error)
}
