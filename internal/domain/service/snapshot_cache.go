package service

import (
	"context"
	"time"
)

// SnapshotCache caches expensive point-in-time reads (the statistics
// aggregate) for a short TTL. Implementations must collapse concurrent
// loads of the same key into a single upstream call.
type SnapshotCache interface {
	// GetOrLoad returns the cached bytes for key, or invokes load, stores the
	// result for ttl, and returns it.
	GetOrLoad(ctx context.Context, key string, ttl time.Duration, load func(context.Context) ([]byte, error)) ([]byte, error)
}
