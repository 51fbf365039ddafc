package ports

import (
	"context"
	"time"
)

// UnlockFunc releases a lock taken by DistributedLocker.Lock.
type UnlockFunc func(ctx context.Context) error

// DistributedLocker serialises work on one key across solver instances.
// The Solver locks a graph fingerprint so that replicas sharing a
// ResultStore solve each graph once.
type DistributedLocker interface {
	// Lock blocks until the lock for key is held or ctx is done.
	// The lock expires after ttl even if never released.
	Lock(ctx context.Context, key string, ttl time.Duration) (UnlockFunc, error)
}
