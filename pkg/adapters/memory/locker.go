package memory

import (
	"context"
	"sync"
	"time"

	"github.com/aretw0/togglewalk/pkg/ports"
)

// Locker implements ports.DistributedLocker within one process.
// The ttl is ignored; locks are held until released.
type Locker struct {
	mu    sync.Mutex
	locks map[string]chan struct{}
}

// NewLocker creates an in-process locker.
func NewLocker() *Locker {
	return &Locker{locks: make(map[string]chan struct{})}
}

// Lock waits until key is free or ctx is done.
func (l *Locker) Lock(ctx context.Context, key string, _ time.Duration) (ports.UnlockFunc, error) {
	for {
		l.mu.Lock()
		held, busy := l.locks[key]
		if !busy {
			mine := make(chan struct{})
			l.locks[key] = mine
			l.mu.Unlock()
			return func(context.Context) error {
				l.mu.Lock()
				if l.locks[key] == mine {
					delete(l.locks, key)
					close(mine)
				}
				l.mu.Unlock()
				return nil
			}, nil
		}
		l.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-held:
		}
	}
}

var _ ports.DistributedLocker = (*Locker)(nil)
