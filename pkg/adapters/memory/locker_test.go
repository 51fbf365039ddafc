package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aretw0/togglewalk/pkg/adapters/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocker_SerialisesKey(t *testing.T) {
	locker := memory.NewLocker()
	ctx := context.Background()

	var mu sync.Mutex
	inside, maxInside := 0, 0
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := locker.Lock(ctx, "fp", time.Second)
			require.NoError(t, err)
			mu.Lock()
			inside++
			if inside > maxInside {
				maxInside = inside
			}
			mu.Unlock()
			time.Sleep(time.Millisecond)
			mu.Lock()
			inside--
			mu.Unlock()
			_ = unlock(ctx)
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, maxInside)
}

func TestLocker_ContextCanceled(t *testing.T) {
	locker := memory.NewLocker()
	unlock, err := locker.Lock(context.Background(), "fp", 0)
	require.NoError(t, err)
	defer unlock(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = locker.Lock(ctx, "fp", 0)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	other, err := locker.Lock(context.Background(), "other", 0)
	require.NoError(t, err)
	assert.NoError(t, other(context.Background()))
}
