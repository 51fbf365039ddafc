package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/aretw0/togglewalk/pkg/adapters/memory"
	"github.com/aretw0/togglewalk/pkg/domain"
	"github.com/aretw0/togglewalk/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStore_Contract(t *testing.T) {
	ports.RunResultStoreContract(t, memory.NewStore())
}

func TestInMemoryStore_Concurrent(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("fp-%02d", i)
			_ = store.Save(ctx, key, domain.Outcome{Kind: domain.ReachedTarget, Steps: uint64(i)})
			_, _ = store.Load(ctx, key)
		}(i)
	}
	wg.Wait()

	keys, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, keys, 32)
	assert.Equal(t, "fp-00", keys[0])
}
