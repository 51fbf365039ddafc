package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/togglewalk/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunResultStoreContract runs a suite of tests to verify that a ResultStore
// implementation adheres to the interface contract.
func RunResultStoreContract(t *testing.T, store ResultStore) {
	ctx := context.Background()
	key := "contract-" + time.Now().Format("20060102150405.000000000")

	t.Run("Save and Load", func(t *testing.T) {
		want := domain.Outcome{Kind: domain.CycleDetected, Steps: 1 << 40}
		require.NoError(t, store.Save(ctx, key, want))

		got, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("Overwrite", func(t *testing.T) {
		want := domain.Outcome{Kind: domain.ReachedTarget, Steps: 12}
		require.NoError(t, store.Save(ctx, key, want))

		got, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "missing-"+key)
		assert.ErrorIs(t, err, domain.ErrResultNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, key, domain.Outcome{Kind: domain.Unreachable}))
		require.NoError(t, store.Delete(ctx, key))

		_, err := store.Load(ctx, key)
		assert.ErrorIs(t, err, domain.ErrResultNotFound, "Load after Delete should return ErrResultNotFound")
	})

	t.Run("List", func(t *testing.T) {
		k1, k2 := key+"-1", key+"-2"
		require.NoError(t, store.Save(ctx, k1, domain.Outcome{Kind: domain.ReachedTarget, Steps: 1}))
		require.NoError(t, store.Save(ctx, k2, domain.Outcome{Kind: domain.Unreachable}))
		defer func() {
			_ = store.Delete(ctx, k1)
			_ = store.Delete(ctx, k2)
		}()

		keys, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, keys, k1)
		assert.Contains(t, keys, k2)
	})
}
