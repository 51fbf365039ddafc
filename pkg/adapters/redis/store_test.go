package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/togglewalk/pkg/adapters/redis"
	"github.com/aretw0/togglewalk/pkg/domain"
	"github.com/aretw0/togglewalk/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := newClient(t)
	ports.RunResultStoreContract(t, redis.NewFromClient(client))
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, client := newClient(t)
	store := redis.NewFromClient(client, redis.WithTTL(time.Second))
	ctx := context.Background()

	outcome := domain.Outcome{Kind: domain.ReachedTarget, Steps: 3}
	require.NoError(t, store.Save(ctx, "fp-ttl", outcome))

	keys, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, keys, "fp-ttl")

	mr.FastForward(2 * time.Second)

	_, err = store.Load(ctx, "fp-ttl")
	assert.ErrorIs(t, err, domain.ErrResultNotFound)
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, client := newClient(t)
	store := redis.NewFromClient(client, redis.WithPrefix("custom:"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "abc", domain.Outcome{Kind: domain.Unreachable}))
	assert.True(t, mr.Exists("custom:abc"))

	raw, err := mr.Get("custom:abc")
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"unreachable","steps":0}`, raw)
}

func TestRedisStore_RejectsInvalid(t *testing.T) {
	mr, client := newClient(t)
	store := redis.NewFromClient(client)
	ctx := context.Background()

	assert.Error(t, store.Save(ctx, "bad", domain.Outcome{Kind: "sideways"}))

	require.NoError(t, mr.Set("togglewalk:result:corrupt", `{"kind":"sideways"}`))
	_, err := store.Load(ctx, "corrupt")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrResultNotFound)
}
