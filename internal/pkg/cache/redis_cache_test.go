package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, *RedisCache) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, NewRedisCache(client)
}

func TestRedisCache_SetGetDelete(t *testing.T) {
	mr, c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "cache:/api/v1/jobs", []byte("body"), time.Minute))

	got, err := c.Get(ctx, "cache:/api/v1/jobs")
	require.NoError(t, err)
	assert.Equal(t, []byte("body"), got)
	assert.Equal(t, time.Minute, mr.TTL("cache:/api/v1/jobs"))

	deleted, err := c.Delete(ctx, "cache:/api/v1/jobs")
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err = c.Get(ctx, "cache:/api/v1/jobs")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisCache_EmptyKey(t *testing.T) {
	_, c := newTestCache(t)
	ctx := context.Background()

	assert.Error(t, c.Set(ctx, "", nil, time.Second))
	_, err := c.Get(ctx, "")
	assert.Error(t, err)
	_, _, err = c.IncrWindow(ctx, "", time.Second)
	assert.Error(t, err)
}

func TestRedisCache_IncrWindow(t *testing.T) {
	mr, c := newTestCache(t)
	ctx := context.Background()

	count, ttl, err := c.IncrWindow(ctx, "throttle:anon_burst:1.2.3.4", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, time.Minute, ttl)

	count, ttl, err = c.IncrWindow(ctx, "throttle:anon_burst:1.2.3.4", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.True(t, ttl > 0 && ttl <= time.Minute)

	mr.FastForward(time.Minute + time.Second)

	count, _, err = c.IncrWindow(ctx, "throttle:anon_burst:1.2.3.4", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRedisCache_Health(t *testing.T) {
	mr, c := newTestCache(t)
	require.NoError(t, c.Health(context.Background()))

	mr.Close()
	assert.Error(t, c.Health(context.Background()))
}
