//go:build unit

package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"rental-inventory/internal/infra"
	"rental-inventory/internal/pkg/clock"
	"rental-inventory/internal/pkg/config"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Week  string `json:"week"`
	Count int    `json:"count"`
}

func TestInMemoryCache(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC)

	t.Run("returns stored value before expiry", func(t *testing.T) {
		c := NewInMemoryCache(clock.NewMockClock(now))
		require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))

		got, err := c.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), got)
	})

	t.Run("expires after ttl", func(t *testing.T) {
		mc := clock.NewMockClock(now)
		c := NewInMemoryCache(mc)
		require.NoError(t, c.Set(ctx, "k", []byte("v"), 30*time.Second))

		mc.Add(30 * time.Second)
		_, err := c.Get(ctx, "k")
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("delete removes entry", func(t *testing.T) {
		c := NewInMemoryCache(clock.NewMockClock(now))
		require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
		require.NoError(t, c.Delete(ctx, "k"))

		_, err := c.Get(ctx, "k")
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("missing key", func(t *testing.T) {
		c := NewInMemoryCache(clock.NewMockClock(now))
		_, err := c.Get(ctx, "nope")
		assert.ErrorIs(t, err, ErrCacheMiss)
	})
}

func TestJSONHelpers(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryCache(clock.NewMockClock(time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC)))

	in := payload{Week: "2024-03-11", Count: 3}
	require.NoError(t, SetJSON(ctx, c, "availability:2024-03-11", in, time.Minute))

	var out payload
	require.NoError(t, GetJSON(ctx, c, "availability:2024-03-11", &out))
	assert.Equal(t, in, out)

	require.NoError(t, c.Set(ctx, "broken", []byte("{"), time.Minute))
	err := GetJSON(ctx, c, "broken", &out)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindCacheFailure))

	err = SetJSON(ctx, c, "unencodable", make(chan int), time.Minute)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindCacheFailure))
}

func TestRedisCache_ConnectionErrorsAreCacheFailures(t *testing.T) {
	ctx := context.Background()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	c := NewRedisCache(client, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := c.Get(ctx, "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
	assert.True(t, infra.IsKind(err, infra.KindCacheFailure))

	err = c.Set(ctx, "k", []byte("v"), time.Minute)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindCacheFailure))

	err = c.Delete(ctx, "k")
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindCacheFailure))
	assert.False(t, infra.IsKind(err, infra.KindDBFailure))
}

func TestNoopCache(t *testing.T) {
	ctx := context.Background()
	c := NoopCache{}

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.NoError(t, c.Delete(ctx, "k"))
}

func TestNewCache_Disabled(t *testing.T) {
	c := NewCache(config.CacheConfig{Enabled: false}, nil)
	assert.IsType(t, NoopCache{}, c)
}
