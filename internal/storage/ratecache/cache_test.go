package ratecache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-fx/internal/currency"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDRESS")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDRESS not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	require.NoError(t, client.Ping(context.Background()).Err())

	cache := NewWithClient(client, time.Minute)
	t.Cleanup(func() {
		_ = cache.Invalidate(context.Background(), currency.USD)
		_ = cache.Close()
	})
	return cache
}

func TestKey(t *testing.T) {
	assert.Equal(t, "exchange_rates:HUF", key(currency.HUF))
	assert.Equal(t, "exchange_rates:HUF:version", versionKey(currency.HUF))
}

func TestCache_MissSetHitInvalidate(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()
	require.NoError(t, cache.Invalidate(ctx, currency.USD))

	_, version, ok, err := cache.Get(ctx, currency.USD)
	require.NoError(t, err)
	assert.False(t, ok)

	updatedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rates := []currency.ExchangeRate{
		{Base: currency.EUR, Target: currency.USD, Rate: decimal.RequireFromString("1.1"), UpdatedAt: updatedAt},
		{Base: currency.GBP, Target: currency.USD, Rate: decimal.RequireFromString("1.2725"), UpdatedAt: updatedAt},
	}
	require.NoError(t, cache.Set(ctx, currency.USD, version, rates))

	got, _, ok, err := cache.Get(ctx, currency.USD)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got, 2)
	assert.Equal(t, currency.GBP, got[1].Base)
	assert.True(t, got[1].Rate.Equal(rates[1].Rate))
	assert.True(t, got[0].UpdatedAt.Equal(updatedAt))

	require.NoError(t, cache.Invalidate(ctx, currency.USD))
	_, _, ok, err = cache.Get(ctx, currency.USD)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCache_SetAfterInvalidateIsDropped(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()
	require.NoError(t, cache.Invalidate(ctx, currency.USD))

	_, readVersion, ok, err := cache.Get(ctx, currency.USD)
	require.NoError(t, err)
	require.False(t, ok)

	// a rate upsert commits and invalidates while the reader is still on the database
	require.NoError(t, cache.Invalidate(ctx, currency.USD))

	stale := []currency.ExchangeRate{{Base: currency.EUR, Target: currency.USD, Rate: decimal.RequireFromString("1.05")}}
	require.NoError(t, cache.Set(ctx, currency.USD, readVersion, stale))

	_, currentVersion, ok, err := cache.Get(ctx, currency.USD)
	require.NoError(t, err)
	assert.False(t, ok, "list read before the invalidation must not be cached")
	assert.Equal(t, readVersion+1, currentVersion)

	fresh := []currency.ExchangeRate{{Base: currency.EUR, Target: currency.USD, Rate: decimal.RequireFromString("1.10")}}
	require.NoError(t, cache.Set(ctx, currency.USD, currentVersion, fresh))
	got, _, ok, err := cache.Get(ctx, currency.USD)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, got[0].Rate.Equal(decimal.RequireFromString("1.10")))
}
