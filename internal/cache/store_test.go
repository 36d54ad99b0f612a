//go:build unit

package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-api/internal/cache"
	"storefront-api/internal/pkg/clock"
)

func newStore(t *testing.T) (*cache.Store, *clock.MockClock) {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return cache.NewStore(30*time.Second, clk), clk
}

func TestStoreReadThrough(t *testing.T) {
	t.Parallel()
	store, _ := newStore(t)

	calls := 0
	load := func(ctx context.Context) (any, error) {
		calls++
		return []string{"A", "B"}, nil
	}

	ctx := context.Background()
	v1, err := store.Get(ctx, cache.KeyServices, load)
	require.NoError(t, err)
	v2, err := store.Get(ctx, cache.KeyServices, load)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, v1)
	assert.Equal(t, v1, v2)
	assert.Equal(t, 1, calls, "second read should hit the cache")
}

func TestStoreExpiryReloads(t *testing.T) {
	t.Parallel()
	store, clk := newStore(t)

	calls := 0
	load := func(ctx context.Context) (any, error) {
		calls++
		return calls, nil
	}

	ctx := context.Background()
	_, err := store.Get(ctx, cache.KeyAdminOrders, load)
	require.NoError(t, err)

	clk.Add(31 * time.Second)
	v, err := store.Get(ctx, cache.KeyAdminOrders, load)
	require.NoError(t, err)
	assert.Equal(t, 2, v, "expired entry should be reloaded")
}

func TestStoreLoaderErrorLeavesNoEntry(t *testing.T) {
	t.Parallel()
	store, _ := newStore(t)

	boom := errors.New("db down")
	_, err := store.Get(context.Background(), cache.KeyAdminStats, func(ctx context.Context) (any, error) {
		return nil, boom
	})
	require.ErrorIs(t, err, boom)

	_, had := store.Snapshot(cache.KeyAdminStats)
	assert.False(t, had)
}

func TestStoreRestoreWithoutSnapshotClears(t *testing.T) {
	t.Parallel()
	store, _ := newStore(t)

	store.Set(cache.KeyServices, []string{"A"})
	store.Restore(cache.KeyServices, nil, false)

	_, had := store.Snapshot(cache.KeyServices)
	assert.False(t, had)
}
