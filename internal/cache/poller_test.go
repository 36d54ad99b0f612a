//go:build unit

package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"storefront-api/internal/cache"
	"storefront-api/internal/events"
	"storefront-api/internal/pkg/clock"
)

func TestPollerInvalidatesWhileSubscribed(t *testing.T) {
	t.Parallel()

	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	store := cache.NewStore(time.Hour, clk)
	bus := events.NewBus()
	poller := cache.NewPoller(store, bus, cache.KeyServices, 10*time.Millisecond)

	ch, stop := bus.Subscribe(events.TopicCacheInvalidated)
	defer stop()

	store.Set(cache.KeyServices, []string{"A"})
	release := poller.Subscribe()

	select {
	case ev := <-ch:
		assert.Equal(t, cache.KeyServices, ev.Payload)
	case <-time.After(time.Second):
		t.Fatal("poller never ticked")
	}
	_, had := store.Snapshot(cache.KeyServices)
	assert.False(t, had)

	release()
	release() // idempotent
}

func TestPollerStopsAfterLastRelease(t *testing.T) {
	t.Parallel()

	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	store := cache.NewStore(time.Hour, clk)
	bus := events.NewBus()
	poller := cache.NewPoller(store, bus, cache.KeyServices, 5*time.Millisecond)

	r1 := poller.Subscribe()
	r2 := poller.Subscribe()
	r1()
	r2()

	// allow any in-flight tick to settle, then verify no further activity
	time.Sleep(20 * time.Millisecond)
	store.Set(cache.KeyServices, []string{"A"})
	time.Sleep(30 * time.Millisecond)

	_, had := store.Snapshot(cache.KeyServices)
	assert.True(t, had, "stopped poller must not invalidate")
}
