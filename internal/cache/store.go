// Package cache holds the read-side list cache that admin moderation mutates
// optimistically. Entries are keyed by resource name and refreshed lazily
// through a loader, with short TTLs so the database remains the source of
// truth.
package cache

import (
	"context"
	"sync"
	"time"

	"storefront-api/internal/pkg/clock"
)

const (
	KeyServices      = "services"
	KeyAdminOrders   = "admin-orders"
	KeyAdminRequests = "admin-requests"
	KeyAdminStats    = "admin-stats"
)

// Loader fetches the fresh value for a resource key on cache miss.
type Loader func(ctx context.Context) (any, error)

type entry struct {
	value     any
	expiresAt time.Time
}

// Store is a resource-keyed read-through cache. Values are treated as
// immutable once stored; mutators replace the whole value rather than editing
// it in place, which is what makes snapshot/restore exact.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	clk     clock.Clock
}

func NewStore(ttl time.Duration, clk clock.Clock) *Store {
	return &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
		clk:     clk,
	}
}

// Get returns the cached value for key, invoking load on miss or expiry.
func (s *Store) Get(ctx context.Context, key string, load Loader) (any, error) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if ok && s.clk.Now().Before(e.expiresAt) {
		return e.value, nil
	}

	value, err := load(ctx)
	if err != nil {
		return nil, err
	}
	s.Set(key, value)
	return value, nil
}

// Set stores value under key with a fresh TTL.
func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{value: value, expiresAt: s.clk.Now().Add(s.ttl)}
}

// Snapshot returns the current cached value for key, if any. The returned
// value is the exact object that Restore will reinstate.
func (s *Store) Snapshot(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Restore reinstates a previously captured snapshot. A missing snapshot
// (had == false) clears the entry so the next read reloads.
func (s *Store) Restore(key string, value any, had bool) {
	if !had {
		s.Invalidate(key)
		return
	}
	s.Set(key, value)
}

// Invalidate drops the entry for key so the next Get reloads it.
func (s *Store) Invalidate(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}
