package cache

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"storefront-api/internal/events"
)

var ErrMutationInFlight = errors.New("mutation already in flight for this item")

// Mutation describes one optimistic cache update tied to a persistent write.
// Apply rewrites the cached value (must return a new value, never modify the
// input), Commit performs the durable write. On Commit failure the store is
// restored to the exact pre-Apply snapshot.
type Mutation struct {
	// Action labels the operation, e.g. "order.approve". Together with
	// ItemID it forms the in-flight guard key.
	Action string
	ItemID uuid.UUID
	// Key is the cache resource the mutation rewrites.
	Key    string
	Apply  func(current any) any
	Commit func(ctx context.Context) error
	// AlsoInvalidate lists dependent resource keys, typically aggregates,
	// dropped alongside Key once the commit succeeds.
	AlsoInvalidate []string
}

type inflightKey struct {
	action string
	itemID uuid.UUID
}

// Orchestrator serializes moderation mutations per (action, item) pair and
// applies the optimistic-update / rollback protocol against the store.
type Orchestrator struct {
	store *Store
	bus   *events.Bus

	mu       sync.Mutex // guards inFlight
	inFlight map[inflightKey]struct{}
}

func NewOrchestrator(store *Store, bus *events.Bus) *Orchestrator {
	return &Orchestrator{
		store:    store,
		bus:      bus,
		inFlight: make(map[inflightKey]struct{}),
	}
}

// Execute runs m under the in-flight guard. A second call with the same
// (Action, ItemID) while the first is still settling returns
// ErrMutationInFlight without touching the cache. Regardless of Commit
// outcome the resource key is invalidated afterwards so the next read
// reconciles with the database.
func (o *Orchestrator) Execute(ctx context.Context, m Mutation) error {
	key := inflightKey{action: m.Action, itemID: m.ItemID}
	if err := o.acquire(key); err != nil {
		return err
	}
	defer o.release(key)

	snapshot, had := o.store.Snapshot(m.Key)
	if had && m.Apply != nil {
		o.store.Set(m.Key, m.Apply(snapshot))
	}

	err := m.Commit(ctx)
	if err != nil {
		o.store.Restore(m.Key, snapshot, had)
		return err
	}

	o.store.Invalidate(m.Key)
	o.bus.Publish(events.Event{Topic: events.TopicCacheInvalidated, Payload: m.Key})
	for _, key := range m.AlsoInvalidate {
		o.store.Invalidate(key)
		o.bus.Publish(events.Event{Topic: events.TopicCacheInvalidated, Payload: key})
	}
	return nil
}

func (o *Orchestrator) acquire(key inflightKey) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, busy := o.inFlight[key]; busy {
		return ErrMutationInFlight
	}
	o.inFlight[key] = struct{}{}
	return nil
}

func (o *Orchestrator) release(key inflightKey) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.inFlight, key)
}
