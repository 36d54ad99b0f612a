package cache

import (
	"context"
	"sync"
	"time"

	"storefront-api/internal/events"
)

// Poller periodically invalidates one cache resource while at least one
// consumer is subscribed. The ticker starts on the first Subscribe and stops
// when the last subscriber releases, so an idle server does no background
// work.
type Poller struct {
	store    *Store
	bus      *events.Bus
	key      string
	interval time.Duration

	mu     sync.Mutex
	count  int
	cancel context.CancelFunc
	done   chan struct{}
}

func NewPoller(store *Store, bus *events.Bus, key string, interval time.Duration) *Poller {
	return &Poller{
		store:    store,
		bus:      bus,
		key:      key,
		interval: interval,
	}
}

// Subscribe registers interest in fresh data for the poller's key and returns
// a release function. Release is idempotent.
func (p *Poller) Subscribe() func() {
	p.mu.Lock()
	p.count++
	if p.count == 1 {
		ctx, cancel := context.WithCancel(context.Background())
		p.cancel = cancel
		p.done = make(chan struct{})
		go p.run(ctx, p.done)
	}
	p.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(p.release)
	}
}

func (p *Poller) release() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.count--
	if p.count == 0 {
		p.cancel()
		p.cancel = nil
	}
}

func (p *Poller) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.store.Invalidate(p.key)
			p.bus.Publish(events.Event{Topic: events.TopicCacheInvalidated, Payload: p.key})
		}
	}
}
