// Package events provides a small in-process publish/subscribe bus used for
// fan-out of application-level signals such as session invalidation and cache
// refresh notifications.
package events

import (
	"sync"
)

const (
	TopicSessionInvalidated = "session.invalidated"
	TopicCacheInvalidated   = "cache.invalidated"
)

// Event is a bus message. Payload is topic-specific; for
// TopicCacheInvalidated it carries the cache resource key.
type Event struct {
	Topic   string
	Payload string
}

// Bus fans events out to all subscribers of a topic. Delivery is
// non-blocking; a subscriber that stops draining its channel loses events
// rather than stalling publishers.
type Bus struct {
	mu   sync.RWMutex
	subs map[string]map[chan Event]struct{}
}

func NewBus() *Bus {
	return &Bus{subs: make(map[string]map[chan Event]struct{})}
}

// Subscribe registers a buffered channel on topic and returns it with an
// unsubscribe function. The caller must invoke the returned function when
// done; the channel is closed by it.
func (b *Bus) Subscribe(topic string) (<-chan Event, func()) {
	ch := make(chan Event, 16)

	b.mu.Lock()
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[chan Event]struct{})
	}
	b.subs[topic][ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs[topic], ch)
			b.mu.Unlock()
			close(ch)
		})
	}
	return ch, unsubscribe
}

// Publish delivers ev to every current subscriber of its topic.
func (b *Bus) Publish(ev Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subs[ev.Topic] {
		select {
		case ch <- ev:
		default:
		}
	}
}
