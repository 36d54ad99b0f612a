//go:build unit

package events_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-api/internal/events"
)

func TestBusDeliversToAllSubscribers(t *testing.T) {
	t.Parallel()

	bus := events.NewBus()
	ch1, stop1 := bus.Subscribe(events.TopicSessionInvalidated)
	ch2, stop2 := bus.Subscribe(events.TopicSessionInvalidated)
	defer stop1()
	defer stop2()

	bus.Publish(events.Event{Topic: events.TopicSessionInvalidated})

	for _, ch := range []<-chan events.Event{ch1, ch2} {
		select {
		case ev := <-ch:
			assert.Equal(t, events.TopicSessionInvalidated, ev.Topic)
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive event")
		}
	}
}

func TestBusTopicIsolation(t *testing.T) {
	t.Parallel()

	bus := events.NewBus()
	ch, stop := bus.Subscribe(events.TopicCacheInvalidated)
	defer stop()

	bus.Publish(events.Event{Topic: events.TopicSessionInvalidated})

	select {
	case <-ch:
		t.Fatal("received event from foreign topic")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBusUnsubscribeClosesChannel(t *testing.T) {
	t.Parallel()

	bus := events.NewBus()
	ch, stop := bus.Subscribe(events.TopicCacheInvalidated)
	stop()
	stop() // idempotent

	_, ok := <-ch
	require.False(t, ok)

	// publishing after unsubscribe must not panic
	bus.Publish(events.Event{Topic: events.TopicCacheInvalidated, Payload: "services"})
}

func TestBusDropsWhenSubscriberIsFull(t *testing.T) {
	t.Parallel()

	bus := events.NewBus()
	_, stop := bus.Subscribe(events.TopicCacheInvalidated)
	defer stop()

	// buffer is 16; overflow must not block the publisher
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			bus.Publish(events.Event{Topic: events.TopicCacheInvalidated, Payload: "services"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publisher blocked on slow subscriber")
	}
}
