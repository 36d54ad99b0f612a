package api

import (
	"io"

	"github.com/gin-gonic/gin"

	"storefront-api/internal/cache"
	"storefront-api/internal/events"
)

type EventsHandler struct {
	bus    *events.Bus
	poller *cache.Poller
}

func NewEventsHandler(bus *events.Bus, poller *cache.Poller) *EventsHandler {
	return &EventsHandler{
		bus:    bus,
		poller: poller,
	}
}

// @Summary Event stream
// @Description Server-sent events for cache refreshes and session invalidation.
// @Description Holding the stream open keeps the services poller running.
// @Tags events
// @Produce text/event-stream
// @Router /events [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	release := h.poller.Subscribe()
	defer release()

	cacheCh, unsubCache := h.bus.Subscribe(events.TopicCacheInvalidated)
	defer unsubCache()
	sessionCh, unsubSession := h.bus.Subscribe(events.TopicSessionInvalidated)
	defer unsubSession()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-cacheCh:
			if !ok {
				return false
			}
			c.SSEvent(ev.Topic, ev.Payload)
			return true
		case ev, ok := <-sessionCh:
			if !ok {
				return false
			}
			c.SSEvent(ev.Topic, ev.Payload)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
