// Package notify is the cross-view change-notification fabric: a synchronous
// in-process publish/subscribe hub, plus a file watcher that turns writes by
// other processes into the same events.
package notify

import (
	"sync"

	"github.com/google/uuid"
)

// Event names published by the storefront.
const (
	EventWishlistChanged = "wishlist.changed"
	EventWishlistToast   = "wishlist.toast"
	EventFeaturedChanged = "featured.changed"
)

// Event is a named notification with an arbitrary payload.
type Event struct {
	Name    string
	Payload any
}

// Handler receives events synchronously on the publisher's goroutine.
type Handler func(Event)

// Hub is an explicit observer list. Publish delivers to every current
// subscriber of the event name before it returns, so observers can re-render
// without polling.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[uuid.UUID]Handler
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[uuid.UUID]Handler)}
}

// Subscribe registers fn for the named event and returns its unsubscribe
// function. Unsubscribing twice is harmless.
func (h *Hub) Subscribe(name string, fn Handler) func() {
	id := uuid.New()

	h.mu.Lock()
	if h.subs[name] == nil {
		h.subs[name] = make(map[uuid.UUID]Handler)
	}
	h.subs[name][id] = fn
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		delete(h.subs[name], id)
		h.mu.Unlock()
	}
}

// Publish delivers evt to all subscribers of evt.Name, synchronously.
func (h *Hub) Publish(evt Event) {
	h.mu.RLock()
	handlers := make([]Handler, 0, len(h.subs[evt.Name]))
	for _, fn := range h.subs[evt.Name] {
		handlers = append(handlers, fn)
	}
	h.mu.RUnlock()

	for _, fn := range handlers {
		fn(evt)
	}
}
