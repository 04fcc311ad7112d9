// Package orderstream provides the in-process order change stream.
// Command handlers publish snapshots after commit; tracking views and
// driver-side publishers subscribe per order.
package orderstream

import (
	"sync"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
)

// Hub fans order snapshots out to per-order subscribers.
// Delivery is synchronous and in publish order: a subscriber's callback runs
// on the publishing goroutine, so callbacks must be quick and must not
// publish re-entrantly.
type Hub struct {
	mu     sync.RWMutex
	nextID int
	subs   map[kernel.UUID]map[int]func(ports.OrderSnapshot)
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		subs: make(map[kernel.UUID]map[int]func(ports.OrderSnapshot)),
	}
}

// Publish delivers a snapshot to every subscriber of its order.
func (h *Hub) Publish(snapshot ports.OrderSnapshot) {
	h.mu.RLock()
	callbacks := make([]func(ports.OrderSnapshot), 0, len(h.subs[snapshot.OrderID]))
	for _, callback := range h.subs[snapshot.OrderID] {
		callbacks = append(callbacks, callback)
	}
	h.mu.RUnlock()

	for _, callback := range callbacks {
		callback(snapshot)
	}
}

// Subscribe registers a callback for one order's snapshots.
func (h *Hub) Subscribe(orderID kernel.UUID, onChange func(ports.OrderSnapshot)) ports.UnsubscribeFunc {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++

	if h.subs[orderID] == nil {
		h.subs[orderID] = make(map[int]func(ports.OrderSnapshot))
	}
	h.subs[orderID][id] = onChange

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		delete(h.subs[orderID], id)
		if len(h.subs[orderID]) == 0 {
			delete(h.subs, orderID)
		}
	}
}
