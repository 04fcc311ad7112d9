package order

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

// EventKind discriminates the lifecycle events an order emits.
type EventKind string

const (
	// EventOrderPlaced is emitted once when the buyer checks out.
	EventOrderPlaced EventKind = "order_placed"

	// EventStatusChanged is emitted on every accepted status transition.
	EventStatusChanged EventKind = "status_changed"

	// EventPaymentConfirmed is emitted the first time a payment is confirmed.
	// Repeated confirmations are no-ops and emit nothing.
	EventPaymentConfirmed EventKind = "payment_confirmed"
)

// Transition records one accepted status transition.
// It is the payload of an EventStatusChanged event and is produced by
// Order.Advance after the aggregate has moved to the new status.
type Transition struct {
	OrderID    kernel.UUID
	From       Status
	To         Status
	OccurredAt time.Time
}

// Event is one durable lifecycle event of an order, consumed by the
// notification dispatch pipeline. Events are persisted in the same
// transaction as the state change they describe, so dispatch is attempted
// even if the writing process dies right after commit: the durable write is
// the source of truth, delivery success never is.
type Event struct {
	ID         kernel.UUID
	OrderID    kernel.UUID
	Kind       EventKind
	From       Status
	To         Status
	OccurredAt time.Time
}

// NewPlacedEvent builds the checkout event for an order.
func NewPlacedEvent(orderID kernel.UUID, at time.Time) Event {
	return Event{
		ID:         kernel.NewUUID(),
		OrderID:    orderID,
		Kind:       EventOrderPlaced,
		From:       Unknown,
		To:         Created,
		OccurredAt: at.UTC(),
	}
}

// NewTransitionEvent builds the durable event for an accepted transition.
func NewTransitionEvent(transition Transition) Event {
	return Event{
		ID:         kernel.NewUUID(),
		OrderID:    transition.OrderID,
		Kind:       EventStatusChanged,
		From:       transition.From,
		To:         transition.To,
		OccurredAt: transition.OccurredAt,
	}
}

// NewPaymentConfirmedEvent builds the event for a first-time payment confirmation.
func NewPaymentConfirmedEvent(orderID kernel.UUID, at time.Time) Event {
	return Event{
		ID:         kernel.NewUUID(),
		OrderID:    orderID,
		Kind:       EventPaymentConfirmed,
		OccurredAt: at.UTC(),
	}
}
