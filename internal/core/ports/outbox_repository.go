package ports

import (
	"context"

	"marketplace/internal/core/domain/model/order"
)

// OutboxRepository defines the persistence contract for order lifecycle
// events awaiting notification dispatch. Events are written in the same
// transaction as the state change they describe, then relayed by a
// background job.
type OutboxRepository interface {
	// Add persists a pending event.
	Add(ctx context.Context, event order.Event) error

	// GetPending retrieves up to limit undispatched events, oldest first.
	GetPending(ctx context.Context, limit int) ([]order.Event, error)

	// MarkDispatched marks an event as handed to the push sender. The mark
	// happens before the send attempt, so each event is dispatched at most
	// once: a crash between mark and send loses the notification rather
	// than duplicating it.
	MarkDispatched(ctx context.Context, event order.Event) error
}
