package commands

import (
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// orderSnapshot builds the stream payload for an order's current state.
// Handlers publish it after commit, so subscribers only observe durable state.
func orderSnapshot(aggregate *order.Order, changedAt time.Time) ports.OrderSnapshot {
	snapshot := ports.OrderSnapshot{
		OrderID:       aggregate.ID(),
		Status:        aggregate.Status(),
		PaymentStatus: aggregate.PaymentStatus(),
		DriverID:      aggregate.DriverID(),
		ChangedAt:     changedAt.UTC(),
	}

	if coords := aggregate.DriverCoords(); coords != nil {
		point := coords.Point()
		seenAt := coords.LastUpdate()
		snapshot.DriverPoint = &point
		snapshot.DriverSeenAt = &seenAt
	}

	return snapshot
}
