package ports

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderSnapshot is the read-model shape pushed to order change subscribers.
type OrderSnapshot struct {
	OrderID       kernel.UUID
	Status        order.Status
	PaymentStatus order.PaymentStatus
	DriverID      *kernel.UUID
	DriverPoint   *kernel.GeoPoint
	DriverSeenAt  *time.Time
	ChangedAt     time.Time
}

// UnsubscribeFunc detaches a subscriber from the stream. After it returns,
// the subscriber's callback is no longer invoked.
type UnsubscribeFunc func()

// OrderStreamPublisher pushes order changes onto a per-order stream.
// Command handlers publish after commit, so subscribers only ever observe
// durable state.
type OrderStreamPublisher interface {
	Publish(snapshot OrderSnapshot)
}

// OrderStreamSubscriber delivers every subsequent change of one order.
type OrderStreamSubscriber interface {
	// Subscribe registers onChange for the given order. The callback is
	// invoked sequentially per subscription.
	Subscribe(orderID kernel.UUID, onChange func(OrderSnapshot)) UnsubscribeFunc
}
