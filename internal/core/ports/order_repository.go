// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, push delivery, the
// location sensor, and the order change stream. Adapters implement these
// interfaces, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status and driver assignment of an existing order.
	// Payment and coordinates have dedicated methods because they change on
	// independent paths and must not clobber each other.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdatePayment persists the payment status of an existing order.
	UpdatePayment(ctx context.Context, aggregate *order.Order) error

	// UpdateDriverCoords persists the driver's position for an order, but
	// only while the stored row is still OutForDelivery. The status check and
	// the write happen in one statement, so a position published concurrently
	// with a delivery confirmation can never land on a delivered order.
	//
	// Returns order.ErrPositionNotPublishable when the row has already left
	// OutForDelivery.
	UpdateDriverCoords(ctx context.Context, id kernel.UUID, point kernel.GeoPoint, at time.Time) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order aggregate and locks its row until the
	// surrounding transaction ends. Concurrent transition requests for the
	// same order serialize on this lock, which is what makes a driver claim
	// race resolve to exactly one winner.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetCreatedAndPaid retrieves orders that are still in Created status but
	// already paid. Used by the auto-advance job to move paid orders into
	// preparation.
	GetCreatedAndPaid(ctx context.Context, limit int) ([]*order.Order, error)
}
