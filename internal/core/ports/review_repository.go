package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/review"
)

// ReviewRepository defines the persistence contract for reviews.
type ReviewRepository interface {
	// Add persists a new review. Returns review.ErrAlreadyReviewed when the
	// author has already reviewed this order.
	Add(ctx context.Context, aggregate *review.Review) error

	// GetByOrder retrieves all reviews submitted for an order.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*review.Review, error)
}
