// Package reviewrepo persists order reviews. A unique index on the
// order/author pair enforces the one-review-per-author rule at the storage
// level, where it survives concurrent submissions.
package reviewrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/review"
)

// ReviewDTO represents the database structure for persisting reviews.
type ReviewDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_reviews_order_author"`
	AuthorID  uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_reviews_order_author"`
	SubjectID uuid.UUID `gorm:"type:uuid;index"`
	Rating    int
	Comment   string
}

// TableName specifies the database table name for review entities.
func (ReviewDTO) TableName() string {
	return "reviews"
}

func fromDomain(aggregate *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:        aggregate.ID().Bytes(),
		OrderID:   aggregate.OrderID().Bytes(),
		AuthorID:  aggregate.AuthorID().Bytes(),
		SubjectID: aggregate.SubjectID().Bytes(),
		Rating:    aggregate.Rating(),
		Comment:   aggregate.Comment(),
	}
}

func toDomain(dto ReviewDTO) (*review.Review, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	authorID, err := kernel.UUIDFromBytes(dto.AuthorID[:])
	if err != nil {
		return nil, err
	}

	subjectID, err := kernel.UUIDFromBytes(dto.SubjectID[:])
	if err != nil {
		return nil, err
	}

	return review.NewReview(id, orderID, subjectID, authorID, dto.Rating, dto.Comment)
}

// GormReviewRepository implements ReviewRepository using GORM.
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GORM review repository.
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// Add saves a new review.
// Returns review.ErrAlreadyReviewed when the author has already reviewed
// this order.
func (r *GormReviewRepository) Add(ctx context.Context, aggregate *review.Review) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return review.ErrAlreadyReviewed
		}
		return err
	}

	return nil
}

// GetByOrder retrieves all reviews submitted for an order.
func (r *GormReviewRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*review.Review, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ReviewDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	reviews := make([]*review.Review, 0, len(dtos))
	for _, dto := range dtos {
		restored, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		reviews = append(reviews, restored)
	}

	return reviews, nil
}
