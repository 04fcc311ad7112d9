// Package outboxrepo persists order lifecycle events awaiting notification
// dispatch. Events share the transaction of the state change that produced
// them and are drained by the relay job.
package outboxrepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// EventDTO represents one stored lifecycle event.
type EventDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;index"`
	Kind         string
	FromStatus   int
	ToStatus     int
	OccurredAt   time.Time  `gorm:"index"`
	DispatchedAt *time.Time `gorm:"index"`
}

// TableName specifies the database table name for outbox events.
func (EventDTO) TableName() string {
	return "order_events"
}

func fromDomain(event order.Event) EventDTO {
	return EventDTO{
		ID:         event.ID.Bytes(),
		OrderID:    event.OrderID.Bytes(),
		Kind:       string(event.Kind),
		FromStatus: int(event.From),
		ToStatus:   int(event.To),
		OccurredAt: event.OccurredAt,
	}
}

func toDomain(dto EventDTO) (order.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Event{}, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.Event{}, err
	}

	return order.Event{
		ID:         id,
		OrderID:    orderID,
		Kind:       order.EventKind(dto.Kind),
		From:       order.Status(dto.FromStatus),
		To:         order.Status(dto.ToStatus),
		OccurredAt: dto.OccurredAt.UTC(),
	}, nil
}

// GormOutboxRepository implements OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add persists a pending event.
func (r *GormOutboxRepository) Add(ctx context.Context, event order.Event) error {
	dto := fromDomain(event)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetPending retrieves up to limit undispatched events, oldest first.
func (r *GormOutboxRepository) GetPending(ctx context.Context, limit int) ([]order.Event, error) {
	var dtos []EventDTO
	err := r.db.WithContext(ctx).
		Where("dispatched_at IS NULL").
		Order("occurred_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	events := make([]order.Event, 0, len(dtos))
	for _, dto := range dtos {
		event, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		events = append(events, event)
	}

	return events, nil
}

// MarkDispatched stamps an event as handed to the push sender.
func (r *GormOutboxRepository) MarkDispatched(ctx context.Context, event order.Event) error {
	now := time.Now().UTC()
	result := r.db.WithContext(ctx).Model(&EventDTO{}).
		Where("id = ? AND dispatched_at IS NULL", event.ID.Bytes()).
		Update("dispatched_at", &now)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
