// Package queries contains read-only operations over the persistence layer.
// Query handlers bypass the aggregate repositories and read projection
// shapes directly, keeping the read path free of domain loading overhead.
package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
		"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
	)
)

// GetActiveOrdersQuery retrieves all undelivered orders a participant is
// involved in, whether as buyer, store or driver.
//
// Example:
//
//	query, err := NewGetActiveOrdersQuery(buyerID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetActiveOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type GetActiveOrdersQuery struct { //nolint:recvcheck //using for validation
	participantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for a participant's active orders.
func NewGetActiveOrdersQuery(participantID kernel.UUID) (GetActiveOrdersQuery, error) {
	query := GetActiveOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setParticipantID(participantID); err != nil {
		return GetActiveOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveOrdersQueryIsNotConstructed if validation fails.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// ParticipantID returns the participant whose orders are requested.
func (q GetActiveOrdersQuery) ParticipantID() kernel.UUID {
	return q.participantID
}

func (q *GetActiveOrdersQuery) setParticipantID(participantID kernel.UUID) error {
	if err := participantID.Validate(); err != nil {
		return err
	}

	q.participantID = participantID
	return nil
}

// GetActiveOrdersQueryResponse represents one active order row.
type GetActiveOrdersQueryResponse struct {
	ID              kernel.UUID
	Status          order.Status
	PaymentStatus   order.PaymentStatus
	ShippingAddress string
	TotalCents      int64
}
