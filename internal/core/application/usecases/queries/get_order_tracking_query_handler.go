package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// GetOrderTrackingQueryHandler reads the tracking view of one order.
type GetOrderTrackingQueryHandler struct {
	db        *gorm.DB
	freshness time.Duration
	now       func() time.Time
}

// NewGetOrderTrackingQueryHandler creates a handler for tracking queries.
// Requires a GORM database connection for query execution. freshness is the
// maximum age of a driver position before the view marks it stale.
func NewGetOrderTrackingQueryHandler(db *gorm.DB, freshness time.Duration) GetOrderTrackingQueryHandler {
	return GetOrderTrackingQueryHandler{db: db, freshness: freshness, now: time.Now}
}

// Handle executes the query.
// Returns errs.ErrObjectNotFound (wrapped) when the order does not exist.
func (h GetOrderTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTrackingQuery,
) (GetOrderTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}

	var (
		id        uuid.UUID
		resp      GetOrderTrackingQueryResponse
		driverID  *uuid.UUID
		driverLat sql.NullFloat64
		driverLng sql.NullFloat64
		seenAt    sql.NullTime
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			payment_status,
			driver_id,
			driver_lat,
			driver_lng,
			driver_seen_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(&id, &resp.Status, &resp.PaymentStatus, &driverID, &driverLat, &driverLng, &seenAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderTrackingQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
		}
		return GetOrderTrackingQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}
	resp.OrderID = orderID

	if driverID != nil {
		restored, idErr := kernel.UUIDFromBytes(driverID[:])
		if idErr != nil {
			return GetOrderTrackingQueryResponse{}, idErr
		}
		resp.DriverID = &restored
	}

	if driverLat.Valid && driverLng.Valid && seenAt.Valid {
		point, pointErr := kernel.NewGeoPoint(driverLat.Float64, driverLng.Float64)
		if pointErr != nil {
			return GetOrderTrackingQueryResponse{}, pointErr
		}

		lastSeen := seenAt.Time.UTC()
		resp.DriverPoint = &point
		resp.DriverSeenAt = &lastSeen
		resp.PositionIsStale = h.now().Sub(lastSeen) > h.freshness
	}

	return resp, nil
}
