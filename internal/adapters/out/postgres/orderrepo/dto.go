// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Driver position columns are nullable; they are only populated while a
// delivery is being tracked.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BuyerID         uuid.UUID  `gorm:"type:uuid;index"`
	StoreID         uuid.UUID  `gorm:"type:uuid;index"`
	DriverID        *uuid.UUID `gorm:"type:uuid;index"`
	ShippingAddress string
	TotalCents      int64
	Status          int `gorm:"index"`
	PaymentStatus   int
	DriverLat       *float64
	DriverLng       *float64
	DriverSeenAt    *time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	dto := OrderDTO{
		ID:              aggregate.ID().Bytes(),
		BuyerID:         aggregate.BuyerID().Bytes(),
		StoreID:         aggregate.StoreID().Bytes(),
		DriverID:        driverID,
		ShippingAddress: aggregate.ShippingAddress(),
		TotalCents:      aggregate.TotalCents(),
		Status:          int(aggregate.Status()),
		PaymentStatus:   int(aggregate.PaymentStatus()),
	}

	if coords := aggregate.DriverCoords(); coords != nil {
		lat := coords.Point().Latitude()
		lng := coords.Point().Longitude()
		seenAt := coords.LastUpdate()
		dto.DriverLat = &lat
		dto.DriverLng = &lng
		dto.DriverSeenAt = &seenAt
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	var coords *order.DriverCoords
	if dto.DriverLat != nil && dto.DriverLng != nil && dto.DriverSeenAt != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.DriverLat, *dto.DriverLng)
		if pointErr != nil {
			return nil, pointErr
		}

		restored, coordsErr := order.NewDriverCoords(point, *dto.DriverSeenAt)
		if coordsErr != nil {
			return nil, coordsErr
		}

		coords = &restored
	}

	return order.RestoreOrder(
		id,
		buyerID,
		storeID,
		driverID,
		dto.ShippingAddress,
		dto.TotalCents,
		order.Status(dto.Status),
		order.PaymentStatus(dto.PaymentStatus),
		coords,
	)
}
