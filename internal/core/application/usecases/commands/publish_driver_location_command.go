package commands

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrPublishDriverLocationCommandIsNotConstructed = errors.New(
		"PublishDriverLocationCommand must be created via NewPublishDriverLocationCommand constructor",
	)
	ErrMeasurementTimeIsRequired = errors.New("measurement time is required")
)

// PublishDriverLocationCommand represents one driver position sample for an
// order that is out for delivery.
type PublishDriverLocationCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	driverID   kernel.UUID
	point      kernel.GeoPoint
	measuredAt time.Time

	guard guard.ConstructorGuard
}

// NewPublishDriverLocationCommand creates a command to publish a driver
// position sample.
func NewPublishDriverLocationCommand(
	orderID kernel.UUID,
	driverID kernel.UUID,
	point kernel.GeoPoint,
	measuredAt time.Time,
) (PublishDriverLocationCommand, error) {
	locationCommand := PublishDriverLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		locationCommand.setOrderID(orderID),
		locationCommand.setDriverID(driverID),
		locationCommand.setPoint(point),
		locationCommand.setMeasuredAt(measuredAt),
	); err != nil {
		return PublishDriverLocationCommand{}, err
	}

	return locationCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPublishDriverLocationCommandIsNotConstructed if validation fails.
func (c PublishDriverLocationCommand) Validate() error {
	return c.guard.Validate(ErrPublishDriverLocationCommandIsNotConstructed)
}

// OrderID returns the identifier of the tracked order.
func (c PublishDriverLocationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the identifier of the publishing driver.
func (c PublishDriverLocationCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Point returns the sampled position.
func (c PublishDriverLocationCommand) Point() kernel.GeoPoint {
	return c.point
}

// MeasuredAt returns when the sample was taken.
func (c PublishDriverLocationCommand) MeasuredAt() time.Time {
	return c.measuredAt
}

func (c *PublishDriverLocationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PublishDriverLocationCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *PublishDriverLocationCommand) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}

	c.point = point
	return nil
}

func (c *PublishDriverLocationCommand) setMeasuredAt(measuredAt time.Time) error {
	if measuredAt.IsZero() {
		return ErrMeasurementTimeIsRequired
	}

	c.measuredAt = measuredAt.UTC()
	return nil
}
