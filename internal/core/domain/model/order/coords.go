package order

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrDriverCoordsAreNotConstructed is returned when a DriverCoords instance
// was not created through the NewDriverCoords factory method.
var ErrDriverCoordsAreNotConstructed = errs.NewValueIsRequiredError(
	"driver coords must be created via NewDriverCoords constructor")

// ErrLastUpdateIsRequired is returned when the sample timestamp is missing.
var ErrLastUpdateIsRequired = errs.NewValueIsRequiredError("last update timestamp")

// DriverCoords is the last known live position of the assigned driver,
// stamped with the moment the sample was taken. The stamp is part of the
// value because a position is only trustworthy while it is fresh: consumers
// must treat a stale sample as "position unknown" rather than trusting it
// indefinitely.
type DriverCoords struct { //nolint:recvcheck //using for validation
	point      kernel.GeoPoint
	lastUpdate time.Time
	guard      guard.ConstructorGuard
}

// NewDriverCoords creates a validated DriverCoords sample.
//
// Parameters:
//   - point: The driver's position (must be a valid GeoPoint)
//   - lastUpdate: When the sample was taken (must be non-zero)
func NewDriverCoords(point kernel.GeoPoint, lastUpdate time.Time) (DriverCoords, error) {
	if err := point.Validate(); err != nil {
		return DriverCoords{}, err
	}
	if lastUpdate.IsZero() {
		return DriverCoords{}, ErrLastUpdateIsRequired
	}

	return DriverCoords{
		point:      point,
		lastUpdate: lastUpdate.UTC(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the DriverCoords were created through the constructor.
func (c DriverCoords) Validate() error {
	return errors.Join(
		c.guard.Validate(ErrDriverCoordsAreNotConstructed),
		c.point.Validate(),
	)
}

// Point returns the driver's position.
func (c DriverCoords) Point() kernel.GeoPoint {
	return c.point
}

// LastUpdate returns when the position sample was taken.
func (c DriverCoords) LastUpdate() time.Time {
	return c.lastUpdate
}

// IsFresh reports whether the sample is recent enough to be trusted at the
// given instant. A sample older than the threshold means "position unknown".
func (c DriverCoords) IsFresh(now time.Time, threshold time.Duration) bool {
	return now.Sub(c.lastUpdate) <= threshold
}
