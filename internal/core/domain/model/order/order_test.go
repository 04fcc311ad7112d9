package order_test

import (
	"errors"
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "Calle Mayor 1, Madrid", 2350)
	require.NoError(t, err)
	return o
}

func storeActor(t *testing.T, o *order.Order) order.Actor {
	t.Helper()

	actor, err := order.NewActor(o.StoreID(), order.RoleStore)
	require.NoError(t, err)
	return actor
}

func driverActor(t *testing.T) order.Actor {
	t.Helper()

	actor, err := order.NewActor(kernel.NewUUID(), order.RoleDriver)
	require.NoError(t, err)
	return actor
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	validBuyer := kernel.NewUUID()
	validStore := kernel.NewUUID()

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		o, err := order.NewOrder(validID, validBuyer, validStore, "Calle Mayor 1", 1000)

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.True(t, o.BuyerID().IsEqual(validBuyer))
		assert.True(t, o.StoreID().IsEqual(validStore))
		assert.Equal(t, order.Created, o.Status())
		assert.Equal(t, order.PaymentUnpaid, o.PaymentStatus())
		assert.Nil(t, o.DriverID())
		assert.Nil(t, o.DriverCoords())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, validBuyer, validStore, "Calle Mayor 1", 1000)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty shipping address", func(t *testing.T) {
		o, err := order.NewOrder(validID, validBuyer, validStore, "", 1000)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "shipping address")
	})

	t.Run("should fail with negative total", func(t *testing.T) {
		o, err := order.NewOrder(validID, validBuyer, validStore, "Calle Mayor 1", -1)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "total is invalid")
	})

	t.Run("should accept zero total", func(t *testing.T) {
		o, err := order.NewOrder(validID, validBuyer, validStore, "Calle Mayor 1", 0)

		require.NoError(t, err)
		assert.Equal(t, int64(0), o.TotalCents())
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, validBuyer, validStore, "", -5)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "shipping address")
		assert.Contains(t, err.Error(), "total is invalid")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should pass for constructed order", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Validate())
	})

	t.Run("should fail for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should fail for zero value order", func(t *testing.T) {
		o := &order.Order{}

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_Advance(t *testing.T) {
	t.Run("should walk the full lifecycle", func(t *testing.T) {
		o := newTestOrder(t)
		driver := driverActor(t)

		transition, err := o.Advance(order.Preparing, storeActor(t, o))
		require.NoError(t, err)
		assert.Equal(t, order.Created, transition.From)
		assert.Equal(t, order.Preparing, transition.To)
		assert.Equal(t, order.Preparing, o.Status())

		transition, err = o.Advance(order.OutForDelivery, driver)
		require.NoError(t, err)
		assert.Equal(t, order.OutForDelivery, o.Status())
		require.NotNil(t, o.DriverID())
		assert.True(t, o.DriverID().IsEqual(driver.ID()))

		transition, err = o.Advance(order.Delivered, driver)
		require.NoError(t, err)
		assert.Equal(t, order.OutForDelivery, transition.From)
		assert.Equal(t, order.Delivered, transition.To)
		assert.Equal(t, order.Delivered, o.Status())
		assert.False(t, transition.OccurredAt.IsZero())
	})

	t.Run("should reject skipping a state", func(t *testing.T) {
		o := newTestOrder(t)

		_, err := o.Advance(order.OutForDelivery, driverActor(t))

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Created, o.Status())
	})

	t.Run("should reject regression", func(t *testing.T) {
		o := newTestOrder(t)
		_, err := o.Advance(order.Preparing, storeActor(t, o))
		require.NoError(t, err)

		_, err = o.Advance(order.Created, storeActor(t, o))

		require.Error(t, err)
	})

	t.Run("should reject transition from terminal status", func(t *testing.T) {
		o := newTestOrder(t)
		driver := driverActor(t)
		_, err := o.Advance(order.Preparing, storeActor(t, o))
		require.NoError(t, err)
		_, err = o.Advance(order.OutForDelivery, driver)
		require.NoError(t, err)
		_, err = o.Advance(order.Delivered, driver)
		require.NoError(t, err)

		_, err = o.Advance(order.Delivered, driver)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("should reject preparation by a different store", func(t *testing.T) {
		o := newTestOrder(t)
		stranger, err := order.NewActor(kernel.NewUUID(), order.RoleStore)
		require.NoError(t, err)

		_, err = o.Advance(order.Preparing, stranger)

		require.ErrorIs(t, err, order.ErrUnauthorized)
		assert.Equal(t, order.Created, o.Status())
	})

	t.Run("should reject preparation by a non store role", func(t *testing.T) {
		o := newTestOrder(t)
		buyer, err := order.NewActor(o.BuyerID(), order.RoleBuyer)
		require.NoError(t, err)

		_, err = o.Advance(order.Preparing, buyer)

		require.ErrorIs(t, err, order.ErrUnauthorized)
	})

	t.Run("should reject claim by non driver", func(t *testing.T) {
		o := newTestOrder(t)
		_, err := o.Advance(order.Preparing, storeActor(t, o))
		require.NoError(t, err)

		_, err = o.Advance(order.OutForDelivery, storeActor(t, o))

		require.ErrorIs(t, err, order.ErrUnauthorized)
		assert.Nil(t, o.DriverID())
	})

	t.Run("should give the claim to the first driver only", func(t *testing.T) {
		o := newTestOrder(t)
		driverA := driverActor(t)
		driverB := driverActor(t)
		_, err := o.Advance(order.Preparing, storeActor(t, o))
		require.NoError(t, err)

		_, err = o.Advance(order.OutForDelivery, driverA)
		require.NoError(t, err)

		// Driver B raced against the same claim and lost: the conflict is
		// reported as AlreadyClaimed, and the record is left unchanged.
		_, err = o.Advance(order.OutForDelivery, driverB)
		require.ErrorIs(t, err, order.ErrAlreadyClaimed)
		assert.Equal(t, order.OutForDelivery, o.Status())
		assert.True(t, o.DriverID().IsEqual(driverA.ID()))
	})

	t.Run("should reject completion by another driver", func(t *testing.T) {
		o := newTestOrder(t)
		driverA := driverActor(t)
		driverB := driverActor(t)
		_, err := o.Advance(order.Preparing, storeActor(t, o))
		require.NoError(t, err)
		_, err = o.Advance(order.OutForDelivery, driverA)
		require.NoError(t, err)

		_, err = o.Advance(order.Delivered, driverB)

		require.ErrorIs(t, err, order.ErrUnauthorized)
		assert.Equal(t, order.OutForDelivery, o.Status())
	})

	t.Run("should reject unconstructed actor", func(t *testing.T) {
		o := newTestOrder(t)
		var actor order.Actor

		_, err := o.Advance(order.Preparing, actor)

		require.Error(t, err)
		assert.True(t, errors.Is(err, order.ErrActorIsNotConstructed))
	})
}

func TestOrder_ConfirmPayment(t *testing.T) {
	t.Run("should flip the flag once", func(t *testing.T) {
		o := newTestOrder(t)

		assert.True(t, o.ConfirmPayment())
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
	})

	t.Run("should be idempotent", func(t *testing.T) {
		o := newTestOrder(t)

		require.True(t, o.ConfirmPayment())
		assert.False(t, o.ConfirmPayment())
		assert.False(t, o.ConfirmPayment())
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
	})

	t.Run("should not change lifecycle status", func(t *testing.T) {
		o := newTestOrder(t)

		o.ConfirmPayment()

		assert.Equal(t, order.Created, o.Status())
	})
}

func TestOrder_SetDriverCoords(t *testing.T) {
	point, _ := kernel.NewGeoPoint(40.4168, -3.7038)

	outForDelivery := func(t *testing.T) (*order.Order, order.Actor) {
		t.Helper()
		o := newTestOrder(t)
		driver := driverActor(t)
		_, err := o.Advance(order.Preparing, storeActor(t, o))
		require.NoError(t, err)
		_, err = o.Advance(order.OutForDelivery, driver)
		require.NoError(t, err)
		return o, driver
	}

	t.Run("should record coords while out for delivery", func(t *testing.T) {
		o, _ := outForDelivery(t)
		at := time.Now()

		err := o.SetDriverCoords(point, at)

		require.NoError(t, err)
		require.NotNil(t, o.DriverCoords())
		equal, err := o.DriverCoords().Point().IsEqual(point)
		require.NoError(t, err)
		assert.True(t, equal)
		assert.Equal(t, at.UTC(), o.DriverCoords().LastUpdate())
	})

	t.Run("should reject coords before delivery starts", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.SetDriverCoords(point, time.Now())

		require.ErrorIs(t, err, order.ErrPositionNotPublishable)
		assert.Nil(t, o.DriverCoords())
	})

	t.Run("should reject coords after delivery completes", func(t *testing.T) {
		o, driver := outForDelivery(t)
		require.NoError(t, o.SetDriverCoords(point, time.Now()))
		_, err := o.Advance(order.Delivered, driver)
		require.NoError(t, err)

		err = o.SetDriverCoords(point, time.Now())

		require.ErrorIs(t, err, order.ErrPositionNotPublishable)
	})

	t.Run("should reject invalid point", func(t *testing.T) {
		o, _ := outForDelivery(t)
		var zero kernel.GeoPoint

		err := o.SetDriverCoords(zero, time.Now())

		require.Error(t, err)
	})
}

func TestDriverCoords_IsFresh(t *testing.T) {
	point, _ := kernel.NewGeoPoint(40.4168, -3.7038)
	now := time.Now()

	t.Run("should be fresh within the threshold", func(t *testing.T) {
		coords, err := order.NewDriverCoords(point, now.Add(-10*time.Second))

		require.NoError(t, err)
		assert.True(t, coords.IsFresh(now, 30*time.Second))
	})

	t.Run("should be stale past the threshold", func(t *testing.T) {
		coords, err := order.NewDriverCoords(point, now.Add(-2*time.Minute))

		require.NoError(t, err)
		assert.False(t, coords.IsFresh(now, 30*time.Second))
	})

	t.Run("should require a timestamp", func(t *testing.T) {
		_, err := order.NewDriverCoords(point, time.Time{})

		require.Error(t, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	buyer := kernel.NewUUID()
	store := kernel.NewUUID()
	driver := kernel.NewUUID()

	t.Run("should restore an out for delivery order with coords", func(t *testing.T) {
		point, _ := kernel.NewGeoPoint(40.0, -3.0)
		coords, err := order.NewDriverCoords(point, time.Now())
		require.NoError(t, err)

		o, err := order.RestoreOrder(id, buyer, store, &driver, "Calle Mayor 1", 500,
			order.OutForDelivery, order.PaymentPaid, &coords)

		require.NoError(t, err)
		assert.Equal(t, order.OutForDelivery, o.Status())
		assert.True(t, o.IsAssignedDriver(driver))
		require.NotNil(t, o.DriverCoords())
	})

	t.Run("should reject driver on an unclaimed status", func(t *testing.T) {
		o, err := order.RestoreOrder(id, buyer, store, &driver, "Calle Mayor 1", 500,
			order.Created, order.PaymentUnpaid, nil)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should reject missing driver after claim", func(t *testing.T) {
		o, err := order.RestoreOrder(id, buyer, store, nil, "Calle Mayor 1", 500,
			order.OutForDelivery, order.PaymentPaid, nil)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should reject coords on a pre delivery status", func(t *testing.T) {
		point, _ := kernel.NewGeoPoint(40.0, -3.0)
		coords, err := order.NewDriverCoords(point, time.Now())
		require.NoError(t, err)

		o, err := order.RestoreOrder(id, buyer, store, nil, "Calle Mayor 1", 500,
			order.Created, order.PaymentUnpaid, &coords)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should reject an invalid status value", func(t *testing.T) {
		o, err := order.RestoreOrder(id, buyer, store, nil, "Calle Mayor 1", 500,
			order.Status(42), order.PaymentUnpaid, nil)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}
