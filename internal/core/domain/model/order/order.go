package order

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrInvalidTransition is returned when the requested status is not the
	// immediate successor of the order's current status.
	ErrInvalidTransition = errors.New("invalid order status transition")

	// ErrUnauthorized is returned when the requesting actor's role or identity
	// is not permitted for the requested transition edge.
	ErrUnauthorized = errors.New("actor is not authorized for this transition")

	// ErrAlreadyClaimed is returned when a driver attempts to claim an order
	// that another driver already claimed. The first writer wins.
	ErrAlreadyClaimed = errors.New("order is already claimed by another driver")

	// ErrPositionNotPublishable is returned when a driver position write is
	// attempted while the order is not out for delivery.
	ErrPositionNotPublishable = errors.New("driver position is only publishable while the order is out for delivery")
)

// Order represents a marketplace order in the system. It is the aggregate root
// that manages the order lifecycle from checkout through preparation, delivery
// claim, live tracking, and completion.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, buyer, and store
//   - Shipping address must be non-empty and total must be non-negative
//   - Status transitions follow the strict forward chain enforced by Advance
//   - A driver must be assigned before the order can become OutForDelivery
//   - Driver coordinates may only be recorded while OutForDelivery
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// buyerID identifies the customer who placed the order
	buyerID kernel.UUID

	// storeID identifies the store fulfilling the order
	storeID kernel.UUID

	// driverID is the claiming driver's ID (nil until a driver claims the order)
	driverID *kernel.UUID

	// shippingAddress is the delivery destination
	shippingAddress string

	// totalCents is the order total in minor currency units
	totalCents int64

	// status represents the current state in the order lifecycle
	status Status

	// paymentStatus is the orthogonal payment sub-flag
	paymentStatus PaymentStatus

	// driverCoords is the last published driver position (nil until first sample)
	driverCoords *DriverCoords

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order at checkout with validation. The order starts
// in Created status, unpaid, with no driver assigned and no coordinates.
//
// Parameters:
//   - id: Unique identifier for the order (must be a valid UUID)
//   - buyerID: The customer placing the order
//   - storeID: The store fulfilling the order
//   - shippingAddress: Delivery destination (must be non-empty)
//   - totalCents: Order total in minor units (must not be negative)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
func NewOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	storeID kernel.UUID,
	shippingAddress string,
	totalCents int64,
) (*Order, error) {
	order := &Order{
		status:        Created,
		paymentStatus: PaymentUnpaid,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setBuyerID(buyerID),
		order.setStoreID(storeID),
		order.setShippingAddress(shippingAddress),
		order.setTotalCents(totalCents),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence without replaying its
// history. All cross-field invariants are re-validated: a driver is required
// exactly for OutForDelivery and Delivered, and coordinates are only accepted
// for orders that have reached OutForDelivery.
//
// This is the only constructor repositories may use when loading aggregates.
func RestoreOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	storeID kernel.UUID,
	driverID *kernel.UUID,
	shippingAddress string,
	totalCents int64,
	status Status,
	paymentStatus PaymentStatus,
	driverCoords *DriverCoords,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setBuyerID(buyerID),
		order.setStoreID(storeID),
		order.setShippingAddress(shippingAddress),
		order.setTotalCents(totalCents),
		status.Validate(),
		paymentStatus.Validate(),
		status.ValidateCanHaveDriver(driverID != nil),
	); err != nil {
		return nil, err
	}

	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
		driverCopy := *driverID
		order.driverID = &driverCopy
	}

	if driverCoords != nil {
		if err := driverCoords.Validate(); err != nil {
			return nil, err
		}
		if status != OutForDelivery && status != Delivered {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"driver coords are invalid",
				fmt.Errorf("%s is not a valid status to carry driver coords", status),
			)
		}
		coordsCopy := *driverCoords
		order.driverCoords = &coordsCopy
	}

	order.status = status
	order.paymentStatus = paymentStatus
	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// BuyerID returns the customer who placed the order.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// StoreID returns the store fulfilling the order.
func (o *Order) StoreID() kernel.UUID {
	return o.storeID
}

// DriverID returns the claiming driver's ID.
// Returns nil while no driver has claimed the order.
func (o *Order) DriverID() *kernel.UUID {
	return o.driverID
}

// ShippingAddress returns the delivery destination.
func (o *Order) ShippingAddress() string {
	return o.shippingAddress
}

// TotalCents returns the order total in minor currency units.
func (o *Order) TotalCents() int64 {
	return o.totalCents
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the payment sub-flag.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// DriverCoords returns the last published driver position, or nil if the
// driver never reported one. Callers must check freshness before trusting
// the value.
func (o *Order) DriverCoords() *DriverCoords {
	return o.driverCoords
}

// IsAssignedDriver reports whether the given participant is the driver who
// claimed this order.
func (o *Order) IsAssignedDriver(participantID kernel.UUID) bool {
	return o.driverID != nil && o.driverID.IsEqual(participantID)
}

// Advance applies one status transition requested by an actor.
//
// The requested status must be the immediate successor of the current one,
// and the actor must be authorized for that edge:
//   - Created -> Preparing: only the order's own store
//   - Preparing -> OutForDelivery: any driver, first writer wins; the claiming
//     driver becomes the assigned driver as part of the same transition
//   - OutForDelivery -> Delivered: only the assigned driver
//
// Returns:
//   - Transition: the accepted transition record (prior and new status)
//   - error: ErrInvalidTransition if the target is not the valid successor,
//     ErrUnauthorized if the actor may not perform this edge,
//     ErrAlreadyClaimed if another driver already claimed the order
//
// On success the aggregate's status is updated; the caller is responsible for
// persisting the change and recording the transition event durably.
func (o *Order) Advance(to Status, actor Actor) (Transition, error) {
	if err := errors.Join(o.Validate(), actor.Validate(), to.Validate()); err != nil {
		return Transition{}, err
	}

	// A lost claim race surfaces as AlreadyClaimed, not InvalidTransition:
	// the losing driver raced against the authoritative record, and the
	// conflict signal must name the real reason even though the status has
	// already advanced past the claiming edge.
	if to == OutForDelivery && actor.Role() == RoleDriver &&
		o.driverID != nil && !o.driverID.IsEqual(actor.ID()) {
		return Transition{}, fmt.Errorf("%w: claimed by driver %s", ErrAlreadyClaimed, o.driverID)
	}

	if to != o.status.Successor() {
		return Transition{}, fmt.Errorf("%w: %s cannot move to %s", ErrInvalidTransition, o.status, to)
	}

	switch to {
	case Preparing:
		if actor.Role() != RoleStore || !actor.ID().IsEqual(o.storeID) {
			return Transition{}, fmt.Errorf("%w: only the order's store may start preparation", ErrUnauthorized)
		}

	case OutForDelivery:
		if actor.Role() != RoleDriver {
			return Transition{}, fmt.Errorf("%w: only a driver may claim an order for delivery", ErrUnauthorized)
		}
		if o.driverID != nil {
			return Transition{}, fmt.Errorf("%w: claimed by driver %s", ErrAlreadyClaimed, o.driverID)
		}
		claimingID := actor.ID()
		o.driverID = &claimingID

	case Delivered:
		if actor.Role() != RoleDriver || !o.IsAssignedDriver(actor.ID()) {
			return Transition{}, fmt.Errorf("%w: only the assigned driver may complete the delivery", ErrUnauthorized)
		}

	default:
		return Transition{}, fmt.Errorf("%w: %s is not a reachable status", ErrInvalidTransition, to)
	}

	from := o.status
	o.status = to

	return Transition{
		OrderID:    o.id,
		From:       from,
		To:         to,
		OccurredAt: time.Now().UTC(),
	}, nil
}

// ConfirmPayment marks the order as paid. The operation is idempotent:
// the first call flips the flag and returns true, any later call is a no-op
// returning false so callers can suppress duplicate payment events.
func (o *Order) ConfirmPayment() bool {
	if o.paymentStatus == PaymentPaid {
		return false
	}

	o.paymentStatus = PaymentPaid
	return true
}

// SetDriverCoords records a live position sample for the assigned driver.
// The write is only legal while the order is OutForDelivery; any other status
// returns ErrPositionNotPublishable, because a late-arriving coordinate would
// be read by consumers as evidence of an in-progress delivery.
func (o *Order) SetDriverCoords(point kernel.GeoPoint, at time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if !o.status.AllowsDriverCoords() {
		return fmt.Errorf("%w: order is %s", ErrPositionNotPublishable, o.status)
	}

	coords, err := NewDriverCoords(point, at)
	if err != nil {
		return err
	}

	o.driverCoords = &coords
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setBuyerID validates and sets the buyer identifier.
// This is a private method used only during construction.
func (o *Order) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return fmt.Errorf("buyer: %w", err)
	}
	o.buyerID = buyerID
	return nil
}

// setStoreID validates and sets the store identifier.
// This is a private method used only during construction.
func (o *Order) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	o.storeID = storeID
	return nil
}

// setShippingAddress validates and sets the delivery destination.
// This is a private method used only during construction.
func (o *Order) setShippingAddress(shippingAddress string) error {
	if shippingAddress == "" {
		return errs.NewValueIsRequiredError("shipping address")
	}
	o.shippingAddress = shippingAddress
	return nil
}

// setTotalCents validates and sets the order total.
// This is a private method used only during construction.
func (o *Order) setTotalCents(totalCents int64) error {
	if totalCents < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total is invalid",
			fmt.Errorf("%d is negative", totalCents))
	}
	o.totalCents = totalCents
	return nil
}
