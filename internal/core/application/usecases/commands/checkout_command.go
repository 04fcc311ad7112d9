package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
	ErrShippingAddressIsRequired = errors.New("shipping address is required")
	ErrTotalIsInvalid            = errors.New("total must be greater than 0")
)

// CheckoutCommand represents a buyer's request to place a new order with a
// store. Encapsulates the participants, the shipping address and the total.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCheckoutCommand(orderID, buyerID, storeID, "123 Main Street", 4250)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	handler := NewCheckoutCommandHandler(uowFactory, stream)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	buyerID         kernel.UUID
	storeID         kernel.UUID
	shippingAddress string
	totalCents      int64

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a command to place a new order.
// Validates that all identifiers are valid, the address is not empty and the
// total is positive. Returns an error if any validation fails.
func NewCheckoutCommand(
	orderID kernel.UUID,
	buyerID kernel.UUID,
	storeID kernel.UUID,
	shippingAddress string,
	totalCents int64,
) (CheckoutCommand, error) {
	checkoutCommand := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		checkoutCommand.setOrderID(orderID),
		checkoutCommand.setBuyerID(buyerID),
		checkoutCommand.setStoreID(storeID),
		checkoutCommand.setShippingAddress(shippingAddress),
		checkoutCommand.setTotalCents(totalCents),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return checkoutCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCheckoutCommandIsNotConstructed if validation fails.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CheckoutCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BuyerID returns the identifier of the buyer placing the order.
func (c CheckoutCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// StoreID returns the identifier of the store receiving the order.
func (c CheckoutCommand) StoreID() kernel.UUID {
	return c.storeID
}

// ShippingAddress returns the delivery destination address.
func (c CheckoutCommand) ShippingAddress() string {
	return c.shippingAddress
}

// TotalCents returns the order total in minor currency units.
func (c CheckoutCommand) TotalCents() int64 {
	return c.totalCents
}

func (c *CheckoutCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CheckoutCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	c.buyerID = buyerID
	return nil
}

func (c *CheckoutCommand) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}

	c.storeID = storeID
	return nil
}

func (c *CheckoutCommand) setShippingAddress(shippingAddress string) error {
	if shippingAddress == "" {
		return ErrShippingAddressIsRequired
	}

	c.shippingAddress = shippingAddress
	return nil
}

func (c *CheckoutCommand) setTotalCents(totalCents int64) error {
	if totalCents <= 0 {
		return ErrTotalIsInvalid
	}

	c.totalCents = totalCents
	return nil
}
