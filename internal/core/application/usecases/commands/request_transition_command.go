package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var (
	ErrRequestTransitionCommandIsNotConstructed = errors.New(
		"RequestTransitionCommand must be created via NewRequestTransitionCommand constructor",
	)
)

// RequestTransitionCommand represents a participant's request to move an
// order forward in its lifecycle: a store accepting it, a driver claiming
// it, a driver confirming delivery.
//
// Example:
//
//	actor, _ := order.NewActor(driverID, order.RoleDriver)
//	cmd, err := NewRequestTransitionCommand(orderID, order.OutForDelivery, actor)
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//
//	handler := NewRequestTransitionCommandHandler(uowFactory, stream)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("transition rejected: %w", err)
//	}
type RequestTransitionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	to      order.Status
	actor   order.Actor

	guard guard.ConstructorGuard
}

// NewRequestTransitionCommand creates a command to advance an order's status.
// Validates that order ID, target status and actor are all valid.
// Returns an error if any validation fails.
func NewRequestTransitionCommand(
	orderID kernel.UUID,
	to order.Status,
	actor order.Actor,
) (RequestTransitionCommand, error) {
	transitionCommand := RequestTransitionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		transitionCommand.setOrderID(orderID),
		transitionCommand.setTo(to),
		transitionCommand.setActor(actor),
	); err != nil {
		return RequestTransitionCommand{}, err
	}

	return transitionCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRequestTransitionCommandIsNotConstructed if validation fails.
func (c RequestTransitionCommand) Validate() error {
	return c.guard.Validate(ErrRequestTransitionCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being advanced.
func (c RequestTransitionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// To returns the requested target status.
func (c RequestTransitionCommand) To() order.Status {
	return c.to
}

// Actor returns the participant requesting the transition.
func (c RequestTransitionCommand) Actor() order.Actor {
	return c.actor
}

func (c *RequestTransitionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RequestTransitionCommand) setTo(to order.Status) error {
	if err := to.Validate(); err != nil {
		return err
	}

	c.to = to
	return nil
}

func (c *RequestTransitionCommand) setActor(actor order.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
