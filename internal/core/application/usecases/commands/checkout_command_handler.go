package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/metrics"
)

// CheckoutCommandHandler handles the business logic for placing an order.
// Creates the order in "created" status, records the placement event for
// notification dispatch, and publishes the new state to tracking subscribers.
//
// Example:
//
//	handler := NewCheckoutCommandHandler(uowFactory, stream)
//	cmd, _ := NewCheckoutCommand(orderID, buyerID, storeID, "456 Oak Avenue", 1999)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
type CheckoutCommandHandler struct {
	uowFactory OrderOutboxUoWFactory
	stream     ports.OrderStreamPublisher
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
// Requires an OrderOutboxUoWFactory for transactional persistence and a
// stream publisher for tracking updates.
func NewCheckoutCommandHandler(
	uowFactory OrderOutboxUoWFactory,
	stream ports.OrderStreamPublisher,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		stream:     stream,
	}
}

// Handle processes the checkout command.
// Persists the order and its placement event in one transaction; the event
// commit is what guarantees the store will be notified.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.BuyerID(),
		cmd.StoreID(),
		cmd.ShippingAddress(),
		cmd.TotalCents(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.OutboxRepository().Add(ctx, order.NewPlacedEvent(aggregate.ID(), now)); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	metrics.OrdersPlaced.Inc()
	h.stream.Publish(orderSnapshot(aggregate, now))

	return nil
}
