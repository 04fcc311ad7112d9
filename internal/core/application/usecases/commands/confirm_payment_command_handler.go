package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// ConfirmPaymentCommandHandler handles payment confirmation callbacks.
// The operation is idempotent: the first confirmation marks the order paid
// and records the payment event, repeats succeed without writing anything.
type ConfirmPaymentCommandHandler struct {
	uowFactory OrderOutboxUoWFactory
	stream     ports.OrderStreamPublisher
}

// NewConfirmPaymentCommandHandler creates a handler for payment confirmations.
func NewConfirmPaymentCommandHandler(
	uowFactory OrderOutboxUoWFactory,
	stream ports.OrderStreamPublisher,
) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
		stream:     stream,
	}
}

// Handle processes the payment confirmation.
// Loads the order under a row lock so concurrent provider retries serialize
// and exactly one of them records the payment event.
func (h *ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !aggregate.ConfirmPayment() {
		// Already paid: a provider retry, nothing to persist.
		return nil
	}

	if err = orderRepo.UpdatePayment(ctx, aggregate); err != nil {
		return err
	}

	now := time.Now()
	if err = uow.OutboxRepository().Add(ctx, order.NewPaymentConfirmedEvent(aggregate.ID(), now)); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.stream.Publish(orderSnapshot(aggregate, now))

	return nil
}
