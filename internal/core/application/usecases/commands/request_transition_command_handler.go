package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/metrics"
)

// RequestTransitionCommandHandler handles status transition requests.
// Loads the order under a row lock, lets the aggregate decide whether the
// actor may perform the transition, and records the transition event in the
// same transaction.
//
// The row lock is what resolves a driver claim race: two concurrent claims
// serialize on it, the first wins, the second reloads an already-claimed
// order and fails with order.ErrAlreadyClaimed.
type RequestTransitionCommandHandler struct {
	uowFactory OrderOutboxUoWFactory
	stream     ports.OrderStreamPublisher
}

// NewRequestTransitionCommandHandler creates a handler for transition requests.
func NewRequestTransitionCommandHandler(
	uowFactory OrderOutboxUoWFactory,
	stream ports.OrderStreamPublisher,
) RequestTransitionCommandHandler {
	return RequestTransitionCommandHandler{
		uowFactory: uowFactory,
		stream:     stream,
	}
}

// Handle processes the transition request.
// Rejections (invalid transition, unauthorized actor, already claimed) leave
// the order untouched; acceptances persist the new status and its event
// atomically.
func (h *RequestTransitionCommandHandler) Handle(ctx context.Context, cmd RequestTransitionCommand) error {
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

	transition, err := aggregate.Advance(cmd.To(), cmd.Actor())
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.OutboxRepository().Add(ctx, order.NewTransitionEvent(transition)); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	metrics.OrderTransitions.WithLabelValues(transition.To.String()).Inc()
	h.stream.Publish(orderSnapshot(aggregate, transition.OccurredAt))

	return nil
}
