package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/metrics"
)

// advanceBatchSize bounds how many paid orders one pass picks up.
const advanceBatchSize = 50

// AdvancePaidOrdersCommandHandler moves paid orders into preparation.
// Stores accept paid orders implicitly: once payment is confirmed there is
// nothing left why the order could be declined, so a scheduler advances
// them instead of waiting for a manual acceptance.
type AdvancePaidOrdersCommandHandler struct {
	uowFactory OrderOutboxUoWFactory
	stream     ports.OrderStreamPublisher
}

// NewAdvancePaidOrdersCommandHandler creates a handler for auto-advance passes.
func NewAdvancePaidOrdersCommandHandler(
	uowFactory OrderOutboxUoWFactory,
	stream ports.OrderStreamPublisher,
) AdvancePaidOrdersCommandHandler {
	return AdvancePaidOrdersCommandHandler{
		uowFactory: uowFactory,
		stream:     stream,
	}
}

// Handle runs one auto-advance pass.
// Each paid order in "created" status is advanced to "preparing" as its own
// store, with the transition event recorded in the same transaction.
func (h *AdvancePaidOrdersCommandHandler) Handle(ctx context.Context, cmd AdvancePaidOrdersCommand) error {
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
	outboxRepo := uow.OutboxRepository()

	orders, err := orderRepo.GetCreatedAndPaid(ctx, advanceBatchSize)
	if err != nil {
		return err
	}

	transitions := make([]order.Transition, 0, len(orders))
	snapshots := make([]ports.OrderSnapshot, 0, len(orders))

	for _, aggregate := range orders {
		storeActor, actorErr := order.NewActor(aggregate.StoreID(), order.RoleStore)
		if actorErr != nil {
			return actorErr
		}

		transition, advanceErr := aggregate.Advance(order.Preparing, storeActor)
		if advanceErr != nil {
			return advanceErr
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}

		if err = outboxRepo.Add(ctx, order.NewTransitionEvent(transition)); err != nil {
			return err
		}

		transitions = append(transitions, transition)
		snapshots = append(snapshots, orderSnapshot(aggregate, transition.OccurredAt))
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for i, transition := range transitions {
		metrics.OrderTransitions.WithLabelValues(transition.To.String()).Inc()
		h.stream.Publish(snapshots[i])
	}

	return nil
}
