package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/metrics"
)

// PublishDriverLocationCommandHandler handles driver position samples.
// The position write is conditional on the order still being out for
// delivery: the repository checks the stored status in the same statement
// as the write, so a sample racing a delivery confirmation can never land
// on a delivered order.
type PublishDriverLocationCommandHandler struct {
	uowFactory OrderUoWFactory
	stream     ports.OrderStreamPublisher
}

// NewPublishDriverLocationCommandHandler creates a handler for position samples.
func NewPublishDriverLocationCommandHandler(
	uowFactory OrderUoWFactory,
	stream ports.OrderStreamPublisher,
) PublishDriverLocationCommandHandler {
	return PublishDriverLocationCommandHandler{
		uowFactory: uowFactory,
		stream:     stream,
	}
}

// Handle processes one position sample.
// Returns order.ErrUnauthorized when the publisher is not the assigned
// driver, and order.ErrPositionNotPublishable when the order has already
// left the out-for-delivery status.
func (h *PublishDriverLocationCommandHandler) Handle(ctx context.Context, cmd PublishDriverLocationCommand) error {
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
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !aggregate.IsAssignedDriver(cmd.DriverID()) {
		return order.ErrUnauthorized
	}

	if err = orderRepo.UpdateDriverCoords(ctx, cmd.OrderID(), cmd.Point(), cmd.MeasuredAt()); err != nil {
		metrics.DriverCoordWrites.WithLabelValues(metrics.CoordRejected).Inc()
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	metrics.DriverCoordWrites.WithLabelValues(metrics.CoordAccepted).Inc()

	if err = aggregate.SetDriverCoords(cmd.Point(), cmd.MeasuredAt()); err == nil {
		h.stream.Publish(orderSnapshot(aggregate, cmd.MeasuredAt()))
	}

	return nil
}
