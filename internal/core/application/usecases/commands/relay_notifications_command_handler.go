package commands

import (
	"context"
	"errors"
	"log/slog"

	"marketplace/internal/core/application/notifications"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

// relayBatchSize bounds how many pending events one relay pass picks up.
const relayBatchSize = 100

// RelayNotificationsCommandHandler drains the notification outbox.
// Each pending event is resolved to a recipient and message, marked
// dispatched, and only then handed to the push dispatcher. Marking before
// sending makes dispatch at-most-once: a crash between the two loses the
// notification instead of duplicating it, and a failed send is never
// retried.
type RelayNotificationsCommandHandler struct {
	uowFactory RelayUoWFactory
	router     services.NotificationRouter
	dispatcher *notifications.Dispatcher
	logger     *slog.Logger
}

// NewRelayNotificationsCommandHandler creates a handler for relay passes.
func NewRelayNotificationsCommandHandler(
	uowFactory RelayUoWFactory,
	router services.NotificationRouter,
	dispatcher *notifications.Dispatcher,
	logger *slog.Logger,
) RelayNotificationsCommandHandler {
	return RelayNotificationsCommandHandler{
		uowFactory: uowFactory,
		router:     router,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// pendingDispatch carries one resolved notification from the transactional
// phase to the send phase.
type pendingDispatch struct {
	notification notifications.Notification
}

// Handle runs one relay pass.
// The transactional phase resolves recipients and marks events dispatched;
// the send phase runs after commit, so send failures cannot roll the marks
// back. Events whose order or recipient no longer exists are marked and
// skipped.
func (h *RelayNotificationsCommandHandler) Handle(ctx context.Context, cmd RelayNotificationsCommand) error {
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

	outboxRepo := uow.OutboxRepository()
	orderRepo := uow.OrderRepository()
	userRepo := uow.UserRepository()

	events, err := outboxRepo.GetPending(ctx, relayBatchSize)
	if err != nil {
		return err
	}

	dispatches := make([]pendingDispatch, 0, len(events))

	for _, event := range events {
		if err = outboxRepo.MarkDispatched(ctx, event); err != nil {
			return err
		}

		aggregate, getErr := orderRepo.Get(ctx, event.OrderID)
		if getErr != nil {
			if errors.Is(getErr, errs.ErrObjectNotFound) {
				h.logger.Warn("outbox event references missing order",
					"event_id", event.ID, "order_id", event.OrderID)
				continue
			}
			return getErr
		}

		routed, routeErr := h.router.Route(event, aggregate.BuyerID(), aggregate.StoreID())
		if routeErr != nil {
			h.logger.Warn("outbox event has no notification route",
				"event_id", event.ID, "kind", string(event.Kind), "error", routeErr)
			continue
		}

		recipient, userErr := userRepo.Get(ctx, routed.RecipientID)
		if userErr != nil {
			if errors.Is(userErr, errs.ErrObjectNotFound) {
				h.logger.Warn("notification recipient not found",
					"event_id", event.ID, "recipient_id", routed.RecipientID)
				continue
			}
			return userErr
		}

		dispatches = append(dispatches, pendingDispatch{
			notification: notifications.Notification{
				Recipient: recipient,
				Title:     routed.Title,
				Body:      routed.Body,
				DeepLink:  routed.DeepLink,
			},
		})
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, dispatch := range dispatches {
		result := h.dispatcher.Dispatch(ctx, dispatch.notification)
		if result.Err != nil {
			h.logger.Warn("push delivery failed",
				"recipient_id", dispatch.notification.Recipient.ID(), "error", result.Err)
		}
	}

	return nil
}
