package commands

import (
	"context"

	"marketplace/internal/core/domain/model/chat"
)

// OpenChatSessionCommandHandler opens the chat session between a buyer and
// a store, creating it on first use. Concurrent opens for the same pair
// converge on the same session because its identity is derived from the
// participants.
type OpenChatSessionCommandHandler struct {
	uowFactory ChatUoWFactory
}

// NewOpenChatSessionCommandHandler creates a handler for chat session opens.
func NewOpenChatSessionCommandHandler(uowFactory ChatUoWFactory) OpenChatSessionCommandHandler {
	return OpenChatSessionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the open request and returns the stored session.
func (h *OpenChatSessionCommandHandler) Handle(ctx context.Context, cmd OpenChatSessionCommand) (*chat.Session, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	session, err := chat.NewSession(cmd.BuyerID(), cmd.StoreID())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stored, err := uow.ChatRepository().Ensure(ctx, session)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stored, nil
}
