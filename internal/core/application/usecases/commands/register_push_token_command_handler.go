package commands

import (
	"context"
)

// RegisterPushTokenCommandHandler handles push token registration.
type RegisterPushTokenCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterPushTokenCommandHandler creates a handler for token registration.
func NewRegisterPushTokenCommandHandler(uowFactory UserUoWFactory) RegisterPushTokenCommandHandler {
	return RegisterPushTokenCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration.
// Loads the user, replaces (or clears) their token and persists the change.
func (h *RegisterPushTokenCommandHandler) Handle(ctx context.Context, cmd RegisterPushTokenCommand) error {
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

	userRepo := uow.UserRepository()
	aggregate, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	aggregate.RegisterPushToken(cmd.Token())

	if err = userRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
