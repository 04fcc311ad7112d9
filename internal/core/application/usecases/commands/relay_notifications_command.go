package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var (
	ErrRelayNotificationsCommandIsNotConstructed = errors.New(
		"RelayNotificationsCommand must be created via NewRelayNotificationsCommand constructor",
	)
)

// RelayNotificationsCommand triggers one relay pass over the notification
// outbox: pending lifecycle events are resolved to recipients and handed to
// the push sender.
//
// Example:
//
//	cmd := NewRelayNotificationsCommand()
//	handler := NewRelayNotificationsCommandHandler(uowFactory, router, dispatcher)
//
//	// Run periodically by a scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("relay pass failed: %v", err)
//	}
type RelayNotificationsCommand struct {
	guard guard.ConstructorGuard
}

// NewRelayNotificationsCommand creates a command to run one relay pass.
// This is a parameterless command that processes all pending events.
func NewRelayNotificationsCommand() RelayNotificationsCommand {
	command := RelayNotificationsCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrRelayNotificationsCommandIsNotConstructed if validation fails.
func (c *RelayNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrRelayNotificationsCommandIsNotConstructed)
}
