package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var (
	ErrAdvancePaidOrdersCommandIsNotConstructed = errors.New(
		"AdvancePaidOrdersCommand must be created via NewAdvancePaidOrdersCommand constructor",
	)
)

// AdvancePaidOrdersCommand triggers one pass that moves paid orders still
// waiting in "created" status into preparation on the store's behalf.
type AdvancePaidOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewAdvancePaidOrdersCommand creates a command to run one auto-advance pass.
func NewAdvancePaidOrdersCommand() AdvancePaidOrdersCommand {
	command := AdvancePaidOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvancePaidOrdersCommandIsNotConstructed if validation fails.
func (c *AdvancePaidOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAdvancePaidOrdersCommandIsNotConstructed)
}
