package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrOpenChatSessionCommandIsNotConstructed = errors.New(
		"OpenChatSessionCommand must be created via NewOpenChatSessionCommand constructor",
	)
)

// OpenChatSessionCommand represents a request to open (or look up) the chat
// session between a buyer and a store. Session identity is derived from the
// pair, so opening twice always lands on the same session.
type OpenChatSessionCommand struct { //nolint:recvcheck //using for validation
	buyerID kernel.UUID
	storeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewOpenChatSessionCommand creates a command to open a chat session.
func NewOpenChatSessionCommand(buyerID kernel.UUID, storeID kernel.UUID) (OpenChatSessionCommand, error) {
	chatCommand := OpenChatSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		chatCommand.setBuyerID(buyerID),
		chatCommand.setStoreID(storeID),
	); err != nil {
		return OpenChatSessionCommand{}, err
	}

	return chatCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrOpenChatSessionCommandIsNotConstructed if validation fails.
func (c OpenChatSessionCommand) Validate() error {
	return c.guard.Validate(ErrOpenChatSessionCommandIsNotConstructed)
}

// BuyerID returns the buyer participant of the session.
func (c OpenChatSessionCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// StoreID returns the store participant of the session.
func (c OpenChatSessionCommand) StoreID() kernel.UUID {
	return c.storeID
}

func (c *OpenChatSessionCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	c.buyerID = buyerID
	return nil
}

func (c *OpenChatSessionCommand) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}

	c.storeID = storeID
	return nil
}
