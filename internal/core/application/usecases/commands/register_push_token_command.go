package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrRegisterPushTokenCommandIsNotConstructed = errors.New(
		"RegisterPushTokenCommand must be created via NewRegisterPushTokenCommand constructor",
	)
)

// RegisterPushTokenCommand represents a device registering (or clearing)
// a user's push token. An empty token removes the registration, after which
// notifications to the user become no-ops.
type RegisterPushTokenCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	token  string

	guard guard.ConstructorGuard
}

// NewRegisterPushTokenCommand creates a command to register a push token.
// An empty token is valid and means "unregister".
func NewRegisterPushTokenCommand(userID kernel.UUID, token string) (RegisterPushTokenCommand, error) {
	tokenCommand := RegisterPushTokenCommand{
		token: token,
		guard: guard.NewConstructorGuard(),
	}

	if err := tokenCommand.setUserID(userID); err != nil {
		return RegisterPushTokenCommand{}, err
	}

	return tokenCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterPushTokenCommandIsNotConstructed if validation fails.
func (c RegisterPushTokenCommand) Validate() error {
	return c.guard.Validate(ErrRegisterPushTokenCommandIsNotConstructed)
}

// UserID returns the identifier of the user registering the token.
func (c RegisterPushTokenCommand) UserID() kernel.UUID {
	return c.userID
}

// Token returns the device token, empty when unregistering.
func (c RegisterPushTokenCommand) Token() string {
	return c.token
}

func (c *RegisterPushTokenCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
