// Package user provides the marketplace's projection of a participant as a
// notification recipient. Identity management itself is owned by an external
// subsystem; this package only models what the notification pipeline needs:
// who a participant is, in which role they act, and whether they can be
// reached over push.
package user

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the NewUser factory method.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is a notification target: a marketplace participant together with the
// push token of their current device session.
//
// An absent push token is an expected steady state, not an error: the user
// may have opted out of notifications or never opened the app on a device
// that can receive them. Consumers must treat a missing token as
// "cannot deliver, no-op".
type User struct {
	// id is the participant's unique identifier, owned by the identity subsystem
	id kernel.UUID

	// name is the participant's display name
	name string

	// role is the participant's marketplace role
	role order.Role

	// pushToken is the device push destination (nil means unreachable)
	pushToken *string

	// isConstructed ensures the user was created via NewUser
	isConstructed bool
}

// NewUser creates a validated User projection.
//
// Parameters:
//   - id: Participant identifier (must be a valid UUID)
//   - name: Display name (must be non-empty)
//   - role: Marketplace role (must be valid)
//   - pushToken: Device push destination, or nil when the user is unreachable
func NewUser(id kernel.UUID, name string, role order.Role, pushToken *string) (*User, error) {
	user := &User{
		isConstructed: true,
	}

	if err := errors.Join(
		user.setID(id),
		user.setName(name),
		user.setRole(role),
	); err != nil {
		return nil, err
	}

	if pushToken != nil && *pushToken != "" {
		tokenCopy := *pushToken
		user.pushToken = &tokenCopy
	}

	return user, nil
}

// Validate ensures the User instance was properly constructed through NewUser.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}

	return nil
}

// ID returns the participant's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the participant's display name.
func (u *User) Name() string {
	return u.name
}

// Role returns the participant's marketplace role.
func (u *User) Role() order.Role {
	return u.role
}

// PushToken returns the device push destination.
// Returns nil when the user cannot be reached over push.
func (u *User) PushToken() *string {
	return u.pushToken
}

// IsReachable reports whether the user can receive push notifications.
func (u *User) IsReachable() bool {
	return u.pushToken != nil
}

// RegisterPushToken stores the push destination of the user's current device
// session. An empty token clears the destination, marking the user
// unreachable.
func (u *User) RegisterPushToken(token string) {
	if token == "" {
		u.pushToken = nil
		return
	}
	u.pushToken = &token
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setRole(role order.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
