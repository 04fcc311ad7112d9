package order

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor instance was not created
// through the NewActor factory method.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Role identifies which kind of participant is requesting an operation.
// Transition authorization is decided per edge of the status state machine
// based on the requesting actor's role and identity.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleBuyer is the customer who placed the order.
	RoleBuyer

	// RoleStore is the store fulfilling the order.
	RoleStore

	// RoleDriver is a delivery driver.
	RoleDriver

	// RoleAdmin is a marketplace administrator.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "Unknown",
		RoleBuyer:   "Buyer",
		RoleStore:   "Store",
		RoleDriver:  "Driver",
		RoleAdmin:   "Admin",
	}
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if r != RoleBuyer && r != RoleStore && r != RoleDriver && r != RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// RoleFromString parses a role from its string representation.
// Matching is exact against the canonical names returned by String.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s && role != RoleUnknown {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role is invalid", fmt.Errorf("%q is not a valid role", s))
}

// Actor is a value object identifying the participant requesting a state
// transition: who they are and in which role they act.
//
// Example:
//
//	actor, err := order.NewActor(driverID, order.RoleDriver)
//	if err != nil {
//	    // Handle validation error
//	}
type Actor struct { //nolint:recvcheck //using for validation
	id    kernel.UUID
	role  Role
	guard guard.ConstructorGuard
}

// NewActor creates a validated Actor from a participant id and role.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:    id,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Actor was created through the constructor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the actor's participant identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the role the actor is acting in.
func (a Actor) Role() Role {
	return a.role
}

// String returns a human-readable representation for logging.
func (a Actor) String() string {
	return fmt.Sprintf("%s(%s)", a.role, a.id)
}
