package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with strictly forward transitions: every state
// is reachable only from its immediate predecessor, with no skipping and no
// regression.
//
// State transitions:
//
//	Created ──> Preparing ──> OutForDelivery ──> Delivered
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status, set when the buyer checks out.
	// Orders in this status are waiting for the store to start preparation.
	Created

	// Preparing indicates the store has accepted the order and is preparing it.
	// Orders in this status are waiting for a driver to claim them.
	Preparing

	// OutForDelivery indicates a driver has claimed the order and is delivering it.
	// Live driver coordinates are only meaningful while an order is in this status.
	OutForDelivery

	// Delivered indicates the order reached the buyer.
	// This is a terminal state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Created:        "Created",
		Preparing:      "Preparing",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:        "Created",
		Preparing:      "Preparing",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Created, Preparing, OutForDelivery, Delivered.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface and is safe to call on any Status
// value, including invalid ones (which render as "Unknown").
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status from its string representation.
// Matching is exact against the canonical names returned by String.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Successor returns the only status reachable from the current one.
// Returns Unknown for terminal or invalid statuses, meaning no forward
// transition exists.
//
// The successor chain is the entire transition table of the state machine:
// a requested transition is valid exactly when its target equals the
// current status's successor.
func (s Status) Successor() Status {
	switch s {
	case Created:
		return Preparing
	case Preparing:
		return OutForDelivery
	case OutForDelivery:
		return Delivered
	default:
		return Unknown
	}
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// AllowsDriverCoords reports whether live driver coordinates may be written
// while the order is in this status. Coordinates are only publishable during
// active delivery; a coordinate arriving in any other status must be rejected
// because consumers treat it as evidence of an in-progress delivery.
func (s Status) AllowsDriverCoords() bool {
	return s == OutForDelivery
}

// ValidateCanHaveDriver validates the consistency between order status and driver assignment.
// Enforces business rules about which statuses require a claimed driver.
//
// Business Rules:
//   - Created and Preparing orders must not have a driver assigned
//   - OutForDelivery orders must have a driver assigned
//   - Delivered orders must have a driver assigned
//
// Parameters:
//   - driver: whether the order has a driver assigned
//
// Returns:
//   - error: validation error if status and driver assignment are inconsistent
func (s Status) ValidateCanHaveDriver(driver bool) error {
	if driver && s != OutForDelivery && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a driver", s.String()),
		)
	}

	if !driver && (s == OutForDelivery || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no driver", s.String()),
		)
	}

	return nil
}
