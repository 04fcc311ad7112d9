// Package order provides domain entities and business logic for order lifecycle
// management in the marketplace. It implements the Order aggregate root with the
// status state machine, payment sub-flag, transition authorization, and live
// driver coordinate recording.
//
// The package includes:
//   - Order: The aggregate root managing identity, participants, and lifecycle
//   - Status: A state machine enforcing the strict forward transition chain
//   - PaymentStatus: An orthogonal, sticky payment confirmation flag
//   - Actor/Role: The requesting participant used for per-edge authorization
//   - DriverCoords: The freshness-stamped live driver position value object
//   - Event/Transition: Durable lifecycle events consumed by the dispatcher
//
// Key business rules:
//   - Status moves only along Created -> Preparing -> OutForDelivery -> Delivered
//   - Only the order's store may start preparation; only a driver may claim;
//     only the assigned driver may complete the delivery
//   - The delivery claim is first-writer-wins: a second driver gets ErrAlreadyClaimed
//   - Driver coordinates are writable only while the order is OutForDelivery
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
