// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the marketplace. It implements business
// decisions that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - NotificationRouter: A domain service deciding, for each order lifecycle
//     event, who is notified and with what message
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
