// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OutboxRepoFactory provides access to the outbox repository within a transaction.
	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// ReviewRepoFactory provides access to the review repository within a transaction.
	ReviewRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
	}

	// ChatRepoFactory provides access to the chat repository within a transaction.
	ChatRepoFactory interface {
		ChatRepository() ports.ChatRepository
	}

	// OrderUoW manages transactions for order-only operations such as driver
	// position writes, which emit no lifecycle event.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new OrderUoW instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderOutboxUoW manages transactions for commands that change an order
	// and record the lifecycle event in the same commit. Writing both inside
	// one transaction is what guarantees a notification is attempted for
	// every durable state change.
	OrderOutboxUoW interface {
		TxManager
		OrderRepoFactory
		OutboxRepoFactory
	}

	// OrderOutboxUoWFactory creates new OrderOutboxUoW instances.
	OrderOutboxUoWFactory interface {
		Create() OrderOutboxUoW
	}

	// RelayUoW manages transactions for the notification relay. It reads
	// pending events, resolves order participants and their push tokens, and
	// marks events dispatched.
	RelayUoW interface {
		TxManager
		OutboxRepoFactory
		OrderRepoFactory
		UserRepoFactory
	}

	// RelayUoWFactory creates new RelayUoW instances.
	RelayUoWFactory interface {
		Create() RelayUoW
	}

	// ReviewUoW manages transactions for review submission, which reads the
	// order and writes the review.
	ReviewUoW interface {
		TxManager
		OrderRepoFactory
		ReviewRepoFactory
	}

	// ReviewUoWFactory creates new ReviewUoW instances.
	ReviewUoWFactory interface {
		Create() ReviewUoW
	}

	// ChatUoW manages transactions for chat session operations.
	ChatUoW interface {
		TxManager
		ChatRepoFactory
	}

	// ChatUoWFactory creates new ChatUoW instances.
	ChatUoWFactory interface {
		Create() ChatUoW
	}

	// UserUoW manages transactions for user-only operations such as push
	// token registration.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new UserUoW instances.
	UserUoWFactory interface {
		Create() UserUoW
	}
)
