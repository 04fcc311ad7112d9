package ports

import (
	"context"

	"marketplace/internal/core/domain/model/chat"
	"marketplace/internal/core/domain/model/kernel"
)

// ChatRepository defines the persistence contract for chat sessions.
type ChatRepository interface {
	// Ensure persists the session if it does not exist yet and returns the
	// stored session either way. Session identifiers are derived from their
	// participants, so concurrent opens for the same buyer/store pair
	// converge on one row.
	Ensure(ctx context.Context, session *chat.Session) (*chat.Session, error)

	// Get retrieves a session by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*chat.Session, error)
}
