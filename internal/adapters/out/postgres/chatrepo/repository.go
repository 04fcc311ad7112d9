// Package chatrepo persists chat sessions between buyers and stores.
// Session identifiers are derived from the participant pair, so an insert
// conflict simply means another request created the same session first.
package chatrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"marketplace/internal/core/domain/model/chat"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// SessionDTO represents the database structure for persisting chat sessions.
type SessionDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	BuyerID uuid.UUID `gorm:"type:uuid;index"`
	StoreID uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for chat sessions.
func (SessionDTO) TableName() string {
	return "chat_sessions"
}

func fromDomain(session *chat.Session) SessionDTO {
	return SessionDTO{
		ID:      session.ID().Bytes(),
		BuyerID: session.BuyerID().Bytes(),
		StoreID: session.StoreID().Bytes(),
	}
}

func toDomain(dto SessionDTO) (*chat.Session, error) {
	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}

	return chat.NewSession(buyerID, storeID)
}

// GormChatRepository implements ChatRepository using GORM.
type GormChatRepository struct {
	db *gorm.DB
}

// NewGormChatRepository creates a new GORM chat repository.
func NewGormChatRepository(db *gorm.DB) *GormChatRepository {
	return &GormChatRepository{db: db}
}

// Ensure persists the session if absent and returns the stored session.
// The insert uses ON CONFLICT DO NOTHING; the subsequent read returns
// whichever request won.
func (r *GormChatRepository) Ensure(ctx context.Context, session *chat.Session) (*chat.Session, error) {
	if err := session.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(session)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error
	if err != nil {
		return nil, err
	}

	return r.Get(ctx, session.ID())
}

// Get retrieves a session by ID.
func (r *GormChatRepository) Get(ctx context.Context, id kernel.UUID) (*chat.Session, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SessionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("chat session", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
