// Package chat provides the buyer-store chat session lookup model.
// Message persistence is owned by an adjacent subsystem; this package only
// models the session identity shared with it.
//
// A session's identifier is derived deterministically from the unordered
// participant pair, so two near-simultaneous first contacts from the same
// buyer resolve to the same session instead of racing a read-then-create
// sequence into two sessions.
package chat

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
)

// ErrSessionIsNotConstructed is returned when a Session instance was not
// created through the NewSession factory method.
var ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")

// ErrSameParticipant is returned when both participants are the same user.
var ErrSameParticipant = errors.New("chat session requires two distinct participants")

// Session is one buyer-store conversation handle.
// Its identity is a function of the participant pair: SessionID(buyer, store)
// always yields the same UUID regardless of argument order or which side
// initiates first contact.
type Session struct {
	id      kernel.UUID
	buyerID kernel.UUID
	storeID kernel.UUID

	isConstructed bool
}

// SessionID derives the deterministic session identifier for a participant pair.
func SessionID(buyerID kernel.UUID, storeID kernel.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromPair(buyerID, storeID)
}

// NewSession creates a validated Session for a buyer-store pair.
// The session id is always derived, never supplied, so every caller creating
// a session for the same pair produces an identical aggregate.
func NewSession(buyerID kernel.UUID, storeID kernel.UUID) (*Session, error) {
	if err := errors.Join(buyerID.Validate(), storeID.Validate()); err != nil {
		return nil, err
	}
	if buyerID.IsEqual(storeID) {
		return nil, ErrSameParticipant
	}

	id, err := SessionID(buyerID, storeID)
	if err != nil {
		return nil, err
	}

	return &Session{
		id:            id,
		buyerID:       buyerID,
		storeID:       storeID,
		isConstructed: true,
	}, nil
}

// Validate ensures the Session instance was properly constructed.
func (s *Session) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSessionIsNotConstructed
	}

	return nil
}

// ID returns the deterministic session identifier.
func (s *Session) ID() kernel.UUID {
	return s.id
}

// BuyerID returns the buyer participant.
func (s *Session) BuyerID() kernel.UUID {
	return s.buyerID
}

// StoreID returns the store participant.
func (s *Session) StoreID() kernel.UUID {
	return s.storeID
}

// HasParticipant reports whether the given user takes part in this session.
func (s *Session) HasParticipant(participantID kernel.UUID) bool {
	return s.buyerID.IsEqual(participantID) || s.storeID.IsEqual(participantID)
}
