package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session represents an established browser login. Only a SHA-256 hash of the
// cookie value is stored.
type Session struct {
	ID        uuid.UUID
	AgentID   uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the session is no longer usable at now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
