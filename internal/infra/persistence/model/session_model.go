package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionModel mirrors the 'sessions' table. Only the token hash is stored.
type SessionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AgentID   uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:char(64);uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}

// AllModels lists every model in migration order.
func AllModels() []any {
	return []any{
		&AgentModel{},
		&AgentGrantModel{},
		&MediaModel{},
		&MediaFlaggerModel{},
		&MediaLikeModel{},
		&NoteModel{},
		&SessionModel{},
	}
}
