package model

import (
	"time"

	"github.com/google/uuid"
)

// MediaModel mirrors the 'media_items' table holding both images and tracks.
type MediaModel struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Kind        string      `gorm:"type:varchar(10);not null;index:idx_media_owner_kind,priority:2"`
	Path        string      `gorm:"type:varchar(1024);uniqueIndex;not null"`
	OwnerID     uuid.UUID   `gorm:"type:uuid;not null;index:idx_media_owner_kind,priority:1"`
	Owner       *AgentModel `gorm:"foreignKey:OwnerID"`
	Name        string      `gorm:"type:varchar(255)"`
	Transcript  string      `gorm:"type:text"`
	PublishedAt *time.Time  `gorm:"index"`
	Flagged     bool        `gorm:"not null;default:false;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Flaggers []MediaFlaggerModel `gorm:"foreignKey:MediaID;constraint:OnDelete:CASCADE"`
	Likes    []MediaLikeModel    `gorm:"foreignKey:MediaID;constraint:OnDelete:CASCADE"`
	Notes    []NoteModel         `gorm:"foreignKey:MediaID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (MediaModel) TableName() string {
	return "media_items"
}

// MediaFlaggerModel mirrors 'media_flaggers'. Rows survive a cleared flag.
type MediaFlaggerModel struct {
	MediaID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	AgentID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MediaFlaggerModel) TableName() string {
	return "media_flaggers"
}

// MediaLikeModel mirrors 'media_likes'.
type MediaLikeModel struct {
	MediaID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	AgentID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MediaLikeModel) TableName() string {
	return "media_likes"
}

// NoteModel mirrors the 'media_notes' table.
type NoteModel struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey"`
	MediaID   uuid.UUID   `gorm:"type:uuid;not null;index"`
	AuthorID  uuid.UUID   `gorm:"type:uuid;not null"`
	Author    *AgentModel `gorm:"foreignKey:AuthorID"`
	Text      string      `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NoteModel) TableName() string {
	return "media_notes"
}
