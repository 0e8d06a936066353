package model

import (
	"time"

	"github.com/google/uuid"
)

// AgentModel mirrors the 'agents' table. Email is the case-sensitive natural key.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type AgentModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255)"`
	Name         string    `gorm:"type:varchar(255)"`
	GivenName    string    `gorm:"type:varchar(100)"`
	FamilyName   string    `gorm:"type:varchar(100)"`
	Picture      string    `gorm:"type:text"`
	Locale       string    `gorm:"type:varchar(20)"`
	ProviderID   string    `gorm:"type:varchar(255);index"`
	ResetToken   *string   `gorm:"type:varchar(128);uniqueIndex"`
	ResetExpires *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Grants []AgentGrantModel `gorm:"foreignKey:AgentID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AgentModel) TableName() string {
	return "agents"
}

// AgentGrantModel mirrors 'agent_grants': AgentID may read TargetID's directory.
type AgentGrantModel struct {
	AgentID   uuid.UUID   `gorm:"type:uuid;primaryKey"`
	TargetID  uuid.UUID   `gorm:"type:uuid;primaryKey;index"`
	Target    *AgentModel `gorm:"foreignKey:TargetID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AgentGrantModel) TableName() string {
	return "agent_grants"
}
