// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"album/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAgentNotFound is returned when an agent lookup has no match.
var ErrAgentNotFound = errors.New("agent not found")

// AgentRepository defines persistence operations for agents and their read grants.
type AgentRepository interface {
	// FindByID retrieves an agent with its CanRead set. Reads always hit the primary so
	// grant changes are visible immediately.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Agent, error)

	// FindByEmail retrieves an agent by its exact (case-sensitive) email.
	FindByEmail(ctx context.Context, email string) (*entity.Agent, error)

	// FindByIDs retrieves every agent in ids; unknown IDs are skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Agent, error)

	// FindByResetToken retrieves the agent holding a password reset token.
	FindByResetToken(ctx context.Context, token string) (*entity.Agent, error)

	// FindReaders returns the agents whose CanRead set contains targetID.
	FindReaders(ctx context.Context, targetID uuid.UUID) ([]*entity.Agent, error)

	// List returns all agents ordered by email.
	List(ctx context.Context) ([]*entity.Agent, error)

	// Create persists a new agent.
	Create(ctx context.Context, agent *entity.Agent) error

	// Update saves profile, credential and reset fields. Grants are not touched.
	Update(ctx context.Context, agent *entity.Agent) error

	// AddGrant adds targetID to agentID's CanRead set.
	AddGrant(ctx context.Context, agentID, targetID uuid.UUID) error

	// RemoveGrant removes targetID from agentID's CanRead set.
	RemoveGrant(ctx context.Context, agentID, targetID uuid.UUID) error
}
