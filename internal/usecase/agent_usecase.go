package usecase

import (
	"context"

	"album/internal/domain/entity"
)

// RegisterInput defines the data required to register a local agent.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

// GrantsOutput lists both sides of an agent's grants.
type GrantsOutput struct {
	// Readable holds every directory the agent may read, its own first.
	Readable []string
	// Readers holds the emails of agents that may read the agent's directory.
	Readers []string
}

// AgentUsecase manages accounts, read grants and the admin view.
type AgentUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*entity.Agent, error)

	Grant(ctx context.Context, owner *entity.Agent, readerEmail string) error
	Revoke(ctx context.Context, owner *entity.Agent, readerEmail string) error
	Grants(ctx context.Context, agent *entity.Agent) (*GrantsOutput, error)

	// RequestPasswordReset issues a reset token. Unknown emails succeed silently.
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error

	// AdminList returns every agent, refreshed from the identity API when enabled.
	AdminList(ctx context.Context, viewer *entity.Agent) ([]*entity.Agent, error)
}
