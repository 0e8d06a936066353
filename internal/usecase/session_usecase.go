package usecase

import (
	"context"

	"album/internal/domain/entity"
)

// LoginInput defines the data required for a local login.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput carries both credentials so browser and API clients can continue.
type LoginOutput struct {
	Agent        *entity.Agent
	SessionToken string
	AccessToken  string
}

// SessionUsecase establishes and resolves the two kinds of credentials.
type SessionUsecase interface {
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	// ExternalLogin verifies an identity-provider ID token, creating the agent on first
	// login and syncing its profile on every login.
	ExternalLogin(ctx context.Context, idToken string) (*LoginOutput, error)
	Logout(ctx context.Context, sessionToken string) error

	// AuthenticateSession resolves a session cookie value to its agent.
	AuthenticateSession(ctx context.Context, sessionToken string) (*entity.Agent, error)
	// AuthenticateToken resolves a bearer token to its agent.
	AuthenticateToken(ctx context.Context, token string) (*entity.Agent, error)

	CleanupExpiredSessions(ctx context.Context) (int64, error)
}
