// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"album/internal/domain/entity"

	"github.com/google/uuid"
)

// AccessUsecase decides what an agent may read and write.
type AccessUsecase interface {
	// ReadableDirectories returns the agent's own directory followed by the directory of
	// every agent in its CanRead set. Recomputed on every call.
	ReadableDirectories(ctx context.Context, agentID uuid.UUID) ([]string, error)

	// IsPrivileged reports whether agent is the configured super-identity.
	IsPrivileged(agent *entity.Agent) bool

	// CanReadDirectory reports whether agent may read everything under dir.
	CanReadDirectory(ctx context.Context, agent *entity.Agent, dir string) (bool, error)

	// CanWriteDirectory reports whether agent owns dir or is privileged.
	CanWriteDirectory(agent *entity.Agent, dir string) bool

	// AuthorizeFile gates static byte access to a stored path. A nil agent is anonymous
	// and gets domainerrors.ErrFileNotFound; an authenticated agent without access gets
	// domainerrors.ErrNotAuthorized.
	AuthorizeFile(ctx context.Context, agent *entity.Agent, path string) error
}
