// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"album/config"
	deliverycontext "album/internal/delivery/context"
	"album/internal/domain/entity"
	domainerrors "album/internal/domain/errors"
	"album/internal/domain/repository"
	"album/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accessService implements the AccessUsecase interface.
type accessService struct {
	agentRepo       repository.AgentRepository
	mediaRepo       repository.MediaRepository
	privilegedEmail string
	staticPrefix    string
	logger          *slog.Logger
}

// AccessServiceParams holds dependencies for AccessService, injected by Fx.
type AccessServiceParams struct {
	fx.In

	AgentRepo repository.AgentRepository
	MediaRepo repository.MediaRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAccessService is the constructor for accessService.
func NewAccessService(params AccessServiceParams) usecase.AccessUsecase {
	return &accessService{
		agentRepo:       params.AgentRepo,
		mediaRepo:       params.MediaRepo,
		privilegedEmail: params.Config.Auth.PrivilegedEmail,
		staticPrefix:    strings.Trim(params.Config.Upload.StaticPrefix, "/"),
		logger:          params.Logger,
	}
}

func (srv *accessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ReadableDirectories loads the agent fresh on every call so grant changes apply to the next request.
func (srv *accessService) ReadableDirectories(ctx context.Context, agentID uuid.UUID) ([]string, error) {
	agent, err := srv.agentRepo.FindByID(ctx, agentID)
	if err != nil {
		if errors.Is(err, repository.ErrAgentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAgentNotFound, "agent not found")
		}

		return nil, errors.Wrap(err, "failed to load agent")
	}

	dirs := []string{agent.Directory()}
	if len(agent.CanRead) == 0 {
		return dirs, nil
	}

	granted, err := srv.agentRepo.FindByIDs(ctx, agent.CanRead)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load granting agents")
	}

	byID := make(map[uuid.UUID]*entity.Agent, len(granted))
	for _, g := range granted {
		byID[g.ID] = g
	}

	for _, id := range agent.CanRead {
		g, ok := byID[id]
		if !ok {
			srv.log(ctx).Warn("Grant references a missing agent", slog.Any("agent_id", agent.ID), slog.Any("granted_id", id))

			continue
		}
		dirs = append(dirs, g.Directory())
	}

	return dirs, nil
}

// IsPrivileged checks the agent against the configured super-identity.
func (srv *accessService) IsPrivileged(agent *entity.Agent) bool {
	return agent != nil && srv.privilegedEmail != "" && agent.Email == srv.privilegedEmail
}

func (srv *accessService) CanReadDirectory(ctx context.Context, agent *entity.Agent, dir string) (bool, error) {
	if agent == nil {
		return false, nil
	}
	if srv.IsPrivileged(agent) || agent.Directory() == dir {
		return true, nil
	}

	dirs, err := srv.ReadableDirectories(ctx, agent.ID)
	if err != nil {
		return false, err
	}

	return slices.Contains(dirs, dir), nil
}

func (srv *accessService) CanWriteDirectory(agent *entity.Agent, dir string) bool {
	if agent == nil {
		return false
	}

	return agent.Directory() == dir || srv.IsPrivileged(agent)
}

// AuthorizeFile masks existence from anonymous callers with a 404.
func (srv *accessService) AuthorizeFile(ctx context.Context, agent *entity.Agent, path string) error {
	path = strings.TrimPrefix(path, "/")
	rel, ok := strings.CutPrefix(path, srv.staticPrefix+"/")
	if !ok || strings.Contains(rel, "..") {
		return domainerrors.ErrFileNotFound
	}

	if agent == nil {
		return domainerrors.ErrFileNotFound
	}
	if srv.IsPrivileged(agent) {
		return nil
	}

	dirs, err := srv.ReadableDirectories(ctx, agent.ID)
	if err != nil {
		return err
	}

	for _, dir := range dirs {
		if strings.HasPrefix(rel, dir+"/") {
			return nil
		}
	}

	// Published, unflagged items are public even outside the readable set.
	item, err := srv.mediaRepo.FindByPath(ctx, path)
	switch {
	case err == nil && item.IsPublic():
		return nil
	case err != nil && !errors.Is(err, repository.ErrMediaNotFound):
		return errors.Wrap(err, "failed to look up media for static access")
	}

	srv.log(ctx).Info("Static access denied", slog.String("path", path), slog.Any("agent_id", agent.ID))

	return domainerrors.ErrNotAuthorized
}
