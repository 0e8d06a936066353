package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"album/config"
	deliverycontext "album/internal/delivery/context"
	"album/internal/domain/entity"
	domainerrors "album/internal/domain/errors"
	"album/internal/domain/repository"
	"album/internal/domain/service"
	"album/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// agentService implements the AgentUsecase interface.
type agentService struct {
	txManager     repository.TransactionManager
	agentRepo     repository.AgentRepository
	access        usecase.AccessUsecase
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	profiles      service.ProfileFetcher
	publisher     service.EventPublisher
	clock         service.Clock
	resetTokenTTL time.Duration
	logger        *slog.Logger
}

// AgentServiceParams holds dependencies for AgentService, injected by Fx.
type AgentServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AgentRepo    repository.AgentRepository
	Access       usecase.AccessUsecase
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Profiles     service.ProfileFetcher
	Publisher    service.EventPublisher
	Clock        service.Clock
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAgentService is the constructor for agentService.
func NewAgentService(params AgentServiceParams) usecase.AgentUsecase {
	return &agentService{
		txManager:     params.TxManager,
		agentRepo:     params.AgentRepo,
		access:        params.Access,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		profiles:      params.Profiles,
		publisher:     params.Publisher,
		clock:         params.Clock,
		resetTokenTTL: params.Config.Auth.ResetTokenTTL,
		logger:        params.Logger,
	}
}

func (srv *agentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a local agent with a bcrypt credential.
func (srv *agentService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.Agent, error) {
	email := strings.TrimSpace(input.Email)
	if !strings.Contains(email, "@") {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "email must contain @")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	_, err := srv.agentRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, domainerrors.ErrAgentAlreadyExists
	case !errors.Is(err, repository.ErrAgentNotFound):
		return nil, errors.Wrap(err, "failed to check existing agent")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	now := srv.clock.Now()
	agent := &entity.Agent{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(input.Name),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := srv.agentRepo.Create(ctx, agent); err != nil {
		return nil, errors.Wrap(err, "failed to create agent")
	}

	srv.log(ctx).Info("Agent registered", slog.Any("agent_id", agent.ID), slog.String("directory", agent.Directory()))

	return agent, nil
}

// Grant lets the agent named by readerEmail read owner's directory.
func (srv *agentService) Grant(ctx context.Context, owner *entity.Agent, readerEmail string) error {
	if owner == nil {
		return domainerrors.ErrLoginRequired
	}

	readerEmail = strings.TrimSpace(readerEmail)
	if readerEmail == owner.Email {
		return domainerrors.ErrSelfGrant
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		agentRepo := repoFactory.AgentRepo()

		reader, err := agentRepo.FindByEmail(ctx, readerEmail)
		if err != nil {
			if errors.Is(err, repository.ErrAgentNotFound) {
				return errors.Wrap(domainerrors.ErrAgentNotFound, "grant target not found")
			}

			return errors.Wrap(err, "failed to find grant target")
		}

		if reader.CanReadAgent(owner.ID) {
			return domainerrors.ErrDuplicateGrant
		}

		return errors.Wrap(agentRepo.AddGrant(ctx, reader.ID, owner.ID), "failed to add grant")
	})
	if err != nil {
		return errors.Wrap(err, "failed to grant read access")
	}

	srv.log(ctx).Info("Read access granted", slog.Any("owner_id", owner.ID), slog.String("reader", readerEmail))

	return nil
}

// Revoke withdraws a grant. Revoking a grant that does not exist is a no-op.
func (srv *agentService) Revoke(ctx context.Context, owner *entity.Agent, readerEmail string) error {
	if owner == nil {
		return domainerrors.ErrLoginRequired
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		agentRepo := repoFactory.AgentRepo()

		reader, err := agentRepo.FindByEmail(ctx, strings.TrimSpace(readerEmail))
		if err != nil {
			if errors.Is(err, repository.ErrAgentNotFound) {
				return errors.Wrap(domainerrors.ErrAgentNotFound, "grant target not found")
			}

			return errors.Wrap(err, "failed to find grant target")
		}

		if !reader.CanReadAgent(owner.ID) {
			return nil
		}

		return errors.Wrap(agentRepo.RemoveGrant(ctx, reader.ID, owner.ID), "failed to remove grant")
	})
	if err != nil {
		return errors.Wrap(err, "failed to revoke read access")
	}

	return nil
}

func (srv *agentService) Grants(ctx context.Context, agent *entity.Agent) (*usecase.GrantsOutput, error) {
	if agent == nil {
		return nil, domainerrors.ErrLoginRequired
	}

	readable, err := srv.access.ReadableDirectories(ctx, agent.ID)
	if err != nil {
		return nil, err
	}

	readers, err := srv.agentRepo.FindReaders(ctx, agent.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list readers")
	}

	emails := make([]string, 0, len(readers))
	for _, r := range readers {
		emails = append(emails, r.Email)
	}

	return &usecase.GrantsOutput{Readable: readable, Readers: emails}, nil
}

// RequestPasswordReset stores a reset token and hands it to the mailer through an event.
func (srv *agentService) RequestPasswordReset(ctx context.Context, email string) error {
	agent, err := srv.agentRepo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrAgentNotFound) {
			srv.log(ctx).Info("Password reset requested for unknown email")

			return nil
		}

		return errors.Wrap(err, "failed to find agent for reset")
	}

	token, err := srv.tokenService.GenerateOpaqueToken()
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	expires := srv.clock.Now().Add(srv.resetTokenTTL)
	agent.ResetToken = token
	agent.ResetExpires = &expires

	if err := srv.agentRepo.Update(ctx, agent); err != nil {
		return errors.Wrap(err, "failed to store reset token")
	}

	event := &service.Event{
		ID:        uuid.NewString(),
		Type:      service.EventPasswordReset,
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Subject:   agent.Email,
		Attributes: map[string]string{
			"token":      token,
			"expires_at": expires.UTC().Format(time.RFC3339),
		},
	}

	if err := srv.publisher.Publish(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish password reset")
	}

	return nil
}

func (srv *agentService) ResetPassword(ctx context.Context, token, password string) error {
	if token == "" {
		return domainerrors.ErrResetTokenInvalid
	}

	agent, err := srv.agentRepo.FindByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrAgentNotFound) {
			return domainerrors.ErrResetTokenInvalid
		}

		return errors.Wrap(err, "failed to find reset token")
	}

	if !agent.ResetTokenValid(token, srv.clock.Now()) {
		return domainerrors.ErrResetTokenInvalid
	}

	if err := srv.hasher.ValidatePasswordStrength(password); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	agent.PasswordHash = hash
	agent.ResetToken = ""
	agent.ResetExpires = nil
	agent.UpdatedAt = srv.clock.Now()

	if err := srv.agentRepo.Update(ctx, agent); err != nil {
		return errors.Wrap(err, "failed to save new password")
	}

	srv.log(ctx).Info("Password reset", slog.Any("agent_id", agent.ID))

	return nil
}

// AdminList is restricted to the privileged identity. Identity API failures only skip the refresh.
func (srv *agentService) AdminList(ctx context.Context, viewer *entity.Agent) ([]*entity.Agent, error) {
	if viewer == nil {
		return nil, domainerrors.ErrLoginRequired
	}
	if !srv.access.IsPrivileged(viewer) {
		return nil, domainerrors.ErrNotAuthorized
	}

	agents, err := srv.agentRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list agents")
	}

	if srv.profiles == nil || !srv.profiles.Enabled() {
		return agents, nil
	}

	for _, agent := range agents {
		profile, err := srv.profiles.FetchProfile(ctx, agent.Email)
		if err != nil {
			srv.log(ctx).Warn("Profile refresh failed", slog.String("email", agent.Email), slog.Any("error", err))

			continue
		}

		if !applyProfile(agent, profile) {
			continue
		}
		agent.UpdatedAt = srv.clock.Now()

		if err := srv.agentRepo.Update(ctx, agent); err != nil {
			srv.log(ctx).Warn("Failed to save refreshed profile", slog.String("email", agent.Email), slog.Any("error", err))
		}
	}

	return agents, nil
}

// applyProfile copies non-empty provider fields onto agent and reports whether anything changed.
func applyProfile(agent *entity.Agent, profile *service.ExternalProfile) bool {
	changed := false
	set := func(dst *string, v string) {
		if v != "" && *dst != v {
			*dst = v
			changed = true
		}
	}

	set(&agent.Name, profile.Name)
	set(&agent.GivenName, profile.GivenName)
	set(&agent.FamilyName, profile.FamilyName)
	set(&agent.Picture, profile.Picture)
	set(&agent.Locale, profile.Locale)
	set(&agent.ProviderID, profile.Subject)

	return changed
}
