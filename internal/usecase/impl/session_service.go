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

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager    repository.TransactionManager
	agentRepo    repository.AgentRepository
	sessionRepo  repository.SessionRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	verifier     service.IdentityVerifier
	clock        service.Clock
	sessionTTL   time.Duration
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AgentRepo    repository.AgentRepository
	SessionRepo  repository.SessionRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Verifier     service.IdentityVerifier
	Clock        service.Clock
	Config       *config.Config
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		txManager:    params.TxManager,
		agentRepo:    params.AgentRepo,
		sessionRepo:  params.SessionRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		verifier:     params.Verifier,
		clock:        params.Clock,
		sessionTTL:   params.Config.Auth.SessionTTL,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login checks a local credential and opens a session.
func (srv *sessionService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	agent, err := srv.agentRepo.FindByEmail(ctx, strings.TrimSpace(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrAgentNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load agent for login")
	}

	// Agents created through the identity provider have no local credential.
	if agent.PasswordHash == "" || !srv.hasher.Check(input.Password, agent.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	return srv.openSession(ctx, agent)
}

// ExternalLogin creates the agent on first login and syncs its profile on every login.
func (srv *sessionService) ExternalLogin(ctx context.Context, idToken string) (*usecase.LoginOutput, error) {
	profile, err := srv.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		srv.log(ctx).Warn("ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthTokenInvalid, err.Error())
	}
	if profile.Email == "" || !profile.EmailVerified {
		return nil, errors.Wrap(domainerrors.ErrOAuthTokenInvalid, "email missing or unverified")
	}

	var agent *entity.Agent
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		agentRepo := repoFactory.AgentRepo()
		now := srv.clock.Now()

		existing, err := agentRepo.FindByEmail(ctx, profile.Email)
		switch {
		case err == nil:
			agent = existing
			if applyProfile(agent, profile) {
				agent.UpdatedAt = now

				return errors.Wrap(agentRepo.Update(ctx, agent), "failed to sync profile")
			}

			return nil
		case errors.Is(err, repository.ErrAgentNotFound):
			agent = &entity.Agent{ID: uuid.New(), Email: profile.Email, CreatedAt: now, UpdatedAt: now}
			applyProfile(agent, profile)

			return errors.Wrap(agentRepo.Create(ctx, agent), "failed to create agent")
		default:
			return errors.Wrap(err, "failed to find agent")
		}
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute external login transaction")
	}

	return srv.openSession(ctx, agent)
}

func (srv *sessionService) openSession(ctx context.Context, agent *entity.Agent) (*usecase.LoginOutput, error) {
	raw, err := srv.tokenService.GenerateOpaqueToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	now := srv.clock.Now()
	session := &entity.Session{
		ID:        uuid.New(),
		AgentID:   agent.ID,
		TokenHash: srv.tokenService.HashToken(raw),
		ExpiresAt: now.Add(srv.sessionTTL),
		CreatedAt: now,
	}

	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to store session")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(agent.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("Agent logged in", slog.Any("agent_id", agent.ID))

	return &usecase.LoginOutput{Agent: agent, SessionToken: raw, AccessToken: accessToken}, nil
}

// Logout deletes the session. Unknown sessions are ignored.
func (srv *sessionService) Logout(ctx context.Context, sessionToken string) error {
	if sessionToken == "" {
		return nil
	}

	err := srv.sessionRepo.DeleteByTokenHash(ctx, srv.tokenService.HashToken(sessionToken))
	if err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

func (srv *sessionService) AuthenticateSession(ctx context.Context, sessionToken string) (*entity.Agent, error) {
	if sessionToken == "" {
		return nil, domainerrors.ErrLoginRequired
	}

	session, err := srv.sessionRepo.FindByTokenHash(ctx, srv.tokenService.HashToken(sessionToken))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrInvalidToken
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	if session.Expired(srv.clock.Now()) {
		return nil, domainerrors.ErrInvalidToken
	}

	return srv.loadAgent(ctx, session.AgentID)
}

func (srv *sessionService) AuthenticateToken(ctx context.Context, token string) (*entity.Agent, error) {
	if token == "" {
		return nil, domainerrors.ErrNoToken
	}

	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		srv.log(ctx).Debug("Bearer token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidToken
	}

	return srv.loadAgent(ctx, claims.AgentID)
}

func (srv *sessionService) loadAgent(ctx context.Context, id uuid.UUID) (*entity.Agent, error) {
	agent, err := srv.agentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAgentNotFound) {
			return nil, domainerrors.ErrInvalidToken
		}

		return nil, errors.Wrap(err, "failed to load authenticated agent")
	}

	return agent, nil
}

// CleanupExpiredSessions removes sessions past their expiry.
func (srv *sessionService) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	n, err := srv.sessionRepo.DeleteExpired(ctx, srv.clock.Now())
	if err != nil {
		srv.log(ctx).Error("Failed to cleanup expired sessions", slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to cleanup expired sessions")
	}

	if n > 0 {
		srv.log(ctx).Info("Expired sessions removed", slog.Int64("count", n))
	}

	return n, nil
}
