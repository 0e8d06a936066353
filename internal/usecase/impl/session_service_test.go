package impl

import (
	"context"
	"testing"
	"time"

	"album/internal/domain/entity"
	domainerrors "album/internal/domain/errors"
	"album/internal/domain/repository"
	"album/internal/domain/service"
	mockRepo "album/internal/mocks/repository"
	mockSvc "album/internal/mocks/service"
	"album/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionServiceFixtures struct {
	service      usecase.SessionUsecase
	txManager    *mockRepo.MockTransactionManager
	agentRepo    *mockRepo.MockAgentRepository
	sessionRepo  *mockRepo.MockSessionRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	verifier     *mockSvc.MockIdentityVerifier
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	fx := sessionServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		agentRepo:    mockRepo.NewMockAgentRepository(t),
		sessionRepo:  mockRepo.NewMockSessionRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
		verifier:     mockSvc.NewMockIdentityVerifier(t),
	}

	fx.service = NewSessionService(SessionServiceParams{
		TxManager:    fx.txManager,
		AgentRepo:    fx.agentRepo,
		SessionRepo:  fx.sessionRepo,
		Hasher:       fx.hasher,
		TokenService: fx.tokenService,
		Verifier:     fx.verifier,
		Clock:        fixedClock{now: testNow},
		Config:       newTestConfig(t),
		Logger:       newDiscardLogger(),
	})

	return fx
}

func (fx sessionServiceFixtures) expectSessionOpened(ctx context.Context, agentID uuid.UUID) {
	fx.tokenService.EXPECT().GenerateOpaqueToken().Return("raw-session", nil)
	fx.tokenService.EXPECT().HashToken("raw-session").Return("hashed-session")
	fx.sessionRepo.EXPECT().Create(ctx, mock.MatchedBy(func(s *entity.Session) bool {
		return s.AgentID == agentID && s.TokenHash == "hashed-session" && s.ExpiresAt.Equal(testNow.Add(24*time.Hour))
	})).Return(nil)
	fx.tokenService.EXPECT().GenerateAccessToken(agentID).Return("access-token", nil)
}

func TestSessionService_Login_Success(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	daniel := newAgent("daniel@example.com")
	daniel.PasswordHash = "hash"

	fx.agentRepo.EXPECT().FindByEmail(ctx, daniel.Email).Return(daniel, nil)
	fx.hasher.EXPECT().Check("Password123!", "hash").Return(true)
	fx.expectSessionOpened(ctx, daniel.ID)

	out, err := fx.service.Login(ctx, usecase.LoginInput{Email: daniel.Email, Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, "raw-session", out.SessionToken)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, daniel, out.Agent)
}

func TestSessionService_Login_InvalidCredentials(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestSessionService(t)
		fx.agentRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrAgentNotFound)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "x"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestSessionService(t)
		daniel := newAgent("daniel@example.com")
		daniel.PasswordHash = "hash"
		fx.agentRepo.EXPECT().FindByEmail(ctx, daniel.Email).Return(daniel, nil)
		fx.hasher.EXPECT().Check("nope", "hash").Return(false)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: daniel.Email, Password: "nope"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("agent without local credential", func(t *testing.T) {
		fx := createTestSessionService(t)
		daniel := newAgent("daniel@example.com")
		fx.agentRepo.EXPECT().FindByEmail(ctx, daniel.Email).Return(daniel, nil)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: daniel.Email, Password: ""})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

func TestSessionService_ExternalLogin_CreatesAgentOnFirstLogin(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	profile := &service.ExternalProfile{Subject: "google-1", Email: "mia@other.org", EmailVerified: true, Name: "Mia"}
	fx.verifier.EXPECT().VerifyIDToken(ctx, "id-token").Return(profile, nil)

	var created *entity.Agent
	expectExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txAgentRepo := mockRepo.NewMockAgentRepository(t)
		factory.EXPECT().AgentRepo().Return(txAgentRepo)
		txAgentRepo.EXPECT().FindByEmail(ctx, profile.Email).Return(nil, repository.ErrAgentNotFound)
		txAgentRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Agent")).
			RunAndReturn(func(_ context.Context, a *entity.Agent) error {
				created = a

				return nil
			})
	})
	fx.tokenService.EXPECT().GenerateOpaqueToken().Return("raw-session", nil)
	fx.tokenService.EXPECT().HashToken("raw-session").Return("hashed-session")
	fx.sessionRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.tokenService.EXPECT().GenerateAccessToken(mock.Anything).Return("access-token", nil)

	out, err := fx.service.ExternalLogin(ctx, "id-token")

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "Mia", created.Name)
	assert.Equal(t, "google-1", created.ProviderID)
	assert.Equal(t, created, out.Agent)
}

func TestSessionService_ExternalLogin_SyncsExistingProfile(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	mia := newAgent("mia@other.org")
	mia.Name = "Old"
	profile := &service.ExternalProfile{Subject: "google-1", Email: mia.Email, EmailVerified: true, Name: "Mia"}
	fx.verifier.EXPECT().VerifyIDToken(ctx, "id-token").Return(profile, nil)

	expectExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txAgentRepo := mockRepo.NewMockAgentRepository(t)
		factory.EXPECT().AgentRepo().Return(txAgentRepo)
		txAgentRepo.EXPECT().FindByEmail(ctx, mia.Email).Return(mia, nil)
		txAgentRepo.EXPECT().Update(ctx, mia).Return(nil)
	})
	fx.expectSessionOpened(ctx, mia.ID)

	_, err := fx.service.ExternalLogin(ctx, "id-token")

	require.NoError(t, err)
	assert.Equal(t, "Mia", mia.Name)
}

func TestSessionService_ExternalLogin_Rejected(t *testing.T) {
	ctx := context.Background()

	t.Run("bad token", func(t *testing.T) {
		fx := createTestSessionService(t)
		fx.verifier.EXPECT().VerifyIDToken(ctx, "bad").Return(nil, errors.New("audience mismatch"))

		_, err := fx.service.ExternalLogin(ctx, "bad")

		assert.True(t, errors.Is(err, domainerrors.ErrOAuthTokenInvalid))
	})

	t.Run("unverified email", func(t *testing.T) {
		fx := createTestSessionService(t)
		fx.verifier.EXPECT().VerifyIDToken(ctx, "tok").Return(&service.ExternalProfile{Email: "mia@other.org"}, nil)

		_, err := fx.service.ExternalLogin(ctx, "tok")

		assert.True(t, errors.Is(err, domainerrors.ErrOAuthTokenInvalid))
	})
}

func TestSessionService_AuthenticateSession(t *testing.T) {
	ctx := context.Background()
	daniel := newAgent("daniel@example.com")

	t.Run("live session", func(t *testing.T) {
		fx := createTestSessionService(t)
		fx.tokenService.EXPECT().HashToken("raw").Return("hash")
		fx.sessionRepo.EXPECT().FindByTokenHash(ctx, "hash").Return(&entity.Session{AgentID: daniel.ID, ExpiresAt: testNow.Add(time.Hour)}, nil)
		fx.agentRepo.EXPECT().FindByID(ctx, daniel.ID).Return(daniel, nil)

		agent, err := fx.service.AuthenticateSession(ctx, "raw")

		require.NoError(t, err)
		assert.Equal(t, daniel, agent)
	})

	t.Run("expired session", func(t *testing.T) {
		fx := createTestSessionService(t)
		fx.tokenService.EXPECT().HashToken("raw").Return("hash")
		fx.sessionRepo.EXPECT().FindByTokenHash(ctx, "hash").Return(&entity.Session{AgentID: daniel.ID, ExpiresAt: testNow}, nil)

		_, err := fx.service.AuthenticateSession(ctx, "raw")

		assert.Equal(t, domainerrors.ErrInvalidToken, err)
	})

	t.Run("unknown session", func(t *testing.T) {
		fx := createTestSessionService(t)
		fx.tokenService.EXPECT().HashToken("raw").Return("hash")
		fx.sessionRepo.EXPECT().FindByTokenHash(ctx, "hash").Return(nil, repository.ErrSessionNotFound)

		_, err := fx.service.AuthenticateSession(ctx, "raw")

		assert.Equal(t, domainerrors.ErrInvalidToken, err)
	})

	t.Run("no cookie", func(t *testing.T) {
		fx := createTestSessionService(t)

		_, err := fx.service.AuthenticateSession(ctx, "")

		assert.Equal(t, domainerrors.ErrLoginRequired, err)
	})
}

func TestSessionService_AuthenticateToken(t *testing.T) {
	ctx := context.Background()
	daniel := newAgent("daniel@example.com")

	t.Run("valid token", func(t *testing.T) {
		fx := createTestSessionService(t)
		fx.tokenService.EXPECT().ValidateToken("jwt").Return(&service.Claims{AgentID: daniel.ID, Type: service.TokenTypeAccess}, nil)
		fx.agentRepo.EXPECT().FindByID(ctx, daniel.ID).Return(daniel, nil)

		agent, err := fx.service.AuthenticateToken(ctx, "jwt")

		require.NoError(t, err)
		assert.Equal(t, daniel, agent)
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestSessionService(t)
		fx.tokenService.EXPECT().ValidateToken("jwt").Return(nil, errors.New("token is expired"))

		_, err := fx.service.AuthenticateToken(ctx, "jwt")

		assert.Equal(t, domainerrors.ErrInvalidToken, err)
		assert.Equal(t, "Unauthorized: Invalid token", domainerrors.ErrInvalidToken.Message())
	})

	t.Run("missing token", func(t *testing.T) {
		fx := createTestSessionService(t)

		_, err := fx.service.AuthenticateToken(ctx, "")

		assert.Equal(t, domainerrors.ErrNoToken, err)
	})

	t.Run("deleted agent", func(t *testing.T) {
		fx := createTestSessionService(t)
		fx.tokenService.EXPECT().ValidateToken("jwt").Return(&service.Claims{AgentID: daniel.ID}, nil)
		fx.agentRepo.EXPECT().FindByID(ctx, daniel.ID).Return(nil, repository.ErrAgentNotFound)

		_, err := fx.service.AuthenticateToken(ctx, "jwt")

		assert.Equal(t, domainerrors.ErrInvalidToken, err)
	})
}

func TestSessionService_LogoutAndCleanup(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().HashToken("raw").Return("hash")
	fx.sessionRepo.EXPECT().DeleteByTokenHash(ctx, "hash").Return(repository.ErrSessionNotFound)
	fx.sessionRepo.EXPECT().DeleteExpired(ctx, testNow).Return(int64(3), nil)

	assert.NoError(t, fx.service.Logout(ctx, "raw"))
	assert.NoError(t, fx.service.Logout(ctx, ""))

	n, err := fx.service.CleanupExpiredSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
