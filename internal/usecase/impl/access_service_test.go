package impl

import (
	"context"
	"testing"

	"album/internal/domain/entity"
	domainerrors "album/internal/domain/errors"
	"album/internal/domain/repository"
	mockRepo "album/internal/mocks/repository"
	"album/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accessServiceFixtures struct {
	service   usecase.AccessUsecase
	agentRepo *mockRepo.MockAgentRepository
	mediaRepo *mockRepo.MockMediaRepository
}

func createTestAccessService(t *testing.T) accessServiceFixtures {
	agentRepo := mockRepo.NewMockAgentRepository(t)
	mediaRepo := mockRepo.NewMockMediaRepository(t)

	service := NewAccessService(AccessServiceParams{
		AgentRepo: agentRepo,
		MediaRepo: mediaRepo,
		Config:    newTestConfig(t),
		Logger:    newDiscardLogger(),
	})

	return accessServiceFixtures{service: service, agentRepo: agentRepo, mediaRepo: mediaRepo}
}

func TestAccessService_ReadableDirectories_OwnFirstThenGrants(t *testing.T) {
	fx := createTestAccessService(t)

	ctx := context.Background()
	daniel := newAgent("daniel@example.com")
	lanny := newAgent("lanny@example.com")
	mia := newAgent("mia@other.org")
	reader := newAgent("reader@example.com")
	reader.CanRead = []uuid.UUID{mia.ID, daniel.ID, lanny.ID}

	fx.agentRepo.EXPECT().FindByID(ctx, reader.ID).Return(reader, nil)
	// Returned out of order; the grant order wins.
	fx.agentRepo.EXPECT().FindByIDs(ctx, reader.CanRead).Return([]*entity.Agent{lanny, daniel, mia}, nil)

	dirs, err := fx.service.ReadableDirectories(ctx, reader.ID)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"example.com/reader",
		"other.org/mia",
		"example.com/daniel",
		"example.com/lanny",
	}, dirs)
}

func TestAccessService_ReadableDirectories_NoGrants(t *testing.T) {
	fx := createTestAccessService(t)

	ctx := context.Background()
	daniel := newAgent("daniel@example.com")
	fx.agentRepo.EXPECT().FindByID(ctx, daniel.ID).Return(daniel, nil)

	dirs, err := fx.service.ReadableDirectories(ctx, daniel.ID)

	require.NoError(t, err)
	assert.Equal(t, []string{"example.com/daniel"}, dirs)
}

func TestAccessService_ReadableDirectories_SkipsMissingGrant(t *testing.T) {
	fx := createTestAccessService(t)

	ctx := context.Background()
	daniel := newAgent("daniel@example.com")
	reader := newAgent("reader@example.com")
	reader.CanRead = []uuid.UUID{uuid.New(), daniel.ID}

	fx.agentRepo.EXPECT().FindByID(ctx, reader.ID).Return(reader, nil)
	fx.agentRepo.EXPECT().FindByIDs(ctx, reader.CanRead).Return([]*entity.Agent{daniel}, nil)

	dirs, err := fx.service.ReadableDirectories(ctx, reader.ID)

	require.NoError(t, err)
	assert.Equal(t, []string{"example.com/reader", "example.com/daniel"}, dirs)
}

func TestAccessService_ReadableDirectories_AgentNotFound(t *testing.T) {
	fx := createTestAccessService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.agentRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrAgentNotFound)

	dirs, err := fx.service.ReadableDirectories(ctx, id)

	assert.Nil(t, dirs)
	assert.True(t, errors.Is(err, domainerrors.ErrAgentNotFound))
}

func TestAccessService_IsPrivileged(t *testing.T) {
	fx := createTestAccessService(t)

	assert.True(t, fx.service.IsPrivileged(newAgent(testPrivilegedEmail)))
	assert.False(t, fx.service.IsPrivileged(newAgent("Admin@example.com")), "email match is case-sensitive")
	assert.False(t, fx.service.IsPrivileged(nil))
}

func TestAccessService_CanWriteDirectory(t *testing.T) {
	fx := createTestAccessService(t)

	daniel := newAgent("daniel@example.com")

	tests := []struct {
		name  string
		agent *entity.Agent
		dir   string
		want  bool
	}{
		{name: "owner", agent: daniel, dir: "example.com/daniel", want: true},
		{name: "other directory", agent: daniel, dir: "example.com/lanny", want: false},
		{name: "privileged", agent: newAgent(testPrivilegedEmail), dir: "example.com/lanny", want: true},
		{name: "anonymous", agent: nil, dir: "example.com/daniel", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fx.service.CanWriteDirectory(tt.agent, tt.dir))
		})
	}
}

func TestAccessService_CanReadDirectory_GrantChangeSeenImmediately(t *testing.T) {
	fx := createTestAccessService(t)

	ctx := context.Background()
	daniel := newAgent("daniel@example.com")
	before := newAgent("lanny@example.com")
	after := *before
	after.CanRead = []uuid.UUID{daniel.ID}

	fx.agentRepo.EXPECT().FindByID(ctx, before.ID).Return(before, nil).Once()
	fx.agentRepo.EXPECT().FindByID(ctx, before.ID).Return(&after, nil).Once()
	fx.agentRepo.EXPECT().FindByIDs(ctx, after.CanRead).Return([]*entity.Agent{daniel}, nil)

	ok, err := fx.service.CanReadDirectory(ctx, before, "example.com/daniel")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = fx.service.CanReadDirectory(ctx, before, "example.com/daniel")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAccessService_AuthorizeFile(t *testing.T) {
	ctx := context.Background()
	daniel := newAgent("daniel@example.com")
	lanny := newAgent("lanny@example.com")
	path := "uploads/example.com/daniel/1700000000000.jpg"

	t.Run("anonymous gets not found", func(t *testing.T) {
		fx := createTestAccessService(t)

		err := fx.service.AuthorizeFile(ctx, nil, path)

		assert.Equal(t, domainerrors.ErrFileNotFound, err)
	})

	t.Run("path outside the static prefix", func(t *testing.T) {
		fx := createTestAccessService(t)

		err := fx.service.AuthorizeFile(ctx, daniel, "secrets/example.com/daniel/x.jpg")

		assert.Equal(t, domainerrors.ErrFileNotFound, err)
	})

	t.Run("traversal is not found", func(t *testing.T) {
		fx := createTestAccessService(t)

		err := fx.service.AuthorizeFile(ctx, daniel, "uploads/example.com/daniel/../lanny/x.jpg")

		assert.Equal(t, domainerrors.ErrFileNotFound, err)
	})

	t.Run("owner reads own file", func(t *testing.T) {
		fx := createTestAccessService(t)
		fx.agentRepo.EXPECT().FindByID(ctx, daniel.ID).Return(daniel, nil)

		assert.NoError(t, fx.service.AuthorizeFile(ctx, daniel, "/"+path))
	})

	t.Run("privileged reads everything", func(t *testing.T) {
		fx := createTestAccessService(t)

		assert.NoError(t, fx.service.AuthorizeFile(ctx, newAgent(testPrivilegedEmail), path))
	})

	t.Run("authenticated without grant is forbidden", func(t *testing.T) {
		fx := createTestAccessService(t)
		fx.agentRepo.EXPECT().FindByID(ctx, lanny.ID).Return(lanny, nil)
		fx.mediaRepo.EXPECT().FindByPath(ctx, path).Return(&entity.Media{Path: path}, nil)

		assert.Equal(t, domainerrors.ErrNotAuthorized, fx.service.AuthorizeFile(ctx, lanny, path))
	})

	t.Run("published item is readable without grant", func(t *testing.T) {
		fx := createTestAccessService(t)
		published := testNow
		fx.agentRepo.EXPECT().FindByID(ctx, lanny.ID).Return(lanny, nil)
		fx.mediaRepo.EXPECT().FindByPath(ctx, path).Return(&entity.Media{Path: path, PublishedAt: &published}, nil)

		assert.NoError(t, fx.service.AuthorizeFile(ctx, lanny, path))
	})

	t.Run("flagged published item stays forbidden", func(t *testing.T) {
		fx := createTestAccessService(t)
		published := testNow
		fx.agentRepo.EXPECT().FindByID(ctx, lanny.ID).Return(lanny, nil)
		fx.mediaRepo.EXPECT().FindByPath(ctx, path).Return(&entity.Media{Path: path, PublishedAt: &published, Flagged: true}, nil)

		assert.Equal(t, domainerrors.ErrNotAuthorized, fx.service.AuthorizeFile(ctx, lanny, path))
	})

	t.Run("directory prefix must match a whole segment", func(t *testing.T) {
		fx := createTestAccessService(t)
		dan := newAgent("dan@example.com")
		fx.agentRepo.EXPECT().FindByID(ctx, dan.ID).Return(dan, nil)
		fx.mediaRepo.EXPECT().FindByPath(ctx, path).Return(nil, repository.ErrMediaNotFound)

		assert.Equal(t, domainerrors.ErrNotAuthorized, fx.service.AuthorizeFile(ctx, dan, path))
	})
}
