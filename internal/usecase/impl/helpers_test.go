package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"album/config"
	"album/internal/domain/entity"
	"album/internal/domain/repository"
	mockRepo "album/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

const testPrivilegedEmail = "admin@example.com"

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:      4,
			AccessTokenTTL:  time.Hour,
			SessionTTL:      24 * time.Hour,
			ResetTokenTTL:   time.Hour,
			PrivilegedEmail: testPrivilegedEmail,
		},
		Pagination: &config.PaginationConfig{PageSize: 2},
		Upload: &config.UploadConfig{
			MaxFiles:     3,
			StaticPrefix: "uploads",
			StagingDir:   t.TempDir(),
		},
		QRCode: &config.QRCodeConfig{BaseURL: "https://album.test/"},
	}
}

// fixedClock always returns the same instant.
type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newAgent(email string) *entity.Agent {
	return &entity.Agent{ID: uuid.New(), Email: email}
}

// expectExecute runs fn against a fresh factory mock and returns fn's error from Execute.
func expectExecute(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		})
}
