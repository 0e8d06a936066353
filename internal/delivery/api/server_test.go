package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"album/config"
	apimiddleware "album/internal/delivery/api/middleware"
	"album/internal/delivery/api/router"
	"album/internal/delivery/api/router/handler"
	"album/internal/domain/constants"
	"album/internal/domain/entity"
	domainerrors "album/internal/domain/errors"
	"album/internal/domain/service"
	mockService "album/internal/mocks/service"
	mockUsecase "album/internal/mocks/usecase"
	"album/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixtures struct {
	sessions *mockUsecase.MockSessionUsecase
	access   *mockUsecase.MockAccessUsecase
	agents   *mockUsecase.MockAgentUsecase
	media    *mockUsecase.MockMediaUsecase
	ingest   *mockUsecase.MockIngestUsecase
	store    *mockService.MockMediaStore
	echo     *echo.Echo
}

var (
	daniel = &entity.Agent{ID: uuid.New(), Email: "daniel@example.com"}
	lanny  = &entity.Agent{ID: uuid.New(), Email: "lanny@example.com"}
)

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth:   &config.AuthConfig{SessionTTL: 24 * time.Hour},
		Upload: &config.UploadConfig{MaxFiles: 8, StaticPrefix: "uploads"},
	}
	cfg.HTTP.MaxRequestBodySize = "10M"

	return cfg
}

func newServerFixtures(t *testing.T) *serverFixtures {
	f := &serverFixtures{
		sessions: mockUsecase.NewMockSessionUsecase(t),
		access:   mockUsecase.NewMockAccessUsecase(t),
		agents:   mockUsecase.NewMockAgentUsecase(t),
		media:    mockUsecase.NewMockMediaUsecase(t),
		ingest:   mockUsecase.NewMockIngestUsecase(t),
		store:    mockService.NewMockMediaStore(t),
	}

	cfg := newTestConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	authMW := apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{
		SessionUC: f.sessions,
		AccessUC:  f.access,
		Logger:    logger,
	})

	f.echo = NewEcho(ServerParams{
		Cfg:            cfg,
		Logger:         logger,
		AuthMiddleware: authMW,
		RouterParams: router.RouterParams{
			MediaHandler:  handler.NewMediaHandler(handler.MediaHandlerParams{MediaUC: f.media, Logger: logger}),
			UploadHandler: handler.NewUploadHandler(handler.UploadHandlerParams{IngestUC: f.ingest, Logger: logger}),
			AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
				SessionUC: f.sessions,
				AgentUC:   f.agents,
				Config:    cfg,
				Logger:    logger,
			}),
			AgentHandler:   handler.NewAgentHandler(handler.AgentHandlerParams{AgentUC: f.agents, Logger: logger}),
			StaticHandler:  handler.NewStaticHandler(handler.StaticHandlerParams{AccessUC: f.access, Store: f.store, Logger: logger}),
			AuthMiddleware: authMW,
			Config:         cfg,
		},
	})

	return f
}

func (f *serverFixtures) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func (f *serverFixtures) withToken(req *http.Request, agent *entity.Agent) *http.Request {
	req.Header.Set(echo.HeaderAuthorization, "Bearer token-"+agent.Email)
	f.sessions.EXPECT().AuthenticateToken(mock.Anything, "token-"+agent.Email).Return(agent, nil)

	return req
}

func (f *serverFixtures) withSession(req *http.Request, agent *entity.Agent) *http.Request {
	req.AddCookie(&http.Cookie{Name: constants.SessionCookie, Value: "session-" + agent.Email})
	f.sessions.EXPECT().AuthenticateSession(mock.Anything, "session-"+agent.Email).Return(agent, nil)

	return req
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return body
}

func multipartUpload(t *testing.T, target string, files map[string]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, content := range files {
		part, err := w.CreateFormFile("docs", name)
		require.NoError(t, err)
		_, err = io.WriteString(part, content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())

	return req
}

func TestUpload_WithToken(t *testing.T) {
	f := newServerFixtures(t)
	req := f.withToken(multipartUpload(t, "/image", map[string]string{"holiday.jpg": "jpeg-bytes"}), daniel)

	f.ingest.EXPECT().
		Upload(mock.Anything, daniel, entity.MediaKindImage, mock.Anything).
		RunAndReturn(func(_ context.Context, owner *entity.Agent, kind entity.MediaKind, files []usecase.UploadFile) ([]*entity.Media, error) {
			require.Len(t, files, 1)
			assert.Equal(t, "holiday.jpg", files[0].Filename)

			rc, err := files[0].Open()
			require.NoError(t, err)
			defer rc.Close()
			content, err := io.ReadAll(rc)
			require.NoError(t, err)
			assert.Equal(t, "jpeg-bytes", string(content))

			return []*entity.Media{{
				ID:      uuid.New(),
				Kind:    kind,
				Path:    "uploads/example.com/daniel/1700000000000.jpg",
				OwnerID: owner.ID,
				Owner:   owner,
			}}, nil
		}).Once()

	rec := f.do(req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.Equal(t, "Image received", body["message"])
	items := body["data"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "uploads/example.com/daniel/1700000000000.jpg", items[0].(map[string]any)["path"])
}

func TestUpload_AuthFailures(t *testing.T) {
	t.Run("no token", func(t *testing.T) {
		f := newServerFixtures(t)

		rec := f.do(multipartUpload(t, "/track", map[string]string{"a.ogg": "x"}))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Unauthorized: No token provided", decode(t, rec)["message"])
	})

	t.Run("invalid token", func(t *testing.T) {
		f := newServerFixtures(t)
		req := multipartUpload(t, "/track?token=expired", map[string]string{"a.ogg": "x"})
		f.sessions.EXPECT().AuthenticateToken(mock.Anything, "expired").Return(nil, domainerrors.ErrInvalidToken).Once()

		rec := f.do(req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Unauthorized: Invalid token", decode(t, rec)["message"])
	})
}

func TestStreamUpload(t *testing.T) {
	f := newServerFixtures(t)
	req := httptest.NewRequest(http.MethodPost, "/track/stream", strings.NewReader("ogg-frames"))
	req.Header.Set(echo.HeaderContentType, "audio/ogg")
	f.withSession(req, daniel)

	f.ingest.EXPECT().
		UploadStream(mock.Anything, daniel, mock.Anything).
		RunAndReturn(func(_ context.Context, owner *entity.Agent, in usecase.StreamInput) (*entity.Media, error) {
			assert.Equal(t, ".ogg", in.Extension)
			content, err := io.ReadAll(in.Body)
			require.NoError(t, err)
			assert.Equal(t, "ogg-frames", string(content))

			return &entity.Media{ID: uuid.New(), Kind: entity.MediaKindTrack, Path: "uploads/example.com/daniel/1.ogg", Owner: owner}, nil
		}).Once()

	rec := f.do(req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Track received", decode(t, rec)["message"])
}

func TestShow_UnauthorizedBrowserIsSentHome(t *testing.T) {
	f := newServerFixtures(t)
	req := f.withSession(httptest.NewRequest(http.MethodGet, "/image/example.com/daniel/pic.jpg", nil), lanny)

	f.media.EXPECT().
		Show(mock.Anything, lanny, usecase.MediaRef{
			Kind:     entity.MediaKindImage,
			Domain:   "example.com",
			AgentID:  "daniel",
			Filename: "pic.jpg",
		}).
		Return(nil, domainerrors.ErrNotAuthorized).Once()

	rec := f.do(req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	var flash string
	for _, c := range rec.Result().Cookies() {
		if c.Name == constants.FlashCookie {
			flash, _ = url.QueryUnescape(c.Value)
		}
	}
	assert.Equal(t, "You are not authorized to access that resource", flash)
}

func TestAlbum_AnonymousBrowserMustLogin(t *testing.T) {
	f := newServerFixtures(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/track/example.com/daniel", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Set-Cookie"), url.QueryEscape("You need to login first"))
}

func TestDeleteNote_ForbiddenLeavesNotes(t *testing.T) {
	f := newServerFixtures(t)
	noteID := uuid.New()
	req := httptest.NewRequest(http.MethodDelete, "/image/example.com/daniel/pic.jpg/note/"+noteID.String(), nil)
	req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	f.withSession(req, lanny)

	f.media.EXPECT().DeleteNote(mock.Anything, lanny, mock.Anything, noteID).Return(domainerrors.ErrForbidden).Once()

	rec := f.do(req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", decode(t, rec)["error"].(map[string]any)["code"])
}

func TestToggleLike_RedirectsBack(t *testing.T) {
	f := newServerFixtures(t)
	req := httptest.NewRequest(http.MethodPatch, "/track/example.com/daniel/1.ogg/like", nil)
	req.Header.Set("Referer", "http://localhost/track/example.com/daniel/page/2")
	f.withSession(req, lanny)

	f.media.EXPECT().ToggleLike(mock.Anything, lanny, mock.Anything).
		Return(&entity.Media{ID: uuid.New(), Kind: entity.MediaKindTrack, Likes: []uuid.UUID{lanny.ID}}, nil).Once()

	rec := f.do(req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/track/example.com/daniel/page/2", rec.Header().Get(echo.HeaderLocation))
}

func TestFeed_PageOutOfRange(t *testing.T) {
	f := newServerFixtures(t)
	f.media.EXPECT().Feed(mock.Anything, 0).
		Return(&entity.PageResult[*entity.Media]{Items: []*entity.Media{}, Page: 0, Size: 12}, nil).Once()

	rec := f.do(httptest.NewRequest(http.MethodGet, "/page/0", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	data := decode(t, rec)["data"].(map[string]any)
	assert.Empty(t, data["items"])
	assert.Equal(t, false, data["has_next"])
}

func TestStaticAccess(t *testing.T) {
	const key = "uploads/example.com/daniel/pic.jpg"

	t.Run("anonymous gets 404", func(t *testing.T) {
		f := newServerFixtures(t)
		f.access.EXPECT().AuthorizeFile(mock.Anything, (*entity.Agent)(nil), key).Return(domainerrors.ErrFileNotFound).Once()

		rec := f.do(httptest.NewRequest(http.MethodGet, "/"+key, nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("authenticated stranger gets 403", func(t *testing.T) {
		f := newServerFixtures(t)
		req := f.withSession(httptest.NewRequest(http.MethodGet, "/"+key, nil), lanny)
		f.access.EXPECT().AuthorizeFile(mock.Anything, lanny, key).Return(domainerrors.ErrNotAuthorized).Once()

		rec := f.do(req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("reader gets bytes", func(t *testing.T) {
		f := newServerFixtures(t)
		req := f.withSession(httptest.NewRequest(http.MethodGet, "/"+key, nil), daniel)
		f.access.EXPECT().AuthorizeFile(mock.Anything, daniel, key).Return(nil).Once()
		f.store.EXPECT().Open(mock.Anything, key).Return(&service.StoredObject{
			ReadCloser:  io.NopCloser(strings.NewReader("jpeg-bytes")),
			ContentType: "image/jpeg",
			Size:        10,
		}, nil).Once()

		rec := f.do(req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/jpeg", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "jpeg-bytes", rec.Body.String())
	})
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	f := newServerFixtures(t)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"daniel@example.com","password":"Sup3r$ecret"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)

	f.sessions.EXPECT().Login(mock.Anything, usecase.LoginInput{Email: "daniel@example.com", Password: "Sup3r$ecret"}).
		Return(&usecase.LoginOutput{Agent: daniel, SessionToken: "raw-session", AccessToken: "access-token"}, nil).Once()

	rec := f.do(req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	data := decode(t, rec)["data"].(map[string]any)
	assert.Equal(t, "access-token", data["access_token"])
	assert.Contains(t, rec.Header().Get("Set-Cookie"), constants.SessionCookie+"=raw-session")
}

func TestAdmin_RequiresPrivilege(t *testing.T) {
	f := newServerFixtures(t)
	req := f.withToken(httptest.NewRequest(http.MethodGet, "/agent/admin", nil), daniel)
	f.access.EXPECT().IsPrivileged(daniel).Return(false).Once()

	rec := f.do(req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHealth(t *testing.T) {
	f := newServerFixtures(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}
