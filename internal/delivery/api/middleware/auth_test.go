package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "album/internal/delivery/context"
	"album/internal/domain/constants"
	"album/internal/domain/entity"
	domainerrors "album/internal/domain/errors"
	mockUsecase "album/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authFixtures struct {
	sessions *mockUsecase.MockSessionUsecase
	access   *mockUsecase.MockAccessUsecase
	mw       *AuthMiddleware
}

func newAuthFixtures(t *testing.T) *authFixtures {
	f := &authFixtures{
		sessions: mockUsecase.NewMockSessionUsecase(t),
		access:   mockUsecase.NewMockAccessUsecase(t),
	}
	f.mw = NewAuthMiddleware(AuthMiddlewareParams{
		SessionUC: f.sessions,
		AccessUC:  f.access,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return f
}

func newCtx(req *http.Request) echo.Context {
	return echo.New().NewContext(req, httptest.NewRecorder())
}

// identify runs Identify and returns whatever agent the next handler saw.
func identify(t *testing.T, f *authFixtures, c echo.Context) *entity.Agent {
	t.Helper()

	var seen *entity.Agent
	err := f.mw.Identify(func(c echo.Context) error {
		seen = deliverycontext.GetAgent(c)

		return nil
	})(c)
	require.NoError(t, err)

	return seen
}

func TestIdentify_SessionFirst(t *testing.T) {
	f := newAuthFixtures(t)
	agent := &entity.Agent{ID: uuid.New(), Email: "daniel@example.com"}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: constants.SessionCookie, Value: "sess"})
	req.Header.Set(echo.HeaderAuthorization, "Bearer tok")
	c := newCtx(req)

	f.sessions.EXPECT().AuthenticateSession(mock.Anything, "sess").Return(agent, nil).Once()

	assert.Same(t, agent, identify(t, f, c))
	assert.False(t, deliverycontext.IsAPIStyle(c), "session callers stay browser-style")
}

func TestIdentify_FallsBackToToken(t *testing.T) {
	f := newAuthFixtures(t)
	agent := &entity.Agent{ID: uuid.New(), Email: "daniel@example.com"}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: constants.SessionCookie, Value: "stale"})
	req.Header.Set(constants.TokenHeader, "tok")
	c := newCtx(req)

	f.sessions.EXPECT().AuthenticateSession(mock.Anything, "stale").Return(nil, domainerrors.ErrInvalidToken).Once()
	f.sessions.EXPECT().AuthenticateToken(mock.Anything, "tok").Return(agent, nil).Once()

	assert.Same(t, agent, identify(t, f, c))
	assert.True(t, deliverycontext.IsAPIStyle(c))
	assert.NoError(t, deliverycontext.GetAuthError(c))
}

func TestIdentify_Anonymous(t *testing.T) {
	f := newAuthFixtures(t)
	c := newCtx(httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Nil(t, identify(t, f, c))
	assert.NoError(t, deliverycontext.GetAuthError(c))
}

func TestBearerToken_LookupOrder(t *testing.T) {
	tests := []struct {
		name  string
		build func() *http.Request
		want  string
	}{
		{
			name: "json body field wins",
			build: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/x?token=query", strings.NewReader(`{"token":"body","email":"a@b"}`))
				req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
				req.Header.Set(constants.TokenHeader, "header")

				return req
			},
			want: "body",
		},
		{
			name: "form body field",
			build: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader("token=form"))
				req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

				return req
			},
			want: "form",
		},
		{
			name: "query before headers",
			build: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/x?token=query", nil)
				req.Header.Set(constants.TokenHeader, "header")

				return req
			},
			want: "query",
		},
		{
			name: "custom header before authorization",
			build: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/x", nil)
				req.Header.Set(constants.TokenHeader, "header")
				req.Header.Set(echo.HeaderAuthorization, "Bearer bearer")

				return req
			},
			want: "header",
		},
		{
			name: "authorization before cookie",
			build: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/x", nil)
				req.Header.Set(echo.HeaderAuthorization, "Bearer bearer")
				req.AddCookie(&http.Cookie{Name: constants.TokenCookie, Value: "cookie"})

				return req
			},
			want: "bearer",
		},
		{
			name: "cookie last",
			build: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/x", nil)
				req.AddCookie(&http.Cookie{Name: constants.TokenCookie, Value: "cookie"})

				return req
			},
			want: "cookie",
		},
		{
			name: "non bearer authorization ignored",
			build: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/x", nil)
				req.Header.Set(echo.HeaderAuthorization, "Basic abc")

				return req
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BearerToken(newCtx(tt.build())))
		})
	}
}

func TestBearerToken_JSONBodyStillReadable(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"token":"body","email":"a@b"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := newCtx(req)

	require.Equal(t, "body", BearerToken(c))

	var payload struct {
		Email string `json:"email"`
	}
	require.NoError(t, c.Bind(&payload))
	assert.Equal(t, "a@b", payload.Email)
}

func TestRequireLogin(t *testing.T) {
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	tests := []struct {
		name    string
		prepare func(c echo.Context)
		wantErr error
	}{
		{
			name:    "authenticated passes",
			prepare: func(c echo.Context) { deliverycontext.SetAgent(c, &entity.Agent{ID: uuid.New()}) },
		},
		{
			name:    "browser is told to login",
			prepare: func(echo.Context) {},
			wantErr: domainerrors.ErrLoginRequired,
		},
		{
			name:    "api without token",
			prepare: deliverycontext.MarkAPIStyle,
			wantErr: domainerrors.ErrNoToken,
		},
		{
			name: "api with rejected token",
			prepare: func(c echo.Context) {
				deliverycontext.MarkAPIStyle(c)
				deliverycontext.SetAuthError(c, domainerrors.ErrInvalidToken)
				deliverycontext.SetTokenError(c, domainerrors.ErrInvalidToken)
			},
			wantErr: domainerrors.ErrInvalidToken,
		},
		{
			name: "api with only a dead session",
			prepare: func(c echo.Context) {
				deliverycontext.MarkAPIStyle(c)
				deliverycontext.SetAuthError(c, domainerrors.ErrInvalidToken)
			},
			wantErr: domainerrors.ErrNoToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixtures(t)
			c := newCtx(httptest.NewRequest(http.MethodGet, "/", nil))
			tt.prepare(c)

			err := f.mw.RequireLogin(ok)(c)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRequireLogin_ExpiredSessionWithoutToken(t *testing.T) {
	f := newAuthFixtures(t)

	req := httptest.NewRequest(http.MethodPost, "/image", nil)
	req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	req.AddCookie(&http.Cookie{Name: constants.SessionCookie, Value: "expired"})
	c := newCtx(req)

	f.sessions.EXPECT().AuthenticateSession(mock.Anything, "expired").Return(nil, domainerrors.ErrInvalidToken).Once()

	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := f.mw.Identify(f.mw.RequireLogin(ok))(c)

	assert.ErrorIs(t, err, domainerrors.ErrNoToken)
	assert.Error(t, deliverycontext.GetAuthError(c))
	assert.NoError(t, deliverycontext.GetTokenError(c))
}

func TestRequireLogin_RejectedTokenBehindExpiredSession(t *testing.T) {
	f := newAuthFixtures(t)

	req := httptest.NewRequest(http.MethodPost, "/image", nil)
	req.AddCookie(&http.Cookie{Name: constants.SessionCookie, Value: "expired"})
	req.Header.Set(constants.TokenHeader, "forged")
	c := newCtx(req)

	f.sessions.EXPECT().AuthenticateSession(mock.Anything, "expired").Return(nil, domainerrors.ErrInvalidToken).Once()
	f.sessions.EXPECT().AuthenticateToken(mock.Anything, "forged").Return(nil, domainerrors.ErrInvalidToken).Once()

	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := f.mw.Identify(f.mw.RequireLogin(ok))(c)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestRequirePrivileged(t *testing.T) {
	f := newAuthFixtures(t)
	admin := &entity.Agent{ID: uuid.New(), Email: "root@example.com"}
	user := &entity.Agent{ID: uuid.New(), Email: "daniel@example.com"}
	f.access.EXPECT().IsPrivileged(admin).Return(true)
	f.access.EXPECT().IsPrivileged(user).Return(false)
	ok := func(c echo.Context) error { return nil }

	c := newCtx(httptest.NewRequest(http.MethodGet, "/agent/admin", nil))
	deliverycontext.SetAgent(c, admin)
	assert.NoError(t, f.mw.RequirePrivileged(ok)(c))

	c = newCtx(httptest.NewRequest(http.MethodGet, "/agent/admin", nil))
	deliverycontext.SetAgent(c, user)
	assert.ErrorIs(t, f.mw.RequirePrivileged(ok)(c), domainerrors.ErrNotAuthorized)
}

func TestGuardDirectory(t *testing.T) {
	ok := func(c echo.Context) error { return nil }

	tests := []struct {
		name    string
		domain  string
		agentID string
		login   bool
		wantErr error
	}{
		{name: "valid", domain: "example.com", agentID: "daniel", login: true},
		{name: "anonymous", domain: "example.com", agentID: "daniel", wantErr: domainerrors.ErrLoginRequired},
		{name: "dot segment", domain: "..", agentID: "daniel", login: true, wantErr: domainerrors.ErrNotAuthorized},
		{name: "empty agent", domain: "example.com", agentID: "", login: true, wantErr: domainerrors.ErrNotAuthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixtures(t)
			c := newCtx(httptest.NewRequest(http.MethodGet, "/", nil))
			c.SetParamNames("domain", "agentId")
			c.SetParamValues(tt.domain, tt.agentID)
			if tt.login {
				deliverycontext.SetAgent(c, &entity.Agent{ID: uuid.New()})
			}

			err := f.mw.GuardDirectory(ok)(c)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
