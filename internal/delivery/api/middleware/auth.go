package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "album/internal/delivery/context"
	"album/internal/domain/constants"
	"album/internal/domain/entity"
	domainerrors "album/internal/domain/errors"
	"album/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// maxTokenPeek bounds how much of a JSON body is buffered while looking for a token field.
const maxTokenPeek = 64 << 10

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	AccessUC  usecase.AccessUsecase
	Logger    *slog.Logger
}

// AuthMiddleware resolves the caller and guards routes.
type AuthMiddleware struct {
	sessionUC usecase.SessionUsecase
	accessUC  usecase.AccessUsecase
	logger    *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		sessionUC: params.SessionUC,
		accessUC:  params.AccessUC,
		logger:    params.Logger,
	}
}

// strategy resolves an agent from one kind of credential. presented is false when the
// request carries no credential of that kind.
type strategy func(c echo.Context) (agent *entity.Agent, presented bool, err error)

// Identify runs the session strategy, then the bearer token strategy, and stops at the
// first one that succeeds. Anonymous requests pass through.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var firstErr error
		for _, s := range []strategy{m.fromSession, m.fromToken} {
			agent, presented, err := s(c)
			if agent != nil {
				deliverycontext.SetAgent(c, agent)
				firstErr = nil

				break
			}
			if presented && firstErr == nil {
				firstErr = err
			}
		}
		if firstErr != nil {
			deliverycontext.SetAuthError(c, firstErr)
		}

		return next(c)
	}
}

func (m *AuthMiddleware) fromSession(c echo.Context) (*entity.Agent, bool, error) {
	cookie, err := c.Cookie(constants.SessionCookie)
	if err != nil || cookie.Value == "" {
		return nil, false, nil
	}

	agent, err := m.sessionUC.AuthenticateSession(c.Request().Context(), cookie.Value)
	if err != nil {
		// Drop the dead cookie so the browser stops sending it.
		c.SetCookie(&http.Cookie{Name: constants.SessionCookie, Path: "/", MaxAge: -1})

		return nil, true, err
	}

	return agent, true, nil
}

func (m *AuthMiddleware) fromToken(c echo.Context) (*entity.Agent, bool, error) {
	token := BearerToken(c)
	if token == "" {
		return nil, false, nil
	}

	// Token clients are never browsers.
	deliverycontext.MarkAPIStyle(c)

	agent, err := m.sessionUC.AuthenticateToken(c.Request().Context(), token)
	if err != nil {
		deliverycontext.SetTokenError(c, err)

		return nil, true, err
	}

	return agent, true, nil
}

// BearerToken looks for a token in the body field, the query, the custom header, the
// Authorization header and finally the cookie, in that order.
func BearerToken(c echo.Context) string {
	if token := bodyToken(c); token != "" {
		return token
	}
	if token := c.QueryParam(constants.TokenField); token != "" {
		return token
	}
	if token := c.Request().Header.Get(constants.TokenHeader); token != "" {
		return token
	}
	if auth := c.Request().Header.Get(echo.HeaderAuthorization); auth != "" {
		if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if cookie, err := c.Cookie(constants.TokenCookie); err == nil {
		return cookie.Value
	}

	return ""
}

func bodyToken(c echo.Context) string {
	req := c.Request()
	if req.Body == nil || req.Method == http.MethodGet || req.Method == http.MethodHead {
		return ""
	}

	ctype := req.Header.Get(echo.HeaderContentType)
	switch {
	case strings.HasPrefix(ctype, echo.MIMEApplicationForm), strings.HasPrefix(ctype, echo.MIMEMultipartForm):
		return c.FormValue(constants.TokenField)
	case strings.HasPrefix(ctype, echo.MIMEApplicationJSON):
		raw, err := io.ReadAll(io.LimitReader(req.Body, maxTokenPeek+1))
		// Put the bytes back for the handler's Bind.
		req.Body = io.NopCloser(io.MultiReader(bytes.NewReader(raw), req.Body))
		if err != nil || len(raw) > maxTokenPeek {
			return ""
		}

		var payload struct {
			Token string `json:"token"`
		}
		if json.Unmarshal(raw, &payload) != nil {
			return ""
		}

		return payload.Token
	default:
		return ""
	}
}

// RequireLogin rejects anonymous requests. API-style callers learn whether their token
// was missing or invalid; browsers are told to log in.
func (m *AuthMiddleware) RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if deliverycontext.GetAgent(c) != nil {
			return next(c)
		}

		return m.loginError(c)
	}
}

func (m *AuthMiddleware) loginError(c echo.Context) error {
	if !deliverycontext.IsAPIStyle(c) {
		return domainerrors.ErrLoginRequired
	}
	// A dead session cookie alone does not make a token invalid.
	if deliverycontext.GetTokenError(c) != nil {
		return domainerrors.ErrInvalidToken
	}

	return domainerrors.ErrNoToken
}

// APIOnly marks every request of a route group as API-style.
func (m *AuthMiddleware) APIOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		deliverycontext.MarkAPIStyle(c)

		return next(c)
	}
}

// RequirePrivileged lets only the configured super-identity through.
func (m *AuthMiddleware) RequirePrivileged(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		agent := deliverycontext.GetAgent(c)
		if agent == nil {
			return m.loginError(c)
		}
		if !m.accessUC.IsPrivileged(agent) {
			return domainerrors.ErrNotAuthorized
		}

		return next(c)
	}
}

// GuardDirectory is applied to every route carrying :domain/:agentId. It requires a
// logged-in caller and well-formed directory segments; per-item visibility is decided
// by the use case.
func (m *AuthMiddleware) GuardDirectory(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if deliverycontext.GetAgent(c) == nil {
			return m.loginError(c)
		}

		if !validSegment(c.Param("domain")) || !validSegment(c.Param("agentId")) {
			return domainerrors.ErrNotAuthorized
		}

		return next(c)
	}
}

func validSegment(s string) bool {
	return s != "" && s != "." && s != ".." && !strings.ContainsAny(s, "/\\")
}
