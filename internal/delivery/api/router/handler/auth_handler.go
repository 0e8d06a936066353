package handler

import (
	"log/slog"
	"net/http"
	"time"

	"album/config"
	"album/internal/delivery/api/response"
	deliverycontext "album/internal/delivery/context"
	"album/internal/domain/constants"
	domainerrors "album/internal/domain/errors"
	"album/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	AgentUC   usecase.AgentUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// AuthHandler handles registration, login, logout and password resets.
type AuthHandler struct {
	sessionUC     usecase.SessionUsecase
	agentUC       usecase.AgentUsecase
	sessionTTL    time.Duration
	secureCookies bool
	logger        *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		sessionUC:     params.SessionUC,
		agentUC:       params.AgentUC,
		sessionTTL:    params.Config.Auth.SessionTTL,
		secureCookies: params.Config.Auth.SecureCookies,
		logger:        params.Logger,
	}
}

// RegisterRequest represents the request body for a local registration
type RegisterRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
	Name     string `json:"name" form:"name" validate:"max=200"`
}

// LoginRequest represents the request body for a local login
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// GoogleLoginRequest carries the ID token obtained by Google Sign-In
type GoogleLoginRequest struct {
	IDToken string `json:"id_token" form:"id_token" validate:"required"`
}

// ResetRequest asks for a password reset token
type ResetRequest struct {
	Email string `json:"email" form:"email" validate:"required,email"`
}

// NewPasswordRequest sets a new password with a reset token
type NewPasswordRequest struct {
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginResponse is returned to API clients after a login
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	Agent       AgentView `json:"agent"`
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	return errors.WithStack(c.Validate(req))
}

// Register creates a local account.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	agent, err := h.agentUC.Register(c.Request().Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Done(c, http.StatusCreated, "Account created, please log in", toAgentView(agent))
}

// Login checks local credentials and opens a session.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.sessionUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return h.loggedIn(c, out)
}

// GoogleLogin signs in with a Google ID token.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	var req GoogleLoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.sessionUC.ExternalLogin(c.Request().Context(), req.IDToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.loggedIn(c, out)
}

func (h *AuthHandler) loggedIn(c echo.Context, out *usecase.LoginOutput) error {
	c.SetCookie(&http.Cookie{
		Name:     constants.SessionCookie,
		Value:    out.SessionToken,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	if deliverycontext.IsAPIStyle(c) {
		return response.MessageWithData(c, http.StatusOK, "Logged in", LoginResponse{
			AccessToken: out.AccessToken,
			Agent:       toAgentView(out.Agent),
		})
	}

	return response.RedirectWithFlash(c, "/", "Welcome back")
}

// Logout ends the browser session, if any.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(constants.SessionCookie); err == nil && cookie.Value != "" {
		if err := h.sessionUC.Logout(c.Request().Context(), cookie.Value); err != nil {
			return errors.WithStack(err)
		}
	}

	c.SetCookie(&http.Cookie{Name: constants.SessionCookie, Path: "/", MaxAge: -1})

	if deliverycontext.IsAPIStyle(c) {
		return response.Message(c, http.StatusOK, "Logged out")
	}

	return response.RedirectWithFlash(c, "/", "Logged out")
}

// RequestReset issues a reset token. The answer is the same whether or not the email exists.
func (h *AuthHandler) RequestReset(c echo.Context) error {
	var req ResetRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.agentUC.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Done(c, http.StatusOK, "If that email is registered, a reset link is on its way", nil)
}

// ResetPassword sets a new password using the token from the reset link.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req NewPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.agentUC.ResetPassword(c.Request().Context(), c.Param("token"), req.Password); err != nil {
		return errors.WithStack(err)
	}

	if deliverycontext.IsAPIStyle(c) {
		return response.Message(c, http.StatusOK, "Password updated")
	}

	return response.RedirectWithFlash(c, "/", "Password updated, please log in")
}
