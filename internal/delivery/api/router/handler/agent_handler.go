package handler

import (
	"log/slog"
	"net/http"

	"album/internal/delivery/api/response"
	deliverycontext "album/internal/delivery/context"
	"album/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AgentHandlerParams holds dependencies for AgentHandler, injected by Fx.
type AgentHandlerParams struct {
	fx.In

	AgentUC usecase.AgentUsecase
	Logger  *slog.Logger
}

// AgentHandler serves the caller's profile, grants and the admin view.
type AgentHandler struct {
	agentUC usecase.AgentUsecase
	logger  *slog.Logger
}

// NewAgentHandler is the constructor for AgentHandler
func NewAgentHandler(params AgentHandlerParams) *AgentHandler {
	return &AgentHandler{
		agentUC: params.AgentUC,
		logger:  params.Logger,
	}
}

// GrantRequest names the agent that should be able to read the caller's directory
type GrantRequest struct {
	Email string `json:"email" form:"email" validate:"required,email"`
}

// Me returns the logged-in agent.
func (h *AgentHandler) Me(c echo.Context) error {
	return response.Success(c, http.StatusOK, toAgentView(deliverycontext.GetAgent(c)))
}

// Grants lists what the caller can read and who can read the caller.
func (h *AgentHandler) Grants(c echo.Context) error {
	out, err := h.agentUC.Grants(c.Request().Context(), deliverycontext.GetAgent(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toGrantsView(out))
}

// Grant lets another agent read the caller's directory.
func (h *AgentHandler) Grant(c echo.Context) error {
	var req GrantRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.agentUC.Grant(c.Request().Context(), deliverycontext.GetAgent(c), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Done(c, http.StatusCreated, req.Email+" can now see your files", nil)
}

// Revoke takes a read grant back.
func (h *AgentHandler) Revoke(c echo.Context) error {
	email := c.Param("email")

	if err := h.agentUC.Revoke(c.Request().Context(), deliverycontext.GetAgent(c), email); err != nil {
		return errors.WithStack(err)
	}

	return response.Done(c, http.StatusOK, email+" can no longer see your files", nil)
}

// Admin lists every agent for the privileged identity.
func (h *AgentHandler) Admin(c echo.Context) error {
	agents, err := h.agentUC.AdminList(c.Request().Context(), deliverycontext.GetAgent(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAgentViews(agents))
}
