// Package middleware contains the echo middleware specific to the API server.
package middleware

import (
	"log/slog"
	"net/http"

	"album/internal/delivery/api/response"
	"album/internal/delivery/api/validator"
	deliverycontext "album/internal/delivery/context"
	domainerrors "album/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const internalErrorMessage = "Internal server error, please try again later"

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is echo's HTTPErrorHandler. API-style requests get the JSON error
// envelope; browser requests are redirected with a flash message.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, code, message, details := m.classify(err, c)

	if deliverycontext.IsAPIStyle(c) {
		_ = response.Error(c, status, code, message, details)

		return
	}

	// Reads go home so a denied page never redirects to itself; mutations go back.
	if c.Request().Method == http.MethodGet || c.Request().Method == http.MethodHead {
		_ = response.RedirectWithFlash(c, "/", message)

		return
	}
	_ = response.RedirectBack(c, message)
}

func (m *ErrorMiddleware) classify(err error, c echo.Context) (int, string, string, any) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logUnhandled(err, c)

			return appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil
		}

		return appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details()
	}

	if fields := validator.FieldErrors(err); fields != nil {
		return http.StatusBadRequest, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message(), fields
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		return httpErr.Code, "HTTP_ERROR", message, nil
	}

	m.logUnhandled(err, c)

	return http.StatusInternalServerError, domainerrors.ErrInternalError.ErrorCode(), internalErrorMessage, nil
}

func (m *ErrorMiddleware) logUnhandled(err error, c echo.Context) {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
