// Package response writes the JSON envelopes and browser redirects of the API server.
package response

import (
	"net/http"
	"net/url"
	"strings"

	deliverycontext "album/internal/delivery/context"
	"album/internal/domain/constants"
	domainerrors "album/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Message string    `json:"message,omitempty"`
	Data    any       `json:"data,omitempty"`
	Meta    *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error"`
	Meta    *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "EMPTY_NOTE"
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
	// Flash is the message left by the previous redirect, if any.
	Flash string `json:"flash,omitempty"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{
		RequestID: deliverycontext.GetRequestID(c),
		Flash:     popFlash(c),
	}
}

// Success returns a successful response carrying data
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// Message returns a successful response carrying only a message
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, SuccessResponse{
		Message: message,
		Meta:    meta(c),
	})
}

// MessageWithData returns a successful response carrying a message and data
func MessageWithData(c echo.Context, statusCode int, message string, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Message: message,
		Data:    data,
		Meta:    meta(c),
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}
	if s, ok := details.(string); ok && s == "" {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// AppError writes appErr as an error envelope
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
}

// BadRequestWithDetails returns a 400 error with details
func BadRequestWithDetails(c echo.Context, errorCode string, message string, details any) error {
	return Error(c, http.StatusBadRequest, errorCode, message, details)
}

// Done answers a mutation: JSON for API-style requests, a flash redirect back to the
// referring page otherwise.
func Done(c echo.Context, statusCode int, message string, data any) error {
	if deliverycontext.IsAPIStyle(c) {
		return MessageWithData(c, statusCode, message, data)
	}

	return RedirectBack(c, message)
}

// RedirectBack sets the flash cookie and answers 303 to the Referer path.
func RedirectBack(c echo.Context, message string) error {
	return RedirectWithFlash(c, refererPath(c), message)
}

// RedirectWithFlash sets the flash cookie and answers 303 to target.
func RedirectWithFlash(c echo.Context, target, message string) error {
	if message != "" {
		c.SetCookie(&http.Cookie{
			Name:     constants.FlashCookie,
			Value:    url.QueryEscape(message),
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	return c.Redirect(http.StatusSeeOther, target)
}

// refererPath keeps only the path and query of the Referer so redirects never leave the site.
func refererPath(c echo.Context) string {
	ref := c.Request().Referer()
	if ref == "" {
		return "/"
	}

	u, err := url.Parse(ref)
	if err != nil || u.Path == "" || !strings.HasPrefix(u.Path, "/") {
		return "/"
	}
	if u.RawQuery != "" {
		return u.Path + "?" + u.RawQuery
	}

	return u.Path
}

// popFlash reads and expires the flash cookie.
func popFlash(c echo.Context) string {
	cookie, err := c.Cookie(constants.FlashCookie)
	if err != nil || cookie.Value == "" {
		return ""
	}

	c.SetCookie(&http.Cookie{
		Name:   constants.FlashCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	msg, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return ""
	}

	return msg
}
