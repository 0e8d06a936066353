package context

import (
	"strings"

	"album/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

const (
	// KeyAgent is the key for the authenticated agent in echo.Context.
	KeyAgent ContextKey = "agent"

	// KeyAPIStyle marks a request whose failures are answered with JSON instead of a redirect.
	KeyAPIStyle ContextKey = "api_style"

	// KeyAuthError holds the reason authentication failed, if a credential was presented.
	KeyAuthError ContextKey = "auth_error"

	// KeyTokenError holds the reason a presented bearer token was rejected.
	KeyTokenError ContextKey = "token_error"
)

// SetAgent stores the authenticated agent in echo.Context.
func SetAgent(c echo.Context, agent *entity.Agent) {
	c.Set(string(KeyAgent), agent)
}

// GetAgent returns the authenticated agent or nil for anonymous requests.
func GetAgent(c echo.Context) *entity.Agent {
	if agent, ok := c.Get(string(KeyAgent)).(*entity.Agent); ok {
		return agent
	}

	return nil
}

// MarkAPIStyle flags the request as coming from a non-browser client.
func MarkAPIStyle(c echo.Context) {
	c.Set(string(KeyAPIStyle), true)
}

// IsAPIStyle reports whether the request was marked as API-style or asks for JSON explicitly.
func IsAPIStyle(c echo.Context) bool {
	if marked, ok := c.Get(string(KeyAPIStyle)).(bool); ok && marked {
		return true
	}

	accept := c.Request().Header.Get(echo.HeaderAccept)

	return strings.Contains(accept, echo.MIMEApplicationJSON)
}

// SetAuthError records why a presented credential was rejected.
func SetAuthError(c echo.Context, err error) {
	c.Set(string(KeyAuthError), err)
}

// GetAuthError returns the error recorded by SetAuthError, if any.
func GetAuthError(c echo.Context) error {
	if err, ok := c.Get(string(KeyAuthError)).(error); ok {
		return err
	}

	return nil
}

// SetTokenError records why a presented bearer token was rejected.
func SetTokenError(c echo.Context, err error) {
	c.Set(string(KeyTokenError), err)
}

// GetTokenError returns the error recorded by SetTokenError, if any.
func GetTokenError(c echo.Context) error {
	if err, ok := c.Get(string(KeyTokenError)).(error); ok {
		return err
	}

	return nil
}
