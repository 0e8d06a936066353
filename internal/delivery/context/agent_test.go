package context

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"album/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newEchoContext(accept string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if accept != "" {
		req.Header.Set(echo.HeaderAccept, accept)
	}

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestAgentRoundTrip(t *testing.T) {
	c := newEchoContext("")
	assert.Nil(t, GetAgent(c))

	agent := &entity.Agent{ID: uuid.New(), Email: "daniel@example.com"}
	SetAgent(c, agent)

	assert.Same(t, agent, GetAgent(c))
}

func TestIsAPIStyle(t *testing.T) {
	assert.False(t, IsAPIStyle(newEchoContext("text/html")))
	assert.True(t, IsAPIStyle(newEchoContext("application/json, text/plain")))

	c := newEchoContext("")
	MarkAPIStyle(c)
	assert.True(t, IsAPIStyle(c))
}

func TestAuthError(t *testing.T) {
	c := newEchoContext("")
	assert.NoError(t, GetAuthError(c))

	reason := errors.New("expired")
	SetAuthError(c, reason)
	assert.Equal(t, reason, GetAuthError(c))
}

func TestTokenError(t *testing.T) {
	c := newEchoContext("")
	SetAuthError(c, errors.New("session expired"))
	assert.NoError(t, GetTokenError(c))

	reason := errors.New("bad signature")
	SetTokenError(c, reason)
	assert.Equal(t, reason, GetTokenError(c))
}
