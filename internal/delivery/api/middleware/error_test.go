package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"album/internal/delivery/api/response"
	deliverycontext "album/internal/delivery/context"
	domainerrors "album/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, method, target string, apiStyle bool, err error) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Referer", "http://localhost/track/example.com/daniel")
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	if apiStyle {
		deliverycontext.MarkAPIStyle(c)
	}

	NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(err, c)

	return rec
}

func TestHandleHTTPError_API(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "wrapped app error",
			err:        errors.Wrap(domainerrors.ErrNoToken, "auth"),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "NO_TOKEN",
			wantMsg:    "Unauthorized: No token provided",
		},
		{
			name:       "echo http error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
			wantMsg:    "Method Not Allowed",
		},
		{
			name:       "unknown error is hidden",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantMsg:    internalErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := handleError(t, http.MethodPost, "/image", true, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantMsg, body.Message)
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}

func TestHandleHTTPError_Browser(t *testing.T) {
	t.Run("denied read goes home", func(t *testing.T) {
		rec := handleError(t, http.MethodGet, "/image/example.com/daniel/pic.jpg", false, domainerrors.ErrNotAuthorized)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
		require.Len(t, rec.Result().Cookies(), 1)
		assert.Contains(t, rec.Result().Cookies()[0].Value, "not+authorized")
	})

	t.Run("failed mutation goes back", func(t *testing.T) {
		rec := handleError(t, http.MethodPost, "/track/example.com/daniel/1.ogg/note", false, domainerrors.ErrEmptyNote)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/track/example.com/daniel", rec.Header().Get(echo.HeaderLocation))
		assert.Contains(t, rec.Result().Cookies()[0].Value, "empty+note+not+saved")
	})
}
