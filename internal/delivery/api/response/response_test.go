package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	deliverycontext "album/internal/delivery/context"
	"album/internal/domain/constants"
	domainerrors "album/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func TestMessage(t *testing.T) {
	c, rec := newContext(httptest.NewRequest(http.MethodPost, "/image", nil))

	require.NoError(t, Message(c, http.StatusCreated, "Image received"))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"Image received","meta":{"request_id":"req-1"}}`, rec.Body.String())
}

func TestAppError(t *testing.T) {
	c, rec := newContext(httptest.NewRequest(http.MethodPost, "/x", nil))

	require.NoError(t, AppError(c, domainerrors.ErrEmptyNote.WithDetails("text is blank")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "empty note not saved", body.Message)
	assert.Equal(t, "EMPTY_NOTE", body.Error.Code)
	assert.Equal(t, "text is blank", body.Error.Details)
	assert.Equal(t, "req-1", body.Meta.RequestID)
}

func TestError_HidesDetailsForAuthFailures(t *testing.T) {
	c, rec := newContext(httptest.NewRequest(http.MethodGet, "/x", nil))

	require.NoError(t, Error(c, http.StatusForbidden, "NOT_AUTHORIZED", "nope", "secret detail"))

	assert.NotContains(t, rec.Body.String(), "secret detail")
}

func TestDone(t *testing.T) {
	t.Run("browser request redirects to referer with flash", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/image/example.com/daniel/1.jpg/like", nil)
		req.Header.Set("Referer", "https://album.example.com/image/example.com/daniel/page/2?x=1")
		c, rec := newContext(req)

		require.NoError(t, Done(c, http.StatusOK, "Liked", nil))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/image/example.com/daniel/page/2?x=1", rec.Header().Get(echo.HeaderLocation))
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, constants.FlashCookie, cookies[0].Name)
		assert.Equal(t, url.QueryEscape("Liked"), cookies[0].Value)
	})

	t.Run("missing referer falls back to home", func(t *testing.T) {
		c, rec := newContext(httptest.NewRequest(http.MethodPost, "/x", nil))

		require.NoError(t, Done(c, http.StatusOK, "", nil))

		assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("api request gets json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/x", nil)
		req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
		c, rec := newContext(req)

		require.NoError(t, Done(c, http.StatusOK, "Published", map[string]bool{"published": true}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Published","data":{"published":true},"meta":{"request_id":"req-1"}}`, rec.Body.String())
	})
}

func TestFlashIsShownOnce(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: constants.FlashCookie, Value: url.QueryEscape("You need to login first")})
	c, rec := newContext(req)

	require.NoError(t, Success(c, http.StatusOK, []string{}))

	assert.Contains(t, rec.Body.String(), `"flash":"You need to login first"`)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
