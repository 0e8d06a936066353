package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	deliverycontext "album/internal/delivery/context"
	domainerrors "album/internal/domain/errors"
	"album/internal/domain/service"
	"album/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StaticHandlerParams holds dependencies for StaticHandler, injected by Fx.
type StaticHandlerParams struct {
	fx.In

	AccessUC usecase.AccessUsecase
	Store    service.MediaStore
	Logger   *slog.Logger
}

// StaticHandler serves stored media bytes behind the directory check.
type StaticHandler struct {
	accessUC usecase.AccessUsecase
	store    service.MediaStore
	logger   *slog.Logger
}

// NewStaticHandler is the constructor for StaticHandler
func NewStaticHandler(params StaticHandlerParams) *StaticHandler {
	return &StaticHandler{
		accessUC: params.AccessUC,
		store:    params.Store,
		logger:   params.Logger,
	}
}

// Serve streams the object at the request path. Anonymous callers get 404 for everything
// so that existence is never confirmed; authenticated callers without access get 403.
func (h *StaticHandler) Serve(c echo.Context) error {
	// Status codes, not redirects, for byte requests.
	deliverycontext.MarkAPIStyle(c)

	key := strings.TrimPrefix(c.Request().URL.Path, "/")
	ctx := c.Request().Context()

	if err := h.accessUC.AuthorizeFile(ctx, deliverycontext.GetAgent(c), key); err != nil {
		return errors.WithStack(err)
	}

	obj, err := h.store.Open(ctx, key)
	if err != nil {
		if errors.Is(err, service.ErrObjectNotFound) {
			return domainerrors.ErrFileNotFound
		}

		return errors.Wrap(err, "failed to open stored object")
	}
	defer func() {
		if cerr := obj.Close(); cerr != nil {
			deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Failed to close stored object",
				slog.String("key", key), slog.Any("error", cerr))
		}
	}()

	header := c.Response().Header()
	if obj.Size > 0 {
		header.Set(echo.HeaderContentLength, strconv.FormatInt(obj.Size, 10))
	}
	if !obj.ModTime.IsZero() {
		header.Set(echo.HeaderLastModified, obj.ModTime.UTC().Format(http.TimeFormat))
	}
	header.Set("Cache-Control", "private, max-age=0")

	contentType := obj.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	return c.Stream(http.StatusOK, contentType, obj)
}
