package handler

import (
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"album/internal/delivery/api/response"
	deliverycontext "album/internal/delivery/context"
	"album/internal/domain/entity"
	domainerrors "album/internal/domain/errors"
	"album/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// uploadField is the multipart field repeated once per file.
const uploadField = "docs"

// streamExtensions maps audio content types to the extension of the stored file.
var streamExtensions = map[string]string{
	"audio/ogg":   ".ogg",
	"audio/webm":  ".webm",
	"audio/mpeg":  ".mp3",
	"audio/mp4":   ".m4a",
	"audio/wav":   ".wav",
	"audio/x-wav": ".wav",
}

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	IngestUC usecase.IngestUsecase
	Logger   *slog.Logger
}

// UploadHandler accepts new media through multipart forms and raw streams.
type UploadHandler struct {
	ingestUC usecase.IngestUsecase
	logger   *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler
func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	return &UploadHandler{
		ingestUC: params.IngestUC,
		logger:   params.Logger,
	}
}

func receivedMessage(kind entity.MediaKind) string {
	if kind == entity.MediaKindTrack {
		return "Track received"
	}

	return "Image received"
}

// Upload stores every file of the docs field, strictly in order.
func (h *UploadHandler) Upload(c echo.Context) error {
	kind := kindOf(c)

	form, err := c.MultipartForm()
	if err != nil {
		return errors.Wrap(domainerrors.ErrNoFiles, err.Error())
	}

	headers := form.File[uploadField]
	files := make([]usecase.UploadFile, 0, len(headers))
	for _, fh := range headers {
		files = append(files, usecase.UploadFile{
			Filename: fh.Filename,
			Open: func() (io.ReadCloser, error) {
				return fh.Open()
			},
		})
	}

	owner := deliverycontext.GetAgent(c)
	items, err := h.ingestUC.Upload(c.Request().Context(), owner, kind, files)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.MessageWithData(c, http.StatusCreated, receivedMessage(kind), toMediaViews(items, owner))
}

// Stream stores the raw request body as a new track.
func (h *UploadHandler) Stream(c echo.Context) error {
	owner := deliverycontext.GetAgent(c)

	item, err := h.ingestUC.UploadStream(c.Request().Context(), owner, usecase.StreamInput{
		Body:      c.Request().Body,
		Extension: streamExtension(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.MessageWithData(c, http.StatusCreated, receivedMessage(entity.MediaKindTrack), toMediaView(item, owner))
}

// streamExtension prefers an explicit ?ext= and falls back to the content type.
func streamExtension(c echo.Context) string {
	if ext := c.QueryParam("ext"); ext != "" {
		return ext
	}

	mediaType, _, err := mime.ParseMediaType(c.Request().Header.Get(echo.HeaderContentType))
	if err != nil {
		return ""
	}

	return streamExtensions[strings.ToLower(mediaType)]
}
