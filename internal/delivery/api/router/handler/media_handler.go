// Package handler contains the HTTP handlers of the API server.
package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"album/internal/delivery/api/response"
	deliverycontext "album/internal/delivery/context"
	"album/internal/domain/entity"
	domainerrors "album/internal/domain/errors"
	"album/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MediaHandlerParams holds dependencies for MediaHandler, injected by Fx.
type MediaHandlerParams struct {
	fx.In

	MediaUC usecase.MediaUsecase
	Logger  *slog.Logger
}

// MediaHandler serves listings and lifecycle mutations of images and tracks.
type MediaHandler struct {
	mediaUC usecase.MediaUsecase
	logger  *slog.Logger
}

// NewMediaHandler is the constructor for MediaHandler
func NewMediaHandler(params MediaHandlerParams) *MediaHandler {
	return &MediaHandler{
		mediaUC: params.MediaUC,
		logger:  params.Logger,
	}
}

// TrackDetailsRequest is the body of a track edit.
type TrackDetailsRequest struct {
	Name       string `json:"name" form:"name" validate:"max=200"`
	Transcript string `json:"transcript" form:"transcript" validate:"max=20000"`
}

// NoteRequest is the body of a new note. Blank text is rejected by the use case with
// its own message, so it is not validated here.
type NoteRequest struct {
	Text string `json:"text" form:"text"`
}

// kindOf reads the media kind from the first segment of the matched route.
func kindOf(c echo.Context) entity.MediaKind {
	first, _, _ := strings.Cut(strings.TrimPrefix(c.Path(), "/"), "/")

	return entity.MediaKind(first)
}

// pageOf parses :n. Garbage becomes page 0, which lists nothing.
func pageOf(c echo.Context) int {
	raw := c.Param("n")
	if raw == "" {
		return 1
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}

	return n
}

func refOf(c echo.Context) usecase.MediaRef {
	return usecase.MediaRef{
		Kind:     kindOf(c),
		Domain:   c.Param("domain"),
		AgentID:  c.Param("agentId"),
		Filename: c.Param("itemId"),
	}
}

// Feed lists published items of every owner.
func (h *MediaHandler) Feed(c echo.Context) error {
	page, err := h.mediaUC.Feed(c.Request().Context(), pageOf(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPageView(page, deliverycontext.GetAgent(c)))
}

// Album lists one owner's items of the route's kind.
func (h *MediaHandler) Album(c echo.Context) error {
	viewer := deliverycontext.GetAgent(c)

	page, err := h.mediaUC.Album(c.Request().Context(), viewer, usecase.AlbumInput{
		Kind:    kindOf(c),
		Domain:  c.Param("domain"),
		AgentID: c.Param("agentId"),
		Page:    pageOf(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPageView(page, viewer))
}

// Flagged lists the moderation queue visible to the caller.
func (h *MediaHandler) Flagged(c echo.Context) error {
	viewer := deliverycontext.GetAgent(c)

	page, err := h.mediaUC.FlaggedQueue(c.Request().Context(), viewer, pageOf(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPageView(page, viewer))
}

// Show returns one item.
func (h *MediaHandler) Show(c echo.Context) error {
	viewer := deliverycontext.GetAgent(c)

	item, err := h.mediaUC.Show(c.Request().Context(), viewer, refOf(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toMediaView(item, viewer))
}

// TogglePublish publishes a private item or takes a published one back.
func (h *MediaHandler) TogglePublish(c echo.Context) error {
	viewer := deliverycontext.GetAgent(c)

	item, err := h.mediaUC.TogglePublish(c.Request().Context(), viewer, refOf(c))
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Unpublished"
	if item.IsPublished() {
		message = "Published"
	}

	return response.Done(c, http.StatusOK, message, toMediaView(item, viewer))
}

// ToggleFlag flags an item, or lifts the flag when the privileged identity asks.
func (h *MediaHandler) ToggleFlag(c echo.Context) error {
	viewer := deliverycontext.GetAgent(c)

	out, err := h.mediaUC.ToggleFlag(c.Request().Context(), viewer, refOf(c))
	if err != nil {
		return errors.WithStack(err)
	}

	var message string
	switch out.Outcome {
	case entity.FlagAdded:
		message = "Flagged for review"
	case entity.FlagAlreadyHandled:
		message = "This item already has an administrative disposition"
	case entity.FlagCleared:
		message = "Flag removed"
	}

	return response.Done(c, http.StatusOK, message, toMediaView(out.Media, viewer))
}

// ToggleLike adds or removes the caller's like.
func (h *MediaHandler) ToggleLike(c echo.Context) error {
	viewer := deliverycontext.GetAgent(c)

	item, err := h.mediaUC.ToggleLike(c.Request().Context(), viewer, refOf(c))
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Like removed"
	if item.LikedBy(viewer.ID) {
		message = "Liked"
	}

	return response.Done(c, http.StatusOK, message, toMediaView(item, viewer))
}

// UpdateTrack edits a track's name and transcript.
func (h *MediaHandler) UpdateTrack(c echo.Context) error {
	viewer := deliverycontext.GetAgent(c)

	var req TrackDetailsRequest
	if err := c.Bind(&req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("malformed track details"), err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	item, err := h.mediaUC.UpdateTrackDetails(c.Request().Context(), viewer, refOf(c), usecase.TrackDetailsInput{
		Name:       req.Name,
		Transcript: req.Transcript,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Done(c, http.StatusOK, "Track updated", toMediaView(item, viewer))
}

// AddNote appends a note to an item.
func (h *MediaHandler) AddNote(c echo.Context) error {
	viewer := deliverycontext.GetAgent(c)

	var req NoteRequest
	if err := c.Bind(&req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("malformed note"), err.Error())
	}

	note, err := h.mediaUC.AddNote(c.Request().Context(), viewer, refOf(c), req.Text)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Done(c, http.StatusCreated, "Note saved", toNoteView(note))
}

// DeleteNote removes a note. Only its author, the item's owner or the privileged
// identity may do so.
func (h *MediaHandler) DeleteNote(c echo.Context) error {
	noteID, err := uuid.Parse(c.Param("noteId"))
	if err != nil {
		return errors.Wrap(domainerrors.ErrNoteNotFound, "malformed note id")
	}

	if err := h.mediaUC.DeleteNote(c.Request().Context(), deliverycontext.GetAgent(c), refOf(c), noteID); err != nil {
		return errors.WithStack(err)
	}

	return response.Done(c, http.StatusOK, "Note deleted", nil)
}

// Delete removes an item's record and bytes. Browsers land on the owner's album since
// the item page is gone.
func (h *MediaHandler) Delete(c echo.Context) error {
	ref := refOf(c)

	if err := h.mediaUC.Delete(c.Request().Context(), deliverycontext.GetAgent(c), ref); err != nil {
		return errors.WithStack(err)
	}

	if deliverycontext.IsAPIStyle(c) {
		return response.Message(c, http.StatusOK, "Deleted")
	}

	return response.RedirectWithFlash(c, fmt.Sprintf("/%s/%s", ref.Kind, ref.Directory()), "Deleted")
}

// ShareQR renders a QR code pointing at a public item.
func (h *MediaHandler) ShareQR(c echo.Context) error {
	png, err := h.mediaUC.ShareCode(c.Request().Context(), deliverycontext.GetAgent(c), refOf(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
