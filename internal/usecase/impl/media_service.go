package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"album/config"
	deliverycontext "album/internal/delivery/context"
	"album/internal/domain/entity"
	domainerrors "album/internal/domain/errors"
	"album/internal/domain/repository"
	"album/internal/domain/service"
	"album/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// mediaService implements the MediaUsecase interface.
type mediaService struct {
	txManager    repository.TransactionManager
	agentRepo    repository.AgentRepository
	mediaRepo    repository.MediaRepository
	access       usecase.AccessUsecase
	store        service.MediaStore
	qrCode       service.QRCodeService
	publisher    service.EventPublisher
	clock        service.Clock
	pageSize     int
	staticPrefix string
	shareBaseURL string
	logger       *slog.Logger
}

// MediaServiceParams holds dependencies for MediaService, injected by Fx.
type MediaServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	AgentRepo repository.AgentRepository
	MediaRepo repository.MediaRepository
	Access    usecase.AccessUsecase
	Store     service.MediaStore
	QRCode    service.QRCodeService
	Publisher service.EventPublisher
	Clock     service.Clock
	Config    *config.Config
	Logger    *slog.Logger
}

// NewMediaService is the constructor for mediaService.
func NewMediaService(params MediaServiceParams) usecase.MediaUsecase {
	baseURL := ""
	if params.Config.QRCode != nil {
		baseURL = strings.TrimSuffix(params.Config.QRCode.BaseURL, "/")
	}

	return &mediaService{
		txManager:    params.TxManager,
		agentRepo:    params.AgentRepo,
		mediaRepo:    params.MediaRepo,
		access:       params.Access,
		store:        params.Store,
		qrCode:       params.QRCode,
		publisher:    params.Publisher,
		clock:        params.Clock,
		pageSize:     params.Config.Pagination.PageSize,
		staticPrefix: strings.Trim(params.Config.Upload.StaticPrefix, "/"),
		shareBaseURL: baseURL,
		logger:       params.Logger,
	}
}

func (srv *mediaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *mediaService) pathOf(ref usecase.MediaRef) string {
	return srv.staticPrefix + "/" + ref.Directory() + "/" + ref.Filename
}

func emptyPage(page, size int) *entity.PageResult[*entity.Media] {
	return &entity.PageResult[*entity.Media]{Items: []*entity.Media{}, Page: page, Size: size}
}

// Feed returns published, unflagged items of every kind, newest publication first.
func (srv *mediaService) Feed(ctx context.Context, page int) (*entity.PageResult[*entity.Media], error) {
	p := entity.Page{Number: page, Size: srv.pageSize}
	if !p.Valid() {
		return emptyPage(page, srv.pageSize), nil
	}

	items, total, err := srv.mediaRepo.ListPublished(ctx, p)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list published media")
	}

	return &entity.PageResult[*entity.Media]{Items: items, Page: page, Total: total, Size: srv.pageSize}, nil
}

// Album lists an owner's items for a reader of that directory and creates the
// directory on the owner's first visit.
func (srv *mediaService) Album(ctx context.Context, viewer *entity.Agent, input usecase.AlbumInput) (*entity.PageResult[*entity.Media], error) {
	if viewer == nil {
		return nil, domainerrors.ErrLoginRequired
	}

	dir := input.Domain + "/" + input.AgentID
	readable, err := srv.access.CanReadDirectory(ctx, viewer, dir)
	if err != nil {
		return nil, err
	}
	if !readable {
		srv.log(ctx).Info("Album access denied", slog.String("directory", dir), slog.Any("viewer_id", viewer.ID))

		return nil, domainerrors.ErrNotAuthorized
	}

	owner, err := srv.agentRepo.FindByEmail(ctx, entity.EmailOf(input.Domain, input.AgentID))
	if err != nil {
		if errors.Is(err, repository.ErrAgentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAgentNotFound, "album owner not found")
		}

		return nil, errors.Wrap(err, "failed to load album owner")
	}

	if srv.access.CanWriteDirectory(viewer, dir) {
		if err := srv.store.EnsureDirectory(ctx, srv.staticPrefix+"/"+dir); err != nil {
			return nil, errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
		}
	}

	p := entity.Page{Number: input.Page, Size: srv.pageSize}
	if !p.Valid() {
		return emptyPage(input.Page, srv.pageSize), nil
	}

	items, total, err := srv.mediaRepo.ListByOwner(ctx, input.Kind, owner.ID, srv.access.IsPrivileged(viewer), p)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list album")
	}

	return &entity.PageResult[*entity.Media]{Items: items, Page: input.Page, Total: total, Size: srv.pageSize}, nil
}

// FlaggedQueue lists flagged items: all of them for the privileged identity, otherwise
// only those inside the viewer's readable directories.
func (srv *mediaService) FlaggedQueue(ctx context.Context, viewer *entity.Agent, page int) (*entity.PageResult[*entity.Media], error) {
	if viewer == nil {
		return nil, domainerrors.ErrLoginRequired
	}

	var ownerIDs []uuid.UUID
	if !srv.access.IsPrivileged(viewer) {
		fresh, err := srv.agentRepo.FindByID(ctx, viewer.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load viewer")
		}
		ownerIDs = append([]uuid.UUID{fresh.ID}, fresh.CanRead...)
	}

	p := entity.Page{Number: page, Size: srv.pageSize}
	if !p.Valid() {
		return emptyPage(page, srv.pageSize), nil
	}

	items, total, err := srv.mediaRepo.ListFlagged(ctx, ownerIDs, p)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list flagged media")
	}

	return &entity.PageResult[*entity.Media]{Items: items, Page: page, Total: total, Size: srv.pageSize}, nil
}

// load fetches the item a reference points at and checks the route kind.
func (srv *mediaService) load(ctx context.Context, ref usecase.MediaRef) (*entity.Media, error) {
	item, err := srv.mediaRepo.FindByPath(ctx, srv.pathOf(ref))
	if err != nil {
		if errors.Is(err, repository.ErrMediaNotFound) {
			return nil, errors.Wrap(domainerrors.ErrMediaNotFound, "media not found")
		}

		return nil, errors.Wrap(err, "failed to load media")
	}

	if item.Kind != ref.Kind {
		return nil, errors.Wrap(domainerrors.ErrMediaNotFound, "media kind mismatch")
	}

	return item, nil
}

// ensureVisible applies the detail visibility rule: readable directory, public item,
// or the privileged identity.
func (srv *mediaService) ensureVisible(ctx context.Context, viewer *entity.Agent, ref usecase.MediaRef, item *entity.Media) error {
	if viewer == nil {
		if item.IsPublic() {
			return nil
		}

		return domainerrors.ErrLoginRequired
	}

	readable, err := srv.access.CanReadDirectory(ctx, viewer, ref.Directory())
	if err != nil {
		return err
	}
	if readable || item.IsPublic() {
		return nil
	}

	srv.log(ctx).Info("Media access denied", slog.String("path", item.Path), slog.Any("viewer_id", viewer.ID))

	return domainerrors.ErrNotAuthorized
}

func (srv *mediaService) requireWriter(viewer *entity.Agent, ref usecase.MediaRef) error {
	if viewer == nil {
		return domainerrors.ErrLoginRequired
	}
	if !srv.access.CanWriteDirectory(viewer, ref.Directory()) {
		return domainerrors.ErrNotAuthorized
	}

	return nil
}

func (srv *mediaService) Show(ctx context.Context, viewer *entity.Agent, ref usecase.MediaRef) (*entity.Media, error) {
	item, err := srv.load(ctx, ref)
	if err != nil {
		return nil, err
	}

	if err := srv.ensureVisible(ctx, viewer, ref, item); err != nil {
		return nil, err
	}

	return item, nil
}

// TogglePublish flips the publish timestamp. Only the privileged identity may publish a flagged item.
func (srv *mediaService) TogglePublish(ctx context.Context, viewer *entity.Agent, ref usecase.MediaRef) (*entity.Media, error) {
	if err := srv.requireWriter(viewer, ref); err != nil {
		return nil, err
	}

	item, err := srv.load(ctx, ref)
	if err != nil {
		return nil, err
	}

	if item.IsPublished() {
		if err := srv.mediaRepo.SetPublished(ctx, item.ID, nil); err != nil {
			return nil, errors.Wrap(err, "failed to unpublish media")
		}
		item.PublishedAt = nil

		return item, nil
	}

	if item.Flagged && !srv.access.IsPrivileged(viewer) {
		return nil, domainerrors.ErrFlaggedItem
	}

	now := srv.clock.Now()
	if err := srv.mediaRepo.SetPublished(ctx, item.ID, &now); err != nil {
		return nil, errors.Wrap(err, "failed to publish media")
	}
	item.PublishedAt = &now

	srv.log(ctx).Debug("Media published", slog.String("path", item.Path))

	return item, nil
}

// ToggleFlag records the caller's flag. The privileged identity toggles the flag instead,
// keeping the flagger history when it clears one.
func (srv *mediaService) ToggleFlag(ctx context.Context, viewer *entity.Agent, ref usecase.MediaRef) (*usecase.FlagOutput, error) {
	if viewer == nil {
		return nil, domainerrors.ErrLoginRequired
	}

	item, err := srv.load(ctx, ref)
	if err != nil {
		return nil, err
	}
	if err := srv.ensureVisible(ctx, viewer, ref, item); err != nil {
		return nil, err
	}

	privileged := srv.access.IsPrivileged(viewer)

	if privileged && item.Flagged {
		if err := srv.mediaRepo.SetFlagged(ctx, item.ID, false); err != nil {
			return nil, errors.Wrap(err, "failed to clear flag")
		}
		item.Flagged = false

		return &usecase.FlagOutput{Outcome: entity.FlagCleared, Media: item}, nil
	}

	if !privileged && item.FlaggedBy(viewer.ID) {
		return &usecase.FlagOutput{Outcome: entity.FlagAlreadyHandled, Media: item}, nil
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		mediaRepo := repoFactory.MediaRepo()

		if err := mediaRepo.AddFlagger(ctx, item.ID, viewer.ID); err != nil {
			return errors.Wrap(err, "failed to add flagger")
		}

		return errors.Wrap(mediaRepo.SetFlagged(ctx, item.ID, true), "failed to raise flag")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to flag media")
	}

	if !item.FlaggedBy(viewer.ID) {
		item.Flaggers = append(item.Flaggers, viewer.ID)
	}
	item.Flagged = true

	srv.publishFlagged(ctx, viewer, item)

	return &usecase.FlagOutput{Outcome: entity.FlagAdded, Media: item}, nil
}

func (srv *mediaService) publishFlagged(ctx context.Context, flagger *entity.Agent, item *entity.Media) {
	event := &service.Event{
		ID:        uuid.NewString(),
		Type:      service.EventMediaFlagged,
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Subject:   item.Path,
		Attributes: map[string]string{
			"kind":    item.Kind.String(),
			"flagger": flagger.Email,
		},
	}

	if err := srv.publisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish flag event", slog.String("path", item.Path), slog.Any("error", err))
	}
}

// ToggleLike adds or removes the viewer from the likes set.
func (srv *mediaService) ToggleLike(ctx context.Context, viewer *entity.Agent, ref usecase.MediaRef) (*entity.Media, error) {
	if viewer == nil {
		return nil, domainerrors.ErrLoginRequired
	}

	item, err := srv.load(ctx, ref)
	if err != nil {
		return nil, err
	}
	if err := srv.ensureVisible(ctx, viewer, ref, item); err != nil {
		return nil, err
	}

	if item.LikedBy(viewer.ID) {
		if err := srv.mediaRepo.RemoveLike(ctx, item.ID, viewer.ID); err != nil {
			return nil, errors.Wrap(err, "failed to remove like")
		}
		likes := item.Likes[:0]
		for _, id := range item.Likes {
			if id != viewer.ID {
				likes = append(likes, id)
			}
		}
		item.Likes = likes

		return item, nil
	}

	if err := srv.mediaRepo.AddLike(ctx, item.ID, viewer.ID); err != nil {
		return nil, errors.Wrap(err, "failed to add like")
	}
	item.Likes = append(item.Likes, viewer.ID)

	return item, nil
}

func (srv *mediaService) UpdateTrackDetails(ctx context.Context, viewer *entity.Agent, ref usecase.MediaRef, input usecase.TrackDetailsInput) (*entity.Media, error) {
	if ref.Kind != entity.MediaKindTrack {
		return nil, errors.Wrap(domainerrors.ErrMediaNotFound, "only tracks carry details")
	}
	if err := srv.requireWriter(viewer, ref); err != nil {
		return nil, err
	}

	item, err := srv.load(ctx, ref)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	transcript := strings.TrimSpace(input.Transcript)
	if err := srv.mediaRepo.UpdateTrackDetails(ctx, item.ID, name, transcript); err != nil {
		return nil, errors.Wrap(err, "failed to update track")
	}
	item.Name = name
	item.Transcript = transcript

	return item, nil
}

// AddNote appends a note from any viewer of the item.
func (srv *mediaService) AddNote(ctx context.Context, viewer *entity.Agent, ref usecase.MediaRef, text string) (*entity.Note, error) {
	if viewer == nil {
		return nil, domainerrors.ErrLoginRequired
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domainerrors.ErrEmptyNote
	}
	if utf8.RuneCountInString(text) > entity.MaxNoteLength {
		return nil, domainerrors.ErrNoteTooLong
	}

	item, err := srv.load(ctx, ref)
	if err != nil {
		return nil, err
	}
	if err := srv.ensureVisible(ctx, viewer, ref, item); err != nil {
		return nil, err
	}

	note := &entity.Note{
		ID:        uuid.New(),
		MediaID:   item.ID,
		AuthorID:  viewer.ID,
		Author:    viewer,
		Text:      text,
		CreatedAt: srv.clock.Now(),
	}

	if err := srv.mediaRepo.AddNote(ctx, note); err != nil {
		return nil, errors.Wrap(err, "failed to add note")
	}

	return note, nil
}

// DeleteNote removes a note for its author, the item owner or the privileged identity.
func (srv *mediaService) DeleteNote(ctx context.Context, viewer *entity.Agent, ref usecase.MediaRef, noteID uuid.UUID) error {
	if viewer == nil {
		return domainerrors.ErrLoginRequired
	}

	item, err := srv.load(ctx, ref)
	if err != nil {
		return err
	}

	note := item.FindNote(noteID)
	if note == nil {
		return errors.Wrap(domainerrors.ErrNoteNotFound, "note not found")
	}

	if note.AuthorID != viewer.ID && item.OwnerID != viewer.ID && !srv.access.IsPrivileged(viewer) {
		srv.log(ctx).Info("Note deletion refused", slog.Any("note_id", noteID), slog.Any("viewer_id", viewer.ID))

		return domainerrors.ErrForbidden
	}

	if err := srv.mediaRepo.DeleteNote(ctx, item.ID, noteID); err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return errors.Wrap(domainerrors.ErrNoteNotFound, "note not found")
		}

		return errors.Wrap(err, "failed to delete note")
	}

	return nil
}

// Delete removes the record first, then the stored bytes.
func (srv *mediaService) Delete(ctx context.Context, viewer *entity.Agent, ref usecase.MediaRef) error {
	if err := srv.requireWriter(viewer, ref); err != nil {
		return err
	}

	item, err := srv.load(ctx, ref)
	if err != nil {
		return err
	}

	if err := srv.mediaRepo.Delete(ctx, item.ID); err != nil {
		return errors.Wrap(err, "failed to delete media")
	}

	if err := srv.store.Delete(ctx, item.Path); err != nil {
		srv.log(ctx).Error("Media record deleted but bytes remain", slog.String("path", item.Path), slog.Any("error", err))
	}

	srv.log(ctx).Info("Media deleted", slog.String("path", item.Path), slog.Any("by", viewer.ID))

	return nil
}

// ShareCode renders a QR code for the public URL of a published, unflagged item.
func (srv *mediaService) ShareCode(ctx context.Context, viewer *entity.Agent, ref usecase.MediaRef) ([]byte, error) {
	item, err := srv.load(ctx, ref)
	if err != nil {
		return nil, err
	}
	if !item.IsPublic() {
		if viewer == nil {
			return nil, domainerrors.ErrLoginRequired
		}

		return nil, domainerrors.ErrNotAuthorized
	}

	url := srv.shareBaseURL + "/" + ref.Kind.String() + "/" + ref.Directory() + "/" + ref.Filename

	png, err := srv.qrCode.GenerateShareQR(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render share code")
	}

	return png, nil
}
