package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"album/config"
	deliverycontext "album/internal/delivery/context"
	"album/internal/domain/entity"
	domainerrors "album/internal/domain/errors"
	"album/internal/domain/repository"
	"album/internal/domain/service"
	"album/internal/usecase"
	"album/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultImageExt = ".jpg"
	defaultTrackExt = ".ogg"
	maxExtLen       = 8

	// maxNameAttempts bounds how often a taken name is replaced by a suffixed one.
	maxNameAttempts = 4
)

// ingestService implements the IngestUsecase interface.
type ingestService struct {
	mediaRepo    repository.MediaRepository
	store        service.MediaStore
	transcriber  service.Transcriber
	clock        service.Clock
	maxFiles     int
	staticPrefix string
	stagingDir   string
	logger       *slog.Logger

	// background tracks stream transcriptions still running.
	background sync.WaitGroup
}

// IngestServiceParams holds dependencies for IngestService, injected by Fx.
type IngestServiceParams struct {
	fx.In

	// Lc lets shutdown wait for stream transcriptions still in flight.
	Lc          fx.Lifecycle `optional:"true"`
	MediaRepo   repository.MediaRepository
	Store       service.MediaStore
	Transcriber service.Transcriber
	Clock       service.Clock
	Config      *config.Config
	Logger      *slog.Logger
}

// NewIngestService is the constructor for ingestService.
func NewIngestService(params IngestServiceParams) usecase.IngestUsecase {
	srv := &ingestService{
		mediaRepo:    params.MediaRepo,
		store:        params.Store,
		transcriber:  params.Transcriber,
		clock:        params.Clock,
		maxFiles:     params.Config.Upload.MaxFiles,
		staticPrefix: strings.Trim(params.Config.Upload.StaticPrefix, "/"),
		stagingDir:   params.Config.Upload.StagingDir,
		logger:       params.Logger,
	}

	if params.Lc != nil {
		params.Lc.Append(fx.Hook{OnStop: srv.drain})
	}

	return srv
}

// drain waits for background transcriptions until ctx expires.
func (srv *ingestService) drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		srv.background.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		srv.logger.Warn("Stopped before background transcriptions finished")

		return errors.WithStack(ctx.Err())
	}
}

func (srv *ingestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upload runs the files through stage, relocate, transcribe and persist one at a time.
// A record is never created before its bytes are in the store.
func (srv *ingestService) Upload(ctx context.Context, owner *entity.Agent, kind entity.MediaKind, files []usecase.UploadFile) ([]*entity.Media, error) {
	if owner == nil {
		return nil, domainerrors.ErrLoginRequired
	}
	if !kind.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown media kind")
	}
	if len(files) == 0 {
		return nil, domainerrors.ErrNoFiles
	}
	if len(files) > srv.maxFiles {
		return nil, domainerrors.ErrTooManyFiles.WithDetails(fmt.Sprintf("at most %d files per upload", srv.maxFiles))
	}

	dir := srv.staticPrefix + "/" + owner.Directory()
	if err := srv.store.EnsureDirectory(ctx, dir); err != nil {
		return nil, errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}

	stamp := srv.clock.Now().UnixMilli()
	created := make([]*entity.Media, 0, len(files))

	for i, file := range files {
		index := i
		if len(files) == 1 {
			index = -1
		}
		ext := normalizeExt(filepath.Ext(file.Filename), kind)
		name := func(attempt int) string { return objectName(stamp, index, ext, attempt) }

		item, err := srv.ingestOne(ctx, owner, kind, file, dir, name)
		if err != nil {
			srv.log(ctx).Error("Upload aborted",
				slog.Int("file_index", i),
				slog.Int("committed", len(created)),
				slog.Any("error", err),
			)

			return created, err
		}

		created = append(created, item)
	}

	return created, nil
}

func (srv *ingestService) ingestOne(ctx context.Context, owner *entity.Agent, kind entity.MediaKind, file usecase.UploadFile, dir string, name func(attempt int) string) (*entity.Media, error) {
	staged, size, err := srv.stage(file, filepath.Ext(name(0)))
	if err != nil {
		return nil, err
	}
	defer os.Remove(staged)

	if sum, err := util.CalculateFileChecksum(staged); err == nil {
		srv.log(ctx).Debug("Upload staged", slog.String("file", file.Filename), slog.String("sha256", sum))
	}

	path, err := srv.relocate(ctx, staged, dir, name)
	if err != nil {
		return nil, err
	}

	item := &entity.Media{
		ID:        uuid.New(),
		Kind:      kind,
		Path:      path,
		OwnerID:   owner.ID,
		Owner:     owner,
		CreatedAt: srv.clock.Now(),
	}

	if kind == entity.MediaKindTrack {
		item.Name = strings.TrimSuffix(filepath.Base(file.Filename), filepath.Ext(file.Filename))
		item.Transcript = srv.transcribe(ctx, staged, path)
	}

	if err := srv.mediaRepo.Create(ctx, item); err != nil {
		srv.discard(ctx, path, err)

		return nil, errors.Wrap(err, "failed to persist media record")
	}

	srv.log(ctx).Info("Media stored", slog.String("path", path), slog.String("size", util.FormatBytes(size)))

	return item, nil
}

// stage copies the incoming file to local disk and returns the staged path.
func (srv *ingestService) stage(file usecase.UploadFile, ext string) (string, int64, error) {
	src, err := file.Open()
	if err != nil {
		return "", 0, errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	dst, err := os.CreateTemp(srv.stagingDir, "album-*"+ext)
	if err != nil {
		return "", 0, errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}

	size, err := io.Copy(dst, src)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(dst.Name())

		return "", 0, errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}

	return dst.Name(), size, nil
}

// relocate copies the staged file to the first free name in dir and returns its path.
func (srv *ingestService) relocate(ctx context.Context, staged, dir string, name func(attempt int) string) (string, error) {
	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		path := dir + "/" + name(attempt)

		err := srv.putFile(ctx, staged, path)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, service.ErrObjectExists) {
			return "", errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
		}

		srv.log(ctx).Info("Upload name taken, picking another", slog.String("path", path))
	}

	return "", errors.Wrap(domainerrors.ErrDuplicatePath, "no free name left for upload")
}

func (srv *ingestService) putFile(ctx context.Context, staged, path string) error {
	f, err := os.Open(staged)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()

	_, err = srv.store.Put(ctx, path, f)

	return err
}

// discard removes bytes this request wrote once their record cannot be saved. A duplicate
// path means another record may own the object, so the bytes stay.
func (srv *ingestService) discard(ctx context.Context, path string, cause error) {
	if errors.Is(cause, domainerrors.ErrDuplicatePath) {
		srv.log(ctx).Warn("Record for stored bytes rejected as duplicate, bytes kept", slog.String("path", path))

		return
	}

	if err := srv.store.Delete(ctx, path); err != nil {
		srv.log(ctx).Warn("Failed to remove orphaned bytes", slog.String("path", path), slog.Any("error", err))
	}
}

// freePath returns the first name in dir with no stored object. Put still refuses a name
// taken in the meantime.
func (srv *ingestService) freePath(ctx context.Context, dir string, name func(attempt int) string) (string, error) {
	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		path := dir + "/" + name(attempt)

		obj, err := srv.store.Open(ctx, path)
		if errors.Is(err, service.ErrObjectNotFound) {
			return path, nil
		}
		if err != nil {
			return "", errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
		}
		_ = obj.Close()
	}

	return "", errors.Wrap(domainerrors.ErrDuplicatePath, "no free name left for stream")
}

// transcribe returns an empty transcript when the backend is off or fails.
func (srv *ingestService) transcribe(ctx context.Context, localPath, path string) string {
	if srv.transcriber == nil || !srv.transcriber.Enabled() {
		return ""
	}

	text, err := srv.transcriber.Transcribe(ctx, localPath)
	if err != nil {
		srv.log(ctx).Warn("Transcription failed", slog.String("path", path), slog.Any("error", err))

		return ""
	}

	return text
}

// UploadStream pipes the body into the store and records the track once the body ends.
func (srv *ingestService) UploadStream(ctx context.Context, owner *entity.Agent, input usecase.StreamInput) (*entity.Media, error) {
	if owner == nil {
		return nil, domainerrors.ErrLoginRequired
	}
	if input.Body == nil {
		return nil, domainerrors.ErrNoFiles
	}

	dir := srv.staticPrefix + "/" + owner.Directory()
	if err := srv.store.EnsureDirectory(ctx, dir); err != nil {
		return nil, errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}

	now := srv.clock.Now()
	ext := normalizeExt(input.Extension, entity.MediaKindTrack)

	// The body cannot be replayed, so the name is chosen before writing.
	path, err := srv.freePath(ctx, dir, func(attempt int) string {
		return objectName(now.UnixMilli(), -1, ext, attempt)
	})
	if err != nil {
		return nil, err
	}

	size, err := srv.store.Put(ctx, path, input.Body)
	if errors.Is(err, service.ErrObjectExists) {
		return nil, errors.Wrap(domainerrors.ErrDuplicatePath, path)
	}
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}
	if size == 0 {
		if delErr := srv.store.Delete(ctx, path); delErr != nil {
			srv.log(ctx).Warn("Failed to remove empty stream", slog.String("path", path), slog.Any("error", delErr))
		}

		return nil, domainerrors.ErrNoFiles
	}

	item := &entity.Media{
		ID:        uuid.New(),
		Kind:      entity.MediaKindTrack,
		Path:      path,
		OwnerID:   owner.ID,
		Owner:     owner,
		CreatedAt: now,
	}

	if err := srv.mediaRepo.Create(ctx, item); err != nil {
		srv.discard(ctx, path, err)

		return nil, errors.Wrap(err, "failed to persist streamed track")
	}

	srv.log(ctx).Info("Stream stored", slog.String("path", path), slog.String("size", util.FormatBytes(size)))

	if srv.transcriber != nil && srv.transcriber.Enabled() {
		srv.background.Add(1)
		go srv.transcribeStored(context.WithoutCancel(ctx), item)
	}

	return item, nil
}

// transcribeStored pulls a stored track back to local disk, transcribes it and saves the text.
func (srv *ingestService) transcribeStored(ctx context.Context, item *entity.Media) {
	defer srv.background.Done()

	obj, err := srv.store.Open(ctx, item.Path)
	if err != nil {
		srv.log(ctx).Warn("Transcription skipped, track unreadable", slog.String("path", item.Path), slog.Any("error", err))

		return
	}
	defer obj.Close()

	staged, _, err := srv.stage(usecase.UploadFile{
		Filename: item.Filename(),
		Open:     func() (io.ReadCloser, error) { return io.NopCloser(obj), nil },
	}, filepath.Ext(item.Path))
	if err != nil {
		srv.log(ctx).Warn("Transcription skipped, staging failed", slog.String("path", item.Path), slog.Any("error", err))

		return
	}
	defer os.Remove(staged)

	text := srv.transcribe(ctx, staged, item.Path)
	if text == "" {
		return
	}

	if err := srv.mediaRepo.UpdateTrackDetails(ctx, item.ID, item.Name, text); err != nil {
		srv.log(ctx).Warn("Failed to save transcript", slog.String("path", item.Path), slog.Any("error", err))
	}
}

// objectName is "<ms>[-<index>]<ext>". An index below zero is left out; retries append a
// random suffix.
func objectName(stamp int64, index int, ext string, attempt int) string {
	name := strconv.FormatInt(stamp, 10)
	if index >= 0 {
		name += "-" + strconv.Itoa(index)
	}
	if attempt > 0 {
		name += "-" + uuid.NewString()[:8]
	}

	return name + ext
}

// normalizeExt keeps short alphanumeric extensions and falls back to the kind's default.
// The leading dot is optional on input.
func normalizeExt(ext string, kind entity.MediaKind) string {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))

	valid := ext != "" && len(ext) <= maxExtLen
	for _, r := range ext {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			valid = false

			break
		}
	}

	if valid {
		return "." + ext
	}
	if kind == entity.MediaKindTrack {
		return defaultTrackExt
	}

	return defaultImageExt
}
