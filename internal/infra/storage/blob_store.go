// Package storage keeps media bytes in a gocloud.dev bucket (local directory, memory, or cloud).
package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path"
	"strings"

	"album/config"
	"album/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

// keepFile marks a directory that exists but holds no media yet.
const keepFile = ".keep"

// Params defines the parameters required for the media store
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type blobStore struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// New opens the configured bucket and closes it when the app stops.
func New(params Params) (service.MediaStore, error) {
	bucketURL := params.Config.Storage.BucketURL
	if err := prepareLocalDir(bucketURL); err != nil {
		return nil, err
	}

	bucket, err := blob.OpenBucket(context.Background(), bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Media store ready", slog.String("bucket", bucketURL))

	return NewBlobStore(bucket, params.Logger), nil
}

// NewBlobStore wraps an already opened bucket.
func NewBlobStore(bucket *blob.Bucket, logger *slog.Logger) service.MediaStore {
	return &blobStore{bucket: bucket, logger: logger}
}

// prepareLocalDir creates the root of a file:// bucket; fileblob refuses a missing directory.
func prepareLocalDir(bucketURL string) error {
	u, err := url.Parse(bucketURL)
	if err != nil {
		return errors.Wrap(err, "invalid bucket url")
	}

	if u.Scheme != "file" || u.Path == "" {
		return nil
	}

	if err := os.MkdirAll(u.Path, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create storage root %s", u.Path)
	}

	return nil
}

// Put streams r into a new key. The object is committed on Close, so a failed copy leaves
// nothing behind, and an existing object at key is never replaced.
func (s *blobStore) Put(ctx context.Context, key string, r io.Reader) (int64, error) {
	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := s.bucket.NewWriter(writeCtx, key, &blob.WriterOptions{
		ContentType: contentTypeOf(key),
		IfNotExist:  true,
	})
	if err != nil {
		return 0, putError(err, "failed to open writer for %s", key)
	}

	n, err := io.Copy(w, r)
	if err != nil {
		// Cancelling before Close aborts the write.
		cancel()
		_ = w.Close()

		return 0, putError(err, "failed to write %s", key)
	}

	if err := w.Close(); err != nil {
		return 0, putError(err, "failed to commit %s", key)
	}

	return n, nil
}

// putError maps the failed IfNotExist precondition, which drivers report from Write or Close.
func putError(err error, format, key string) error {
	if gcerrors.Code(err) == gcerrors.FailedPrecondition {
		return errors.Wrap(service.ErrObjectExists, key)
	}

	return errors.Wrapf(err, format, key)
}

func (s *blobStore) Open(ctx context.Context, key string) (*service.StoredObject, error) {
	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrObjectNotFound
		}

		return nil, errors.Wrapf(err, "failed to open %s", key)
	}

	return &service.StoredObject{
		ReadCloser:  r,
		ContentType: r.ContentType(),
		Size:        r.Size(),
		ModTime:     r.ModTime(),
	}, nil
}

func (s *blobStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}

// EnsureDirectory writes a marker object so empty directories are listed.
func (s *blobStore) EnsureDirectory(ctx context.Context, dir string) error {
	key := path.Join(strings.Trim(dir, "/"), keepFile)

	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return errors.Wrapf(err, "failed to check %s", key)
	}
	if exists {
		return nil
	}

	if err := s.bucket.WriteAll(ctx, key, nil, nil); err != nil {
		return errors.Wrapf(err, "failed to create %s", key)
	}

	s.logger.Debug("Directory created", slog.String("dir", dir))

	return nil
}

var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".ogg":  "audio/ogg",
	".oga":  "audio/ogg",
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".webm": "audio/webm",
	".m4a":  "audio/mp4",
}

// contentTypeOf maps the key's extension; unknown extensions are served as octet streams.
func contentTypeOf(key string) string {
	if ct, ok := contentTypes[strings.ToLower(path.Ext(key))]; ok {
		return ct
	}

	return "application/octet-stream"
}
