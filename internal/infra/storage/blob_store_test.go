package storage

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"album/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBlobStore_PutOpenDelete(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	store := NewBlobStore(bucket, discardLogger())

	key := "uploads/example.com/daniel/1709294400000.jpg"
	n, err := store.Put(ctx, key, strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, int64(10), n)

	obj, err := store.Open(ctx, key)
	require.NoError(t, err)
	body, err := io.ReadAll(obj)
	require.NoError(t, err)
	require.NoError(t, obj.Close())
	assert.Equal(t, "jpeg-bytes", string(body))
	assert.Equal(t, "image/jpeg", obj.ContentType)
	assert.Equal(t, int64(10), obj.Size)

	require.NoError(t, store.Delete(ctx, key))
	_, err = store.Open(ctx, key)
	assert.Equal(t, service.ErrObjectNotFound, err)

	assert.NoError(t, store.Delete(ctx, key), "deleting a missing key is not an error")
}

func TestBlobStore_PutNeverOverwrites(t *testing.T) {
	ctx := context.Background()
	key := "uploads/example.com/daniel/1709294400000.jpg"

	fileBucket, err := fileblob.OpenBucket(t.TempDir(), nil)
	require.NoError(t, err)

	buckets := map[string]*blob.Bucket{
		"memblob":  memblob.OpenBucket(nil),
		"fileblob": fileBucket,
	}

	for name, bucket := range buckets {
		t.Run(name, func(t *testing.T) {
			t.Cleanup(func() { _ = bucket.Close() })
			store := NewBlobStore(bucket, discardLogger())

			_, err := store.Put(ctx, key, strings.NewReader("first"))
			require.NoError(t, err)

			_, err = store.Put(ctx, key, strings.NewReader("second"))
			require.Error(t, err)
			assert.True(t, errors.Is(err, service.ErrObjectExists))

			obj, err := store.Open(ctx, key)
			require.NoError(t, err)
			defer obj.Close()
			body, err := io.ReadAll(obj)
			require.NoError(t, err)
			assert.Equal(t, "first", string(body))
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("client went away") }

func TestBlobStore_FailedPutLeavesNothing(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	store := NewBlobStore(bucket, discardLogger())

	_, err := store.Put(ctx, "uploads/a/b/x.ogg", failingReader{})
	require.Error(t, err)

	_, err = store.Open(ctx, "uploads/a/b/x.ogg")
	assert.Equal(t, service.ErrObjectNotFound, err)
}

func TestBlobStore_EnsureDirectoryOnDisk(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	bucket, err := fileblob.OpenBucket(root, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })
	store := NewBlobStore(bucket, discardLogger())

	require.NoError(t, store.EnsureDirectory(ctx, "uploads/example.com/daniel/"))
	require.NoError(t, store.EnsureDirectory(ctx, "uploads/example.com/daniel"))

	_, err = os.Stat(filepath.Join(root, "uploads", "example.com", "daniel", keepFile))
	assert.NoError(t, err)
}

func TestContentTypeOf(t *testing.T) {
	assert.Equal(t, "image/png", contentTypeOf("a/b/c.PNG"))
	assert.Equal(t, "audio/ogg", contentTypeOf("a/b/c.ogg"))
	assert.Equal(t, "application/octet-stream", contentTypeOf("a/b/c.bin"))
}

func TestPrepareLocalDir(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "album")

	require.NoError(t, prepareLocalDir("file://"+filepath.ToSlash(root)))
	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.NoError(t, prepareLocalDir("mem://"))
}
