package service

import (
	"context"
	"errors"
	"io"
	"time"
)

var (
	// ErrObjectNotFound is returned by MediaStore when a key does not exist.
	ErrObjectNotFound = errors.New("object not found")
	// ErrObjectExists is returned by Put when key is already taken. The stored object is untouched.
	ErrObjectExists = errors.New("object already exists")
)

// StoredObject is an open handle on stored bytes. Callers must Close it.
type StoredObject struct {
	io.ReadCloser
	ContentType string
	Size        int64
	ModTime     time.Time
}

// MediaStore is durable storage for media bytes, addressed by slash-separated keys
// such as "uploads/example.com/daniel/1700000000000.jpg".
type MediaStore interface {
	// Put streams r to a new key and returns the number of bytes written. The object only
	// becomes visible once the whole stream has been written. Put never overwrites: an
	// existing key fails with ErrObjectExists.
	Put(ctx context.Context, key string, r io.Reader) (int64, error)

	// Open returns the object stored at key or ErrObjectNotFound.
	Open(ctx context.Context, key string) (*StoredObject, error)

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// EnsureDirectory makes sure the directory prefix exists.
	EnsureDirectory(ctx context.Context, dir string) error
}
