package usecase

import (
	"context"
	"io"

	"album/internal/domain/entity"
)

// UploadFile is one file of a multi-file upload. Open is called once, when the file's
// turn in the queue comes up.
type UploadFile struct {
	Filename string
	Open     func() (io.ReadCloser, error)
}

// StreamInput describes a raw byte-stream upload.
type StreamInput struct {
	Body io.Reader
	// Extension of the produced file, e.g. ".ogg". Defaults to the track default.
	Extension string
}

// IngestUsecase moves uploaded bytes into owner directories and records metadata.
type IngestUsecase interface {
	// Upload processes files strictly in order. Processing stops at the first failure;
	// items committed before the failure stay in place.
	Upload(ctx context.Context, owner *entity.Agent, kind entity.MediaKind, files []UploadFile) ([]*entity.Media, error)

	// UploadStream writes a raw audio stream straight to its destination and records the
	// track once the stream completes. Transcription runs in the background.
	UploadStream(ctx context.Context, owner *entity.Agent, input StreamInput) (*entity.Media, error)
}
