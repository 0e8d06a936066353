package repository

import (
	"context"
	"errors"
	"time"

	"album/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrMediaNotFound is returned when no media item matches.
	ErrMediaNotFound = errors.New("media not found")
	// ErrNoteNotFound is returned when no note matches.
	ErrNoteNotFound = errors.New("note not found")
)

// MediaRepository defines persistence operations for images and tracks.
// Every mutation is a single write against one record.
type MediaRepository interface {
	// Create persists a new item. A path collision yields domainerrors.ErrDuplicatePath.
	Create(ctx context.Context, media *entity.Media) error

	// FindByPath retrieves an item with owner, flaggers, likes and notes loaded.
	FindByPath(ctx context.Context, path string) (*entity.Media, error)

	// ListByOwner lists an owner's items of one kind, newest first.
	ListByOwner(ctx context.Context, kind entity.MediaKind, ownerID uuid.UUID, includeFlagged bool, page entity.Page) ([]*entity.Media, int64, error)

	// ListPublished lists published, unflagged items of every kind ordered by publish time.
	ListPublished(ctx context.Context, page entity.Page) ([]*entity.Media, int64, error)

	// ListFlagged lists flagged items. A nil ownerIDs means every owner.
	ListFlagged(ctx context.Context, ownerIDs []uuid.UUID, page entity.Page) ([]*entity.Media, int64, error)

	// SetPublished sets or clears the publish timestamp.
	SetPublished(ctx context.Context, id uuid.UUID, at *time.Time) error

	// SetFlagged raises or clears the flag without touching the flagger history.
	SetFlagged(ctx context.Context, id uuid.UUID, flagged bool) error

	// AddFlagger records agentID as a flagger. Recording the same agent twice is a no-op.
	AddFlagger(ctx context.Context, id, agentID uuid.UUID) error

	// AddLike and RemoveLike toggle agentID in the likes set.
	AddLike(ctx context.Context, id, agentID uuid.UUID) error
	RemoveLike(ctx context.Context, id, agentID uuid.UUID) error

	// UpdateTrackDetails saves a track's name and transcript.
	UpdateTrackDetails(ctx context.Context, id uuid.UUID, name, transcript string) error

	// AddNote appends a note. Blank text is rejected with domainerrors.ErrEmptyNote.
	AddNote(ctx context.Context, note *entity.Note) error

	// DeleteNote removes a single note from an item.
	DeleteNote(ctx context.Context, mediaID, noteID uuid.UUID) error

	// Delete removes the item and its flaggers, likes and notes.
	Delete(ctx context.Context, id uuid.UUID) error
}
