package usecase

import (
	"context"

	"album/internal/domain/entity"

	"github.com/google/uuid"
)

// MediaRef addresses one item through its route segments.
type MediaRef struct {
	Kind     entity.MediaKind
	Domain   string
	AgentID  string
	Filename string
}

// Directory returns the owner directory the reference points into.
func (r MediaRef) Directory() string {
	return r.Domain + "/" + r.AgentID
}

// AlbumInput selects one page of an owner's album.
type AlbumInput struct {
	Kind    entity.MediaKind
	Domain  string
	AgentID string
	Page    int
}

// TrackDetailsInput carries editable track fields.
type TrackDetailsInput struct {
	Name       string
	Transcript string
}

// FlagOutput reports what a flag request did.
type FlagOutput struct {
	Outcome entity.FlagOutcome
	Media   *entity.Media
}

// MediaUsecase is the lifecycle engine for images and tracks: publish, flag, like, notes
// and deletion, plus the listings that respect visibility rules.
type MediaUsecase interface {
	Feed(ctx context.Context, page int) (*entity.PageResult[*entity.Media], error)
	Album(ctx context.Context, viewer *entity.Agent, input AlbumInput) (*entity.PageResult[*entity.Media], error)
	FlaggedQueue(ctx context.Context, viewer *entity.Agent, page int) (*entity.PageResult[*entity.Media], error)
	Show(ctx context.Context, viewer *entity.Agent, ref MediaRef) (*entity.Media, error)

	TogglePublish(ctx context.Context, viewer *entity.Agent, ref MediaRef) (*entity.Media, error)
	ToggleFlag(ctx context.Context, viewer *entity.Agent, ref MediaRef) (*FlagOutput, error)
	ToggleLike(ctx context.Context, viewer *entity.Agent, ref MediaRef) (*entity.Media, error)
	UpdateTrackDetails(ctx context.Context, viewer *entity.Agent, ref MediaRef, input TrackDetailsInput) (*entity.Media, error)

	AddNote(ctx context.Context, viewer *entity.Agent, ref MediaRef, text string) (*entity.Note, error)
	DeleteNote(ctx context.Context, viewer *entity.Agent, ref MediaRef, noteID uuid.UUID) error

	Delete(ctx context.Context, viewer *entity.Agent, ref MediaRef) error

	// ShareCode renders a QR code pointing at a public item.
	ShareCode(ctx context.Context, viewer *entity.Agent, ref MediaRef) ([]byte, error)
}
