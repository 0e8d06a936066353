package postgres

import (
	"context"
	"strings"
	"time"

	"album/internal/domain/entity"
	domainerrors "album/internal/domain/errors"
	"album/internal/domain/repository"
	"album/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// mediaRepository implements the repository.MediaRepository interface.
type mediaRepository struct {
	db *gorm.DB
}

// NewMediaRepository is the constructor for mediaRepository.
func NewMediaRepository(db *gorm.DB) repository.MediaRepository {
	return &mediaRepository{
		db: db,
	}
}

// withAssociations preloads everything a rendered item needs.
func withAssociations(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Owner").
		Preload("Flaggers").
		Preload("Likes").
		Preload("Notes", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Notes.Author")
}

func (repo *mediaRepository) Create(ctx context.Context, media *entity.Media) error {
	mediaM := fromMediaDomain(media)

	if err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(mediaM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicatePath.WrapMessage(media.Path)
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAgentNotFound.WrapMessage("invalid owner reference")
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required media information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create media")
	}

	media.CreatedAt = mediaM.CreatedAt
	media.UpdatedAt = mediaM.UpdatedAt

	return nil
}

// FindByPath reads from the primary because its result usually drives a mutation.
func (repo *mediaRepository) FindByPath(ctx context.Context, path string) (*entity.Media, error) {
	var mediaM model.MediaModel

	if err := withAssociations(repo.db.WithContext(ctx).Clauses(dbresolver.Write)).
		Where("path = ?", path).
		First(&mediaM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMediaNotFound
		}

		return nil, errors.Wrap(err, "failed to find media by path")
	}

	return toMediaDomain(&mediaM), nil
}

// ListByOwner lists newest first.
func (repo *mediaRepository) ListByOwner(ctx context.Context, kind entity.MediaKind, ownerID uuid.UUID, includeFlagged bool, page entity.Page) ([]*entity.Media, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.MediaModel{}).
		Where("kind = ? AND owner_id = ?", kind.String(), ownerID)
	if !includeFlagged {
		query = query.Where("flagged = ?", false)
	}

	return repo.listPage(query, "created_at DESC", page)
}

func (repo *mediaRepository) ListPublished(ctx context.Context, page entity.Page) ([]*entity.Media, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.MediaModel{}).
		Where("published_at IS NOT NULL AND flagged = ?", false)

	return repo.listPage(query, "published_at DESC", page)
}

func (repo *mediaRepository) ListFlagged(ctx context.Context, ownerIDs []uuid.UUID, page entity.Page) ([]*entity.Media, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.MediaModel{}).
		Where("flagged = ?", true)
	if ownerIDs != nil {
		if len(ownerIDs) == 0 {
			return []*entity.Media{}, 0, nil
		}
		query = query.Where("owner_id IN ?", ownerIDs)
	}

	return repo.listPage(query, "created_at DESC", page)
}

func (repo *mediaRepository) listPage(query *gorm.DB, order string, page entity.Page) ([]*entity.Media, int64, error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count media")
	}

	var mediaMs []model.MediaModel
	if err := withAssociations(query).
		Order(order).
		Order("path").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&mediaMs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list media")
	}

	items := make([]*entity.Media, 0, len(mediaMs))
	for i := range mediaMs {
		items = append(items, toMediaDomain(&mediaMs[i]))
	}

	return items, total, nil
}

func (repo *mediaRepository) SetPublished(ctx context.Context, id uuid.UUID, at *time.Time) error {
	return repo.update(ctx, id, map[string]any{"published_at": at})
}

func (repo *mediaRepository) SetFlagged(ctx context.Context, id uuid.UUID, flagged bool) error {
	return repo.update(ctx, id, map[string]any{"flagged": flagged})
}

func (repo *mediaRepository) UpdateTrackDetails(ctx context.Context, id uuid.UUID, name, transcript string) error {
	return repo.update(ctx, id, map[string]any{"name": name, "transcript": transcript})
}

func (repo *mediaRepository) update(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	fields["updated_at"] = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.MediaModel{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update media")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMediaNotFound
	}

	return nil
}

// AddFlagger ignores a repeated flag from the same agent.
func (repo *mediaRepository) AddFlagger(ctx context.Context, id, agentID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.MediaFlaggerModel{MediaID: id, AgentID: agentID}).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrMediaNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add flagger")
	}

	return nil
}

func (repo *mediaRepository) AddLike(ctx context.Context, id, agentID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.MediaLikeModel{MediaID: id, AgentID: agentID}).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrMediaNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add like")
	}

	return nil
}

func (repo *mediaRepository) RemoveLike(ctx context.Context, id, agentID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("media_id = ? AND agent_id = ?", id, agentID).
		Delete(&model.MediaLikeModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove like")
	}

	return nil
}

func (repo *mediaRepository) AddNote(ctx context.Context, note *entity.Note) error {
	if strings.TrimSpace(note.Text) == "" {
		return domainerrors.ErrEmptyNote
	}

	noteM := &model.NoteModel{
		ID:        note.ID,
		MediaID:   note.MediaID,
		AuthorID:  note.AuthorID,
		Text:      note.Text,
		CreatedAt: note.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Omit("Author").Create(noteM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrMediaNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add note")
	}

	note.CreatedAt = noteM.CreatedAt

	return nil
}

func (repo *mediaRepository) DeleteNote(ctx context.Context, mediaID, noteID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND media_id = ?", noteID, mediaID).
		Delete(&model.NoteModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete note")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNoteNotFound
	}

	return nil
}

// Delete removes the item together with its flaggers, likes and notes.
func (repo *mediaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, child := range []any{&model.NoteModel{}, &model.MediaFlaggerModel{}, &model.MediaLikeModel{}} {
			if err := tx.Where("media_id = ?", id).Delete(child).Error; err != nil {
				return domainerrors.NewDatabaseExecuteError(err, "failed to delete media children")
			}
		}

		result := tx.Where("id = ?", id).Delete(&model.MediaModel{})
		if result.Error != nil {
			return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete media")
		}

		if result.RowsAffected == 0 {
			return repository.ErrMediaNotFound
		}

		return nil
	})
}

// toMediaDomain converts a GORM MediaModel to a domain Media entity.
func toMediaDomain(data *model.MediaModel) *entity.Media {
	if data == nil {
		return nil
	}

	media := &entity.Media{
		ID:          data.ID,
		Kind:        entity.MediaKind(data.Kind),
		Path:        data.Path,
		OwnerID:     data.OwnerID,
		Owner:       toAgentDomain(data.Owner),
		Name:        data.Name,
		Transcript:  data.Transcript,
		PublishedAt: data.PublishedAt,
		Flagged:     data.Flagged,
		Flaggers:    make([]uuid.UUID, 0, len(data.Flaggers)),
		Likes:       make([]uuid.UUID, 0, len(data.Likes)),
		Notes:       make([]*entity.Note, 0, len(data.Notes)),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	for _, f := range data.Flaggers {
		media.Flaggers = append(media.Flaggers, f.AgentID)
	}
	for _, l := range data.Likes {
		media.Likes = append(media.Likes, l.AgentID)
	}
	for _, n := range data.Notes {
		media.Notes = append(media.Notes, &entity.Note{
			ID:        n.ID,
			MediaID:   n.MediaID,
			AuthorID:  n.AuthorID,
			Author:    toAgentDomain(n.Author),
			Text:      n.Text,
			CreatedAt: n.CreatedAt,
		})
	}

	return media
}

// fromMediaDomain converts the scalar fields of a Media entity; sets are written through their own methods.
func fromMediaDomain(data *entity.Media) *model.MediaModel {
	if data == nil {
		return nil
	}

	return &model.MediaModel{
		ID:          data.ID,
		Kind:        data.Kind.String(),
		Path:        data.Path,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Transcript:  data.Transcript,
		PublishedAt: data.PublishedAt,
		Flagged:     data.Flagged,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
