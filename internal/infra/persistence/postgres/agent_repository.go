// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"album/internal/domain/entity"
	domainerrors "album/internal/domain/errors"
	"album/internal/domain/repository"
	"album/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// agentRepository implements the repository.AgentRepository interface.
type agentRepository struct {
	db *gorm.DB
}

// NewAgentRepository is the constructor for agentRepository.
func NewAgentRepository(db *gorm.DB) repository.AgentRepository {
	return &agentRepository{
		db: db,
	}
}

// FindByID always reads from the primary so a grant made in the previous request is visible.
func (repo *agentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Agent, error) {
	var agentM model.AgentModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Preload("Grants").
		Where("id = ?", id).
		First(&agentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAgentNotFound
		}

		return nil, errors.Wrap(err, "failed to find agent by id")
	}

	return toAgentDomain(&agentM), nil
}

func (repo *agentRepository) FindByEmail(ctx context.Context, email string) (*entity.Agent, error) {
	return repo.findOne(ctx, "email = ?", email)
}

func (repo *agentRepository) FindByResetToken(ctx context.Context, token string) (*entity.Agent, error) {
	return repo.findOne(ctx, "reset_token = ?", token)
}

func (repo *agentRepository) findOne(ctx context.Context, query string, arg any) (*entity.Agent, error) {
	var agentM model.AgentModel

	if err := repo.db.WithContext(ctx).
		Preload("Grants").
		Where(query, arg).
		First(&agentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAgentNotFound
		}

		return nil, errors.Wrap(err, "failed to find agent")
	}

	return toAgentDomain(&agentM), nil
}

// FindByIDs returns the agents in ids, skipping unknown IDs.
func (repo *agentRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Agent, error) {
	if len(ids) == 0 {
		return []*entity.Agent{}, nil
	}

	var agentMs []model.AgentModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&agentMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find agents by ids")
	}

	return toAgentDomains(agentMs), nil
}

// FindReaders lists the agents that were granted read access to targetID.
func (repo *agentRepository) FindReaders(ctx context.Context, targetID uuid.UUID) ([]*entity.Agent, error) {
	var agentMs []model.AgentModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN agent_grants ON agent_grants.agent_id = agents.id").
		Where("agent_grants.target_id = ?", targetID).
		Order("agents.email").
		Find(&agentMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find readers")
	}

	return toAgentDomains(agentMs), nil
}

func (repo *agentRepository) List(ctx context.Context) ([]*entity.Agent, error) {
	var agentMs []model.AgentModel

	if err := repo.db.WithContext(ctx).
		Preload("Grants").
		Order("email").
		Find(&agentMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list agents")
	}

	return toAgentDomains(agentMs), nil
}

// Create persists a new agent. Grants are written separately through AddGrant.
func (repo *agentRepository) Create(ctx context.Context, agent *entity.Agent) error {
	agentM := fromAgentDomain(agent)

	if err := repo.db.WithContext(ctx).Omit("Grants").Create(agentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAgentAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required agent information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create agent")
	}

	agent.CreatedAt = agentM.CreatedAt
	agent.UpdatedAt = agentM.UpdatedAt

	return nil
}

// Update writes every column so cleared reset tokens are persisted as NULL.
func (repo *agentRepository) Update(ctx context.Context, agent *entity.Agent) error {
	agentM := fromAgentDomain(agent)

	result := repo.db.WithContext(ctx).
		Model(&model.AgentModel{}).
		Where("id = ?", agent.ID).
		Updates(map[string]any{
			"password_hash": agentM.PasswordHash,
			"name":          agentM.Name,
			"given_name":    agentM.GivenName,
			"family_name":   agentM.FamilyName,
			"picture":       agentM.Picture,
			"locale":        agentM.Locale,
			"provider_id":   agentM.ProviderID,
			"reset_token":   agentM.ResetToken,
			"reset_expires": agentM.ResetExpires,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("reset token collision")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update agent")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAgentNotFound
	}

	return nil
}

// AddGrant records that agentID may read targetID's directory.
func (repo *agentRepository) AddGrant(ctx context.Context, agentID, targetID uuid.UUID) error {
	grantM := &model.AgentGrantModel{AgentID: agentID, TargetID: targetID}

	if err := repo.db.WithContext(ctx).Omit("Target").Create(grantM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateGrant
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAgentNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add grant")
	}

	return nil
}

func (repo *agentRepository) RemoveGrant(ctx context.Context, agentID, targetID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("agent_id = ? AND target_id = ?", agentID, targetID).
		Delete(&model.AgentGrantModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove grant")
	}

	return nil
}

// toAgentDomain converts a GORM AgentModel to a domain Agent entity.
func toAgentDomain(data *model.AgentModel) *entity.Agent {
	if data == nil {
		return nil
	}

	canRead := make([]uuid.UUID, 0, len(data.Grants))
	for _, g := range data.Grants {
		canRead = append(canRead, g.TargetID)
	}

	agent := &entity.Agent{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Name:         data.Name,
		GivenName:    data.GivenName,
		FamilyName:   data.FamilyName,
		Picture:      data.Picture,
		Locale:       data.Locale,
		ProviderID:   data.ProviderID,
		CanRead:      canRead,
		ResetExpires: data.ResetExpires,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
	if data.ResetToken != nil {
		agent.ResetToken = *data.ResetToken
	}

	return agent
}

func toAgentDomains(data []model.AgentModel) []*entity.Agent {
	agents := make([]*entity.Agent, 0, len(data))
	for i := range data {
		agents = append(agents, toAgentDomain(&data[i]))
	}

	return agents
}

// fromAgentDomain converts a domain Agent entity to a GORM AgentModel for persistence.
func fromAgentDomain(data *entity.Agent) *model.AgentModel {
	if data == nil {
		return nil
	}

	agentM := &model.AgentModel{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Name:         data.Name,
		GivenName:    data.GivenName,
		FamilyName:   data.FamilyName,
		Picture:      data.Picture,
		Locale:       data.Locale,
		ProviderID:   data.ProviderID,
		ResetExpires: data.ResetExpires,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
	// Empty tokens are stored as NULL so the unique index ignores them.
	if data.ResetToken != "" {
		token := data.ResetToken
		agentM.ResetToken = &token
	}

	return agentM
}
