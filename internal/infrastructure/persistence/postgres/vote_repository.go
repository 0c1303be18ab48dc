package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rafabene/poemario-backend/internal/domain/entities"
	"github.com/rafabene/poemario-backend/internal/domain/repositories"
)

// VoteRepository implementa repositories.VoteRepository
type VoteRepository struct {
	db *gorm.DB
}

// NewVoteRepository cria um novo VoteRepository
func NewVoteRepository(db *gorm.DB) repositories.VoteRepository {
	return &VoteRepository{db: db}
}

func (r *VoteRepository) Create(ctx context.Context, vote *entities.FeatherVote) error {
	model := r.toModel(vote)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	db := dbFromContext(ctx, r.db)
	if err := db.Omit("Poem").Create(model).Error; err != nil {
		return err
	}

	vote.ID = model.ID
	vote.CreatedAt = time.UnixMilli(model.CreatedAt)
	vote.UpdatedAt = time.UnixMilli(model.UpdatedAt)
	return nil
}

func (r *VoteRepository) FindByID(ctx context.Context, id string) (*entities.FeatherVote, error) {
	var model FeatherVoteModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *VoteRepository) FindByVoterAndPoem(ctx context.Context, voterID, poemID string) (*entities.FeatherVote, error) {
	var model FeatherVoteModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("voter_id = ? AND poem_id = ?", voterID, poemID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *VoteRepository) Update(ctx context.Context, vote *entities.FeatherVote) error {
	db := dbFromContext(ctx, r.db)

	// Save com UpdatedAt zerado deixaria o autoUpdateTime reescrever o campo;
	// atualizar colunas explícitas preserva o CreatedAt original
	err := db.Model(&FeatherVoteModel{}).
		Where("id = ?", vote.ID).
		Update("feather_type", string(vote.FeatherType)).Error
	if err != nil {
		return err
	}

	vote.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *VoteRepository) Delete(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)
	return db.Delete(&FeatherVoteModel{}, "id = ?", id).Error
}

func (r *VoteRepository) List(ctx context.Context, page repositories.Pagination) ([]*entities.FeatherVote, error) {
	var models []*FeatherVoteModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&FeatherVoteModel{}).
		Order(page.SortField + " " + string(page.Direction)).
		Limit(page.Limit).
		Offset(page.Offset)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *VoteRepository) ListAll(ctx context.Context) ([]*entities.FeatherVote, error) {
	var models []*FeatherVoteModel

	db := dbFromContext(ctx, r.db)
	if err := db.Order("updated_at desc").Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *VoteRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	db := dbFromContext(ctx, r.db)
	err := db.Model(&FeatherVoteModel{}).Count(&count).Error
	return count, err
}

func (r *VoteRepository) ListByPoem(ctx context.Context, poemID string, page repositories.Pagination) ([]*entities.FeatherVote, error) {
	var models []*FeatherVoteModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&FeatherVoteModel{}).
		Where("poem_id = ?", poemID).
		Order(page.SortField + " " + string(page.Direction)).
		Limit(page.Limit).
		Offset(page.Offset)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *VoteRepository) ListAllByPoem(ctx context.Context, poemID string) ([]*entities.FeatherVote, error) {
	var models []*FeatherVoteModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("poem_id = ?", poemID).Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *VoteRepository) CountByPoem(ctx context.Context, poemID string) (int64, error) {
	var count int64
	db := dbFromContext(ctx, r.db)
	err := db.Model(&FeatherVoteModel{}).Where("poem_id = ?", poemID).Count(&count).Error
	return count, err
}

func (r *VoteRepository) ListByVoter(ctx context.Context, voterID string, page repositories.Pagination) ([]*entities.FeatherVote, error) {
	var models []*FeatherVoteModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&FeatherVoteModel{}).
		Where("voter_id = ?", voterID).
		Order(page.SortField + " " + string(page.Direction)).
		Limit(page.Limit).
		Offset(page.Offset)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *VoteRepository) ListAllByVoter(ctx context.Context, voterID string) ([]*entities.FeatherVote, error) {
	var models []*FeatherVoteModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("voter_id = ?", voterID).Order("updated_at desc").Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *VoteRepository) CountByVoter(ctx context.Context, voterID string) (int64, error) {
	var count int64
	db := dbFromContext(ctx, r.db)
	err := db.Model(&FeatherVoteModel{}).Where("voter_id = ?", voterID).Count(&count).Error
	return count, err
}

// Conversores
func (r *VoteRepository) toModel(vote *entities.FeatherVote) *FeatherVoteModel {
	return &FeatherVoteModel{
		ID:          vote.ID,
		VoterID:     vote.VoterID,
		PoemID:      vote.PoemID,
		FeatherType: string(vote.FeatherType),
		CreatedAt:   vote.CreatedAt.UnixMilli(),
		UpdatedAt:   vote.UpdatedAt.UnixMilli(),
	}
}

func (r *VoteRepository) toEntity(model *FeatherVoteModel) *entities.FeatherVote {
	return &entities.FeatherVote{
		ID:          model.ID,
		VoterID:     model.VoterID,
		PoemID:      model.PoemID,
		FeatherType: entities.FeatherType(model.FeatherType),
		CreatedAt:   time.UnixMilli(model.CreatedAt),
		UpdatedAt:   time.UnixMilli(model.UpdatedAt),
	}
}

func (r *VoteRepository) toEntities(models []*FeatherVoteModel) []*entities.FeatherVote {
	votes := make([]*entities.FeatherVote, 0, len(models))
	for _, model := range models {
		votes = append(votes, r.toEntity(model))
	}
	return votes
}
