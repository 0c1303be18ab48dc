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

// RewardRepository implementa repositories.RewardRepository
type RewardRepository struct {
	db *gorm.DB
}

// NewRewardRepository cria um novo RewardRepository
func NewRewardRepository(db *gorm.DB) repositories.RewardRepository {
	return &RewardRepository{db: db}
}

func (r *RewardRepository) Create(ctx context.Context, reward *entities.Reward) error {
	model := r.toModel(reward)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	reward.ID = model.ID
	reward.CreatedAt = time.Unix(model.CreatedAt, 0)
	reward.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *RewardRepository) FindByID(ctx context.Context, id string) (*entities.Reward, error) {
	var model RewardModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *RewardRepository) FindByName(ctx context.Context, name string) (*entities.Reward, error) {
	var model RewardModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *RewardRepository) Update(ctx context.Context, reward *entities.Reward) error {
	model := r.toModel(reward)

	db := dbFromContext(ctx, r.db)
	return db.Save(model).Error
}

func (r *RewardRepository) Delete(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)
	return db.Delete(&RewardModel{}, "id = ?", id).Error
}

func (r *RewardRepository) List(ctx context.Context) ([]*entities.Reward, error) {
	var models []*RewardModel

	db := dbFromContext(ctx, r.db)
	if err := db.Order("name asc").Find(&models).Error; err != nil {
		return nil, err
	}

	rewards := make([]*entities.Reward, 0, len(models))
	for _, model := range models {
		rewards = append(rewards, r.toEntity(model))
	}
	return rewards, nil
}

func (r *RewardRepository) Grant(ctx context.Context, link *entities.UserReward) error {
	model := &UserRewardModel{
		ID:       link.ID,
		UserID:   link.UserID,
		RewardID: link.RewardID,
	}
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	link.ID = model.ID
	link.GrantedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

func (r *RewardRepository) Revoke(ctx context.Context, userID, rewardID string) error {
	db := dbFromContext(ctx, r.db)
	return db.Delete(&UserRewardModel{}, "user_id = ? AND reward_id = ?", userID, rewardID).Error
}

func (r *RewardRepository) FindGrant(ctx context.Context, userID, rewardID string) (*entities.UserReward, error) {
	var model UserRewardModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("user_id = ? AND reward_id = ?", userID, rewardID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toGrant(&model), nil
}

func (r *RewardRepository) ListGrantsByUser(ctx context.Context, userID string) ([]*entities.UserReward, error) {
	var models []*UserRewardModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("user_id = ?", userID).Find(&models).Error; err != nil {
		return nil, err
	}

	links := make([]*entities.UserReward, 0, len(models))
	for _, model := range models {
		links = append(links, r.toGrant(model))
	}
	return links, nil
}

func (r *RewardRepository) CountGrantsByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	db := dbFromContext(ctx, r.db)
	err := db.Model(&UserRewardModel{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *RewardRepository) CountGrantsByReward(ctx context.Context, rewardID string) (int64, error) {
	var count int64
	db := dbFromContext(ctx, r.db)
	err := db.Model(&UserRewardModel{}).Where("reward_id = ?", rewardID).Count(&count).Error
	return count, err
}

// Conversores
func (r *RewardRepository) toModel(reward *entities.Reward) *RewardModel {
	return &RewardModel{
		ID:          reward.ID,
		Name:        reward.Name,
		Description: reward.Description,
		CreatedAt:   reward.CreatedAt.Unix(),
		UpdatedAt:   reward.UpdatedAt.Unix(),
	}
}

func (r *RewardRepository) toEntity(model *RewardModel) *entities.Reward {
	return &entities.Reward{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		CreatedAt:   time.Unix(model.CreatedAt, 0),
		UpdatedAt:   time.Unix(model.UpdatedAt, 0),
	}
}

func (r *RewardRepository) toGrant(model *UserRewardModel) *entities.UserReward {
	return &entities.UserReward{
		ID:        model.ID,
		UserID:    model.UserID,
		RewardID:  model.RewardID,
		GrantedAt: time.Unix(model.CreatedAt, 0),
	}
}
