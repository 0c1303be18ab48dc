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

// TotemRepository implementa repositories.TotemRepository
type TotemRepository struct {
	db *gorm.DB
}

// NewTotemRepository cria um novo TotemRepository
func NewTotemRepository(db *gorm.DB) repositories.TotemRepository {
	return &TotemRepository{db: db}
}

func (r *TotemRepository) Create(ctx context.Context, totem *entities.Totem) error {
	model := r.toModel(totem)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	totem.ID = model.ID
	totem.CreatedAt = time.Unix(model.CreatedAt, 0)
	totem.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *TotemRepository) FindByID(ctx context.Context, id string) (*entities.Totem, error) {
	var model TotemModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *TotemRepository) FindByKey(ctx context.Context, key string) (*entities.Totem, error) {
	var model TotemModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("key = ?", key).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *TotemRepository) Update(ctx context.Context, totem *entities.Totem) error {
	model := r.toModel(totem)

	db := dbFromContext(ctx, r.db)
	return db.Save(model).Error
}

func (r *TotemRepository) Delete(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)
	return db.Delete(&TotemModel{}, "id = ?", id).Error
}

func (r *TotemRepository) List(ctx context.Context) ([]*entities.Totem, error) {
	var models []*TotemModel

	db := dbFromContext(ctx, r.db)
	if err := db.Order("key asc").Find(&models).Error; err != nil {
		return nil, err
	}

	totems := make([]*entities.Totem, 0, len(models))
	for _, model := range models {
		totems = append(totems, r.toEntity(model))
	}
	return totems, nil
}

func (r *TotemRepository) CountUsers(ctx context.Context, totemID string) (int64, error) {
	var count int64
	db := dbFromContext(ctx, r.db)
	err := db.Model(&UserModel{}).Where("totem_id = ?", totemID).Count(&count).Error
	return count, err
}

// Conversores
func (r *TotemRepository) toModel(totem *entities.Totem) *TotemModel {
	return &TotemModel{
		ID:          totem.ID,
		Key:         totem.Key,
		Name:        totem.Name,
		Description: totem.Description,
		PictureURL:  totem.PictureURL,
		CreatedAt:   totem.CreatedAt.Unix(),
		UpdatedAt:   totem.UpdatedAt.Unix(),
	}
}

func (r *TotemRepository) toEntity(model *TotemModel) *entities.Totem {
	return &entities.Totem{
		ID:          model.ID,
		Key:         model.Key,
		Name:        model.Name,
		Description: model.Description,
		PictureURL:  model.PictureURL,
		CreatedAt:   time.Unix(model.CreatedAt, 0),
		UpdatedAt:   time.Unix(model.UpdatedAt, 0),
	}
}
