package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rafabene/poemario-backend/internal/domain/entities"
	"github.com/rafabene/poemario-backend/internal/domain/repositories"
	"github.com/rafabene/poemario-backend/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	user.ID = model.ID
	user.CreatedAt = time.Unix(model.CreatedAt, 0)
	user.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	var model UserModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var model UserModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	db := dbFromContext(ctx, r.db)
	return db.Save(model).Error
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)
	return db.Delete(&UserModel{}, "id = ?", id).Error
}

func (r *UserRepository) List(ctx context.Context, page repositories.Pagination) ([]*entities.User, error) {
	var models []*UserModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&UserModel{}).
		Order(page.SortField + " " + string(page.Direction)).
		Limit(page.Limit).
		Offset(page.Offset)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	db := dbFromContext(ctx, r.db)
	err := db.Model(&UserModel{}).Count(&count).Error
	return count, err
}

// Conversores
func (r *UserRepository) toModel(user *entities.User) *UserModel {
	var lockedAt *int64
	if user.LockedAt != nil {
		ts := user.LockedAt.Unix()
		lockedAt = &ts
	}

	roles := make([]string, len(user.Roles))
	for i, role := range user.Roles {
		roles[i] = string(role)
	}

	return &UserModel{
		ID:                  user.ID,
		Email:               user.Email.String(),
		Pseudo:              user.Pseudo,
		PasswordHash:        user.PasswordHash,
		MoodColor:           string(user.MoodColor),
		TotemID:             user.TotemID,
		Roles:               strings.Join(roles, ","),
		FailedLoginAttempts: user.FailedLoginAttempts,
		LockedAt:            lockedAt,
		CreatedAt:           user.CreatedAt.Unix(),
		UpdatedAt:           user.UpdatedAt.Unix(),
	}
}

func (r *UserRepository) toEntity(model *UserModel) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	var lockedAt *time.Time
	if model.LockedAt != nil {
		ts := time.Unix(*model.LockedAt, 0)
		lockedAt = &ts
	}

	var roles []entities.Role
	for _, role := range strings.Split(model.Roles, ",") {
		if role != "" {
			roles = append(roles, entities.Role(role))
		}
	}

	return &entities.User{
		ID:                  model.ID,
		Email:               email,
		Pseudo:              model.Pseudo,
		PasswordHash:        model.PasswordHash,
		MoodColor:           entities.MoodColor(model.MoodColor),
		TotemID:             model.TotemID,
		Roles:               roles,
		FailedLoginAttempts: model.FailedLoginAttempts,
		LockedAt:            lockedAt,
		CreatedAt:           time.Unix(model.CreatedAt, 0),
		UpdatedAt:           time.Unix(model.UpdatedAt, 0),
	}, nil
}

func (r *UserRepository) toEntities(models []*UserModel) ([]*entities.User, error) {
	users := make([]*entities.User, 0, len(models))

	for _, model := range models {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		users = append(users, entity)
	}

	return users, nil
}
