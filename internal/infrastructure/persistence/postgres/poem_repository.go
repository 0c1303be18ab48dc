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

// PoemRepository implementa repositories.PoemRepository
type PoemRepository struct {
	db *gorm.DB
}

// NewPoemRepository cria um novo PoemRepository
func NewPoemRepository(db *gorm.DB) repositories.PoemRepository {
	return &PoemRepository{db: db}
}

func (r *PoemRepository) Create(ctx context.Context, poem *entities.Poem) error {
	model := r.toModel(poem)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	poem.ID = model.ID
	poem.CreatedAt = time.Unix(model.CreatedAt, 0)
	poem.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *PoemRepository) FindByID(ctx context.Context, id string) (*entities.Poem, error) {
	var model PoemModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *PoemRepository) Update(ctx context.Context, poem *entities.Poem) error {
	model := r.toModel(poem)

	db := dbFromContext(ctx, r.db)
	return db.Save(model).Error
}

func (r *PoemRepository) Delete(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)
	return db.Delete(&PoemModel{}, "id = ?", id).Error
}

func (r *PoemRepository) List(ctx context.Context, page repositories.Pagination) ([]*entities.Poem, error) {
	var models []*PoemModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&PoemModel{}).
		Order(page.SortField + " " + string(page.Direction)).
		Limit(page.Limit).
		Offset(page.Offset)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *PoemRepository) ListAll(ctx context.Context) ([]*entities.Poem, error) {
	var models []*PoemModel

	db := dbFromContext(ctx, r.db)
	if err := db.Order("created_at desc").Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *PoemRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	db := dbFromContext(ctx, r.db)
	err := db.Model(&PoemModel{}).Count(&count).Error
	return count, err
}

func (r *PoemRepository) ListByAuthor(ctx context.Context, authorID string, page repositories.Pagination) ([]*entities.Poem, error) {
	var models []*PoemModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&PoemModel{}).
		Where("author_id = ?", authorID).
		Order(page.SortField + " " + string(page.Direction)).
		Limit(page.Limit).
		Offset(page.Offset)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *PoemRepository) CountByAuthor(ctx context.Context, authorID string) (int64, error) {
	var count int64
	db := dbFromContext(ctx, r.db)
	err := db.Model(&PoemModel{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

func (r *PoemRepository) ListPublishedByAuthor(ctx context.Context, authorID string) ([]*entities.Poem, error) {
	var models []*PoemModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&PoemModel{}).
		Where("author_id = ? AND status = ?", authorID, string(entities.PoemPublished)).
		Order("published_at desc")

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

// Conversores
func (r *PoemRepository) toModel(poem *entities.Poem) *PoemModel {
	var publishedAt *int64
	if poem.PublishedAt != nil {
		ts := poem.PublishedAt.Unix()
		publishedAt = &ts
	}

	var symbol *string
	if poem.SymbolType != nil {
		s := string(*poem.SymbolType)
		symbol = &s
	}

	return &PoemModel{
		ID:          poem.ID,
		AuthorID:    poem.AuthorID,
		Status:      string(poem.Status),
		MoodColor:   string(poem.MoodColor),
		SymbolType:  symbol,
		Title:       poem.Title,
		Content:     poem.Content,
		PublishedAt: publishedAt,
		CreatedAt:   poem.CreatedAt.Unix(),
		UpdatedAt:   poem.UpdatedAt.Unix(),
	}
}

func (r *PoemRepository) toEntity(model *PoemModel) *entities.Poem {
	var publishedAt *time.Time
	if model.PublishedAt != nil {
		ts := time.Unix(*model.PublishedAt, 0)
		publishedAt = &ts
	}

	var symbol *entities.SymbolType
	if model.SymbolType != nil {
		s := entities.SymbolType(*model.SymbolType)
		symbol = &s
	}

	return &entities.Poem{
		ID:          model.ID,
		AuthorID:    model.AuthorID,
		Status:      entities.PoemStatus(model.Status),
		MoodColor:   entities.MoodColor(model.MoodColor),
		SymbolType:  symbol,
		Title:       model.Title,
		Content:     model.Content,
		PublishedAt: publishedAt,
		CreatedAt:   time.Unix(model.CreatedAt, 0),
		UpdatedAt:   time.Unix(model.UpdatedAt, 0),
	}
}

func (r *PoemRepository) toEntities(models []*PoemModel) []*entities.Poem {
	poems := make([]*entities.Poem, 0, len(models))
	for _, model := range models {
		poems = append(poems, r.toEntity(model))
	}
	return poems
}
