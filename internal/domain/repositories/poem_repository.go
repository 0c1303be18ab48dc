package repositories

import (
	"context"

	"github.com/rafabene/poemario-backend/internal/domain/entities"
)

// PoemRepository define a interface para persistência de poemas
type PoemRepository interface {
	Create(ctx context.Context, poem *entities.Poem) error
	FindByID(ctx context.Context, id string) (*entities.Poem, error)
	Update(ctx context.Context, poem *entities.Poem) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page Pagination) ([]*entities.Poem, error)
	ListAll(ctx context.Context) ([]*entities.Poem, error)
	Count(ctx context.Context) (int64, error)
	ListByAuthor(ctx context.Context, authorID string, page Pagination) ([]*entities.Poem, error)
	CountByAuthor(ctx context.Context, authorID string) (int64, error)
	// ListPublishedByAuthor retorna apenas poemas publicados, ordenados por
	// data de publicação decrescente
	ListPublishedByAuthor(ctx context.Context, authorID string) ([]*entities.Poem, error)
}

// PoemSortFields é a allow-list de campos ordenáveis na listagem de poemas
var PoemSortFields = map[string]bool{
	"title":        true,
	"created_at":   true,
	"published_at": true,
}

// PoemDefaultSortField é o campo usado quando o solicitado não é reconhecido
const PoemDefaultSortField = "created_at"
