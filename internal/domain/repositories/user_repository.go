package repositories

import (
	"context"

	"github.com/rafabene/poemario-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page Pagination) ([]*entities.User, error)
	Count(ctx context.Context) (int64, error)
}

// UserSortFields é a allow-list de campos ordenáveis na listagem de usuários
var UserSortFields = map[string]bool{
	"pseudo":     true,
	"email":      true,
	"created_at": true,
}

// UserDefaultSortField é o campo usado quando o solicitado não é reconhecido
const UserDefaultSortField = "created_at"
