package repositories

import (
	"context"

	"github.com/rafabene/poemario-backend/internal/domain/entities"
)

// TotemRepository define a interface para persistência de totens
type TotemRepository interface {
	Create(ctx context.Context, totem *entities.Totem) error
	FindByID(ctx context.Context, id string) (*entities.Totem, error)
	FindByKey(ctx context.Context, key string) (*entities.Totem, error)
	Update(ctx context.Context, totem *entities.Totem) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entities.Totem, error)
	// CountUsers conta quantos usuários referenciam o totem
	CountUsers(ctx context.Context, totemID string) (int64, error)
}
