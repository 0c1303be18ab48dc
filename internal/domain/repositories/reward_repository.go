package repositories

import (
	"context"

	"github.com/rafabene/poemario-backend/internal/domain/entities"
)

// RewardRepository define a interface para persistência de recompensas e
// seus vínculos com usuários
type RewardRepository interface {
	Create(ctx context.Context, reward *entities.Reward) error
	FindByID(ctx context.Context, id string) (*entities.Reward, error)
	FindByName(ctx context.Context, name string) (*entities.Reward, error)
	Update(ctx context.Context, reward *entities.Reward) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entities.Reward, error)

	// Vínculos usuário-recompensa (no máximo um por par)
	Grant(ctx context.Context, link *entities.UserReward) error
	Revoke(ctx context.Context, userID, rewardID string) error
	FindGrant(ctx context.Context, userID, rewardID string) (*entities.UserReward, error)
	ListGrantsByUser(ctx context.Context, userID string) ([]*entities.UserReward, error)
	CountGrantsByUser(ctx context.Context, userID string) (int64, error)
	CountGrantsByReward(ctx context.Context, rewardID string) (int64, error)
}
