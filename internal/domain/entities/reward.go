package entities

import (
	"errors"
	"time"
)

// Reward representa uma recompensa do catálogo que pode ser concedida a usuários
type Reward struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate valida regras de negócio da entidade Reward
func (r *Reward) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}

	return nil
}

// UserReward representa o vínculo de uma recompensa concedida a um usuário.
// Existe no máximo um vínculo por par (usuário, recompensa).
type UserReward struct {
	ID        string
	UserID    string
	RewardID  string
	GrantedAt time.Time
}
