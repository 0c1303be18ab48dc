package dto

import (
	"time"

	"github.com/rafabene/poemario-backend/internal/domain/entities"
)

// CreateRewardRequest representa a requisição para criar uma recompensa
type CreateRewardRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"omitempty"`
}

// RewardResponse representa a resposta de uma recompensa
type RewardResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ToRewardResponse converte uma entidade Reward para RewardResponse
func ToRewardResponse(reward *entities.Reward) RewardResponse {
	return RewardResponse{
		ID:          reward.ID,
		Name:        reward.Name,
		Description: reward.Description,
	}
}

// ToRewardResponses converte uma lista de entidades Reward para RewardResponse
func ToRewardResponses(rewards []*entities.Reward) []RewardResponse {
	responses := make([]RewardResponse, len(rewards))
	for i, reward := range rewards {
		responses[i] = ToRewardResponse(reward)
	}
	return responses
}

// UserRewardResponse representa um vínculo de recompensa concedida
type UserRewardResponse struct {
	UserID    string    `json:"user_id"`
	RewardID  string    `json:"reward_id"`
	GrantedAt time.Time `json:"granted_at"`
}

// ToUserRewardResponse converte um vínculo UserReward para UserRewardResponse
func ToUserRewardResponse(link *entities.UserReward) UserRewardResponse {
	return UserRewardResponse{
		UserID:    link.UserID,
		RewardID:  link.RewardID,
		GrantedAt: link.GrantedAt,
	}
}

// ToUserRewardResponses converte uma lista de vínculos UserReward
func ToUserRewardResponses(links []*entities.UserReward) []UserRewardResponse {
	responses := make([]UserRewardResponse, len(links))
	for i, link := range links {
		responses[i] = ToUserRewardResponse(link)
	}
	return responses
}
