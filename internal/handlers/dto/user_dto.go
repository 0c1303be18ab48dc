package dto

import (
	"time"

	"github.com/rafabene/poemario-backend/internal/domain/entities"
)

// CreateUserRequest representa a requisição para criar um usuário
type CreateUserRequest struct {
	Email     string  `json:"email" binding:"required,email"`
	Pseudo    string  `json:"pseudo" binding:"required,min=2,max=100"`
	Password  string  `json:"password" binding:"required,min=8,max=72"`
	MoodColor string  `json:"mood_color" binding:"omitempty,moodcolor"`
	TotemID   *string `json:"totem_id" binding:"omitempty,uuid"`
	TotemKey  *string `json:"totem_key" binding:"omitempty,min=1,max=100"`
}

// UpdateUserRequest representa a requisição para atualizar um usuário.
// Campos ausentes permanecem inalterados.
type UpdateUserRequest struct {
	Email     *string `json:"email" binding:"omitempty,email"`
	Pseudo    *string `json:"pseudo" binding:"omitempty,min=2,max=100"`
	Password  *string `json:"password" binding:"omitempty,min=8,max=72"`
	MoodColor *string `json:"mood_color" binding:"omitempty,moodcolor"`
	TotemID   *string `json:"totem_id" binding:"omitempty,uuid"`
	TotemKey  *string `json:"totem_key" binding:"omitempty,min=1,max=100"`
}

// UserResponse representa a resposta de um usuário
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Pseudo    string    `json:"pseudo"`
	MoodColor string    `json:"mood_color"`
	TotemID   *string   `json:"totem_id,omitempty"`
	Roles     []string  `json:"roles"`
	Locked    bool      `json:"locked"`
	CreatedAt time.Time `json:"created_at"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	roles := make([]string, len(user.Roles))
	for i, role := range user.Roles {
		roles[i] = string(role)
	}

	return UserResponse{
		ID:        user.ID,
		Email:     user.Email.String(),
		Pseudo:    user.Pseudo,
		MoodColor: string(user.MoodColor),
		TotemID:   user.TotemID,
		Roles:     roles,
		Locked:    user.IsLocked(),
		CreatedAt: user.CreatedAt,
	}
}

// ToUserResponses converte uma lista de entidades User para UserResponse
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}
