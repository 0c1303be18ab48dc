package dto

import (
	"time"

	"github.com/rafabene/poemario-backend/internal/services"
)

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse representa a resposta de um login bem-sucedido
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

// ToLoginResponse converte o resultado do login para LoginResponse
func ToLoginResponse(result *services.LoginResult) LoginResponse {
	return LoginResponse{
		AccessToken: result.AccessToken,
		ExpiresAt:   result.ExpiresAt,
		User:        ToUserResponse(result.User),
	}
}
