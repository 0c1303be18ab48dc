package dto

import (
	"github.com/rafabene/poemario-backend/internal/domain/entities"
)

// CreateTotemRequest representa a requisição para criar um totem
type CreateTotemRequest struct {
	Key         string `json:"key" binding:"required,min=1,max=100,lowercase"`
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"omitempty"`
	PictureURL  string `json:"picture_url" binding:"omitempty,url"`
}

// UpdateTotemRequest representa uma atualização parcial de totem.
// A chave é imutável e não aparece aqui.
type UpdateTotemRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description" binding:"omitempty"`
	PictureURL  *string `json:"picture_url" binding:"omitempty,url"`
}

// TotemResponse representa a resposta de um totem
type TotemResponse struct {
	ID          string `json:"id"`
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PictureURL  string `json:"picture_url,omitempty"`
	Default     bool   `json:"default"`
}

// ToTotemResponse converte uma entidade Totem para TotemResponse
func ToTotemResponse(totem *entities.Totem) TotemResponse {
	return TotemResponse{
		ID:          totem.ID,
		Key:         totem.Key,
		Name:        totem.Name,
		Description: totem.Description,
		PictureURL:  totem.PictureURL,
		Default:     totem.IsDefault(),
	}
}

// ToTotemResponses converte uma lista de entidades Totem para TotemResponse
func ToTotemResponses(totems []*entities.Totem) []TotemResponse {
	responses := make([]TotemResponse, len(totems))
	for i, totem := range totems {
		responses[i] = ToTotemResponse(totem)
	}
	return responses
}
