package dto

import (
	"time"

	"github.com/rafabene/poemario-backend/internal/domain/entities"
)

// CreateDraftRequest representa a requisição para criar um rascunho de poema
type CreateDraftRequest struct {
	Title     string `json:"title" binding:"required,min=1,max=500"`
	Content   string `json:"content" binding:"required"`
	MoodColor string `json:"mood_color" binding:"omitempty,moodcolor"`
}

// UpdatePoemRequest representa uma atualização parcial de poema.
// Campos ausentes permanecem inalterados.
type UpdatePoemRequest struct {
	Title     *string `json:"title" binding:"omitempty,min=1,max=500"`
	Content   *string `json:"content" binding:"omitempty"`
	MoodColor *string `json:"mood_color" binding:"omitempty,moodcolor"`
}

// PoemResponse representa a resposta de um poema
type PoemResponse struct {
	ID          string     `json:"id"`
	AuthorID    string     `json:"author_id"`
	Status      string     `json:"status"`
	MoodColor   string     `json:"mood_color"`
	SymbolType  *string    `json:"symbol_type,omitempty"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	CreatedAt   time.Time  `json:"created_at"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// ToPoemResponse converte uma entidade Poem para PoemResponse
func ToPoemResponse(poem *entities.Poem) PoemResponse {
	var symbol *string
	if poem.SymbolType != nil {
		s := string(*poem.SymbolType)
		symbol = &s
	}

	return PoemResponse{
		ID:          poem.ID,
		AuthorID:    poem.AuthorID,
		Status:      string(poem.Status),
		MoodColor:   string(poem.MoodColor),
		SymbolType:  symbol,
		Title:       poem.Title,
		Content:     poem.Content,
		CreatedAt:   poem.CreatedAt,
		PublishedAt: poem.PublishedAt,
	}
}

// ToPoemResponses converte uma lista de entidades Poem para PoemResponse
func ToPoemResponses(poems []*entities.Poem) []PoemResponse {
	responses := make([]PoemResponse, len(poems))
	for i, poem := range poems {
		responses[i] = ToPoemResponse(poem)
	}
	return responses
}
