package entities

import (
	"errors"
	"time"
)

// PoemStatus representa o estado de um poema no seu ciclo de vida
type PoemStatus string

const (
	PoemDraft     PoemStatus = "DRAFT"
	PoemPublished PoemStatus = "PUBLISHED"
)

// Poem representa um poema escrito por um usuário
type Poem struct {
	ID          string
	AuthorID    string
	Status      PoemStatus
	MoodColor   MoodColor
	SymbolType  *SymbolType // derivado dos votos, nunca definido pelo autor
	Title       string
	Content     string
	CreatedAt   time.Time
	PublishedAt *time.Time
	UpdatedAt   time.Time
}

// NewDraft cria um novo poema em rascunho para o autor informado
func NewDraft(authorID, title, content string, mood MoodColor) *Poem {
	if mood == "" {
		mood = DefaultMoodColor
	}
	return &Poem{
		AuthorID:  authorID,
		Status:    PoemDraft,
		MoodColor: mood,
		Title:     title,
		Content:   content,
	}
}

// IsPublished verifica se o poema já foi publicado
func (p *Poem) IsPublished() bool {
	return p.Status == PoemPublished
}

// Publish transiciona o poema para PUBLISHED e registra o instante.
// A transição é de mão única; não há guarda contra republicação, que apenas
// redefine PublishedAt para o instante atual.
func (p *Poem) Publish() {
	now := time.Now().UTC()
	p.Status = PoemPublished
	p.PublishedAt = &now
}

// ApplyUpdate aplica uma atualização parcial: argumentos nil deixam o campo
// inalterado
func (p *Poem) ApplyUpdate(title, content *string, mood *MoodColor) {
	if title != nil {
		p.Title = *title
	}
	if content != nil {
		p.Content = *content
	}
	if mood != nil {
		p.MoodColor = *mood
	}
}

// Validate valida regras de negócio da entidade Poem
func (p *Poem) Validate() error {
	if p.AuthorID == "" {
		return errors.New("author is required")
	}

	if p.Title == "" {
		return errors.New("title is required")
	}

	if p.Status != PoemDraft && p.Status != PoemPublished {
		return errors.New("invalid status")
	}

	// PublishedAt é não nulo se e somente se o poema está publicado
	if p.Status == PoemPublished && p.PublishedAt == nil {
		return errors.New("published poem requires a published date")
	}
	if p.Status == PoemDraft && p.PublishedAt != nil {
		return errors.New("draft poem cannot have a published date")
	}

	return nil
}
