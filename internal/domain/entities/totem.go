package entities

import (
	"errors"
	"time"
)

// DefaultTotemKey é a chave reservada do totem sentinela "nenhum escolhido".
// Usuários apontando para este totem são tratados como sem totem para fins
// de publicação.
const DefaultTotemKey = "none"

// Totem representa uma postura/categoria que um usuário escolhe para si
type Totem struct {
	ID          string
	Key         string
	Name        string
	Description string
	PictureURL  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsDefault verifica se este é o totem sentinela "nenhum escolhido"
func (t *Totem) IsDefault() bool {
	return t.Key == DefaultTotemKey
}

// Validate valida regras de negócio da entidade Totem
func (t *Totem) Validate() error {
	if t.Key == "" {
		return errors.New("key is required")
	}

	if t.Name == "" {
		return errors.New("name is required")
	}

	return nil
}
