package entities

import (
	"errors"
	"time"
)

// FeatherVote representa a pena que um usuário concedeu a um poema.
// Existe no máximo um voto por par (votante, poema); votos subsequentes do
// mesmo votante atualizam o registro existente.
type FeatherVote struct {
	ID          string
	VoterID     string
	PoemID      string
	FeatherType FeatherType
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewFeatherVote cria um novo voto com o nível informado
func NewFeatherVote(voterID, poemID string, feather FeatherType) *FeatherVote {
	if feather == "" {
		feather = DefaultFeatherType
	}
	return &FeatherVote{
		VoterID:     voterID,
		PoemID:      poemID,
		FeatherType: feather,
	}
}

// ChangeFeather substitui o nível de pena do voto
func (v *FeatherVote) ChangeFeather(feather FeatherType) {
	v.FeatherType = feather
}

// Validate valida regras de negócio da entidade FeatherVote
func (v *FeatherVote) Validate() error {
	if v.VoterID == "" {
		return errors.New("voter is required")
	}

	if v.PoemID == "" {
		return errors.New("poem is required")
	}

	if !v.FeatherType.IsValid() {
		return errors.New("invalid feather type")
	}

	return nil
}
