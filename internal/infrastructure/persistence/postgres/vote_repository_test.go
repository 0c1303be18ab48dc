package postgres

import (
	"testing"
	"time"

	"github.com/rafabene/poemario-backend/internal/domain/entities"
)

func TestVoteTimestampsPreservamMilissegundos(t *testing.T) {
	repo := &VoteRepository{}

	created := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	updated := created.Add(time.Millisecond)

	vote := &entities.FeatherVote{
		ID:          "vote-1",
		VoterID:     "voter-1",
		PoemID:      "poem-1",
		FeatherType: entities.FeatherGold,
		CreatedAt:   created,
		UpdatedAt:   updated,
	}

	model := repo.toModel(vote)
	if model.UpdatedAt <= model.CreatedAt {
		t.Fatalf("UpdatedAt deveria continuar maior que CreatedAt no model: created=%d updated=%d",
			model.CreatedAt, model.UpdatedAt)
	}

	back := repo.toEntity(model)
	if !back.UpdatedAt.After(back.CreatedAt) {
		t.Fatalf("ordem dos timestamps perdida na conversão: created=%v updated=%v",
			back.CreatedAt, back.UpdatedAt)
	}
	if !back.CreatedAt.Equal(created) || !back.UpdatedAt.Equal(updated) {
		t.Fatalf("valores não preservados: created=%v updated=%v", back.CreatedAt, back.UpdatedAt)
	}
}
