package repositories

import (
	"context"

	"github.com/rafabene/poemario-backend/internal/domain/entities"
)

// VoteRepository define a interface para persistência de votos de pena
type VoteRepository interface {
	Create(ctx context.Context, vote *entities.FeatherVote) error
	FindByID(ctx context.Context, id string) (*entities.FeatherVote, error)
	// FindByVoterAndPoem retorna o voto do par (votante, poema), ou nil.
	// É o ponto de verificação do upsert; o índice único no armazenamento é
	// apenas a rede de segurança contra corridas.
	FindByVoterAndPoem(ctx context.Context, voterID, poemID string) (*entities.FeatherVote, error)
	Update(ctx context.Context, vote *entities.FeatherVote) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page Pagination) ([]*entities.FeatherVote, error)
	ListAll(ctx context.Context) ([]*entities.FeatherVote, error)
	Count(ctx context.Context) (int64, error)
	ListByPoem(ctx context.Context, poemID string, page Pagination) ([]*entities.FeatherVote, error)
	ListAllByPoem(ctx context.Context, poemID string) ([]*entities.FeatherVote, error)
	CountByPoem(ctx context.Context, poemID string) (int64, error)
	ListByVoter(ctx context.Context, voterID string, page Pagination) ([]*entities.FeatherVote, error)
	ListAllByVoter(ctx context.Context, voterID string) ([]*entities.FeatherVote, error)
	CountByVoter(ctx context.Context, voterID string) (int64, error)
}

// VoteSortFields é a allow-list de campos ordenáveis na listagem de votos
var VoteSortFields = map[string]bool{
	"feather_type": true,
	"created_at":   true,
	"updated_at":   true,
}

// VoteDefaultSortField é o campo usado quando o solicitado não é reconhecido
const VoteDefaultSortField = "updated_at"
