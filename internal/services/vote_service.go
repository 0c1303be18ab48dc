package services

import (
	"context"

	"github.com/rafabene/poemario-backend/internal/domain"
	"github.com/rafabene/poemario-backend/internal/domain/entities"
	"github.com/rafabene/poemario-backend/internal/domain/errors"
	"github.com/rafabene/poemario-backend/internal/domain/ports"
	"github.com/rafabene/poemario-backend/internal/domain/repositories"
)

// VoteService contém a lógica de negócio dos votos de pena
type VoteService struct {
	voteRepo repositories.VoteRepository
	poemRepo repositories.PoemRepository
	userRepo repositories.UserRepository
	uow      domain.UnitOfWork
	events   ports.EventPublisher
	logger   ports.Logger
}

// NewVoteService cria um novo VoteService
func NewVoteService(
	voteRepo repositories.VoteRepository,
	poemRepo repositories.PoemRepository,
	userRepo repositories.UserRepository,
	uow domain.UnitOfWork,
	events ports.EventPublisher,
	logger ports.Logger,
) *VoteService {
	return &VoteService{
		voteRepo: voteRepo,
		poemRepo: poemRepo,
		userRepo: userRepo,
		uow:      uow,
		events:   events,
		logger:   logger,
	}
}

// CastVote registra ou atualiza o voto de um usuário em um poema.
// Retorna o voto resultante e created=true quando um novo registro foi criado,
// created=false quando um voto existente do par (votante, poema) teve apenas o
// nível de pena atualizado. O índice único em (voter_id, poem_id) no
// armazenamento é a rede de segurança contra inserções duplicadas
// concorrentes; a verificação aqui roda dentro de uma transação.
func (s *VoteService) CastVote(ctx context.Context, voterID, poemID string, feather entities.FeatherType) (*entities.FeatherVote, bool, error) {
	if feather == "" {
		feather = entities.DefaultFeatherType
	}

	s.logger.Info("casting vote", "voter_id", voterID, "poem_id", poemID, "feather", feather)

	voter, err := s.userRepo.FindByID(ctx, voterID)
	if err != nil {
		return nil, false, err
	}
	if voter == nil {
		return nil, false, errors.ErrUserNotFound
	}

	poem, err := s.poemRepo.FindByID(ctx, poemID)
	if err != nil {
		return nil, false, err
	}
	if poem == nil {
		return nil, false, errors.ErrPoemNotFound
	}

	if poem.AuthorID == voter.ID {
		return nil, false, errors.ErrCannotVoteOwnPoem
	}

	var vote *entities.FeatherVote
	var created bool

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.voteRepo.FindByVoterAndPoem(txCtx, voter.ID, poem.ID)
		if err != nil {
			return err
		}

		if existing != nil {
			existing.ChangeFeather(feather)
			if err := existing.Validate(); err != nil {
				return err
			}
			if err := s.voteRepo.Update(txCtx, existing); err != nil {
				return err
			}
			vote = existing
			created = false
		} else {
			vote = entities.NewFeatherVote(voter.ID, poem.ID, feather)
			if err := vote.Validate(); err != nil {
				return err
			}
			if err := s.voteRepo.Create(txCtx, vote); err != nil {
				return err
			}
			created = true
		}

		return s.refreshSymbol(txCtx, poem)
	})
	if err != nil {
		return nil, false, err
	}

	if s.events != nil {
		s.events.Publish(ports.Event{
			Name: ports.EventVoteCast,
			Payload: map[string]interface{}{
				"vote_id":  vote.ID,
				"poem_id":  poem.ID,
				"voter_id": voter.ID,
				"feather":  vote.FeatherType,
				"created":  created,
			},
		})
	}

	s.logger.Info("vote cast", "vote_id", vote.ID, "created", created)
	return vote, created, nil
}

// DeleteVote remove um voto existente e recalcula o símbolo do poema
func (s *VoteService) DeleteVote(ctx context.Context, voteID string) error {
	s.logger.Info("deleting vote", "vote_id", voteID)

	vote, err := s.GetVote(ctx, voteID)
	if err != nil {
		return err
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.voteRepo.Delete(txCtx, vote.ID); err != nil {
			return err
		}

		poem, err := s.poemRepo.FindByID(txCtx, vote.PoemID)
		if err != nil {
			return err
		}
		if poem == nil {
			// o poema foi removido junto dos votos; nada a recalcular
			return nil
		}

		return s.refreshSymbol(txCtx, poem)
	})
	if err != nil {
		return err
	}

	if s.events != nil {
		s.events.Publish(ports.Event{
			Name: ports.EventVoteRemoved,
			Payload: map[string]interface{}{
				"vote_id": vote.ID,
				"poem_id": vote.PoemID,
			},
		})
	}

	return nil
}

// GetVote busca um voto por ID
func (s *VoteService) GetVote(ctx context.Context, id string) (*entities.FeatherVote, error) {
	vote, err := s.voteRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vote == nil {
		return nil, errors.ErrVoteNotFound
	}
	return vote, nil
}

// ListVotes lista todos os votos com paginação e ordenação
func (s *VoteService) ListVotes(ctx context.Context, page repositories.Pagination) ([]*entities.FeatherVote, int64, error) {
	page = page.Normalize(repositories.VoteSortFields, repositories.VoteDefaultSortField, repositories.SortDesc)

	votes, err := s.voteRepo.List(ctx, page)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.voteRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return votes, total, nil
}

// ListAllVotes lista todos os votos sem paginação, ordenados por atualização
// decrescente
func (s *VoteService) ListAllVotes(ctx context.Context) ([]*entities.FeatherVote, error) {
	return s.voteRepo.ListAll(ctx)
}

// ListAllVotesByPoem lista todos os votos de um poema sem paginação
func (s *VoteService) ListAllVotesByPoem(ctx context.Context, poemID string) ([]*entities.FeatherVote, error) {
	poem, err := s.poemRepo.FindByID(ctx, poemID)
	if err != nil {
		return nil, err
	}
	if poem == nil {
		return nil, errors.ErrPoemNotFound
	}

	return s.voteRepo.ListAllByPoem(ctx, poem.ID)
}

// ListAllVotesByVoter lista todos os votos de um votante sem paginação
func (s *VoteService) ListAllVotesByVoter(ctx context.Context, voterID string) ([]*entities.FeatherVote, error) {
	voter, err := s.userRepo.FindByID(ctx, voterID)
	if err != nil {
		return nil, err
	}
	if voter == nil {
		return nil, errors.ErrUserNotFound
	}

	return s.voteRepo.ListAllByVoter(ctx, voter.ID)
}

// ListVotesByPoem lista os votos de um poema com paginação e ordenação
func (s *VoteService) ListVotesByPoem(ctx context.Context, poemID string, page repositories.Pagination) ([]*entities.FeatherVote, int64, error) {
	poem, err := s.poemRepo.FindByID(ctx, poemID)
	if err != nil {
		return nil, 0, err
	}
	if poem == nil {
		return nil, 0, errors.ErrPoemNotFound
	}

	page = page.Normalize(repositories.VoteSortFields, repositories.VoteDefaultSortField, repositories.SortDesc)

	votes, err := s.voteRepo.ListByPoem(ctx, poem.ID, page)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.voteRepo.CountByPoem(ctx, poem.ID)
	if err != nil {
		return nil, 0, err
	}

	return votes, total, nil
}

// ListVotesByVoter lista os votos de um votante com paginação e ordenação
func (s *VoteService) ListVotesByVoter(ctx context.Context, voterID string, page repositories.Pagination) ([]*entities.FeatherVote, int64, error) {
	voter, err := s.userRepo.FindByID(ctx, voterID)
	if err != nil {
		return nil, 0, err
	}
	if voter == nil {
		return nil, 0, errors.ErrUserNotFound
	}

	page = page.Normalize(repositories.VoteSortFields, repositories.VoteDefaultSortField, repositories.SortDesc)

	votes, err := s.voteRepo.ListByVoter(ctx, voter.ID, page)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.voteRepo.CountByVoter(ctx, voter.ID)
	if err != nil {
		return nil, 0, err
	}

	return votes, total, nil
}

// refreshSymbol recalcula e persiste o símbolo derivado do poema a partir dos
// votos atuais
func (s *VoteService) refreshSymbol(ctx context.Context, poem *entities.Poem) error {
	votes, err := s.voteRepo.ListAllByPoem(ctx, poem.ID)
	if err != nil {
		return err
	}

	dereferenced := make([]entities.FeatherVote, len(votes))
	for i, v := range votes {
		dereferenced[i] = *v
	}

	poem.SymbolType = entities.ComputeSymbol(poem.MoodColor, dereferenced)
	return s.poemRepo.Update(ctx, poem)
}
