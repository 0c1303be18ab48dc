package services

import (
	"context"

	"github.com/rafabene/poemario-backend/internal/domain/entities"
	"github.com/rafabene/poemario-backend/internal/domain/errors"
	"github.com/rafabene/poemario-backend/internal/domain/ports"
	"github.com/rafabene/poemario-backend/internal/domain/repositories"
)

// RewardService contém a lógica de negócio do catálogo de recompensas
type RewardService struct {
	rewardRepo repositories.RewardRepository
	userRepo   repositories.UserRepository
	logger     ports.Logger
}

// NewRewardService cria um novo RewardService
func NewRewardService(
	rewardRepo repositories.RewardRepository,
	userRepo repositories.UserRepository,
	logger ports.Logger,
) *RewardService {
	return &RewardService{
		rewardRepo: rewardRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// CreateRewardInput representa os dados para criar uma recompensa
type CreateRewardInput struct {
	Name        string
	Description string
}

// CreateReward cria uma nova recompensa garantindo a unicidade do nome
func (s *RewardService) CreateReward(ctx context.Context, input CreateRewardInput) (*entities.Reward, error) {
	s.logger.Info("creating reward", "name", input.Name)

	existing, err := s.rewardRepo.FindByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrRewardNameAlreadyExists
	}

	reward := &entities.Reward{
		Name:        input.Name,
		Description: input.Description,
	}

	if err := reward.Validate(); err != nil {
		return nil, err
	}

	if err := s.rewardRepo.Create(ctx, reward); err != nil {
		return nil, err
	}

	return reward, nil
}

// GetReward busca uma recompensa por ID
func (s *RewardService) GetReward(ctx context.Context, id string) (*entities.Reward, error) {
	reward, err := s.rewardRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reward == nil {
		return nil, errors.ErrRewardNotFound
	}
	return reward, nil
}

// DeleteReward remove uma recompensa que não tenha sido concedida a ninguém
func (s *RewardService) DeleteReward(ctx context.Context, id string) error {
	s.logger.Info("deleting reward", "reward_id", id)

	reward, err := s.GetReward(ctx, id)
	if err != nil {
		return err
	}

	grants, err := s.rewardRepo.CountGrantsByReward(ctx, reward.ID)
	if err != nil {
		return err
	}
	if grants > 0 {
		return errors.ErrCannotDeleteGrantedReward
	}

	return s.rewardRepo.Delete(ctx, reward.ID)
}

// ListRewards lista todas as recompensas do catálogo
func (s *RewardService) ListRewards(ctx context.Context) ([]*entities.Reward, error) {
	return s.rewardRepo.List(ctx)
}

// GrantReward concede uma recompensa a um usuário.
// Existe no máximo um vínculo por par (usuário, recompensa).
func (s *RewardService) GrantReward(ctx context.Context, userID, rewardID string) (*entities.UserReward, error) {
	s.logger.Info("granting reward", "user_id", userID, "reward_id", rewardID)

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	reward, err := s.GetReward(ctx, rewardID)
	if err != nil {
		return nil, err
	}

	existing, err := s.rewardRepo.FindGrant(ctx, user.ID, reward.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrRewardAlreadyGranted
	}

	link := &entities.UserReward{
		UserID:   user.ID,
		RewardID: reward.ID,
	}

	if err := s.rewardRepo.Grant(ctx, link); err != nil {
		return nil, err
	}

	return link, nil
}

// RevokeReward remove o vínculo de uma recompensa concedida
func (s *RewardService) RevokeReward(ctx context.Context, userID, rewardID string) error {
	link, err := s.rewardRepo.FindGrant(ctx, userID, rewardID)
	if err != nil {
		return err
	}
	if link == nil {
		return errors.ErrRewardNotFound
	}

	return s.rewardRepo.Revoke(ctx, userID, rewardID)
}

// ListUserRewards lista as recompensas concedidas a um usuário
func (s *RewardService) ListUserRewards(ctx context.Context, userID string) ([]*entities.UserReward, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	return s.rewardRepo.ListGrantsByUser(ctx, user.ID)
}
