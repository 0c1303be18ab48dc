package services

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/poemario-backend/internal/domain/entities"
	"github.com/rafabene/poemario-backend/internal/domain/errors"
	"github.com/rafabene/poemario-backend/internal/domain/ports"
	"github.com/rafabene/poemario-backend/internal/domain/repositories"
	"github.com/rafabene/poemario-backend/internal/domain/valueobjects"
)

// UserService contém a lógica de negócio para usuários
type UserService struct {
	userRepo   repositories.UserRepository
	poemRepo   repositories.PoemRepository
	voteRepo   repositories.VoteRepository
	totemRepo  repositories.TotemRepository
	rewardRepo repositories.RewardRepository
	logger     ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	poemRepo repositories.PoemRepository,
	voteRepo repositories.VoteRepository,
	totemRepo repositories.TotemRepository,
	rewardRepo repositories.RewardRepository,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo:   userRepo,
		poemRepo:   poemRepo,
		voteRepo:   voteRepo,
		totemRepo:  totemRepo,
		rewardRepo: rewardRepo,
		logger:     logger,
	}
}

// CreateUserInput representa os dados para criar um usuário
type CreateUserInput struct {
	Email     string
	Pseudo    string
	Password  string
	MoodColor entities.MoodColor
	TotemID   *string
	TotemKey  *string
	Roles     []entities.Role
}

// CreateUser cria um novo usuário garantindo a unicidade do email
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*entities.User, error) {
	s.logger.Info("creating user", "email", input.Email)

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.ErrInvalidEmail
	}

	// Validar se email já existe
	existing, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrEmailAlreadyExists
	}

	totemID, err := s.resolveTotemRef(ctx, input.TotemID, input.TotemKey)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	mood := input.MoodColor
	if mood == "" {
		mood = entities.DefaultMoodColor
	}

	roles := input.Roles
	if len(roles) == 0 {
		roles = []entities.Role{entities.RoleUser}
	}

	user := &entities.User{
		Email:        email,
		Pseudo:       input.Pseudo,
		PasswordHash: string(hash),
		MoodColor:    mood,
		TotemID:      totemID,
		Roles:        roles,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created", "user_id", user.ID, "email", user.Email.String())
	return user, nil
}

// GetUser busca um usuário por ID
func (s *UserService) GetUser(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// UpdateUserInput representa uma atualização parcial de usuário.
// Campos nil permanecem inalterados.
type UpdateUserInput struct {
	Email     *string
	Pseudo    *string
	Password  *string
	MoodColor *entities.MoodColor
	TotemID   *string
	TotemKey  *string
}

// UpdateUser atualiza um usuário existente.
// A unicidade do email é verificada excluindo o próprio registro do usuário.
func (s *UserService) UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*entities.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		email, err := valueobjects.NewEmail(*input.Email)
		if err != nil {
			return nil, errors.ErrInvalidEmail
		}

		existing, err := s.userRepo.FindByEmail(ctx, email.String())
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, errors.ErrEmailAlreadyExists
		}

		user.Email = email
	}

	if input.Pseudo != nil {
		user.Pseudo = *input.Pseudo
	}

	if input.MoodColor != nil {
		user.MoodColor = *input.MoodColor
	}

	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if input.TotemID != nil || input.TotemKey != nil {
		totemID, err := s.resolveTotemRef(ctx, input.TotemID, input.TotemKey)
		if err != nil {
			return nil, err
		}
		user.TotemID = totemID
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser remove um usuário que não possua registros dependentes.
// As guardas são verificadas nesta ordem: poemas, votos, recompensas; a
// primeira violada determina a falha.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	s.logger.Info("deleting user", "user_id", id)

	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}

	poems, err := s.poemRepo.CountByAuthor(ctx, user.ID)
	if err != nil {
		return err
	}
	if poems > 0 {
		return errors.ErrCannotDeleteUserWithPoems
	}

	votes, err := s.voteRepo.CountByVoter(ctx, user.ID)
	if err != nil {
		return err
	}
	if votes > 0 {
		return errors.ErrCannotDeleteUserWithVotes
	}

	rewards, err := s.rewardRepo.CountGrantsByUser(ctx, user.ID)
	if err != nil {
		return err
	}
	if rewards > 0 {
		return errors.ErrCannotDeleteUserWithRewards
	}

	return s.userRepo.Delete(ctx, user.ID)
}

// ListUsers lista usuários com paginação e ordenação
func (s *UserService) ListUsers(ctx context.Context, page repositories.Pagination) ([]*entities.User, int64, error) {
	page = page.Normalize(repositories.UserSortFields, repositories.UserDefaultSortField, repositories.SortDesc)

	users, err := s.userRepo.List(ctx, page)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// resolveTotemRef resolve uma referência opcional de totem por id ou chave.
// Referências que não resolvem falham; ambas ausentes significam "sem totem".
func (s *UserService) resolveTotemRef(ctx context.Context, totemID, totemKey *string) (*string, error) {
	switch {
	case totemID != nil:
		totem, err := s.totemRepo.FindByID(ctx, *totemID)
		if err != nil {
			return nil, err
		}
		if totem == nil {
			return nil, errors.ErrTotemNotFound
		}
		return &totem.ID, nil

	case totemKey != nil:
		totem, err := s.totemRepo.FindByKey(ctx, *totemKey)
		if err != nil {
			return nil, err
		}
		if totem == nil {
			return nil, errors.ErrTotemNotFound
		}
		return &totem.ID, nil
	}

	return nil, nil
}
