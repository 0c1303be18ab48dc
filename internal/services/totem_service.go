package services

import (
	"context"

	"github.com/rafabene/poemario-backend/internal/domain/entities"
	"github.com/rafabene/poemario-backend/internal/domain/errors"
	"github.com/rafabene/poemario-backend/internal/domain/ports"
	"github.com/rafabene/poemario-backend/internal/domain/repositories"
)

// TotemService contém a lógica de negócio do catálogo de totens
type TotemService struct {
	totemRepo repositories.TotemRepository
	logger    ports.Logger
}

// NewTotemService cria um novo TotemService
func NewTotemService(totemRepo repositories.TotemRepository, logger ports.Logger) *TotemService {
	return &TotemService{
		totemRepo: totemRepo,
		logger:    logger,
	}
}

// CreateTotemInput representa os dados para criar um totem
type CreateTotemInput struct {
	Key         string
	Name        string
	Description string
	PictureURL  string
}

// CreateTotem cria um novo totem garantindo a unicidade da chave
func (s *TotemService) CreateTotem(ctx context.Context, input CreateTotemInput) (*entities.Totem, error) {
	s.logger.Info("creating totem", "key", input.Key)

	existing, err := s.totemRepo.FindByKey(ctx, input.Key)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrTotemKeyAlreadyExists
	}

	totem := &entities.Totem{
		Key:         input.Key,
		Name:        input.Name,
		Description: input.Description,
		PictureURL:  input.PictureURL,
	}

	if err := totem.Validate(); err != nil {
		return nil, err
	}

	if err := s.totemRepo.Create(ctx, totem); err != nil {
		return nil, err
	}

	return totem, nil
}

// GetTotem busca um totem por ID
func (s *TotemService) GetTotem(ctx context.Context, id string) (*entities.Totem, error) {
	totem, err := s.totemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if totem == nil {
		return nil, errors.ErrTotemNotFound
	}
	return totem, nil
}

// GetTotemByKey busca um totem pela chave única
func (s *TotemService) GetTotemByKey(ctx context.Context, key string) (*entities.Totem, error) {
	totem, err := s.totemRepo.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if totem == nil {
		return nil, errors.ErrTotemNotFound
	}
	return totem, nil
}

// UpdateTotemInput representa uma atualização parcial de totem
type UpdateTotemInput struct {
	Name        *string
	Description *string
	PictureURL  *string
}

// UpdateTotem atualiza nome, descrição ou imagem de um totem.
// A chave é imutável: identifica o totem para os usuários que o escolheram.
func (s *TotemService) UpdateTotem(ctx context.Context, id string, input UpdateTotemInput) (*entities.Totem, error) {
	totem, err := s.GetTotem(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		totem.Name = *input.Name
	}
	if input.Description != nil {
		totem.Description = *input.Description
	}
	if input.PictureURL != nil {
		totem.PictureURL = *input.PictureURL
	}

	if err := totem.Validate(); err != nil {
		return nil, err
	}

	if err := s.totemRepo.Update(ctx, totem); err != nil {
		return nil, err
	}

	return totem, nil
}

// DeleteTotem remove um totem que não esteja em uso.
// O totem sentinela padrão nunca pode ser removido.
func (s *TotemService) DeleteTotem(ctx context.Context, id string) error {
	s.logger.Info("deleting totem", "totem_id", id)

	totem, err := s.GetTotem(ctx, id)
	if err != nil {
		return err
	}

	if totem.IsDefault() {
		return errors.ErrCannotDeleteDefaultTotem
	}

	users, err := s.totemRepo.CountUsers(ctx, totem.ID)
	if err != nil {
		return err
	}
	if users > 0 {
		return errors.ErrCannotDeleteTotemInUse
	}

	return s.totemRepo.Delete(ctx, totem.ID)
}

// ListTotems lista todos os totens do catálogo
func (s *TotemService) ListTotems(ctx context.Context) ([]*entities.Totem, error) {
	return s.totemRepo.List(ctx)
}
