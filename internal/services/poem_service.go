package services

import (
	"context"

	"github.com/rafabene/poemario-backend/internal/domain/entities"
	"github.com/rafabene/poemario-backend/internal/domain/errors"
	"github.com/rafabene/poemario-backend/internal/domain/ports"
	"github.com/rafabene/poemario-backend/internal/domain/repositories"
)

// PoemService contém a lógica de negócio do ciclo de vida de poemas
type PoemService struct {
	poemRepo  repositories.PoemRepository
	userRepo  repositories.UserRepository
	voteRepo  repositories.VoteRepository
	totemRepo repositories.TotemRepository
	events    ports.EventPublisher
	logger    ports.Logger
}

// NewPoemService cria um novo PoemService
func NewPoemService(
	poemRepo repositories.PoemRepository,
	userRepo repositories.UserRepository,
	voteRepo repositories.VoteRepository,
	totemRepo repositories.TotemRepository,
	events ports.EventPublisher,
	logger ports.Logger,
) *PoemService {
	return &PoemService{
		poemRepo:  poemRepo,
		userRepo:  userRepo,
		voteRepo:  voteRepo,
		totemRepo: totemRepo,
		events:    events,
		logger:    logger,
	}
}

// CreateDraftInput representa os dados para criar um rascunho de poema
type CreateDraftInput struct {
	AuthorID  string
	Title     string
	Content   string
	MoodColor entities.MoodColor
}

// CreateDraft cria um novo poema em rascunho para um autor existente
func (s *PoemService) CreateDraft(ctx context.Context, input CreateDraftInput) (*entities.Poem, error) {
	s.logger.Info("creating poem draft", "author_id", input.AuthorID)

	author, err := s.userRepo.FindByID(ctx, input.AuthorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, errors.ErrUserNotFound
	}

	poem := entities.NewDraft(author.ID, input.Title, input.Content, input.MoodColor)

	if err := poem.Validate(); err != nil {
		return nil, err
	}

	if err := s.poemRepo.Create(ctx, poem); err != nil {
		return nil, err
	}

	s.logger.Info("poem draft created", "poem_id", poem.ID, "author_id", poem.AuthorID)
	return poem, nil
}

// Publish transiciona um poema para PUBLISHED.
// O autor precisa ter um totem atribuído, e esse totem não pode ser o
// sentinela "nenhum escolhido". Republicar um poema já publicado não é
// guardado nesta camada: apenas redefine PublishedAt.
func (s *PoemService) Publish(ctx context.Context, poemID string) (*entities.Poem, error) {
	s.logger.Info("publishing poem", "poem_id", poemID)

	poem, err := s.GetPoem(ctx, poemID)
	if err != nil {
		return nil, err
	}

	author, err := s.userRepo.FindByID(ctx, poem.AuthorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, errors.ErrUserNotFound
	}

	if !author.HasTotem() {
		return nil, errors.ErrCannotPublishWithoutTotem
	}

	totem, err := s.totemRepo.FindByID(ctx, *author.TotemID)
	if err != nil {
		return nil, err
	}
	if totem == nil || totem.IsDefault() {
		return nil, errors.ErrCannotPublishWithoutTotem
	}

	poem.Publish()

	if err := s.poemRepo.Update(ctx, poem); err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.Publish(ports.Event{
			Name: ports.EventPoemPublished,
			Payload: map[string]interface{}{
				"poem_id":   poem.ID,
				"author_id": poem.AuthorID,
				"title":     poem.Title,
			},
		})
	}

	s.logger.Info("poem published", "poem_id", poem.ID, "published_at", poem.PublishedAt)
	return poem, nil
}

// UpdatePoemInput representa uma atualização parcial de poema.
// Campos nil permanecem inalterados.
type UpdatePoemInput struct {
	Title     *string
	Content   *string
	MoodColor *entities.MoodColor
}

// UpdatePoem atualiza um poema ainda em rascunho.
// Poemas publicados são imutáveis em conteúdo, independentemente dos campos
// informados.
func (s *PoemService) UpdatePoem(ctx context.Context, poemID string, input UpdatePoemInput) (*entities.Poem, error) {
	poem, err := s.GetPoem(ctx, poemID)
	if err != nil {
		return nil, err
	}

	if poem.IsPublished() {
		return nil, errors.ErrCannotUpdatePublishedPoem
	}

	poem.ApplyUpdate(input.Title, input.Content, input.MoodColor)

	if err := poem.Validate(); err != nil {
		return nil, err
	}

	if err := s.poemRepo.Update(ctx, poem); err != nil {
		return nil, err
	}

	return poem, nil
}

// DeletePoem remove um poema sem votos.
// Poemas com votos não podem ser removidos: os votos precisam ser retirados
// antes, para que o sinal social não seja apagado silenciosamente.
func (s *PoemService) DeletePoem(ctx context.Context, poemID string) error {
	s.logger.Info("deleting poem", "poem_id", poemID)

	poem, err := s.GetPoem(ctx, poemID)
	if err != nil {
		return err
	}

	votes, err := s.voteRepo.CountByPoem(ctx, poem.ID)
	if err != nil {
		return err
	}
	if votes > 0 {
		return errors.ErrCannotDeletePoemWithVotes
	}

	return s.poemRepo.Delete(ctx, poem.ID)
}

// GetPoem busca um poema por ID
func (s *PoemService) GetPoem(ctx context.Context, id string) (*entities.Poem, error) {
	poem, err := s.poemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if poem == nil {
		return nil, errors.ErrPoemNotFound
	}
	return poem, nil
}

// ListPoems lista poemas com paginação e ordenação
func (s *PoemService) ListPoems(ctx context.Context, page repositories.Pagination) ([]*entities.Poem, int64, error) {
	page = page.Normalize(repositories.PoemSortFields, repositories.PoemDefaultSortField, repositories.SortDesc)

	poems, err := s.poemRepo.List(ctx, page)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.poemRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return poems, total, nil
}

// ListAllPoems lista todos os poemas sem paginação, ordenados por criação
// decrescente
func (s *PoemService) ListAllPoems(ctx context.Context) ([]*entities.Poem, error) {
	return s.poemRepo.ListAll(ctx)
}

// ListPoemsForUser lista os poemas de um autor, em qualquer estado
func (s *PoemService) ListPoemsForUser(ctx context.Context, authorID string, page repositories.Pagination) ([]*entities.Poem, int64, error) {
	author, err := s.userRepo.FindByID(ctx, authorID)
	if err != nil {
		return nil, 0, err
	}
	if author == nil {
		return nil, 0, errors.ErrUserNotFound
	}

	page = page.Normalize(repositories.PoemSortFields, repositories.PoemDefaultSortField, repositories.SortDesc)

	poems, err := s.poemRepo.ListByAuthor(ctx, author.ID, page)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.poemRepo.CountByAuthor(ctx, author.ID)
	if err != nil {
		return nil, 0, err
	}

	return poems, total, nil
}

// ListPublishedForUser lista apenas os poemas publicados de um autor,
// ordenados por data de publicação decrescente
func (s *PoemService) ListPublishedForUser(ctx context.Context, authorID string) ([]*entities.Poem, error) {
	author, err := s.userRepo.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, errors.ErrUserNotFound
	}

	return s.poemRepo.ListPublishedByAuthor(ctx, author.ID)
}
