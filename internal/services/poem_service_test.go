package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/poemario-backend/internal/domain/entities"
	"github.com/rafabene/poemario-backend/internal/domain/errors"
	"github.com/rafabene/poemario-backend/internal/domain/ports"
	"github.com/rafabene/poemario-backend/internal/services"
)

var _ = Describe("PoemService", func() {
	var (
		ctx       context.Context
		userRepo  *fakeUserRepo
		poemRepo  *fakePoemRepo
		voteRepo  *fakeVoteRepo
		totemRepo *fakeTotemRepo
		publisher *recordingPublisher
		service   *services.PoemService

		author *entities.User
		totem  *entities.Totem
	)

	BeforeEach(func() {
		ctx = context.Background()
		userRepo = newFakeUserRepo()
		poemRepo = newFakePoemRepo()
		voteRepo = newFakeVoteRepo()
		totemRepo = newFakeTotemRepo(userRepo)
		publisher = &recordingPublisher{}
		service = services.NewPoemService(poemRepo, userRepo, voteRepo, totemRepo, publisher, nopLogger{})

		totem = &entities.Totem{Key: "owl", Name: "Coruja"}
		Expect(totemRepo.Create(ctx, totem)).To(Succeed())

		author = &entities.User{Pseudo: "autor", MoodColor: entities.MoodBlue, TotemID: &totem.ID}
		Expect(userRepo.Create(ctx, author)).To(Succeed())
	})

	Describe("CreateDraft", func() {
		It("cria um rascunho para autor existente", func() {
			poem, err := service.CreateDraft(ctx, services.CreateDraftInput{
				AuthorID: author.ID,
				Title:    "Titulo",
				Content:  "Conteudo",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(poem.Status).To(Equal(entities.PoemDraft))
			Expect(poem.MoodColor).To(Equal(entities.DefaultMoodColor))
		})

		It("rejeita autor inexistente", func() {
			_, err := service.CreateDraft(ctx, services.CreateDraftInput{
				AuthorID: "missing",
				Title:    "Titulo",
				Content:  "Conteudo",
			})

			Expect(err).To(MatchError(errors.ErrUserNotFound))
		})
	})

	Describe("Publish", func() {
		var poem *entities.Poem

		BeforeEach(func() {
			var err error
			poem, err = service.CreateDraft(ctx, services.CreateDraftInput{
				AuthorID: author.ID,
				Title:    "Titulo",
				Content:  "Conteudo",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("publica quando o autor tem totem", func() {
			published, err := service.Publish(ctx, poem.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(published.IsPublished()).To(BeTrue())
			Expect(published.PublishedAt).NotTo(BeNil())
		})

		It("rejeita publicação sem totem", func() {
			author.TotemID = nil
			Expect(userRepo.Update(ctx, author)).To(Succeed())

			_, err := service.Publish(ctx, poem.ID)
			Expect(err).To(MatchError(errors.ErrCannotPublishWithoutTotem))
		})

		It("rejeita publicação com o totem sentinela", func() {
			sentinel := &entities.Totem{Key: entities.DefaultTotemKey, Name: "Nenhum"}
			Expect(totemRepo.Create(ctx, sentinel)).To(Succeed())

			author.TotemID = &sentinel.ID
			Expect(userRepo.Update(ctx, author)).To(Succeed())

			_, err := service.Publish(ctx, poem.ID)
			Expect(err).To(MatchError(errors.ErrCannotPublishWithoutTotem))
		})

		It("publica um evento poem.published", func() {
			_, err := service.Publish(ctx, poem.ID)
			Expect(err).NotTo(HaveOccurred())

			Expect(publisher.events).To(HaveLen(1))
			Expect(publisher.events[0].Name).To(Equal(ports.EventPoemPublished))
		})
	})

	Describe("UpdatePoem", func() {
		It("atualiza campos de um rascunho", func() {
			poem, err := service.CreateDraft(ctx, services.CreateDraftInput{
				AuthorID: author.ID,
				Title:    "Titulo",
				Content:  "Conteudo",
			})
			Expect(err).NotTo(HaveOccurred())

			title := "Novo Titulo"
			updated, err := service.UpdatePoem(ctx, poem.ID, services.UpdatePoemInput{Title: &title})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Title).To(Equal("Novo Titulo"))
			Expect(updated.Content).To(Equal("Conteudo"))
		})

		It("rejeita atualização de poema publicado", func() {
			poem, err := service.CreateDraft(ctx, services.CreateDraftInput{
				AuthorID: author.ID,
				Title:    "Titulo",
				Content:  "Conteudo",
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Publish(ctx, poem.ID)
			Expect(err).NotTo(HaveOccurred())

			title := "Novo Titulo"
			_, err = service.UpdatePoem(ctx, poem.ID, services.UpdatePoemInput{Title: &title})
			Expect(err).To(MatchError(errors.ErrCannotUpdatePublishedPoem))
		})
	})

	Describe("DeletePoem", func() {
		It("remove poema sem votos", func() {
			poem, err := service.CreateDraft(ctx, services.CreateDraftInput{
				AuthorID: author.ID,
				Title:    "Titulo",
				Content:  "Conteudo",
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(service.DeletePoem(ctx, poem.ID)).To(Succeed())
		})

		It("bloqueia remoção enquanto houver votos", func() {
			poem, err := service.CreateDraft(ctx, services.CreateDraftInput{
				AuthorID: author.ID,
				Title:    "Titulo",
				Content:  "Conteudo",
			})
			Expect(err).NotTo(HaveOccurred())

			vote := entities.NewFeatherVote("voter-1", poem.ID, entities.FeatherGold)
			Expect(voteRepo.Create(ctx, vote)).To(Succeed())

			Expect(service.DeletePoem(ctx, poem.ID)).To(MatchError(errors.ErrCannotDeletePoemWithVotes))
		})
	})

	Describe("ListAllPoems", func() {
		It("retorna todos os poemas sem paginação", func() {
			for _, title := range []string{"Primeiro", "Segundo", "Terceiro"} {
				_, err := service.CreateDraft(ctx, services.CreateDraftInput{
					AuthorID: author.ID,
					Title:    title,
					Content:  "Conteudo",
				})
				Expect(err).NotTo(HaveOccurred())
			}

			poems, err := service.ListAllPoems(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(poems).To(HaveLen(3))
		})
	})
})
