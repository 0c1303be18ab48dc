package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/poemario-backend/internal/domain/entities"
	"github.com/rafabene/poemario-backend/internal/domain/errors"
	"github.com/rafabene/poemario-backend/internal/services"
)

var _ = Describe("TotemService", func() {
	var (
		ctx       context.Context
		userRepo  *fakeUserRepo
		totemRepo *fakeTotemRepo
		service   *services.TotemService
	)

	BeforeEach(func() {
		ctx = context.Background()
		userRepo = newFakeUserRepo()
		totemRepo = newFakeTotemRepo(userRepo)
		service = services.NewTotemService(totemRepo, nopLogger{})
	})

	Describe("CreateTotem", func() {
		It("cria um totem com chave inédita", func() {
			totem, err := service.CreateTotem(ctx, services.CreateTotemInput{
				Key:  "owl",
				Name: "Coruja",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(totem.ID).NotTo(BeEmpty())
			Expect(totem.IsDefault()).To(BeFalse())
		})

		It("rejeita chave duplicada", func() {
			_, err := service.CreateTotem(ctx, services.CreateTotemInput{Key: "owl", Name: "Coruja"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CreateTotem(ctx, services.CreateTotemInput{Key: "owl", Name: "Outra"})
			Expect(err).To(MatchError(errors.ErrTotemKeyAlreadyExists))
		})
	})

	Describe("UpdateTotem", func() {
		It("atualiza apresentação mantendo a chave", func() {
			totem, err := service.CreateTotem(ctx, services.CreateTotemInput{Key: "owl", Name: "Coruja"})
			Expect(err).NotTo(HaveOccurred())

			name := "Coruja das Torres"
			updated, err := service.UpdateTotem(ctx, totem.ID, services.UpdateTotemInput{Name: &name})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("Coruja das Torres"))
			Expect(updated.Key).To(Equal("owl"))
		})
	})

	Describe("DeleteTotem", func() {
		It("remove totem sem usuários", func() {
			totem, err := service.CreateTotem(ctx, services.CreateTotemInput{Key: "owl", Name: "Coruja"})
			Expect(err).NotTo(HaveOccurred())

			Expect(service.DeleteTotem(ctx, totem.ID)).To(Succeed())
		})

		It("bloqueia remoção do totem sentinela", func() {
			sentinel, err := service.CreateTotem(ctx, services.CreateTotemInput{
				Key:  entities.DefaultTotemKey,
				Name: "Nenhum",
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(service.DeleteTotem(ctx, sentinel.ID)).To(MatchError(errors.ErrCannotDeleteDefaultTotem))
		})

		It("bloqueia remoção de totem em uso", func() {
			totem, err := service.CreateTotem(ctx, services.CreateTotemInput{Key: "owl", Name: "Coruja"})
			Expect(err).NotTo(HaveOccurred())

			user := &entities.User{Pseudo: "poeta", MoodColor: entities.MoodBlue, TotemID: &totem.ID}
			Expect(userRepo.Create(ctx, user)).To(Succeed())

			Expect(service.DeleteTotem(ctx, totem.ID)).To(MatchError(errors.ErrCannotDeleteTotemInUse))
		})

		It("retorna not found para totem inexistente", func() {
			Expect(service.DeleteTotem(ctx, "missing")).To(MatchError(errors.ErrTotemNotFound))
		})
	})
})
