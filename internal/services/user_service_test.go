package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/poemario-backend/internal/domain/entities"
	"github.com/rafabene/poemario-backend/internal/domain/errors"
	"github.com/rafabene/poemario-backend/internal/services"
)

var _ = Describe("UserService", func() {
	var (
		ctx        context.Context
		userRepo   *fakeUserRepo
		poemRepo   *fakePoemRepo
		voteRepo   *fakeVoteRepo
		totemRepo  *fakeTotemRepo
		rewardRepo *fakeRewardRepo
		service    *services.UserService
	)

	BeforeEach(func() {
		ctx = context.Background()
		userRepo = newFakeUserRepo()
		poemRepo = newFakePoemRepo()
		voteRepo = newFakeVoteRepo()
		totemRepo = newFakeTotemRepo(userRepo)
		rewardRepo = newFakeRewardRepo()
		service = services.NewUserService(userRepo, poemRepo, voteRepo, totemRepo, rewardRepo, nopLogger{})
	})

	Describe("CreateUser", func() {
		It("cria um usuário com humor e papel padrão", func() {
			user, err := service.CreateUser(ctx, services.CreateUserInput{
				Email:    "poeta@example.com",
				Pseudo:   "poeta",
				Password: "segredo-forte",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).NotTo(BeEmpty())
			Expect(user.MoodColor).To(Equal(entities.DefaultMoodColor))
			Expect(user.Roles).To(ConsistOf(entities.RoleUser))
			Expect(user.PasswordHash).NotTo(Equal("segredo-forte"))
		})

		It("rejeita email já cadastrado", func() {
			_, err := service.CreateUser(ctx, services.CreateUserInput{
				Email:    "poeta@example.com",
				Pseudo:   "poeta",
				Password: "segredo-forte",
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CreateUser(ctx, services.CreateUserInput{
				Email:    "POETA@example.com",
				Pseudo:   "outro",
				Password: "segredo-forte",
			})
			Expect(err).To(MatchError(errors.ErrEmailAlreadyExists))
		})

		It("rejeita email inválido", func() {
			_, err := service.CreateUser(ctx, services.CreateUserInput{
				Email:    "nao-e-email",
				Pseudo:   "poeta",
				Password: "segredo-forte",
			})

			Expect(err).To(MatchError(errors.ErrInvalidEmail))
		})

		It("resolve totem por chave", func() {
			totem := &entities.Totem{Key: "owl", Name: "Coruja"}
			Expect(totemRepo.Create(ctx, totem)).To(Succeed())

			key := "owl"
			user, err := service.CreateUser(ctx, services.CreateUserInput{
				Email:    "poeta@example.com",
				Pseudo:   "poeta",
				Password: "segredo-forte",
				TotemKey: &key,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(user.TotemID).NotTo(BeNil())
			Expect(*user.TotemID).To(Equal(totem.ID))
		})

		It("rejeita totem inexistente", func() {
			id := "missing"
			_, err := service.CreateUser(ctx, services.CreateUserInput{
				Email:    "poeta@example.com",
				Pseudo:   "poeta",
				Password: "segredo-forte",
				TotemID:  &id,
			})

			Expect(err).To(MatchError(errors.ErrTotemNotFound))
		})
	})

	Describe("UpdateUser", func() {
		var user *entities.User

		BeforeEach(func() {
			var err error
			user, err = service.CreateUser(ctx, services.CreateUserInput{
				Email:    "poeta@example.com",
				Pseudo:   "poeta",
				Password: "segredo-forte",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("permite manter o próprio email", func() {
			email := "poeta@example.com"
			updated, err := service.UpdateUser(ctx, user.ID, services.UpdateUserInput{Email: &email})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Email.String()).To(Equal(email))
		})

		It("rejeita email de outro usuário", func() {
			_, err := service.CreateUser(ctx, services.CreateUserInput{
				Email:    "outro@example.com",
				Pseudo:   "outro",
				Password: "segredo-forte",
			})
			Expect(err).NotTo(HaveOccurred())

			email := "outro@example.com"
			_, err = service.UpdateUser(ctx, user.ID, services.UpdateUserInput{Email: &email})
			Expect(err).To(MatchError(errors.ErrEmailAlreadyExists))
		})

		It("campos não informados permanecem inalterados", func() {
			pseudo := "novo-pseudo"
			updated, err := service.UpdateUser(ctx, user.ID, services.UpdateUserInput{Pseudo: &pseudo})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Pseudo).To(Equal("novo-pseudo"))
			Expect(updated.Email.String()).To(Equal("poeta@example.com"))
		})
	})

	Describe("DeleteUser", func() {
		var user *entities.User

		BeforeEach(func() {
			var err error
			user, err = service.CreateUser(ctx, services.CreateUserInput{
				Email:    "poeta@example.com",
				Pseudo:   "poeta",
				Password: "segredo-forte",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("remove usuário sem registros dependentes", func() {
			Expect(service.DeleteUser(ctx, user.ID)).To(Succeed())

			found, err := userRepo.FindByID(ctx, user.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeNil())
		})

		It("bloqueia remoção enquanto houver poemas", func() {
			poem := entities.NewDraft(user.ID, "Titulo", "Conteudo", entities.MoodBlue)
			Expect(poemRepo.Create(ctx, poem)).To(Succeed())

			Expect(service.DeleteUser(ctx, user.ID)).To(MatchError(errors.ErrCannotDeleteUserWithPoems))
		})

		It("bloqueia remoção enquanto houver votos emitidos", func() {
			vote := entities.NewFeatherVote(user.ID, "poem-x", entities.FeatherGold)
			Expect(voteRepo.Create(ctx, vote)).To(Succeed())

			Expect(service.DeleteUser(ctx, user.ID)).To(MatchError(errors.ErrCannotDeleteUserWithVotes))
		})

		It("bloqueia remoção enquanto houver recompensas concedidas", func() {
			Expect(rewardRepo.Grant(ctx, &entities.UserReward{UserID: user.ID, RewardID: "reward-x"})).To(Succeed())

			Expect(service.DeleteUser(ctx, user.ID)).To(MatchError(errors.ErrCannotDeleteUserWithRewards))
		})

		It("retorna not found para usuário inexistente", func() {
			Expect(service.DeleteUser(ctx, "missing")).To(MatchError(errors.ErrUserNotFound))
		})
	})
})
