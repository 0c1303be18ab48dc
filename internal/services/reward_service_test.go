package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/poemario-backend/internal/domain/entities"
	"github.com/rafabene/poemario-backend/internal/domain/errors"
	"github.com/rafabene/poemario-backend/internal/services"
)

var _ = Describe("RewardService", func() {
	var (
		ctx        context.Context
		userRepo   *fakeUserRepo
		rewardRepo *fakeRewardRepo
		service    *services.RewardService

		user *entities.User
	)

	BeforeEach(func() {
		ctx = context.Background()
		userRepo = newFakeUserRepo()
		rewardRepo = newFakeRewardRepo()
		service = services.NewRewardService(rewardRepo, userRepo, nopLogger{})

		user = &entities.User{Pseudo: "poeta", MoodColor: entities.MoodBlue}
		Expect(userRepo.Create(ctx, user)).To(Succeed())
	})

	Describe("CreateReward", func() {
		It("cria uma recompensa com nome inédito", func() {
			reward, err := service.CreateReward(ctx, services.CreateRewardInput{Name: "first_poem"})

			Expect(err).NotTo(HaveOccurred())
			Expect(reward.ID).NotTo(BeEmpty())
		})

		It("rejeita nome duplicado", func() {
			_, err := service.CreateReward(ctx, services.CreateRewardInput{Name: "first_poem"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CreateReward(ctx, services.CreateRewardInput{Name: "first_poem"})
			Expect(err).To(MatchError(errors.ErrRewardNameAlreadyExists))
		})
	})

	Describe("GrantReward", func() {
		var reward *entities.Reward

		BeforeEach(func() {
			var err error
			reward, err = service.CreateReward(ctx, services.CreateRewardInput{Name: "first_poem"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("concede a recompensa uma vez", func() {
			link, err := service.GrantReward(ctx, user.ID, reward.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(link.UserID).To(Equal(user.ID))
			Expect(link.RewardID).To(Equal(reward.ID))
		})

		It("rejeita concessão duplicada do mesmo par", func() {
			_, err := service.GrantReward(ctx, user.ID, reward.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.GrantReward(ctx, user.ID, reward.ID)
			Expect(err).To(MatchError(errors.ErrRewardAlreadyGranted))
		})

		It("rejeita usuário inexistente", func() {
			_, err := service.GrantReward(ctx, "missing", reward.ID)

			Expect(err).To(MatchError(errors.ErrUserNotFound))
		})

		It("rejeita recompensa inexistente", func() {
			_, err := service.GrantReward(ctx, user.ID, "missing")

			Expect(err).To(MatchError(errors.ErrRewardNotFound))
		})
	})

	Describe("RevokeReward", func() {
		It("revogar permite conceder novamente", func() {
			reward, err := service.CreateReward(ctx, services.CreateRewardInput{Name: "first_poem"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.GrantReward(ctx, user.ID, reward.ID)
			Expect(err).NotTo(HaveOccurred())

			Expect(service.RevokeReward(ctx, user.ID, reward.ID)).To(Succeed())

			_, err = service.GrantReward(ctx, user.ID, reward.ID)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("DeleteReward", func() {
		It("remove recompensa nunca concedida", func() {
			reward, err := service.CreateReward(ctx, services.CreateRewardInput{Name: "first_poem"})
			Expect(err).NotTo(HaveOccurred())

			Expect(service.DeleteReward(ctx, reward.ID)).To(Succeed())
		})

		It("bloqueia remoção de recompensa concedida", func() {
			reward, err := service.CreateReward(ctx, services.CreateRewardInput{Name: "first_poem"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.GrantReward(ctx, user.ID, reward.ID)
			Expect(err).NotTo(HaveOccurred())

			Expect(service.DeleteReward(ctx, reward.ID)).To(MatchError(errors.ErrCannotDeleteGrantedReward))
		})
	})
})
