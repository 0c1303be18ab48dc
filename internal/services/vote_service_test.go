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

var _ = Describe("VoteService", func() {
	var (
		ctx       context.Context
		userRepo  *fakeUserRepo
		poemRepo  *fakePoemRepo
		voteRepo  *fakeVoteRepo
		publisher *recordingPublisher
		service   *services.VoteService

		author *entities.User
		voter  *entities.User
		poem   *entities.Poem
	)

	BeforeEach(func() {
		ctx = context.Background()
		userRepo = newFakeUserRepo()
		poemRepo = newFakePoemRepo()
		voteRepo = newFakeVoteRepo()
		publisher = &recordingPublisher{}
		service = services.NewVoteService(voteRepo, poemRepo, userRepo, fakeUOW{}, publisher, nopLogger{})

		author = &entities.User{Pseudo: "autor", MoodColor: entities.MoodBlue}
		Expect(userRepo.Create(ctx, author)).To(Succeed())

		voter = &entities.User{Pseudo: "leitor", MoodColor: entities.MoodRed}
		Expect(userRepo.Create(ctx, voter)).To(Succeed())

		poem = entities.NewDraft(author.ID, "Titulo", "Conteudo", entities.MoodBlue)
		poem.Publish()
		Expect(poemRepo.Create(ctx, poem)).To(Succeed())
	})

	Describe("CastVote", func() {
		It("cria um voto novo com created=true", func() {
			vote, created, err := service.CastVote(ctx, voter.ID, poem.ID, entities.FeatherGold)

			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeTrue())
			Expect(vote.FeatherType).To(Equal(entities.FeatherGold))
			Expect(vote.VoterID).To(Equal(voter.ID))
			Expect(vote.PoemID).To(Equal(poem.ID))
		})

		It("usa BRONZE quando nenhum nível é informado", func() {
			vote, _, err := service.CastVote(ctx, voter.ID, poem.ID, "")

			Expect(err).NotTo(HaveOccurred())
			Expect(vote.FeatherType).To(Equal(entities.FeatherBronze))
		})

		It("atualiza o voto existente do mesmo par com created=false", func() {
			first, created, err := service.CastVote(ctx, voter.ID, poem.ID, entities.FeatherBronze)
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeTrue())

			second, created, err := service.CastVote(ctx, voter.ID, poem.ID, entities.FeatherGold)
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeFalse())
			Expect(second.ID).To(Equal(first.ID))
			Expect(second.FeatherType).To(Equal(entities.FeatherGold))

			count, err := voteRepo.CountByPoem(ctx, poem.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(1)))
		})

		It("repetir o mesmo nível é idempotente", func() {
			_, _, err := service.CastVote(ctx, voter.ID, poem.ID, entities.FeatherSilver)
			Expect(err).NotTo(HaveOccurred())

			vote, created, err := service.CastVote(ctx, voter.ID, poem.ID, entities.FeatherSilver)
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeFalse())
			Expect(vote.FeatherType).To(Equal(entities.FeatherSilver))
		})

		It("rejeita voto do autor no próprio poema", func() {
			_, _, err := service.CastVote(ctx, author.ID, poem.ID, entities.FeatherGold)

			Expect(err).To(MatchError(errors.ErrCannotVoteOwnPoem))
		})

		It("rejeita votante inexistente", func() {
			_, _, err := service.CastVote(ctx, "missing", poem.ID, entities.FeatherGold)

			Expect(err).To(MatchError(errors.ErrUserNotFound))
		})

		It("rejeita poema inexistente", func() {
			_, _, err := service.CastVote(ctx, voter.ID, "missing", entities.FeatherGold)

			Expect(err).To(MatchError(errors.ErrPoemNotFound))
		})

		It("recalcula o símbolo do poema após o voto", func() {
			_, _, err := service.CastVote(ctx, voter.ID, poem.ID, entities.FeatherGold)
			Expect(err).NotTo(HaveOccurred())

			updated, err := poemRepo.FindByID(ctx, poem.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.SymbolType).NotTo(BeNil())
			// humor BLUE, pontuação 7: faixa baixa contemplativa
			Expect(*updated.SymbolType).To(Equal(entities.SymbolHorizon))
		})

		It("publica um evento vote.cast", func() {
			_, _, err := service.CastVote(ctx, voter.ID, poem.ID, entities.FeatherGold)
			Expect(err).NotTo(HaveOccurred())

			Expect(publisher.events).To(HaveLen(1))
			Expect(publisher.events[0].Name).To(Equal(ports.EventVoteCast))
		})
	})

	Describe("DeleteVote", func() {
		It("remove o voto e recalcula o símbolo", func() {
			vote, _, err := service.CastVote(ctx, voter.ID, poem.ID, entities.FeatherGold)
			Expect(err).NotTo(HaveOccurred())

			Expect(service.DeleteVote(ctx, vote.ID)).To(Succeed())

			count, err := voteRepo.CountByPoem(ctx, poem.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(BeZero())

			updated, err := poemRepo.FindByID(ctx, poem.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.SymbolType).NotTo(BeNil())
			// sem votos a pontuação volta à faixa baixa
			Expect(*updated.SymbolType).To(Equal(entities.SymbolHorizon))
		})

		It("retorna not found para voto inexistente", func() {
			Expect(service.DeleteVote(ctx, "missing")).To(MatchError(errors.ErrVoteNotFound))
		})
	})

	Describe("listagens sem paginação", func() {
		var second *entities.User

		BeforeEach(func() {
			second = &entities.User{Pseudo: "outro-leitor", MoodColor: entities.MoodGreen}
			Expect(userRepo.Create(ctx, second)).To(Succeed())

			_, _, err := service.CastVote(ctx, voter.ID, poem.ID, entities.FeatherGold)
			Expect(err).NotTo(HaveOccurred())
			_, _, err = service.CastVote(ctx, second.ID, poem.ID, entities.FeatherSilver)
			Expect(err).NotTo(HaveOccurred())
		})

		It("ListAllVotes retorna todos os votos", func() {
			votes, err := service.ListAllVotes(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(votes).To(HaveLen(2))
		})

		It("ListAllVotesByPoem retorna os votos do poema", func() {
			votes, err := service.ListAllVotesByPoem(ctx, poem.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(votes).To(HaveLen(2))
		})

		It("ListAllVotesByPoem rejeita poema inexistente", func() {
			_, err := service.ListAllVotesByPoem(ctx, "missing")

			Expect(err).To(MatchError(errors.ErrPoemNotFound))
		})

		It("ListAllVotesByVoter retorna apenas os votos do votante", func() {
			votes, err := service.ListAllVotesByVoter(ctx, voter.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(votes).To(HaveLen(1))
			Expect(votes[0].VoterID).To(Equal(voter.ID))
		})

		It("ListAllVotesByVoter rejeita votante inexistente", func() {
			_, err := service.ListAllVotesByVoter(ctx, "missing")

			Expect(err).To(MatchError(errors.ErrUserNotFound))
		})
	})
})
