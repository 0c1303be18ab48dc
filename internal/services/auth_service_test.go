package services_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/poemario-backend/internal/domain/entities"
	"github.com/rafabene/poemario-backend/internal/domain/errors"
	"github.com/rafabene/poemario-backend/internal/domain/valueobjects"
	"github.com/rafabene/poemario-backend/internal/services"
)

var _ = Describe("AuthService", func() {
	const password = "segredo-forte"

	var (
		ctx      context.Context
		userRepo *fakeUserRepo
		service  *services.AuthService
		user     *entities.User
	)

	BeforeEach(func() {
		ctx = context.Background()
		userRepo = newFakeUserRepo()
		service = services.NewAuthService(userRepo, services.AuthConfig{
			JWTSecret:       "test-secret",
			AccessExpiry:    time.Hour,
			MaxLoginRetries: 3,
		}, nopLogger{})

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		Expect(err).NotTo(HaveOccurred())

		email, err := valueobjects.NewEmail("poeta@example.com")
		Expect(err).NotTo(HaveOccurred())

		user = &entities.User{
			Email:        email,
			Pseudo:       "poeta",
			PasswordHash: string(hash),
			MoodColor:    entities.MoodBlue,
			Roles:        []entities.Role{entities.RoleUser},
		}
		Expect(userRepo.Create(ctx, user)).To(Succeed())
	})

	Describe("Login", func() {
		It("emite um token válido com credenciais corretas", func() {
			result, err := service.Login(ctx, "poeta@example.com", password)

			Expect(err).NotTo(HaveOccurred())
			Expect(result.AccessToken).NotTo(BeEmpty())
			Expect(result.ExpiresAt).To(BeTemporally(">", time.Now()))

			claims, err := service.ParseToken(result.AccessToken)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.Subject).To(Equal(user.ID))
			Expect(claims.Roles).To(ConsistOf(entities.RoleUser))
		})

		It("aceita o email com capitalização e espaços diferentes do cadastro", func() {
			result, err := service.Login(ctx, " Poeta@Example.COM ", password)

			Expect(err).NotTo(HaveOccurred())
			Expect(result.User.ID).To(Equal(user.ID))
		})

		It("rejeita email malformado como credencial inválida", func() {
			_, err := service.Login(ctx, "não-é-um-email", password)

			Expect(err).To(MatchError(errors.ErrInvalidCredentials))
		})

		It("rejeita email desconhecido com a mesma mensagem de credencial", func() {
			_, err := service.Login(ctx, "ninguem@example.com", password)

			Expect(err).To(MatchError(errors.ErrInvalidCredentials))
		})

		It("senha incorreta incrementa o contador de tentativas", func() {
			_, err := service.Login(ctx, "poeta@example.com", "errada")
			Expect(err).To(MatchError(errors.ErrInvalidCredentials))

			stored, err := userRepo.FindByID(ctx, user.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.FailedLoginAttempts).To(Equal(1))
			Expect(stored.IsLocked()).To(BeFalse())
		})

		It("bloqueia a conta ao atingir o limite de tentativas", func() {
			for i := 0; i < 3; i++ {
				_, err := service.Login(ctx, "poeta@example.com", "errada")
				Expect(err).To(MatchError(errors.ErrInvalidCredentials))
			}

			stored, err := userRepo.FindByID(ctx, user.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.IsLocked()).To(BeTrue())

			// conta bloqueada rejeita até a senha correta
			_, err = service.Login(ctx, "poeta@example.com", password)
			Expect(err).To(MatchError(errors.ErrUserLocked))
		})

		It("login bem-sucedido zera contador e bloqueio juntos", func() {
			_, err := service.Login(ctx, "poeta@example.com", "errada")
			Expect(err).To(MatchError(errors.ErrInvalidCredentials))

			_, err = service.Login(ctx, "poeta@example.com", password)
			Expect(err).NotTo(HaveOccurred())

			stored, err := userRepo.FindByID(ctx, user.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.FailedLoginAttempts).To(BeZero())
			Expect(stored.IsLocked()).To(BeFalse())
		})
	})

	Describe("UnlockUser", func() {
		It("remove o bloqueio e zera o contador", func() {
			for i := 0; i < 3; i++ {
				_, _ = service.Login(ctx, "poeta@example.com", "errada")
			}

			unlocked, err := service.UnlockUser(ctx, user.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(unlocked.IsLocked()).To(BeFalse())
			Expect(unlocked.FailedLoginAttempts).To(BeZero())

			// volta a aceitar a senha correta
			_, err = service.Login(ctx, "poeta@example.com", password)
			Expect(err).NotTo(HaveOccurred())
		})

		It("retorna not found para usuário inexistente", func() {
			_, err := service.UnlockUser(ctx, "missing")

			Expect(err).To(MatchError(errors.ErrUserNotFound))
		})
	})

	Describe("ParseToken", func() {
		It("rejeita token assinado com outro segredo", func() {
			other := services.NewAuthService(userRepo, services.AuthConfig{
				JWTSecret:    "another-secret",
				AccessExpiry: time.Hour,
			}, nopLogger{})

			result, err := other.Login(ctx, "poeta@example.com", password)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.ParseToken(result.AccessToken)
			Expect(err).To(HaveOccurred())
		})
	})
})
