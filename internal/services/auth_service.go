package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/poemario-backend/internal/domain/entities"
	"github.com/rafabene/poemario-backend/internal/domain/errors"
	"github.com/rafabene/poemario-backend/internal/domain/ports"
	"github.com/rafabene/poemario-backend/internal/domain/repositories"
	"github.com/rafabene/poemario-backend/internal/domain/valueobjects"
)

// AuthConfig contém os parâmetros de autenticação do serviço
type AuthConfig struct {
	JWTSecret       string
	AccessExpiry    time.Duration
	MaxLoginRetries int
}

// AuthService contém a lógica de autenticação e bloqueio de contas
type AuthService struct {
	userRepo repositories.UserRepository
	cfg      AuthConfig
	logger   ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(userRepo repositories.UserRepository, cfg AuthConfig, logger ports.Logger) *AuthService {
	if cfg.AccessExpiry == 0 {
		cfg.AccessExpiry = 24 * time.Hour
	}
	if cfg.MaxLoginRetries == 0 {
		cfg.MaxLoginRetries = 5
	}
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
		logger:   logger,
	}
}

// LoginResult representa o resultado de um login bem-sucedido
type LoginResult struct {
	User        *entities.User
	AccessToken string
	ExpiresAt   time.Time
}

// Login autentica um usuário por email e senha.
// Senha incorreta incrementa o contador de tentativas falhadas e bloqueia a
// conta ao atingir o limite configurado. Um login bem-sucedido zera contador
// e bloqueio juntos. Contas bloqueadas só voltam por reset manual: o bloqueio
// não expira com o tempo.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	// emails são armazenados normalizados; normaliza antes da busca
	normalized, err := valueobjects.NewEmail(email)
	if err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, normalized.String())
	if err != nil {
		return nil, err
	}
	if user == nil {
		// mesma resposta de credencial inválida para não revelar contas
		return nil, errors.ErrInvalidCredentials
	}

	if user.IsLocked() {
		s.logger.Warn("login attempt on locked account", "user_id", user.ID)
		return nil, errors.ErrUserLocked
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		user.IncrementFailedLoginAttempts()
		if user.FailedLoginAttempts >= s.cfg.MaxLoginRetries {
			user.Lock()
			s.logger.Warn("account locked after failed attempts",
				"user_id", user.ID,
				"attempts", user.FailedLoginAttempts,
			)
		}
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
		return nil, errors.ErrInvalidCredentials
	}

	user.ResetFailedLoginAttempts()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	token, expiresAt, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return &LoginResult{
		User:        user,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

// UnlockUser remove manualmente o bloqueio de uma conta, zerando também o
// contador de tentativas
func (s *AuthService) UnlockUser(ctx context.Context, userID string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	user.ResetFailedLoginAttempts()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user unlocked", "user_id", user.ID)
	return user, nil
}

// Claims representa as claims do token de acesso
type Claims struct {
	Roles []entities.Role `json:"roles"`
	jwt.RegisteredClaims
}

// issueToken emite um JWT HS256 com o id do usuário como subject
func (s *AuthService) issueToken(user *entities.User) (string, time.Time, error) {
	expiresAt := time.Now().UTC().Add(s.cfg.AccessExpiry)

	claims := Claims{
		Roles: user.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// ParseToken valida um token de acesso e retorna suas claims
func (s *AuthService) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.ErrUnauthorized
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, errors.ErrUnauthorized
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.ErrUnauthorized
	}

	return claims, nil
}
