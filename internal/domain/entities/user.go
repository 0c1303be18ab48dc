package entities

import (
	"errors"
	"time"

	"github.com/rafabene/poemario-backend/internal/domain/valueobjects"
)

var (
	ErrInvalidUserData = errors.New("invalid user data")
)

// User representa um usuário do sistema
type User struct {
	ID                  string
	Email               valueobjects.Email
	Pseudo              string
	PasswordHash        string
	MoodColor           MoodColor
	TotemID             *string // referência opcional; nil significa sem totem
	Roles               []Role
	FailedLoginAttempts int
	LockedAt            *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsAdmin verifica se o usuário é admin
func (u *User) IsAdmin() bool {
	return u.HasRole(RoleAdmin)
}

// HasRole verifica se o usuário possui um papel
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasPermission verifica se algum papel do usuário concede a permissão
func (u *User) HasPermission(permission Permission) bool {
	for _, r := range u.Roles {
		if r.HasPermission(permission) {
			return true
		}
	}
	return false
}

// HasTotem verifica se o usuário tem um totem atribuído
func (u *User) HasTotem() bool {
	return u.TotemID != nil
}

// IsLocked verifica se a conta está bloqueada.
// O bloqueio não expira sozinho; só é removido por ResetFailedLoginAttempts.
func (u *User) IsLocked() bool {
	return u.LockedAt != nil
}

// IncrementFailedLoginAttempts registra mais uma tentativa de login falhada
func (u *User) IncrementFailedLoginAttempts() {
	u.FailedLoginAttempts++
}

// Lock bloqueia a conta registrando o instante do bloqueio
func (u *User) Lock() {
	now := time.Now().UTC()
	u.LockedAt = &now
}

// ResetFailedLoginAttempts zera o contador de tentativas e remove o bloqueio.
// Contador e bloqueio são redefinidos como uma unidade.
func (u *User) ResetFailedLoginAttempts() {
	u.FailedLoginAttempts = 0
	u.LockedAt = nil
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if u.Pseudo == "" {
		return errors.New("pseudo is required")
	}

	if len(u.Pseudo) < 2 {
		return errors.New("pseudo must be at least 2 characters")
	}

	if !u.MoodColor.IsValid() {
		return errors.New("invalid mood color")
	}

	for _, r := range u.Roles {
		if r != RoleAdmin && r != RoleUser {
			return errors.New("invalid role")
		}
	}

	return nil
}
