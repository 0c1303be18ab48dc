package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	// NotFound
	ErrUserNotFound   = errors.New("error.user_not_found")
	ErrPoemNotFound   = errors.New("error.poem_not_found")
	ErrVoteNotFound   = errors.New("error.vote_not_found")
	ErrTotemNotFound  = errors.New("error.totem_not_found")
	ErrRewardNotFound = errors.New("error.reward_not_found")

	// Conflict (unicidade detectada antes da mutação)
	ErrEmailAlreadyExists      = errors.New("error.email_already_exists")
	ErrTotemKeyAlreadyExists   = errors.New("error.totem_key_already_exists")
	ErrRewardNameAlreadyExists = errors.New("error.reward_name_already_exists")
	ErrRewardAlreadyGranted    = errors.New("error.reward_already_granted")

	// Regras do ciclo de vida de poemas
	ErrCannotPublishWithoutTotem = errors.New("error.cannot_publish_without_totem")
	ErrCannotUpdatePublishedPoem = errors.New("error.cannot_update_published_poem")
	ErrCannotDeletePoemWithVotes = errors.New("error.cannot_delete_poem_with_votes")

	// Regras de votos
	ErrCannotVoteOwnPoem = errors.New("error.cannot_vote_own_poem")

	// Guardas de deleção de usuário (poemas antes de votos antes de recompensas)
	ErrCannotDeleteUserWithPoems   = errors.New("error.cannot_delete_user_with_poems")
	ErrCannotDeleteUserWithVotes   = errors.New("error.cannot_delete_user_with_votes")
	ErrCannotDeleteUserWithRewards = errors.New("error.cannot_delete_user_with_rewards")

	// Guardas de deleção de catálogo
	ErrCannotDeleteTotemInUse    = errors.New("error.cannot_delete_totem_in_use")
	ErrCannotDeleteDefaultTotem  = errors.New("error.cannot_delete_default_totem")
	ErrCannotDeleteGrantedReward = errors.New("error.cannot_delete_granted_reward")

	// Autenticação
	ErrInvalidCredentials = errors.New("error.invalid_credentials")
	ErrUserLocked         = errors.New("error.user_locked")
	ErrUnauthorized       = errors.New("error.unauthorized")
	ErrForbidden          = errors.New("error.forbidden")
)

// Domain errors
var (
	ErrInvalidEmail = errors.New("error.invalid_email")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Type    string
	Title   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
