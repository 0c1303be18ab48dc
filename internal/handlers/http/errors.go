package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/poemario-backend/internal/domain/errors"
	"github.com/rafabene/poemario-backend/internal/handlers/dto"
)

// respondError traduz um erro de negócio para a resposta RFC 7807 adequada.
// Cada violação de regra mapeia para exatamente um tipo de resposta; a chave
// i18n do erro vira o detail traduzido.
func respondError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errors.ErrUserNotFound),
		errs.Is(err, errors.ErrPoemNotFound),
		errs.Is(err, errors.ErrVoteNotFound),
		errs.Is(err, errors.ErrTotemNotFound),
		errs.Is(err, errors.ErrRewardNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, err.Error()))

	case errs.Is(err, errors.ErrEmailAlreadyExists),
		errs.Is(err, errors.ErrTotemKeyAlreadyExists),
		errs.Is(err, errors.ErrRewardNameAlreadyExists),
		errs.Is(err, errors.ErrRewardAlreadyGranted),
		errs.Is(err, errors.ErrCannotPublishWithoutTotem),
		errs.Is(err, errors.ErrCannotUpdatePublishedPoem),
		errs.Is(err, errors.ErrCannotDeletePoemWithVotes),
		errs.Is(err, errors.ErrCannotVoteOwnPoem),
		errs.Is(err, errors.ErrCannotDeleteUserWithPoems),
		errs.Is(err, errors.ErrCannotDeleteUserWithVotes),
		errs.Is(err, errors.ErrCannotDeleteUserWithRewards),
		errs.Is(err, errors.ErrCannotDeleteTotemInUse),
		errs.Is(err, errors.ErrCannotDeleteDefaultTotem),
		errs.Is(err, errors.ErrCannotDeleteGrantedReward):
		c.JSON(http.StatusConflict, dto.ConflictErrorResponseI18n(c, err.Error()))

	case errs.Is(err, errors.ErrInvalidCredentials),
		errs.Is(err, errors.ErrUserLocked),
		errs.Is(err, errors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, err.Error()))

	case errs.Is(err, errors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c))

	case errs.Is(err, errors.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, []dto.ValidationError{
			{Field: "email", Message: dto.T(c, err.Error())},
		}))

	default:
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
	}
}
