package dto

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/rafabene/poemario-backend/internal/domain/entities"
)

// RegisterValidators registra as validações customizadas dos enums de domínio
// no engine de binding do Gin
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("moodcolor", func(fl validator.FieldLevel) bool {
		return entities.MoodColor(fl.Field().String()).IsValid()
	})

	_ = v.RegisterValidation("feathertype", func(fl validator.FieldLevel) bool {
		return entities.FeatherType(fl.Field().String()).IsValid()
	})
}

// FromBindingError converte erros do binding em erros de validação de campo
func FromBindingError(err error) []ValidationError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	fields := make([]ValidationError, len(validationErrors))
	for i, fe := range validationErrors {
		fields[i] = ValidationError{
			Field:   fe.Field(),
			Message: fe.Error(),
			Tag:     fe.Tag(),
		}
	}
	return fields
}
