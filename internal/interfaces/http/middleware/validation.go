package middleware

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/sistemaempresa/backend/internal/interfaces/http/dto"
)

// SetupValidator makes validation errors report JSON (or form) field names
// instead of Go struct field names.
func SetupValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(fieldName)
	}
}

func fieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
	}
	return name
}

// ValidationDetails converts validator errors into per-field details.
// It returns nil when err is not a validation error (e.g. malformed JSON).
func ValidationDetails(err error) []dto.ValidationDetail {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	details := make([]dto.ValidationDetail, 0, len(validationErrors))
	for _, e := range validationErrors {
		details = append(details, dto.ValidationDetail{
			Field:   e.Field(),
			Message: validationMessage(e),
		})
	}
	return details
}

// validationMessage returns a human-readable message for a failed rule
func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "Campo obrigatório"
	case "email":
		return "Email inválido"
	case "max":
		if e.Kind() == reflect.String {
			return "Deve ter no máximo " + e.Param() + " caracteres"
		}
		return "Deve ser no máximo " + e.Param()
	case "min":
		if e.Kind() == reflect.String {
			return "Deve ter no mínimo " + e.Param() + " caracteres"
		}
		return "Deve ser no mínimo " + e.Param()
	case "gt":
		return "Deve ser maior que " + e.Param()
	case "gte":
		return "Deve ser maior ou igual a " + e.Param()
	case "oneof":
		return "Deve ser um de: " + e.Param()
	case "datetime":
		return "Data inválida, use o formato AAAA-MM-DD"
	default:
		return "Valor inválido"
	}
}
