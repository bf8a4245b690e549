package browse

import (
	"errors"
	"fmt"
	"strings"

	"bbws/internal/apperr"
	"bbws/internal/entity"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("entity_kind", validateEntityKind)
}

func validateEntityKind(fl validator.FieldLevel) bool {
	return entity.Kind(fl.Field().String()).Valid()
}

// validateStruct runs the struct's validate tags and reports failures as
// field errors keyed by the lower-camel field name.
func validateStruct(s interface{}) []apperr.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []apperr.FieldError{{Field: "", Message: err.Error()}}
	}

	out := make([]apperr.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()

		var message string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		case "entity_kind":
			message = fmt.Sprintf("%s must be one of %s", field, kindList())
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		out = append(out, apperr.FieldError{
			Field:   strings.ToLower(field[:1]) + field[1:],
			Message: message,
		})
	}
	return out
}

func kindList() string {
	names := make([]string, 0, len(entity.Kinds()))
	for _, k := range entity.Kinds() {
		names = append(names, string(k))
	}
	return strings.Join(names, ", ")
}
