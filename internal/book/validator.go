package book

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"libraryapi/internal/httpx"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	_ = validate.RegisterValidation("isbn_digits", validateISBNDigits)
}

func validateISBNDigits(fl validator.FieldLevel) bool {
	return isbnPattern.MatchString(CleanISBN(fl.Field().String()))
}

// validateStruct runs the tag-based DTO checks and renders field-level
// messages for the error envelope.
func validateStruct(s interface{}) []httpx.ErrorDetail {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var details []httpx.ErrorDetail
	for _, fieldErr := range err.(validator.ValidationErrors) {
		field := fieldErr.Field()
		param := fieldErr.Param()

		var message string
		switch fieldErr.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, param)
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters", field, param)
		case "isbn_digits":
			message = fmt.Sprintf("%s must be 10 or 13 digits", field)
		case "gte":
			message = fmt.Sprintf("%s must be at least %s", field, param)
		case "lte":
			message = fmt.Sprintf("%s must be at most %s", field, param)
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", field, param)
		case "email":
			message = fmt.Sprintf("%s must be a valid email address", field)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		fieldName := strings.ToLower(field[:1]) + field[1:]
		details = append(details, httpx.ErrorDetail{
			Field:   fieldName,
			Message: message,
		})
	}

	return details
}
