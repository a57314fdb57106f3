package utils

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"todo-backend/domain/models"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator instance เดียวทั้ง process พร้อม custom tags
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("attachmentid", func(fl validator.FieldLevel) bool {
			return models.ValidAttachmentID(fl.Field().String())
		})
	})
	return validate
}

func ValidateStruct(s interface{}) error {
	return Validator().Struct(s)
}

// GetValidationErrors แปลง validator errors เป็น map field -> message
func GetValidationErrors(err error) map[string]string {
	result := map[string]string{}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		result["_"] = err.Error()
		return result
	}

	for _, fe := range validationErrors {
		result[fe.Field()] = validationMessage(fe)
	}
	return result
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "attachmentid":
		return "must contain only letters, digits, '.', '_' or '-' (max 128)"
	default:
		return fmt.Sprintf("failed on %s", fe.Tag())
	}
}
