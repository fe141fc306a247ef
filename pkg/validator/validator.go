package validator

import (
	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(),
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "required_if":
				errors[field] = field + " is required for this payment method"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "oneof":
				errors[field] = field + " must be one of: " + e.Param()
			case "datetime":
				errors[field] = field + " must be a date in format " + e.Param()
			case "min":
				errors[field] = field + " must have at least " + e.Param() + " entries"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "uuid":
				errors[field] = field + " must be a valid identifier"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
