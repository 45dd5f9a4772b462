package utils

import (
	"github.com/go-playground/validator/v10"

	apperrors "forms-backend/pkg/errors"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator(v *validator.Validate) *CustomValidator {
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return apperrors.NewInvalidInputError("validation failed: %v", err)
	}
	return nil
}
