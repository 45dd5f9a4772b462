package customvalidator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var phoneRegexp = regexp.MustCompile(`^\+?[0-9]{6,15}$`)

// RegisterCustomValidations attaches the project-specific rules to a
// validator instance. Must be called once during startup.
func RegisterCustomValidations(v *validator.Validate) error {
	return v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegexp.MatchString(fl.Field().String())
	})
}
