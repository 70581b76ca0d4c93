package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var loginIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance
func New() *CustomValidator {
	v := validator.New()

	// login ids: alphanumeric plus _ . -
	_ = v.RegisterValidation("login_id", func(fl validator.FieldLevel) bool {
		return loginIDPattern.MatchString(fl.Field().String())
	})

	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}
