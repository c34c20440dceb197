// Package validator wraps go-playground/validator with the validation rules
// the record service relies on and translates failures into domain errors.
package validator

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"volunteerhub/internal/domain"
)

var (
	global *validator.Validate

	// local@domain.tld with no whitespace or extra @ runs.
	emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

func init() {
	SetValidator(New())
}

// New builds a Validate instance with the custom rules registered and struct
// fields reported by their json names.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("record_email", validateRecordEmail)
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func SetValidator(v *validator.Validate) {
	global = v
}

func Validator() *validator.Validate {
	return global
}

func validateRecordEmail(fl validator.FieldLevel) bool {
	return emailRegexp.MatchString(fl.Field().String())
}

// Validate runs struct validation and converts the first failure into a
// *domain.ValidationError.
func Validate(structure any) error {
	err := Validator().Struct(structure)
	if err == nil {
		return nil
	}
	vErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(vErrors) == 0 {
		return err
	}
	ve := vErrors[0]
	switch ve.Tag() {
	case "required":
		return domain.NewValidationError(ve.Field(), "is required")
	case "record_email":
		return domain.NewValidationError(ve.Field(), "is not a valid email address")
	default:
		return domain.NewValidationError(ve.Field(), "is invalid")
	}
}
