package campussdk

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator instance. Field errors are keyed
// by JSON name and "notblank" rejects whitespace-only strings.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})
	return validate
}

// validateStruct returns field -> reason, or nil when s is valid.
func validateStruct(s any) map[string]string {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = reason(fe)
	}
	return out
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "required"
	case "max":
		return "too long (max " + fe.Param() + ")"
	default:
		return "invalid"
	}
}

// Validate checks required fields. Returns nil if valid.
func (r SignupRequest) Validate() map[string]string { return validateStruct(r) }

// Validate checks required fields. Returns nil if valid.
func (r LoginRequest) Validate() map[string]string { return validateStruct(r) }

// Validate checks required fields and lengths. Returns nil if valid.
func (r CreateQueryRequest) Validate() map[string]string { return validateStruct(r) }

// Validate checks required fields and lengths. Returns nil if valid.
func (r CreateCommentRequest) Validate() map[string]string { return validateStruct(r) }
