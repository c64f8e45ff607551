package http

import (
	"errors"
	"reflect"
	"strings"

	"loan-tracker/internal/domain/apperr"
	"loan-tracker/internal/domain/loan"

	"github.com/go-playground/validator/v10"
)

// Reusable error payload, shared with the middleware
type (
	FieldError    = apperr.FieldError
	ErrorResponse = apperr.ErrorResponse
)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// report fields by their json name
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return f.Name
		}
		return name
	})
	// employment = one of the known employment statuses
	_ = v.RegisterValidation("employment", func(fl validator.FieldLevel) bool {
		return loan.EmploymentStatus(fl.Field().String()).Valid()
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "notblank":
			out = append(out, FieldError{Field: field, Message: "must not be blank"})
		case "employment":
			out = append(out, FieldError{Field: field, Message: "must be one of employed, unemployed, self-employed"})
		case "required_unless":
			out = append(out, FieldError{Field: field, Message: "is required unless " + strings.Replace(e.Param(), " ", " is ", 1)})
		case "gt":
			out = append(out, FieldError{Field: field, Message: "must be greater than " + e.Param()})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "lte":
			out = append(out, FieldError{Field: field, Message: "must be less than or equal to " + e.Param()})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
