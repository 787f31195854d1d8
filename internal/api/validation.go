package api

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// newValidator builds the validator shared by all handlers, configured to
// report fields by their JSON names so violation messages match the wire
// contract rather than Go identifiers.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationMessages converts a validator error into one aggregated,
// client-safe message: one field-attributed sentence per violation, joined
// in declaration order. Non-validator errors collapse to a generic phrase so
// internal error shapes never leak.
func ValidationMessages(err error) string {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return MsgInvalidData
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages, fieldMessage(fieldErr))
	}
	return strings.Join(messages, "; ")
}

// fieldMessage renders a single violation with the original backend's
// phrasing: emptiness, length bounds, URL shape, and email shape each get a
// distinct field-specific sentence.
func fieldMessage(fieldErr validator.FieldError) string {
	field := fieldErr.Field()

	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", field)
	case "min":
		return fmt.Sprintf("The %s field needs at least %s characters", field, fieldErr.Param())
	case "max":
		return fmt.Sprintf("The maximum length of the %s field is %s characters", field, fieldErr.Param())
	case "url", "http_url":
		return fmt.Sprintf("The %s field must be a valid URL", field)
	case "email":
		return fmt.Sprintf("The %s field must be a valid email", field)
	default:
		return fmt.Sprintf("The %s field is invalid", field)
	}
}
