package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/identora/account-system/internal/core/domain"
)

// commandValidation translates a validator failure on a command DTO into
// the client-visible validation exception, keeping the first failing field
// only. Non-validator errors pass through unchanged.
func commandValidation(err error) error {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		fe := ve[0]
		return domain.NewValidationFailure(domain.ValidationFailure{
			Property:    strings.ToLower(fe.Field()),
			Constraints: map[string]string{fe.Tag(): fieldError(fe)},
			Value:       fe.Value(),
		})
	}
	return err
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
