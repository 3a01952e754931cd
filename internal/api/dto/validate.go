package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/spec-kit/legal-case-service/pkg/util"
)

var validate = validator.New()

// Check validates a request struct and converts violations into a
// VALIDATION_ERROR carrying one message per failed field.
func Check(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return apperrors.NewValidationError("invalid request data", nil)
	}

	messages := make([]string, 0, len(violations))
	for _, violation := range violations {
		messages = append(messages, fieldMessage(violation))
	}
	return apperrors.NewValidationError("invalid request data", messages)
}

func fieldMessage(violation validator.FieldError) string {
	field := strings.ToLower(violation.Field())
	switch violation.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, violation.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, violation.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, violation.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, violation.Tag())
	}
}
