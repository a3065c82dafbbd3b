package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatValidationError flattens validator errors into a field -> message map
// suitable for JSON error responses.
func FormatValidationError(err error) map[string]string {
	out := make(map[string]string)

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["error"] = err.Error()
		return out
	}

	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())

		switch fe.Tag() {
		case "required":
			out[field] = fmt.Sprintf("%s is required", field)
		case "min":
			out[field] = fmt.Sprintf("%s must be at least %s", field, fe.Param())
		case "gt":
			out[field] = fmt.Sprintf("%s must be greater than %s", field, fe.Param())
		case "gte":
			out[field] = fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
		case "dive":
			out[field] = fmt.Sprintf("%s contains invalid entries", field)
		default:
			out[field] = fmt.Sprintf("%s is invalid", field)
		}
	}

	return out
}
