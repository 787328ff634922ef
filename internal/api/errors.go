package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/menuwise/menu-intelligence-api/internal/domain"
	"github.com/menuwise/menu-intelligence-api/internal/generation"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. Only errors that escape the orchestrator's own
// fallback handling ever reach this mapping; everything the orchestrator
// absorbs has already become a 200 with a tagged result.
func MapErrorToStatusCode(err error) int {
	switch {
	// Client input failures, surfaced before any provider work.
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Provider rate limiting detected outside the internal retry handling.
	case errors.Is(err, generation.ErrRateLimited):
		return http.StatusTooManyRequests

	// Provider or network trouble that escaped the fallback paths.
	case errors.Is(err, generation.ErrProviderUnavailable),
		errors.Is(err, generation.ErrModelNotFound),
		errors.Is(err, generation.ErrTransport):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message based
// on the error type. This prevents leaking internal details to clients.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		var valErr *domain.ValidationError
		if errors.As(err, &valErr) {
			return "Invalid " + valErr.Field + ": " + valErr.Message
		}
		return "Invalid request"

	case errors.Is(err, generation.ErrRateLimited):
		return "AI service rate limit exceeded. Please try again later."

	case errors.Is(err, generation.ErrProviderUnavailable),
		errors.Is(err, generation.ErrModelNotFound):
		return "AI service temporarily unavailable. Please try again later."

	case errors.Is(err, generation.ErrTransport):
		return "AI service request failed."

	default:
		return "Internal server error. Please try again later."
	}
}

// jsonFieldNames maps request struct fields to their wire names for
// validation messages.
var jsonFieldNames = map[string]string{
	"ItemName":     "item_name",
	"ModelVersion": "model_version",
}

// SanitizeValidationError converts a validator/v10 error into a field-level
// user-facing message without leaking struct internals.
func SanitizeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fieldErr := verrs[0]

		field := jsonFieldNames[fieldErr.Field()]
		if field == "" {
			field = strings.ToLower(fieldErr.Field())
		}

		return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(fieldErr.Tag()))
	}
	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages.
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
