package api

import (
	"errors"
	"net/http"

	"github.com/inkpost/blog-api/internal/api/shared"
	"github.com/inkpost/blog-api/internal/domain"
	"github.com/inkpost/blog-api/internal/service/auth"
	"github.com/inkpost/blog-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication failures: every token verification kind collapses to
	// the same status.
	case auth.IsVerificationError(err),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden

	// A vanished author on post creation is an internal consistency
	// failure, not a caller error; it must be checked before the generic
	// not-found case because it wraps store.ErrNotFound.
	case errors.Is(err, store.ErrAuthorNotFound):
		return http.StatusInternalServerError

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Uniqueness collisions surface as a plain bad request.
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusBadRequest

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message based
// on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case auth.IsVerificationError(err), errors.Is(err, domain.ErrUnauthorized):
		return "Invalid credentials"

	case errors.Is(err, domain.ErrForbidden):
		return "You do not own this post"

	case errors.Is(err, store.ErrAuthorNotFound):
		return "Failed to create post"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrPostNotFound):
		return "Post not found"

	case errors.Is(err, store.ErrUsernameExists):
		return "Username already registered"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already registered"

	case errors.Is(err, store.ErrInvalidEntity), errors.Is(err, domain.ErrValidation):
		return "Invalid request data"

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid ID"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the response for an error using the standard status
// and message mapping. A non-empty userMessage overrides the mapped message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, userMessage string) {
	status := MapErrorToStatusCode(err)
	if userMessage == "" {
		userMessage = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, userMessage, err)
}
