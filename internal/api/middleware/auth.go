package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/inkpost/blog-api/internal/api/shared"
	"github.com/inkpost/blog-api/internal/domain"
	"github.com/inkpost/blog-api/internal/platform/logger"
	"github.com/inkpost/blog-api/internal/service/auth"
	"github.com/inkpost/blog-api/internal/store"
)

// unauthenticatedMessage is the single message every authentication failure
// maps to. The distinct failure kinds (missing header, malformed token, bad
// signature, expired, unknown principal) are logged but deliberately not
// distinguishable by the caller.
const unauthenticatedMessage = "Invalid credentials"

// AuthMiddleware resolves the request's identity from its bearer token.
// Identity is recomputed on every request from the token alone; the
// middleware holds no state between requests.
type AuthMiddleware struct {
	jwtService auth.JWTService
	userStore  store.UserStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, userStore store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userStore:  userStore,
	}
}

// Authenticate validates the bearer token from the Authorization header,
// loads the principal it names, and adds the principal to the request
// context. A token that verifies but names a user who no longer exists is
// rejected the same way as any other invalid token.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		tokenString, err := bearerToken(r)
		if err != nil {
			log.Debug("authentication failed", "error", err)
			shared.RespondWithError(w, r, http.StatusUnauthorized, unauthenticatedMessage)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), tokenString)
		if err != nil {
			if auth.IsVerificationError(err) {
				// Specific kind already logged at debug by the token
				// service; the caller sees only the generic failure.
				shared.RespondWithError(w, r, http.StatusUnauthorized, unauthenticatedMessage)
				return
			}
			log.Error("failed to validate token", "error", err)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			return
		}

		user, err := m.userStore.GetByID(r.Context(), claims.UserID)
		if err != nil {
			if store.IsNotFoundError(err) {
				log.Debug("authentication failed: token principal no longer exists",
					"user_id", claims.UserID)
				shared.RespondWithError(w, r, http.StatusUnauthorized, unauthenticatedMessage)
				return
			}
			log.Error("failed to load authenticated user",
				"user_id", claims.UserID,
				"error", err)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken extracts the token from the Authorization header. An absent
// header is ErrMissingToken; any scheme other than Bearer is
// ErrMalformedToken.
func bearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", auth.ErrMissingToken
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", auth.ErrMalformedToken
	}
	return parts[1], nil
}

// UserFromRequest extracts the authenticated principal from the request
// context. Returns the user and whether one was present.
func UserFromRequest(r *http.Request) (*domain.User, bool) {
	user, ok := r.Context().Value(shared.UserContextKey).(*domain.User)
	return user, ok && user != nil
}
