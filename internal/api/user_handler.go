package api

import (
	"errors"
	"net/http"

	"github.com/inkpost/blog-api/internal/api/middleware"
	"github.com/inkpost/blog-api/internal/api/shared"
	"github.com/inkpost/blog-api/internal/store"
)

// UserHandler handles user profile requests.
type UserHandler struct {
	userStore store.UserStore
	postStore store.PostStore
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userStore store.UserStore, postStore store.PostStore) *UserHandler {
	return &UserHandler{
		userStore: userStore,
		postStore: postStore,
	}
}

// GetMe handles GET /api/users/me. The authentication middleware has
// already resolved the caller, so this is a straight readback.
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromRequest(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newUserResponse(user))
}

// ListUsers handles GET /api/users. Public: the projection carries no
// credential material, only the profile fields.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve users")
		return
	}

	items := make([]UserResponse, 0, len(users))
	for _, user := range users {
		items = append(items, newUserResponse(user))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, items)
}

// ListUserPosts handles GET /api/users/{id}/posts. Public: no
// authentication required. The user must exist; an unknown ID is a 404
// rather than an empty list so clients can tell the two apart.
func (h *UserHandler) ListUserPosts(w http.ResponseWriter, r *http.Request) {
	userID, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "Invalid user ID")
		return
	}

	if _, err := h.userStore.GetByID(r.Context(), userID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "User not found")
			return
		}
		HandleAPIError(w, r, err, "Failed to retrieve user")
		return
	}

	posts, err := h.postStore.ListByAuthor(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve posts")
		return
	}

	items := make([]PostResponse, 0, len(posts))
	for _, post := range posts {
		items = append(items, newPostResponse(post))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, items)
}
