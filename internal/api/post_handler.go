package api

import (
	"errors"
	"net/http"

	"github.com/inkpost/blog-api/internal/api/middleware"
	"github.com/inkpost/blog-api/internal/api/shared"
	"github.com/inkpost/blog-api/internal/domain"
	"github.com/inkpost/blog-api/internal/store"
)

// PostHandler handles post CRUD requests.
type PostHandler struct {
	postStore store.PostStore
}

// NewPostHandler creates a new PostHandler with the given dependencies.
func NewPostHandler(postStore store.PostStore) *PostHandler {
	return &PostHandler{postStore: postStore}
}

// CreatePost handles POST /api/posts.
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromRequest(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	var req CreatePostRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	post, err := domain.NewPost(req.Title, req.Body, user.ID)
	if err != nil {
		HandleAPIError(w, r, err, "Invalid post data")
		return
	}

	if err := h.postStore.Create(r.Context(), post); err != nil {
		HandleAPIError(w, r, err, "Failed to create post")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, newPostResponse(post))
}

// GetPost handles GET /api/posts/{id}. Public: no authentication required.
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	postID, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "Invalid post ID")
		return
	}

	post, err := h.postStore.GetByID(r.Context(), postID)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Post not found")
			return
		}
		HandleAPIError(w, r, err, "Failed to retrieve post")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newPostResponse(post))
}

// ListPosts handles GET /api/posts. Public: no authentication required.
// Out-of-range page or size values are rejected with 422, matching the
// treatment of any other unprocessable query parameter.
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	params, err := parsePageParams(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	posts, total, err := h.postStore.List(r.Context(), params.Filter())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve posts")
		return
	}

	shared.RespondWithJSON(
		w,
		r,
		http.StatusOK,
		newPostPageResponse(posts, total, params.Page, params.Size),
	)
}

// UpdatePost handles PUT /api/posts/{id}. Only the author may update a
// post; see authorizePostMutation for the response ordering.
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	post, ok := h.authorizePostMutation(w, r)
	if !ok {
		return
	}

	var req UpdatePostRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	updated, err := h.postStore.Update(r.Context(), post.ID, store.UpdatePost{
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			// Deleted between the ownership check and the write.
			shared.RespondWithError(w, r, http.StatusNotFound, "Post not found")
			return
		}
		HandleAPIError(w, r, err, "Failed to update post")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newPostResponse(updated))
}

// DeletePost handles DELETE /api/posts/{id}. Only the author may delete a
// post. Success is a bare 204.
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	post, ok := h.authorizePostMutation(w, r)
	if !ok {
		return
	}

	removed, err := h.postStore.Delete(r.Context(), post.ID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete post")
		return
	}
	if !removed {
		shared.RespondWithError(w, r, http.StatusNotFound, "Post not found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}

// authorizePostMutation runs the shared precondition chain for post
// mutations: the caller must be authenticated (401), the path ID must be
// well-formed (400), the post must exist (404), and the caller must be its
// author (403). The checks run in that order so an unauthenticated caller
// learns nothing about which posts exist. On failure the response has
// already been written and the second return is false.
func (h *PostHandler) authorizePostMutation(
	w http.ResponseWriter,
	r *http.Request,
) (*domain.Post, bool) {
	user, ok := middleware.UserFromRequest(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return nil, false
	}

	postID, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "Invalid post ID")
		return nil, false
	}

	post, err := h.postStore.GetByID(r.Context(), postID)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Post not found")
			return nil, false
		}
		HandleAPIError(w, r, err, "Failed to retrieve post")
		return nil, false
	}

	if !post.IsOwnedBy(user.ID) {
		shared.RespondWithError(w, r, http.StatusForbidden, "You are not the author of this post")
		return nil, false
	}

	return post, true
}
