package api

import (
	"time"

	"github.com/inkpost/blog-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=64"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
// Account holds either the username or the email; the server resolves
// whichever matches.
type LoginRequest struct {
	Account  string `json:"account"  validate:"required"`
	Password string `json:"password" validate:"required,min=1"`
}

// UserResponse is the caller-visible projection of a user. The password
// hash is never included.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse defines the successful response for the login endpoint.
type AuthResponse struct {
	// Token is the JWT used for API authorization.
	Token string `json:"token"`

	// ExpiresAt is the ISO 8601 timestamp when the token expires.
	ExpiresAt string `json:"expires_at"`

	User UserResponse `json:"user"`
}

// CreatePostRequest defines the payload for post creation.
type CreatePostRequest struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
	Body  string `json:"body"  validate:"required,min=1"`
}

// UpdatePostRequest defines the payload for a partial post update.
// Absent fields are left untouched.
type UpdatePostRequest struct {
	Title *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Body  *string `json:"body,omitempty"  validate:"omitempty,min=1"`
}

// PostResponse is the caller-visible projection of a post.
type PostResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	AuthorID  int64     `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostPageResponse is one page of the post listing.
type PostPageResponse struct {
	Items []PostResponse `json:"items"`
	Total int            `json:"total"`
	Page  int            `json:"page"`
	Size  int            `json:"size"`
}

// newUserResponse converts a domain user for the wire.
func newUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// newPostResponse converts a domain post for the wire.
func newPostResponse(post *domain.Post) PostResponse {
	return PostResponse{
		ID:        post.ID,
		Title:     post.Title,
		Body:      post.Body,
		AuthorID:  post.AuthorID,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

// newPostPageResponse converts a page of domain posts for the wire.
func newPostPageResponse(posts []*domain.Post, total, page, size int) PostPageResponse {
	items := make([]PostResponse, 0, len(posts))
	for _, post := range posts {
		items = append(items, newPostResponse(post))
	}
	return PostPageResponse{
		Items: items,
		Total: total,
		Page:  page,
		Size:  size,
	}
}
