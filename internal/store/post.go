package store

import (
	"context"
	"database/sql"

	"github.com/inkpost/blog-api/internal/domain"
)

// MaxPageSize is the upper bound on the number of posts a single List call
// may return. Callers requesting more receive a validation failure rather
// than a silently clamped result.
const MaxPageSize = 100

// PostFilter describes the pagination and search parameters for List.
// Offset and Limit apply after keyword filtering and ordering.
type PostFilter struct {
	// Offset is the number of matching posts to skip. Must be >= 0.
	Offset int

	// Limit is the maximum number of posts to return, in [1, MaxPageSize].
	Limit int

	// Keyword, when non-blank, restricts the result to posts whose title or
	// body contains it as a case-insensitive substring.
	Keyword string
}

// UpdatePost carries a partial update: nil fields are left untouched.
type UpdatePost struct {
	Title *string
	Body  *string
}

// PostStore defines the interface for post data persistence.
// All listing operations return posts ordered newest-first.
type PostStore interface {
	// Create saves a new post. The store assigns the ID and the
	// created_at/updated_at timestamps (equal on creation).
	// Returns ErrAuthorNotFound if the author does not reference an
	// existing user.
	Create(ctx context.Context, post *domain.Post) error

	// GetByID retrieves a post by its unique ID.
	// Returns ErrPostNotFound if the post does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Post, error)

	// List returns a page of posts matching the filter, ordered by
	// created_at descending, along with the total number of matches before
	// pagination. Filter bounds are the caller's responsibility; see
	// PostFilter.
	List(ctx context.Context, filter PostFilter) ([]*domain.Post, int, error)

	// ListByAuthor returns all posts by the given author, newest first.
	// Unpaginated: acceptable at this system's scale, documented as a
	// limitation rather than silently capped.
	ListByAuthor(ctx context.Context, authorID int64) ([]*domain.Post, error)

	// Update applies the supplied fields to an existing post in a single
	// atomic write and refreshes updated_at. Returns the updated post, or
	// ErrPostNotFound if the post does not exist.
	Update(ctx context.Context, id int64, update UpdatePost) (*domain.Post, error)

	// Delete removes a post permanently. The returned bool reports whether
	// a row was actually removed; deleting an absent post returns false
	// with a nil error.
	Delete(ctx context.Context, id int64) (bool, error)

	// WithTx returns a PostStore bound to the provided transaction.
	WithTx(tx *sql.Tx) PostStore
}
