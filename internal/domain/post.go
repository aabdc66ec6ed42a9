package domain

import (
	"fmt"
	"time"
)

// Post validation errors, each wrapping ErrValidation (see user.go).
var (
	ErrEmptyTitle      = fmt.Errorf("%w: title cannot be empty", ErrValidation)
	ErrTitleTooLong    = fmt.Errorf("%w: title must be at most 200 characters long", ErrValidation)
	ErrEmptyBody       = fmt.Errorf("%w: body cannot be empty", ErrValidation)
	ErrMissingAuthorID = fmt.Errorf("%w: author ID must be set", ErrValidation)
)

// Post is a blog entry owned by exactly one user. AuthorID is set at creation
// and never changes; only the owner may update or delete the post.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	AuthorID  int64     `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPost creates a Post for the given author. The ID is zero until the store
// assigns one on insert; timestamps are finalized by the store.
func NewPost(title, body string, authorID int64) (*Post, error) {
	now := time.Now().UTC()
	post := &Post{
		Title:     title,
		Body:      body,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}

	return post, nil
}

// Validate checks the business rules on a Post.
func (p *Post) Validate() error {
	if p.Title == "" {
		return ErrEmptyTitle
	}
	if len(p.Title) > 200 {
		return ErrTitleTooLong
	}
	if p.Body == "" {
		return ErrEmptyBody
	}
	if p.AuthorID <= 0 {
		return ErrMissingAuthorID
	}
	return nil
}

// IsOwnedBy reports whether the post belongs to the given user.
func (p *Post) IsOwnedBy(userID int64) bool {
	return p.AuthorID == userID
}
