package mocks

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"time"

	"github.com/inkpost/blog-api/internal/domain"
	"github.com/inkpost/blog-api/internal/store"
)

// MockPostStore implements store.PostStore for testing
type MockPostStore struct {
	// Function fields for customizable behavior
	CreateF       func(ctx context.Context, post *domain.Post) error
	GetByIDFn     func(ctx context.Context, id int64) (*domain.Post, error)
	ListFn        func(ctx context.Context, filter store.PostFilter) ([]*domain.Post, int, error)
	ListByAuthorF func(ctx context.Context, authorID int64) ([]*domain.Post, error)
	UpdateFn      func(ctx context.Context, id int64, update store.UpdatePost) (*domain.Post, error)
	DeleteFn      func(ctx context.Context, id int64) (bool, error)

	// Data for default implementation, keyed by post ID
	Posts      map[int64]*domain.Post
	NextPostID int64

	// Err, when set, is returned from every default implementation
	Err error
}

// NewMockPostStore creates a new mock store with initialized defaults
func NewMockPostStore() *MockPostStore {
	return &MockPostStore{
		Posts:      make(map[int64]*domain.Post),
		NextPostID: 1,
	}
}

// Create implements the PostStore interface
func (m *MockPostStore) Create(ctx context.Context, post *domain.Post) error {
	if m.CreateF != nil {
		return m.CreateF(ctx, post)
	}
	if m.Err != nil {
		return m.Err
	}

	now := time.Now().UTC()
	post.ID = m.NextPostID
	m.NextPostID++
	post.CreatedAt = now
	post.UpdatedAt = now
	m.Posts[post.ID] = post
	return nil
}

// GetByID implements the PostStore interface
func (m *MockPostStore) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	post, ok := m.Posts[id]
	if !ok {
		return nil, store.ErrPostNotFound
	}
	return post, nil
}

// List implements the PostStore interface
func (m *MockPostStore) List(
	ctx context.Context,
	filter store.PostFilter,
) ([]*domain.Post, int, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter)
	}
	if m.Err != nil {
		return nil, 0, m.Err
	}

	matched := make([]*domain.Post, 0, len(m.Posts))
	keyword := strings.ToLower(filter.Keyword)
	for _, post := range m.Posts {
		if keyword != "" &&
			!strings.Contains(strings.ToLower(post.Title), keyword) &&
			!strings.Contains(strings.ToLower(post.Body), keyword) {
			continue
		}
		matched = append(matched, post)
	}
	sortNewestFirst(matched)

	total := len(matched)
	if filter.Offset >= total {
		return []*domain.Post{}, total, nil
	}
	end := filter.Offset + filter.Limit
	if end > total {
		end = total
	}
	return matched[filter.Offset:end], total, nil
}

// ListByAuthor implements the PostStore interface
func (m *MockPostStore) ListByAuthor(
	ctx context.Context,
	authorID int64,
) ([]*domain.Post, error) {
	if m.ListByAuthorF != nil {
		return m.ListByAuthorF(ctx, authorID)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	posts := make([]*domain.Post, 0)
	for _, post := range m.Posts {
		if post.AuthorID == authorID {
			posts = append(posts, post)
		}
	}
	sortNewestFirst(posts)
	return posts, nil
}

// Update implements the PostStore interface
func (m *MockPostStore) Update(
	ctx context.Context,
	id int64,
	update store.UpdatePost,
) (*domain.Post, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, update)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	post, ok := m.Posts[id]
	if !ok {
		return nil, store.ErrPostNotFound
	}
	if update.Title != nil {
		post.Title = *update.Title
	}
	if update.Body != nil {
		post.Body = *update.Body
	}
	post.UpdatedAt = time.Now().UTC()
	return post, nil
}

// Delete implements the PostStore interface
func (m *MockPostStore) Delete(ctx context.Context, id int64) (bool, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if m.Err != nil {
		return false, m.Err
	}

	if _, ok := m.Posts[id]; !ok {
		return false, nil
	}
	delete(m.Posts, id)
	return true, nil
}

// WithTx implements the PostStore interface. Transactions are a no-op in
// the mock; the same store is returned.
func (m *MockPostStore) WithTx(tx *sql.Tx) store.PostStore {
	return m
}

// sortNewestFirst orders posts the way the real store does: created_at
// descending with ID as the tiebreaker.
func sortNewestFirst(posts []*domain.Post) {
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}
