package mocks

import (
	"context"
	"database/sql"
	"sort"

	"github.com/inkpost/blog-api/internal/domain"
	"github.com/inkpost/blog-api/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn          func(ctx context.Context, user *domain.User) error
	GetByIDFn         func(ctx context.Context, id int64) (*domain.User, error)
	GetByIdentifierFn func(ctx context.Context, identifier string) (*domain.User, error)
	ListFn            func(ctx context.Context) ([]*domain.User, error)

	// Data for default implementation, keyed by user ID
	Users      map[int64]*domain.User
	NextUserID int64

	// Errors returned by the default implementation when set
	CreateError error
	GetError    error
}

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users:      make(map[int64]*domain.User),
		NextUserID: 1,
	}
}

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	for _, existing := range m.Users {
		if existing.Username == user.Username {
			return store.ErrUsernameExists
		}
		if existing.Email == user.Email {
			return store.ErrEmailExists
		}
	}

	// Mimic the real store: the plaintext never survives Create.
	if user.Password != "" {
		user.HashedPassword = "hashed:" + user.Password
		user.Password = ""
	}

	user.ID = m.NextUserID
	m.NextUserID++
	m.Users[user.ID] = user
	return nil
}

// GetByID implements the UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	user, ok := m.Users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// GetByIdentifier implements the UserStore interface
func (m *MockUserStore) GetByIdentifier(
	ctx context.Context,
	identifier string,
) (*domain.User, error) {
	if m.GetByIdentifierFn != nil {
		return m.GetByIdentifierFn(ctx, identifier)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	for _, user := range m.Users {
		if user.Username == identifier || user.Email == identifier {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// List implements the UserStore interface
func (m *MockUserStore) List(ctx context.Context) ([]*domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	users := make([]*domain.User, 0, len(m.Users))
	for _, user := range m.Users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// WithTx implements the UserStore interface. Transactions are a no-op in
// the mock; the same store is returned.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}
