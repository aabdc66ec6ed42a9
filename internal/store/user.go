package store

import (
	"context"
	"database/sql"

	"github.com/inkpost/blog-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. It validates the domain User and
	// hashes the plaintext password internally; the raw password is never
	// persisted. The store assigns the user's ID and final CreatedAt.
	// Returns ErrUsernameExists or ErrEmailExists on a uniqueness collision,
	// whether it is caught by the pre-insert check or by the database
	// constraint when two registrations race.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByIdentifier retrieves a user by username or email, whichever the
	// single identifier matches. Used by login, where the client supplies
	// one "account" field. Returns ErrUserNotFound if neither matches.
	GetByIdentifier(ctx context.Context, identifier string) (*domain.User, error)

	// List returns all registered users ordered by ID ascending.
	// Unpaginated: acceptable at this system's scale, documented as a
	// limitation rather than silently capped.
	List(ctx context.Context) ([]*domain.User, error)

	// WithTx returns a UserStore bound to the provided transaction so that
	// multiple operations can share a single transaction scope.
	WithTx(tx *sql.Tx) UserStore
}
