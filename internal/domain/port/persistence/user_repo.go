package persistence

import (
	"context"

	"github.com/pennyledger/finance-tracker/internal/domain/entity"
)

// UserRepository defines essential methods to interact with user data
type UserRepository interface {
	// Create persists a new user and assigns its generated ID
	//
	// Possible errors:
	// - ErrDuplicateUsername: if the username is already taken
	// - ErrDatabaseConnection: if database connection fails
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with the given ID exists
	// - ErrDatabaseConnection: if database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByUsername retrieves a user by username
	// Used by login; callers must not leak the distinction between a missing
	// user and a wrong password.
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with the given username exists
	// - ErrDatabaseConnection: if database connection fails
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// UsernameTaken reports whether a user with the given username exists
	//
	// Possible errors:
	// - ErrDatabaseConnection: if database connection fails
	UsernameTaken(ctx context.Context, username string) (bool, error)
}
