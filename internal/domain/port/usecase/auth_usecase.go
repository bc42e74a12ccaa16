package usecase

import (
	"context"

	"github.com/pennyledger/finance-tracker/internal/domain/entity"
)

// AuthUseCase defines the authentication operations exposed to the API layer
type AuthUseCase interface {
	// Register creates a new user with a hashed password.
	// Returns ErrDuplicateUsername when the name is taken.
	Register(ctx context.Context, username, password string) (*entity.User, error)

	// Login verifies the supplied credentials and returns the matching user.
	// Returns ErrInvalidCredentials for both unknown usernames and wrong
	// passwords.
	Login(ctx context.Context, username, password string) (*entity.User, error)
}
