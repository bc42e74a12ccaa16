package auth

import (
	"context"
	"strings"

	"github.com/pennyledger/finance-tracker/internal/domain/entity"
	errs "github.com/pennyledger/finance-tracker/internal/domain/error"
)

// Register creates a new user with the given username and password.
// The password is hashed before it ever reaches the repository; the plaintext
// is never stored or logged.
func (u *AuthUseCase) Register(ctx context.Context, username, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errs.ErrEmptyUsername
	}
	if password == "" {
		return nil, errs.ErrEmptyPassword
	}

	// Pre-check for a friendlier failure; the unique constraint still backs
	// this up against concurrent registrations.
	taken, err := u.userRepo.UsernameTaken(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.ErrDuplicateUsername
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		u.logger.Error("Failed to hash password", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	user, err := entity.NewUser(username, hash, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		u.logger.Error("Failed to create user", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return nil, err
	}

	u.logger.Info("User registered", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})

	return user, nil
}
