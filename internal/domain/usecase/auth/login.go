package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/pennyledger/finance-tracker/internal/domain/entity"
	errs "github.com/pennyledger/finance-tracker/internal/domain/error"
)

// Login verifies the supplied credentials and returns the matching user.
// Unknown usernames and wrong passwords both collapse to
// ErrInvalidCredentials so the response never reveals which one it was.
func (u *AuthUseCase) Login(ctx context.Context, username, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, errs.ErrInvalidCredentials
	}

	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			u.logger.Info("Login attempt for unknown username", map[string]any{
				"username": username,
			})
			return nil, errs.ErrInvalidCredentials
		}
		u.logger.Error("Failed to look up user", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return nil, err
	}

	if !u.hasher.Compare(user.PasswordHash, password) {
		u.logger.Info("Login attempt with wrong password", map[string]any{
			"user_id": user.ID,
		})
		return nil, errs.ErrInvalidCredentials
	}

	u.logger.Info("User logged in", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})

	return user, nil
}
