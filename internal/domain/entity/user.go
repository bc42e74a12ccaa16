package entity

import (
	"strings"
	"time"

	errs "github.com/pennyledger/finance-tracker/internal/domain/error"
	coreport "github.com/pennyledger/finance-tracker/internal/domain/port/core"
)

// User represents a registered account owning a ledger of transactions
type User struct {
	ID           uint64    // Unique identifier for the user
	Username     string    // Unique login name
	PasswordHash string    // Salted one-way hash, never the plaintext
	CreatedAt    time.Time // When the user was created
	UpdatedAt    time.Time // When the user was last updated
}

// NewUser creates a new user with the given username and password hash
func NewUser(username, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errs.ErrEmptyUsername
	}
	if passwordHash == "" {
		return nil, errs.ErrEmptyPassword
	}

	now := timeProvider.Now()
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}
