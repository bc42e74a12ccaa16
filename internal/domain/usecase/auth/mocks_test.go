package auth

import (
	"context"
	"errors"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/pennyledger/finance-tracker/internal/domain/entity"
)

var errHashFailed = errors.New("hash failed")

// mockUserRepo is a testify mock for the UserRepository port
type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) UsernameTaken(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

// stubHasher hashes deterministically so tests can assert what was stored
type stubHasher struct {
	failHash bool
}

func (s *stubHasher) Hash(plaintext string) (string, error) {
	if s.failHash {
		return "", errHashFailed
	}
	return "hashed:" + plaintext, nil
}

func (s *stubHasher) Compare(hash, plaintext string) bool {
	return hash == "hashed:"+plaintext
}

// fixedTimeProvider returns the same instant on every call
type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time                  { return p.now }
func (p *fixedTimeProvider) Since(t time.Time) time.Duration { return p.now.Sub(t) }
func (p *fixedTimeProvider) WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

// nopLogger discards all output
type nopLogger struct{}

func (nopLogger) Debug(message string, fields map[string]any) {}
func (nopLogger) Info(message string, fields map[string]any)  {}
func (nopLogger) Warn(message string, fields map[string]any)  {}
func (nopLogger) Error(message string, fields map[string]any) {}
func (nopLogger) Flush() error                                { return nil }
