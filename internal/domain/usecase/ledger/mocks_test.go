package ledger

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/pennyledger/finance-tracker/internal/domain/entity"
)

// mockTransactionRepo is a testify mock for the TransactionRepository port
type mockTransactionRepo struct {
	mock.Mock
}

func (m *mockTransactionRepo) Create(ctx context.Context, transaction *entity.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *mockTransactionRepo) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	args := m.Called(ctx, id)
	if transaction := args.Get(0); transaction != nil {
		return transaction.(*entity.Transaction), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTransactionRepo) ListByUser(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	args := m.Called(ctx, userID)
	if transactions := args.Get(0); transactions != nil {
		return transactions.([]*entity.Transaction), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTransactionRepo) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
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

func newTestLedgerUseCase(repo *mockTransactionRepo) *LedgerUseCase {
	tp := &fixedTimeProvider{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	return NewLedgerUseCase(repo, tp, nopLogger{})
}
