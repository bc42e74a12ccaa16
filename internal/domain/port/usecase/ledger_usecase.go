package usecase

import (
	"context"
	"io"

	"github.com/pennyledger/finance-tracker/internal/domain/entity"
)

// AddTransactionInput carries the raw form values for a new transaction.
// Amount arrives as text and may contain thousands separators; parsing and
// validation happen inside the use case.
type AddTransactionInput struct {
	Kind       string
	Category   string
	AmountText string
	Date       string
	Account    string
}

// LedgerUseCase defines the ledger operations exposed to the API layer
type LedgerUseCase interface {
	// ListTransactions returns all transactions owned by the user in
	// insertion order together with the computed balance in cents.
	ListTransactions(ctx context.Context, userID uint64) ([]*entity.Transaction, int64, error)

	// AddTransaction validates the input and persists one transaction
	AddTransaction(ctx context.Context, userID uint64, input AddTransactionInput) (*entity.Transaction, error)

	// DeleteTransaction removes a transaction the user owns.
	// Returns ErrTransactionNotFound for unknown ids and ErrNotOwner when the
	// transaction belongs to someone else; in the latter case nothing is
	// mutated.
	DeleteTransaction(ctx context.Context, userID, transactionID uint64) error

	// ExportCSV streams the user's ledger as CSV to w and returns the number
	// of data rows written. Each call writes to its own destination; nothing
	// is staged on shared storage.
	ExportCSV(ctx context.Context, userID uint64, w io.Writer) (int, error)
}
