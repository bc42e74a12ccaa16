package persistence

import (
	"context"

	"github.com/pennyledger/finance-tracker/internal/domain/entity"
)

// TransactionRepository defines essential methods to interact with transaction data
type TransactionRepository interface {
	// Create persists a new transaction and assigns its generated ID
	//
	// Possible errors:
	// - ErrDatabaseConnection: if database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByID retrieves a transaction by ID regardless of owner.
	// Ownership checks belong to the use case layer.
	//
	// Possible errors:
	// - ErrTransactionNotFound: if no transaction with the given ID exists
	// - ErrDatabaseConnection: if database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Transaction, error)

	// ListByUser returns all transactions owned by the given user in
	// insertion (id) order.
	//
	// Possible errors:
	// - ErrDatabaseConnection: if database connection fails
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Transaction, error)

	// Delete permanently removes a transaction by ID
	//
	// Possible errors:
	// - ErrTransactionNotFound: if no transaction with the given ID exists
	// - ErrDatabaseConnection: if database connection fails
	Delete(ctx context.Context, id uint64) error
}
