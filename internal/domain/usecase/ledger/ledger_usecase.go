package ledger

import (
	coreport "github.com/pennyledger/finance-tracker/internal/domain/port/core"
	"github.com/pennyledger/finance-tracker/internal/domain/port/persistence"
)

// LedgerUseCase handles a user's transaction bookkeeping: listing with the
// computed balance, adding, deleting, and CSV export.
type LedgerUseCase struct {
	transactionRepo persistence.TransactionRepository
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
}

// NewLedgerUseCase creates a new LedgerUseCase
func NewLedgerUseCase(
	transactionRepo persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *LedgerUseCase {
	return &LedgerUseCase{
		transactionRepo: transactionRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}
