package ledger

import (
	"context"

	"github.com/pennyledger/finance-tracker/internal/domain/entity"
	errs "github.com/pennyledger/finance-tracker/internal/domain/error"
)

// ListTransactions returns all transactions owned by the user in insertion
// order, plus the balance in cents. The balance is recomputed from the rows
// on every call; it is never cached or persisted.
func (u *LedgerUseCase) ListTransactions(ctx context.Context, userID uint64) ([]*entity.Transaction, int64, error) {
	if userID == 0 {
		return nil, 0, errs.ErrInvalidUserID
	}

	transactions, err := u.transactionRepo.ListByUser(ctx, userID)
	if err != nil {
		u.logger.Error("Failed to list transactions", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, 0, err
	}

	balance := entity.Balance(transactions)

	u.logger.Debug("Transactions listed", map[string]any{
		"user_id": userID,
		"count":   len(transactions),
		"balance": entity.FormatCents(balance),
	})

	return transactions, balance, nil
}
