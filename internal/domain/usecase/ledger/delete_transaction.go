package ledger

import (
	"context"

	errs "github.com/pennyledger/finance-tracker/internal/domain/error"
)

// DeleteTransaction permanently removes a transaction the user owns.
// A transaction owned by someone else is refused with ErrNotOwner and left
// intact.
func (u *LedgerUseCase) DeleteTransaction(ctx context.Context, userID, transactionID uint64) error {
	if userID == 0 {
		return errs.ErrInvalidUserID
	}
	if transactionID == 0 {
		return errs.ErrInvalidTransactionID
	}

	transaction, err := u.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		return err
	}

	if !transaction.IsOwnedBy(userID) {
		u.logger.Warn("Refused delete of foreign transaction", map[string]any{
			"user_id":        userID,
			"transaction_id": transactionID,
			"owner_id":       transaction.UserID,
		})
		return errs.NewLedgerError("delete", userID, transactionID, errs.ErrNotOwner)
	}

	if err := u.transactionRepo.Delete(ctx, transactionID); err != nil {
		u.logger.Error("Failed to delete transaction", map[string]any{
			"user_id":        userID,
			"transaction_id": transactionID,
			"error":          err.Error(),
		})
		return err
	}

	u.logger.Info("Transaction deleted", map[string]any{
		"user_id":        userID,
		"transaction_id": transactionID,
	})

	return nil
}
