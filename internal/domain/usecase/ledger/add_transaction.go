package ledger

import (
	"context"

	"github.com/pennyledger/finance-tracker/internal/domain/entity"
	"github.com/pennyledger/finance-tracker/internal/domain/port/usecase"
)

// AddTransaction validates the form input and persists one transaction owned
// by the user. The date string is stored as supplied; only kind and amount
// are validated.
func (u *LedgerUseCase) AddTransaction(ctx context.Context, userID uint64, input usecase.AddTransactionInput) (*entity.Transaction, error) {
	transaction, err := entity.NewTransaction(
		userID,
		input.Kind,
		input.Category,
		input.AmountText,
		input.Date,
		input.Account,
		u.timeProvider,
	)
	if err != nil {
		u.logger.Warn("Rejected transaction input", map[string]any{
			"user_id": userID,
			"kind":    input.Kind,
			"error":   err.Error(),
		})
		return nil, err
	}

	if err := u.transactionRepo.Create(ctx, transaction); err != nil {
		u.logger.Error("Failed to create transaction", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Transaction added", map[string]any{
		"user_id":        userID,
		"transaction_id": transaction.ID,
		"kind":           transaction.Kind,
		"amount":         transaction.Amount(),
	})

	return transaction, nil
}
