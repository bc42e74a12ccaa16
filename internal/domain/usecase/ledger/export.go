package ledger

import (
	"context"
	"encoding/csv"
	"io"

	errs "github.com/pennyledger/finance-tracker/internal/domain/error"
)

// exportHeader is the fixed column order of the CSV export
var exportHeader = []string{"Type", "Category", "Amount", "Date", "Account"}

// ExportCSV streams the user's ledger as CSV to w: a header row followed by
// one row per transaction in insertion order. Writing straight to the caller
// keeps concurrent exports isolated from each other; no shared file is ever
// touched. Returns the number of data rows written.
func (u *LedgerUseCase) ExportCSV(ctx context.Context, userID uint64, w io.Writer) (int, error) {
	if userID == 0 {
		return 0, errs.ErrInvalidUserID
	}

	transactions, err := u.transactionRepo.ListByUser(ctx, userID)
	if err != nil {
		u.logger.Error("Failed to load transactions for export", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return 0, err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return 0, err
	}

	for _, t := range transactions {
		record := []string{
			string(t.Kind),
			t.Category,
			t.Amount(),
			t.Date,
			t.Account,
		}
		if err := cw.Write(record); err != nil {
			return 0, err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, err
	}

	u.logger.Info("Ledger exported", map[string]any{
		"user_id": userID,
		"rows":    len(transactions),
	})

	return len(transactions), nil
}
