package ledger

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennyledger/finance-tracker/internal/domain/entity"
	errs "github.com/pennyledger/finance-tracker/internal/domain/error"
)

func TestLedgerUseCase_ExportCSV(t *testing.T) {
	t.Run("should write header and rows in insertion order", func(t *testing.T) {
		ctx := context.Background()
		repo := new(mockTransactionRepo)

		rows := []*entity.Transaction{
			{ID: 1, UserID: 1, Kind: entity.KindIncome, Category: "Salary", AmountCents: 250000, Date: "2024-03-01", Account: "Checking"},
			{ID: 2, UserID: 1, Kind: entity.KindExpense, Category: "Rent", AmountCents: 120000, Date: "2024-03-02", Account: ""},
		}
		repo.On("ListByUser", ctx, uint64(1)).Return(rows, nil)

		useCase := newTestLedgerUseCase(repo)

		var buf bytes.Buffer
		count, err := useCase.ExportCSV(ctx, 1, &buf)

		require.NoError(t, err)
		assert.Equal(t, 2, count)

		records, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, []string{"Type", "Category", "Amount", "Date", "Account"}, records[0])
		assert.Equal(t, []string{"income", "Salary", "2500.00", "2024-03-01", "Checking"}, records[1])
		assert.Equal(t, []string{"expense", "Rent", "1200.00", "2024-03-02", ""}, records[2])
	})

	t.Run("should write only the header for an empty ledger", func(t *testing.T) {
		ctx := context.Background()
		repo := new(mockTransactionRepo)

		repo.On("ListByUser", ctx, uint64(1)).Return([]*entity.Transaction{}, nil)

		useCase := newTestLedgerUseCase(repo)

		var buf bytes.Buffer
		count, err := useCase.ExportCSV(ctx, 1, &buf)

		require.NoError(t, err)
		assert.Equal(t, 0, count)
		assert.Equal(t, "Type,Category,Amount,Date,Account\n", buf.String())
	})

	t.Run("should escape fields containing commas", func(t *testing.T) {
		ctx := context.Background()
		repo := new(mockTransactionRepo)

		rows := []*entity.Transaction{
			{ID: 1, UserID: 1, Kind: entity.KindExpense, Category: "Food, drinks", AmountCents: 1550, Date: "2024-03-03"},
		}
		repo.On("ListByUser", ctx, uint64(1)).Return(rows, nil)

		useCase := newTestLedgerUseCase(repo)

		var buf bytes.Buffer
		_, err := useCase.ExportCSV(ctx, 1, &buf)

		require.NoError(t, err)
		records, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		assert.Equal(t, "Food, drinks", records[1][1])
	})

	t.Run("should reject zero user id", func(t *testing.T) {
		repo := new(mockTransactionRepo)
		useCase := newTestLedgerUseCase(repo)

		var buf bytes.Buffer
		_, err := useCase.ExportCSV(context.Background(), 0, &buf)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		assert.Zero(t, buf.Len())
	})
}
