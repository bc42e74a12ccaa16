package dto

import (
	"github.com/pennyledger/finance-tracker/internal/domain/entity"
)

// Flash is a one-shot message carried across a redirect
type Flash struct {
	Category string // "success" or "danger"
	Message  string
}

// TransactionView is the template-facing shape of a transaction
type TransactionView struct {
	ID       uint64
	Type     string
	Category string
	Amount   string
	Date     string
	Account  string
}

// NewTransactionView converts a transaction entity for rendering
func NewTransactionView(t *entity.Transaction) TransactionView {
	return TransactionView{
		ID:       t.ID,
		Type:     string(t.Kind),
		Category: t.Category,
		Amount:   t.Amount(),
		Date:     t.Date,
		Account:  t.Account,
	}
}
