package entity

import (
	"fmt"
	"time"

	errs "github.com/pennyledger/finance-tracker/internal/domain/error"
	coreport "github.com/pennyledger/finance-tracker/internal/domain/port/core"
)

// Kind tags a transaction as money coming in or going out
type Kind string

// Transaction kinds
const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Transaction represents a single ledger entry owned by exactly one user.
// The sign of the amount is implied by Kind; AmountCents itself is always
// non-negative.
type Transaction struct {
	ID          uint64    // Unique identifier for the transaction
	UserID      uint64    // ID of the owning user
	Kind        Kind      // income or expense
	Category    string    // Free-text category label
	AmountCents int64     // Magnitude in cents, never negative
	Date        string    // As supplied by the user, stored verbatim
	Account     string    // Optional free-text account label
	CreatedAt   time.Time // When the transaction was recorded
}

// NewTransaction creates a new transaction with basic validation
func NewTransaction(
	userID uint64,
	kind string,
	category string,
	amountText string,
	date string,
	account string,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if !isValidKind(kind) {
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidKind, kind)
	}

	amountCents, err := ParseAmount(amountText)
	if err != nil {
		return nil, err
	}

	return &Transaction{
		UserID:      userID,
		Kind:        Kind(kind),
		Category:    category,
		AmountCents: amountCents,
		Date:        date,
		Account:     account,
		CreatedAt:   timeProvider.Now(),
	}, nil
}

// SignedCents returns the amount as it contributes to the balance:
// positive for income, negative for expense.
func (t *Transaction) SignedCents() int64 {
	if t.Kind == KindIncome {
		return t.AmountCents
	}
	return -t.AmountCents
}

// Amount returns the magnitude formatted with two decimal places
func (t *Transaction) Amount() string {
	return FormatCents(t.AmountCents)
}

// IsOwnedBy reports whether the transaction belongs to the given user
func (t *Transaction) IsOwnedBy(userID uint64) bool {
	return t.UserID == userID
}

// Balance computes the signed sum of a set of transactions in cents.
// It is recomputed from the ledger on every call and never cached.
func Balance(transactions []*Transaction) int64 {
	var total int64
	for _, t := range transactions {
		total += t.SignedCents()
	}
	return total
}

// isValidKind validates if the kind is one of the two recognized tags
func isValidKind(kind string) bool {
	return kind == string(KindIncome) || kind == string(KindExpense)
}
