package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	errs "github.com/pennyledger/finance-tracker/internal/domain/error"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// ParseAmount converts user-supplied amount text to cents. Thousands
// separators are stripped first ("2,500" parses as 2500), matching what the
// dashboard form accepts. Amounts are kept in integer cents so balances never
// accumulate binary floating-point drift.
func ParseAmount(text string) (int64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	if cleaned == "" {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidAmount, text)
	}

	if d.IsNegative() {
		return 0, errs.ErrNegativeAmount
	}

	if d.Exponent() < -MaxDecimalPlaces {
		return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}

	// IntPart wraps silently outside int64 range, so bounds-check first
	shifted := d.Shift(MaxDecimalPlaces)
	if !shifted.BigInt().IsInt64() {
		return 0, fmt.Errorf("%w: amount too large", errs.ErrInvalidAmount)
	}

	return shifted.IntPart(), nil
}

// FormatCents converts integer cents to a decimal string with exactly two
// decimal places. 1015 becomes "10.15", -130000 becomes "-1300.00".
func FormatCents(cents int64) string {
	return decimal.New(cents, -MaxDecimalPlaces).StringFixed(MaxDecimalPlaces)
}
