package error

import (
	"errors"
	"fmt"
)

// Base error types
var (
	// ErrInvalidCredentials is returned when login fails for any reason.
	// It deliberately does not distinguish an unknown username from a wrong
	// password so usernames cannot be enumerated.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrDuplicateUsername is returned when registering a username that is already taken
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrEmptyUsername is returned when the supplied username is empty or whitespace
	ErrEmptyUsername = errors.New("username cannot be empty")

	// ErrEmptyPassword is returned when the supplied password is empty
	ErrEmptyPassword = errors.New("password cannot be empty")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidKind is returned when the transaction kind is not income or expense
	ErrInvalidKind = errors.New("invalid transaction kind")

	// ErrInvalidAmount is returned when the transaction amount format is invalid
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when the transaction amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidTransactionID is returned when the transaction ID is not a positive integer
	ErrInvalidTransactionID = errors.New("transaction ID must be positive")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNotOwner is returned when a user acts on a transaction owned by someone else
	ErrNotOwner = errors.New("transaction belongs to another user")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// UserMessage returns the text shown to the user for a known domain error.
// Unknown errors collapse to a generic message so internals never leak into
// a rendered page.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid username or password"
	case errors.Is(err, ErrDuplicateUsername):
		return "That username is already taken"
	case errors.Is(err, ErrEmptyUsername):
		return "Username cannot be empty"
	case errors.Is(err, ErrEmptyPassword):
		return "Password cannot be empty"
	case errors.Is(err, ErrInvalidKind):
		return "Transaction type must be income or expense"
	case errors.Is(err, ErrNegativeAmount):
		return "Amount cannot be negative"
	case errors.Is(err, ErrInvalidAmount):
		return "Invalid amount"
	case errors.Is(err, ErrNotOwner):
		return "Unauthorized"
	case errors.Is(err, ErrTransactionNotFound):
		return "Transaction not found"
	default:
		return "Something went wrong"
	}
}

// LedgerError carries the ledger context a failed operation ran with
type LedgerError struct {
	UserID        uint64
	TransactionID uint64
	Operation     string
	Err           error
}

// Error implements the error interface for LedgerError
func (e *LedgerError) Error() string {
	return fmt.Sprintf("ledger %s failed for user %d (transaction: %d): %v",
		e.Operation, e.UserID, e.TransactionID, e.Err)
}

// Unwrap returns the underlying error
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *LedgerError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "ledger_error",
		"user_id":        e.UserID,
		"transaction_id": e.TransactionID,
		"operation":      e.Operation,
		"error":          e.Err.Error(),
	}
}

// NewLedgerError creates a detailed ledger error
func NewLedgerError(operation string, userID, transactionID uint64, err error) error {
	return &LedgerError{
		UserID:        userID,
		TransactionID: transactionID,
		Operation:     operation,
		Err:           err,
	}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsValidationError checks if the error stems from malformed user input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidKind) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrEmptyUsername) ||
		errors.Is(err, ErrEmptyPassword)
}

// IsDuplicateUsernameError checks if the error is a duplicate username error
func IsDuplicateUsernameError(err error) bool {
	return errors.Is(err, ErrDuplicateUsername)
}

// IsNotOwnerError checks if the error is an ownership refusal
func IsNotOwnerError(err error) bool {
	return errors.Is(err, ErrNotOwner)
}
