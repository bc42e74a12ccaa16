package security

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/pennyledger/finance-tracker/internal/domain/port/core"
)

// BcryptHasher implements the PasswordHasher interface using bcrypt
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the default bcrypt cost
func NewBcryptHasher() core.PasswordHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// NewBcryptHasherWithCost creates a hasher with an explicit cost.
// Tests use bcrypt.MinCost to stay fast.
func NewBcryptHasherWithCost(cost int) core.PasswordHasher {
	return &BcryptHasher{cost: cost}
}

// Hash returns a salted bcrypt hash of the plaintext password
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare reports whether plaintext matches the stored hash.
// bcrypt's comparison is constant-time over the hash contents.
func (h *BcryptHasher) Compare(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
