package core

// PasswordHasher abstracts one-way password hashing so the domain never
// touches plaintext storage or a concrete hash algorithm.
type PasswordHasher interface {
	// Hash returns a salted one-way hash of the plaintext password
	Hash(plaintext string) (string, error)
	// Compare reports whether plaintext matches the stored hash
	Compare(hash, plaintext string) bool
}
