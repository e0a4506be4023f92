// Package service defines the ports the use cases need from infrastructure:
// credential hashing, event publishing and delivery slip rendering.
package service

// PasswordHasher hashes the initial password of a branch account.
// Implementations must produce salted, self-describing hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool
}
