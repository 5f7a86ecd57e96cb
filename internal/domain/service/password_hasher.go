// Package service declares the outbound collaborators of the portal workflows.
// Implementations live under internal/infra.
package service

// PasswordHasher turns account passwords into stored hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches a hash produced by Hash.
	Check(password, hash string) bool
}
