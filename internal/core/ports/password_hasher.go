package ports

// PasswordHasher produces and verifies salted one-way password digests.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify reports whether password matches the stored digest.
	Verify(hash, password string) bool
}
