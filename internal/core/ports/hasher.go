package ports

// PasswordHasher produces and checks salted one-way password hashes. The
// implementation is expected to be slow by design.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(hash, plaintext string) bool
}
