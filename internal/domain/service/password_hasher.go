package service

// PasswordHasher abstracts password hashing so the business logic never
// touches a concrete algorithm.
type PasswordHasher interface {
	// Hash returns the hash of a plaintext password.
	Hash(password string) (string, error)

	// Compare reports whether the plaintext password matches the hash.
	Compare(hash, password string) error
}
