package ports

// PasswordHasher is the one-way credential hashing capability. Any salted
// adaptive algorithm satisfies it; the bcrypt implementation lives in
// infrastructure.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Matches(plain, digest string) bool
}
