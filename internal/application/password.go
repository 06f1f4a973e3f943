package application

// PasswordHasher is the pluggable one-way hashing primitive consumed by the
// auth service. The bcrypt implementation lives in pkg/helpers.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}
