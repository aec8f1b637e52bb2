package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted one-way hashes and
// checks candidates against stored hashes.
//
// Hash output is self-describing: the algorithm, its parameters and the salt
// are encoded in the returned string, so Verify needs nothing but the stored
// value.
type PasswordHasher interface {
	// Hash returns a fresh salted hash of password.
	Hash(password string) (string, error)

	// Verify returns nil when password matches hash, ErrMismatchedPassword
	// when it does not and ErrUnknownHashFormat when hash was produced by an
	// algorithm this hasher does not know.
	Verify(hash, password string) error
}
