package password

import (
	"fmt"
)

// Hasher produces and checks one-way salted hashes of user secrets.
// Verify reports whether secret matches encoded; it returns false for
// malformed encoded values instead of erroring.
type Hasher interface {
	Hash(secret string) (string, error)
	Verify(secret, encoded string) bool
}

// NewHasher returns the hasher for the configured scheme.
func NewHasher(scheme string) (Hasher, error) {
	switch scheme {
	case "bcrypt":
		return NewBcryptHasher(0), nil
	case "argon2id":
		return NewArgon2Hasher(nil), nil
	default:
		return nil, fmt.Errorf("unknown hash scheme %q", scheme)
	}
}
