package password

import (
	"golang.org/x/crypto/bcrypt"
)

const defaultBcryptCost = 12

// BcryptHasher implements Hasher using bcrypt. The random salt is part
// of the scheme and embedded in the encoded output.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a bcrypt hasher. A cost of 0 selects the
// default; out-of-range values are clamped.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = defaultBcryptCost
	}
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h *BcryptHasher) Verify(secret, encoded string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(secret)) == nil
}

var _ Hasher = (*BcryptHasher)(nil)
