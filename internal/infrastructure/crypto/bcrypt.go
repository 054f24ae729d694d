// Package crypto provides the password-hashing and token-signing
// collaborators the core consumes.
package crypto

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/identora/account-system/internal/core/ports"
)

// BcryptHasher is a PasswordHasher backed by bcrypt: salted, one-way, and
// slow by design.
type BcryptHasher struct {
	cost int
}

var _ ports.PasswordHasher = BcryptHasher{}

// NewBcryptHasher returns a hasher with the given cost, falling back to
// bcrypt.DefaultCost for out-of-range values.
func NewBcryptHasher(cost int) BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return BcryptHasher{cost: cost}
}

func (h BcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h BcryptHasher) Verify(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
