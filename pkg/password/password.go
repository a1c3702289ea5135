// Package password hashes credentials and enforces the signup password policy.
package password

import "golang.org/x/crypto/bcrypt"

// MaxBytes is the longest input bcrypt accepts.
const MaxBytes = 72

// Hasher produces one-way password hashes.
type Hasher interface {
	Hash(raw string) (string, error)
}

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a Hasher backed by bcrypt. A cost outside bcrypt's
// accepted range falls back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(raw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(raw), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
