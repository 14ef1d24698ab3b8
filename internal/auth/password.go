// Package auth holds the credential store (bcrypt) and the bearer token
// issuer/verifier (JWT). Both are plain injected values with no package
// state, so tests can run them with fixed secrets and costs.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Passwords hashes and verifies passwords with bcrypt. The cost is the
// tunable work factor; zero means bcrypt.DefaultCost.
type Passwords struct {
	cost int
}

func NewPasswords(cost int) *Passwords {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &Passwords{cost: cost}
}

// Hash produces a salted adaptive hash of plaintext. The result differs
// between calls on the same input (fresh salt) but always verifies.
func (p *Passwords) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), p.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches hash. Malformed hashes verify
// as false rather than erroring; bcrypt's comparison is constant time.
func (p *Passwords) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
