// Package credential hashes plaintext secrets and verifies them against
// stored hashes. It is the only place in the codebase that touches
// password material.
package credential

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/spendwise/expense-tracker/internal/core/domain"
)

// Hash derives a salted, adaptive one-way hash from secret using bcrypt
// at the default cost. Two calls with the same secret produce different
// hashes (random salt).
func Hash(secret string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("hash: empty secret: %w", domain.ErrInvalidInput)
	}

	h, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash: %w", err)
	}
	return string(h), nil
}

// Verify reports whether secret matches the stored hash. A merely-wrong
// secret returns (false, nil); a hash bcrypt cannot parse returns
// domain.ErrCorruptCredential.
func Verify(secret, hash string) (bool, error) {
	if secret == "" {
		return false, fmt.Errorf("verify: empty secret: %w", domain.ErrInvalidInput)
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("verify: %w: %v", domain.ErrCorruptCredential, err)
	}
}
