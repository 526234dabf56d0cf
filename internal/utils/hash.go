package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces a salted one-way bcrypt digest of the given
// plaintext password using the supplied work factor.
//
// The cost parameter controls how computationally expensive the hash is;
// it comes from configuration and is clamped by bcrypt itself to the
// supported range. A hashing failure is surfaced to the caller and must be
// treated as fatal to the registration request.
//
// Parameters:
//
//	password - the plaintext password to hash
//	cost     - bcrypt work factor (e.g. bcrypt.DefaultCost)
//
// Returns:
//
//	string - the bcrypt digest, safe to persist
//	error  - non-nil if bcrypt rejects the input or cost
func HashPassword(password string, cost int) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// bcrypt digest. The comparison is performed by bcrypt with constant-time
// semantics; any error (including a malformed digest) is treated as a
// mismatch.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
