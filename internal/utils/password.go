package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost is the bcrypt cost factor used for all stored credentials.
const passwordHashCost = 10

// HashPassword derives a salted bcrypt hash from the given plaintext
// password. The hash embeds its own salt and cost, so no extra state needs to
// be persisted alongside it.
//
// Returns a wrapped error if the bcrypt primitive fails (e.g. the password
// exceeds bcrypt's 72-byte limit).
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), passwordHashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored bcrypt hash.
//
// The comparison is delegated to bcrypt's own constant-time compare routine.
// The function fails closed: any mismatch or malformed hash yields false,
// never an error the caller could use to tell the cases apart.
func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
