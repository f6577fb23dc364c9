package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// NormalizeEmail lowercases and trims an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// GeneratePasswordResetToken returns the token handed to the user. Only
// its hash is ever stored.
func GeneratePasswordResetToken() string {
	return GenerateRandomString(32)
}

// HashResetToken derives the stored form of a reset token
func HashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// CreatePasswordResetLink builds the link embedded in the recovery email
func CreatePasswordResetLink(baseURL, token string) string {
	return fmt.Sprintf("%s/password/reset/%s", strings.TrimRight(baseURL, "/"), token)
}
