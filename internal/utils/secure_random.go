package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/SscSPs/atm_backend/internal/apperrors"
)

// GenerateSecureRandomString returns lengthInBytes random bytes, hex encoded.
// It backs the admin key generated when none is configured.
func GenerateSecureRandomString(lengthInBytes int) (string, error) {
	if lengthInBytes <= 0 {
		return "", fmt.Errorf("%w: random string length must be positive, got %d", apperrors.ErrValidation, lengthInBytes)
	}
	b := make([]byte, lengthInBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
