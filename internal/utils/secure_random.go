package utils

import (
	"crypto/rand"
	"fmt"
)

// SecureRandomBytes returns lengthInBytes bytes from the system CSPRNG.
func SecureRandomBytes(lengthInBytes int) ([]byte, error) {
	if lengthInBytes <= 0 {
		return nil, fmt.Errorf("lengthInBytes must be positive")
	}
	b := make([]byte, lengthInBytes)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return b, nil
}
