package utils

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

// ErrUnsealFailed is returned when a sealed value is malformed or was sealed with another secret.
var ErrUnsealFailed = errors.New("failed to unseal value")

// Sealer encrypts small secrets, such as the rate provider API key, before they are stored.
type Sealer struct {
	key [32]byte
}

// NewSealer derives the sealing key from secret.
func NewSealer(secret string) (*Sealer, error) {
	if secret == "" {
		return nil, errors.New("sealing secret cannot be empty")
	}
	return &Sealer{key: sha256.Sum256([]byte(secret))}, nil
}

// Seal encrypts plaintext and returns base64(nonce || box).
func (s *Sealer) Seal(plaintext string) (string, error) {
	nonceBytes, err := SecureRandomBytes(nonceSize)
	if err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}
	var nonce [nonceSize]byte
	copy(nonce[:], nonceBytes)

	sealed := secretbox.Seal(nonce[:], []byte(plaintext), &nonce, &s.key)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Open reverses Seal.
func (s *Sealer) Open(sealed string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil || len(raw) < nonceSize+secretbox.Overhead {
		return "", ErrUnsealFailed
	}
	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])

	plaintext, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &s.key)
	if !ok {
		return "", ErrUnsealFailed
	}
	return string(plaintext), nil
}
