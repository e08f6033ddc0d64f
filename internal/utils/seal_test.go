package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealer_RoundTrip(t *testing.T) {
	sealer, err := NewSealer("app-secret")
	require.NoError(t, err)

	sealed, err := sealer.Seal("fx-api-key-123")
	require.NoError(t, err)
	assert.NotContains(t, sealed, "fx-api-key-123")

	opened, err := sealer.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "fx-api-key-123", opened)

	again, err := sealer.Seal("fx-api-key-123")
	require.NoError(t, err)
	assert.NotEqual(t, sealed, again, "nonce must differ per seal")
}

func TestSealer_RejectsTampering(t *testing.T) {
	sealer, err := NewSealer("app-secret")
	require.NoError(t, err)
	other, err := NewSealer("other-secret")
	require.NoError(t, err)

	sealed, err := sealer.Seal("fx-api-key-123")
	require.NoError(t, err)

	_, err = other.Open(sealed)
	assert.ErrorIs(t, err, ErrUnsealFailed)

	_, err = sealer.Open("not base64 !!")
	assert.ErrorIs(t, err, ErrUnsealFailed)

	_, err = sealer.Open("c2hvcnQ=")
	assert.ErrorIs(t, err, ErrUnsealFailed)
}

func TestNewSealer_EmptySecret(t *testing.T) {
	_, err := NewSealer("")
	assert.Error(t, err)
}
