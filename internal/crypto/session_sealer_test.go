package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionKeySealer_SealedRoundTrip(t *testing.T) {
	s, err := NewSessionKeySealer("server-secret")
	require.NoError(t, err)
	require.True(t, s.Enabled())

	dataKey := bytes.Repeat([]byte{0x09}, KeySize)

	stored, err := s.SealKey(dataKey)
	require.NoError(t, err)
	assert.True(t, IsEncrypted(stored))

	got, err := s.OpenKey(stored)
	require.NoError(t, err)
	assert.Equal(t, dataKey, got)
}

func TestSessionKeySealer_Passthrough(t *testing.T) {
	s, err := NewSessionKeySealer("")
	require.NoError(t, err)
	require.False(t, s.Enabled())

	dataKey := bytes.Repeat([]byte{0x09}, KeySize)

	stored, err := s.SealKey(dataKey)
	require.NoError(t, err)
	assert.False(t, IsEncrypted(stored))

	got, err := s.OpenKey(stored)
	require.NoError(t, err)
	assert.Equal(t, dataKey, got)
}

func TestSessionKeySealer_AcceptsUnsealedRowsAfterSecretAdded(t *testing.T) {
	plain, _ := NewSessionKeySealer("")
	sealed, _ := NewSessionKeySealer("server-secret")

	dataKey := bytes.Repeat([]byte{0x0A}, KeySize)
	stored, err := plain.SealKey(dataKey)
	require.NoError(t, err)

	got, err := sealed.OpenKey(stored)
	require.NoError(t, err)
	assert.Equal(t, dataKey, got)
}

func TestSessionKeySealer_Failures(t *testing.T) {
	withSecret, _ := NewSessionKeySealer("server-secret")
	otherSecret, _ := NewSessionKeySealer("other-secret")
	noSecret, _ := NewSessionKeySealer("")

	stored, err := withSecret.SealKey(bytes.Repeat([]byte{0x0B}, KeySize))
	require.NoError(t, err)

	_, err = noSecret.OpenKey(stored)
	assert.ErrorIs(t, err, ErrSessionSecretMissing)

	_, err = otherSecret.OpenKey(stored)
	assert.Error(t, err)

	_, err = withSecret.SealKey([]byte("short"))
	assert.ErrorIs(t, err, ErrInvalidKeySize)

	_, err = noSecret.OpenKey("c2hvcnQ=")
	assert.ErrorIs(t, err, ErrInvalidKeySize)
}
