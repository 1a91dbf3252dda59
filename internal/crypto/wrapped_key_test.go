package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrappedKey_StringHasSingleSeparator(t *testing.T) {
	v := NewDataKeyVault(testParams)
	dataKey, err := v.GenerateDataKey()
	require.NoError(t, err)

	wrapped, err := v.Wrap(dataKey, "Tr0ub4dor&3")
	require.NoError(t, err)

	stored := wrapped.String()
	assert.Equal(t, 1, strings.Count(stored, ":"))

	parsed, err := ParseWrappedKey(stored)
	require.NoError(t, err)
	assert.Equal(t, wrapped, parsed)
	assert.Equal(t, dataKey, v.Unwrap(parsed, "Tr0ub4dor&3"))
}

func TestParseWrappedKey_Malformed(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"no separator":   "c2FsdA==",
		"empty salt":     ":c2VhbGVk",
		"empty sealed":   "c2FsdA==:",
		"two separators": "c2FsdA==:c2Vh:bGVk",
		"bad salt":       "%%%:c2VhbGVk",
		"bad sealed":     "c2FsdA==:%%%",
	}

	for name, stored := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseWrappedKey(stored)
			assert.ErrorIs(t, err, ErrMalformedWrappedKey)
		})
	}
}

func TestWrappedKey_ZeroValue(t *testing.T) {
	var w WrappedKey

	assert.True(t, w.IsZero())
	assert.Equal(t, "", w.String())
}
