package crypto

import (
	"strings"

	"github.com/MKhiriev/go-pii-keeper/internal/utils"
)

// NormalizeEmail trims surrounding whitespace and lower-cases the address so
// that every spelling of the same mailbox hashes to the same lookup value.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// LookupHasher computes deterministic, keyed digests used only for equality
// search over encrypted columns (blind index). The key is server-wide, so the
// digest does not depend on which data key sealed the paired ciphertext.
type LookupHasher struct {
	key string
}

// NewLookupHasher returns a hasher keyed with key. An empty key is allowed;
// the digest stays deterministic.
func NewLookupHasher(key string) *LookupHasher {
	return &LookupHasher{key: key}
}

// HashEmail returns the hex HMAC-SHA256 of an already normalized email.
func (h *LookupHasher) HashEmail(normalizedEmail string) string {
	return utils.KeyedHash(normalizedEmail, h.key)
}
