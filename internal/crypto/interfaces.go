package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/key_vault_mock.go -package=mock

// KeyVault owns the lifecycle of a user's single data key (DEK). It knows
// nothing about databases or sessions.
//
// Scheme:
//
//	Salt, DEK  = GenerateSalt() + GenerateDataKey()        (signup / first legacy login)
//	KEK        = DeriveWrappingKey(password, salt)         (Argon2id)
//	Sealed     = WrapDataKey(DEK, KEK)                      (AES-256-GCM)
//	stored     = WrappedKey{Salt, Sealed}.String()          ("salt:sealed")
//
// A password change rewraps the same DEK under a fresh salt, so previously
// encrypted PII stays readable.
type KeyVault interface {
	// GenerateDataKey returns a random 32-byte data key.
	GenerateDataKey() ([]byte, error)

	// DeriveWrappingKey runs the KDF with the vault's cost parameters.
	DeriveWrappingKey(password string, salt []byte) []byte

	// WrapDataKey seals dataKey under wrappingKey (nonce ‖ ciphertext).
	WrapDataKey(dataKey, wrappingKey []byte) ([]byte, error)

	// Wrap generates a salt, derives the wrapping key from password and
	// seals dataKey with it.
	Wrap(dataKey []byte, password string) (WrappedKey, error)

	// Unwrap recovers the data key. It returns nil when the password is
	// wrong or the record is corrupted; the two cases are deliberately
	// indistinguishable.
	Unwrap(stored WrappedKey, password string) []byte

	// Rewrap re-seals the same dataKey under newPassword with a new salt.
	Rewrap(dataKey []byte, newPassword string) (WrappedKey, error)
}
