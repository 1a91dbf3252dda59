package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pii-keeper/internal/crypto"
	"github.com/MKhiriev/go-pii-keeper/internal/logger"
	"github.com/MKhiriev/go-pii-keeper/internal/mock"
	"github.com/MKhiriev/go-pii-keeper/internal/store"
	"github.com/MKhiriev/go-pii-keeper/migrations"
	"github.com/MKhiriev/go-pii-keeper/models"
)

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestAuthService_Register_StoresWrappedDataKey(t *testing.T) {
	s := newTestStack(t, migrations.VersionEnvelopeEncryption)
	ctx := context.Background()

	result := s.register(t, "  Alice@Example.com ")

	stored := s.user(t, result.User.UserID)
	require.NotEmpty(t, stored.WrappedDataKey)
	assert.Equal(t, 1, strings.Count(stored.WrappedDataKey, ":"))

	assert.True(t, crypto.IsEncrypted(stored.Email))
	assert.True(t, crypto.IsEncrypted(stored.DisplayName))
	assert.NotContains(t, stored.Email, "alice")
	assert.Equal(t, s.services.FieldCryptoService.HashEmail("alice@example.com"), stored.EmailHash)

	sessionKey := s.services.KeyCustodian.Fetch(ctx, result.Session.ID)
	require.NotNil(t, sessionKey)
	assert.Equal(t, s.services.KeyVaultService.UnwrapDataKey(stored, testPassword), sessionKey)

	email, ok := s.services.FieldCryptoService.DecryptPII(ctx, result.Session.ID, stored.Email)
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", email)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	s := newTestStack(t, migrations.VersionEnvelopeEncryption)
	s.register(t, "alice@example.com")

	_, err := s.services.AuthService.Register(context.Background(), models.Credentials{
		Email:    "ALICE@example.com",
		Password: "another",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_Register_EmailTakenByLegacyUser(t *testing.T) {
	s := newTestStack(t, migrations.VersionEnvelopeEncryption)
	s.seedLegacyUser(t, "Bob@Example.com", "secret", "Bob")

	_, err := s.services.AuthService.Register(context.Background(), models.Credentials{
		Email:    "bob@example.com",
		Password: testPassword,
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_Register_InvalidData(t *testing.T) {
	s := newTestStack(t, migrations.VersionEnvelopeEncryption)

	tests := []struct {
		name        string
		credentials models.Credentials
	}{
		{"empty email", models.Credentials{Password: "x"}},
		{"no at sign", models.Credentials{Email: "alice", Password: "x"}},
		{"two at signs", models.Credentials{Email: "a@b@c", Password: "x"}},
		{"empty password", models.Credentials{Email: "alice@example.com"}},
		{"password too long", models.Credentials{Email: "alice@example.com", Password: strings.Repeat("x", 73)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.services.AuthService.Register(context.Background(), tt.credentials)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
	assert.Zero(t, s.countSessions(t))
}

func TestAuthService_Register_LegacySchema(t *testing.T) {
	s := newTestStack(t, migrations.VersionLegacySchema)
	ctx := context.Background()

	result := s.register(t, "Alice@Example.com")

	stored := s.user(t, result.User.UserID)
	assert.Equal(t, "alice@example.com", stored.Email)
	assert.Equal(t, "Alice", stored.DisplayName)
	assert.Empty(t, stored.WrappedDataKey)
	assert.Nil(t, s.services.KeyCustodian.Fetch(ctx, result.Session.ID))

	profile, err := s.services.ProfileService.GetProfile(ctx, result.User.UserID, result.Session.ID)
	require.NoError(t, err)
	require.NotNil(t, profile.Email)
	assert.Equal(t, "alice@example.com", *profile.Email)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login_SameDataKeyAcrossSessions(t *testing.T) {
	s := newTestStack(t, migrations.VersionEnvelopeEncryption)
	ctx := context.Background()
	registered := s.register(t, "alice@example.com")

	loggedIn, err := s.services.AuthService.Login(ctx, models.Credentials{Email: " Alice@example.COM", Password: testPassword})
	require.NoError(t, err)

	assert.Equal(t, registered.User.UserID, loggedIn.User.UserID)
	assert.NotEqual(t, registered.Session.ID, loggedIn.Session.ID)
	assert.Equal(t,
		s.services.KeyCustodian.Fetch(ctx, registered.Session.ID),
		s.services.KeyCustodian.Fetch(ctx, loggedIn.Session.ID))
}

func TestAuthService_Login_LegacyUserIsBackfilledAndMigrated(t *testing.T) {
	s := newTestStack(t, migrations.VersionEnvelopeEncryption)
	ctx := context.Background()
	userID := s.seedLegacyUser(t, "Carol@Example.com", testPassword, "Carol")

	before := s.user(t, userID)
	require.Empty(t, before.WrappedDataKey)
	require.False(t, crypto.IsEncrypted(before.Email))

	result, err := s.services.AuthService.Login(ctx, models.Credentials{Email: "carol@example.com", Password: testPassword})
	require.NoError(t, err)

	after := s.user(t, userID)
	require.NotEmpty(t, after.WrappedDataKey)
	assert.Equal(t, 1, strings.Count(after.WrappedDataKey, ":"))
	assert.True(t, crypto.IsEncrypted(after.Email))
	assert.True(t, crypto.IsEncrypted(after.DisplayName))
	assert.True(t, crypto.IsEncrypted(after.Phone))
	assert.Empty(t, after.MonthlyBudget)
	assert.Equal(t, s.services.FieldCryptoService.HashEmail("carol@example.com"), after.EmailHash)

	assert.Equal(t, after.Email, result.User.Email)
	assert.Equal(t, after.EmailHash, result.User.EmailHash)

	dataKey := s.services.KeyVaultService.UnwrapDataKey(after, testPassword)
	require.NotNil(t, dataKey)
	assert.Equal(t, dataKey, s.services.KeyCustodian.Fetch(ctx, result.Session.ID))

	email, ok := s.services.FieldCryptoService.DecryptWithKey(ctx, dataKey, after.Email)
	require.True(t, ok)
	assert.Equal(t, "Carol@Example.com", email)

	// second login finds the user by hash and keeps the same key
	again, err := s.services.AuthService.Login(ctx, models.Credentials{Email: "carol@example.com", Password: testPassword})
	require.NoError(t, err)
	assert.Equal(t, dataKey, s.services.KeyCustodian.Fetch(ctx, again.Session.ID))
	assert.Equal(t, after.WrappedDataKey, s.user(t, userID).WrappedDataKey)
}

func TestAuthService_Login_WrongPasswordTouchesNothing(t *testing.T) {
	s := newTestStack(t, migrations.VersionEnvelopeEncryption)
	ctx := context.Background()
	userID := s.seedLegacyUser(t, "dave@example.com", testPassword, "Dave")
	before := s.user(t, userID)

	_, err := s.services.AuthService.Login(ctx, models.Credentials{Email: "dave@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	assert.Zero(t, s.countSessions(t))
	assert.Equal(t, before, s.user(t, userID))
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	s := newTestStack(t, migrations.VersionEnvelopeEncryption)

	_, err := s.services.AuthService.Login(context.Background(), models.Credentials{Email: "nobody@example.com", Password: testPassword})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Zero(t, s.countSessions(t))
}

func TestAuthService_Login_CorruptWrappedKeyIsInvalidCredentials(t *testing.T) {
	s := newTestStack(t, migrations.VersionEnvelopeEncryption)
	ctx := context.Background()
	result := s.register(t, "erin@example.com")

	require.NoError(t, s.storages.UserRepository.UpdateWrappedDataKey(ctx, result.User.UserID, "AAAA:AAAA"))

	_, err := s.services.AuthService.Login(ctx, models.Credentials{Email: "erin@example.com", Password: testPassword})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, 1, s.countSessions(t))
}

func TestAuthService_Login_LegacySchema(t *testing.T) {
	s := newTestStack(t, migrations.VersionLegacySchema)
	ctx := context.Background()
	userID := s.seedLegacyUser(t, "frank@example.com", testPassword, "Frank")

	result, err := s.services.AuthService.Login(ctx, models.Credentials{Email: "frank@example.com", Password: testPassword})
	require.NoError(t, err)
	assert.Equal(t, userID, result.User.UserID)
	assert.Equal(t, "frank@example.com", s.user(t, userID).Email)
}

func TestAuthService_Login_AttachFailureDoesNotFailLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	sessions := mock.NewMockSessionRepository(ctrl)
	vault := mock.NewMockKeyVaultService(ctrl)
	migration := mock.NewMockMigrationPolicy(ctrl)

	s := newTestStack(t, migrations.VersionEnvelopeEncryption)
	result := s.register(t, "grace@example.com")
	user := s.user(t, result.User.UserID)
	dataKey := []byte("0123456789abcdef0123456789abcdef")

	storages := &store.Storages{UserRepository: users, SessionRepository: sessions, Capabilities: store.AllCapabilities()}
	custodian := NewKeyCustodian(sessions, mustSealer(t, ""), store.AllCapabilities(), logger.Nop())
	fieldCrypto := NewFieldCryptoService(custodian, crypto.NewLookupHasher("k"), logger.Nop())
	auth := NewAuthService(storages, vault, custodian, fieldCrypto, migration, testConfig().App, logger.Nop())

	users.EXPECT().FindUserByEmailHash(gomock.Any(), gomock.Any()).Return(user, nil)
	vault.EXPECT().UnwrapDataKey(user, testPassword).Return(dataKey)
	sessions.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(nil)
	sessions.EXPECT().SetSessionDataKey(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("no such column: data_key"))
	migration.EXPECT().UpgradeUser(gomock.Any(), user, dataKey).Return(user)

	got, err := auth.Login(context.Background(), models.Credentials{Email: "grace@example.com", Password: testPassword})
	require.NoError(t, err)
	assert.Equal(t, user.UserID, got.User.UserID)
	assert.NotEmpty(t, got.Session.ID)
}

func TestAuthService_Login_BackfillFailureDoesNotFailLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	sessions := mock.NewMockSessionRepository(ctrl)
	vault := mock.NewMockKeyVaultService(ctrl)
	custodian := mock.NewMockKeyCustodian(ctrl)
	migration := mock.NewMockMigrationPolicy(ctrl)

	s := newTestStack(t, migrations.VersionEnvelopeEncryption)
	userID := s.seedLegacyUser(t, "heidi@example.com", testPassword, "")
	user := s.user(t, userID)

	storages := &store.Storages{UserRepository: users, SessionRepository: sessions, Capabilities: store.AllCapabilities()}
	fieldCrypto := NewFieldCryptoService(custodian, crypto.NewLookupHasher("k"), logger.Nop())
	auth := NewAuthService(storages, vault, custodian, fieldCrypto, migration, testConfig().App, logger.Nop())

	users.EXPECT().FindUserByEmailHash(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound)
	users.EXPECT().FindUsersByLegacyEmail(gomock.Any(), "heidi@example.com").Return([]models.User{user}, nil)
	vault.EXPECT().Backfill(gomock.Any(), userID, testPassword).Return(nil, errors.New("database is locked"))
	sessions.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(nil)

	_, err := auth.Login(context.Background(), models.Credentials{Email: "heidi@example.com", Password: testPassword})
	require.NoError(t, err)
}

func TestAuthService_Login_StorageErrorIsNotInvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)

	storages := &store.Storages{UserRepository: users, Capabilities: store.AllCapabilities()}
	fieldCrypto := NewFieldCryptoService(nil, crypto.NewLookupHasher("k"), logger.Nop())
	auth := NewAuthService(storages, nil, nil, fieldCrypto, nil, testConfig().App, logger.Nop())

	users.EXPECT().FindUserByEmailHash(gomock.Any(), gomock.Any()).Return(models.User{}, errors.New("connection reset"))

	_, err := auth.Login(context.Background(), models.Credentials{Email: "ivan@example.com", Password: testPassword})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ─────────────────────────────────────────────
// Logout / ChangePassword
// ─────────────────────────────────────────────

func TestAuthService_Logout_EvictsKey(t *testing.T) {
	s := newTestStack(t, migrations.VersionEnvelopeEncryption)
	ctx := context.Background()
	result := s.register(t, "judy@example.com")

	require.NoError(t, s.services.AuthService.Logout(ctx, result.Session.ID))

	assert.Nil(t, s.services.KeyCustodian.Fetch(ctx, result.Session.ID))
	assert.Zero(t, s.countSessions(t))
	assert.ErrorIs(t, s.services.AuthService.Logout(ctx, result.Session.ID), ErrSessionInvalid)
}

func TestAuthService_ChangePassword_RewrapsSameKey(t *testing.T) {
	s := newTestStack(t, migrations.VersionEnvelopeEncryption)
	ctx := context.Background()
	result := s.register(t, "mallory@example.com")
	before := s.user(t, result.User.UserID)
	dataKey := s.services.KeyVaultService.UnwrapDataKey(before, testPassword)

	err := s.services.AuthService.ChangePassword(ctx, result.User.UserID, result.Session.ID, models.PasswordChange{
		OldPassword: testPassword,
		NewPassword: "correct horse battery staple",
	})
	require.NoError(t, err)

	after := s.user(t, result.User.UserID)
	assert.NotEqual(t, before.WrappedDataKey, after.WrappedDataKey)
	assert.Nil(t, s.services.KeyVaultService.UnwrapDataKey(after, testPassword))
	assert.Equal(t, dataKey, s.services.KeyVaultService.UnwrapDataKey(after, "correct horse battery staple"))
	assert.Equal(t, dataKey, s.services.KeyCustodian.Fetch(ctx, result.Session.ID))

	_, err = s.services.AuthService.Login(ctx, models.Credentials{Email: "mallory@example.com", Password: testPassword})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	relogin, err := s.services.AuthService.Login(ctx, models.Credentials{Email: "mallory@example.com", Password: "correct horse battery staple"})
	require.NoError(t, err)
	email, ok := s.services.FieldCryptoService.DecryptPII(ctx, relogin.Session.ID, after.Email)
	require.True(t, ok)
	assert.Equal(t, "mallory@example.com", email)
}

func TestAuthService_ChangePassword_WrongOldPassword(t *testing.T) {
	s := newTestStack(t, migrations.VersionEnvelopeEncryption)
	result := s.register(t, "oscar@example.com")
	before := s.user(t, result.User.UserID)

	err := s.services.AuthService.ChangePassword(context.Background(), result.User.UserID, result.Session.ID, models.PasswordChange{
		OldPassword: "wrong",
		NewPassword: "new",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, before.WrappedDataKey, s.user(t, result.User.UserID).WrappedDataKey)
}

// ─────────────────────────────────────────────
// EmailExists / tokens / sessions
// ─────────────────────────────────────────────

func TestAuthService_EmailExists(t *testing.T) {
	s := newTestStack(t, migrations.VersionEnvelopeEncryption)
	ctx := context.Background()
	s.register(t, "peggy@example.com")
	s.seedLegacyUser(t, "trent@example.com", "pw", "")

	exists, err := s.services.AuthService.EmailExists(ctx, "PEGGY@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.services.AuthService.EmailExists(ctx, "trent@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.services.AuthService.EmailExists(ctx, "victor@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = s.services.AuthService.EmailExists(ctx, "  ")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	s := newTestStack(t, migrations.VersionEnvelopeEncryption)
	ctx := context.Background()
	result := s.register(t, "walter@example.com")

	token, err := s.services.AuthService.CreateToken(ctx, result)
	require.NoError(t, err)

	parsed, err := s.services.AuthService.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, result.User.UserID, parsed.UserID)
	assert.Equal(t, result.Session.ID, parsed.SessionID)

	require.NoError(t, s.services.AuthService.ValidateSession(ctx, parsed))

	require.NoError(t, s.services.AuthService.Logout(ctx, result.Session.ID))
	assert.ErrorIs(t, s.services.AuthService.ValidateSession(ctx, parsed), ErrSessionInvalid)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	s := newTestStack(t, migrations.VersionEnvelopeEncryption)

	_, err := s.services.AuthService.ParseToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ValidateSession_ForeignSession(t *testing.T) {
	s := newTestStack(t, migrations.VersionEnvelopeEncryption)
	ctx := context.Background()
	result := s.register(t, "zoe@example.com")

	err := s.services.AuthService.ValidateSession(ctx, models.Token{UserID: result.User.UserID + 1, SessionID: result.Session.ID})
	assert.ErrorIs(t, err, ErrSessionInvalid)
}

func TestAuthService_Login_LegacyCaseVariants(t *testing.T) {
	s := newTestStack(t, migrations.VersionLegacySchema)
	ctx := context.Background()
	upperID := s.seedLegacyUser(t, "Bob@example.com", "upper-secret", "Upper")
	lowerID := s.seedLegacyUser(t, "bob@example.com", "lower-secret", "Lower")

	got, err := s.services.AuthService.Login(ctx, models.Credentials{Email: "bob@example.com", Password: "lower-secret"})
	require.NoError(t, err)
	assert.Equal(t, lowerID, got.User.UserID)

	got, err = s.services.AuthService.Login(ctx, models.Credentials{Email: "Bob@example.com", Password: "upper-secret"})
	require.NoError(t, err)
	assert.Equal(t, upperID, got.User.UserID)

	_, err = s.services.AuthService.Login(ctx, models.Credentials{Email: "BOB@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_LegacyVariantOfUpgradedUser(t *testing.T) {
	s := newTestStack(t, migrations.VersionEnvelopeEncryption)
	ctx := context.Background()
	upperID := s.seedLegacyUser(t, "Bob@example.com", "upper-secret", "Upper")
	lowerID := s.seedLegacyUser(t, "bob@example.com", "lower-secret", "Lower")

	// upgrading the first user claims the shared email hash
	_, err := s.services.AuthService.Login(ctx, models.Credentials{Email: "Bob@example.com", Password: "upper-secret"})
	require.NoError(t, err)
	assert.Equal(t, s.services.FieldCryptoService.HashEmail("bob@example.com"), s.user(t, upperID).EmailHash)

	got, err := s.services.AuthService.Login(ctx, models.Credentials{Email: "bob@example.com", Password: "lower-secret"})
	require.NoError(t, err)
	assert.Equal(t, lowerID, got.User.UserID)
}

func TestAuthService_WithoutSessionKeyColumn(t *testing.T) {
	s := newTestStack(t, migrations.VersionEnvelopeEncryption, dropSessionDataKey)
	ctx := context.Background()
	require.True(t, s.storages.Capabilities.UserEnvelope())
	require.False(t, s.storages.Capabilities.FieldSealing())

	t.Run("legacy user stays readable and writable", func(t *testing.T) {
		userID := s.seedLegacyUser(t, "peggy@example.com", testPassword, "Peggy")

		for range 2 {
			login, err := s.services.AuthService.Login(ctx, models.Credentials{Email: "peggy@example.com", Password: testPassword})
			require.NoError(t, err)

			profile, err := s.services.ProfileService.GetProfile(ctx, userID, login.Session.ID)
			require.NoError(t, err)
			require.NotNil(t, profile.Email)
			require.NotNil(t, profile.DisplayName)
			require.NotNil(t, profile.Phone)
			assert.Equal(t, "peggy@example.com", *profile.Email)
			assert.Equal(t, "Peggy", *profile.DisplayName)
			assert.Equal(t, "+1 555 0100", *profile.Phone)

			updated, err := s.services.ProfileService.UpdateProfile(ctx, userID, login.Session.ID, models.ProfileUpdate{MonthlyBudget: ptr("300")})
			require.NoError(t, err)
			require.NotNil(t, updated.MonthlyBudget)
			assert.Equal(t, "300", *updated.MonthlyBudget)
		}

		assert.Equal(t, "peggy@example.com", s.storedUserColumn(t, userID, "email"))
		assert.Equal(t, "Peggy", s.storedUserColumn(t, userID, "display_name"))
		assert.Equal(t, "300", s.storedUserColumn(t, userID, "monthly_budget"))
	})

	t.Run("new user is stored in legacy form", func(t *testing.T) {
		result := s.register(t, "quentin@example.com")

		assert.Equal(t, "quentin@example.com", s.storedUserColumn(t, result.User.UserID, "email"))
		assert.Equal(t, "Alice", s.storedUserColumn(t, result.User.UserID, "display_name"))

		login, err := s.services.AuthService.Login(ctx, models.Credentials{Email: "quentin@example.com", Password: testPassword})
		require.NoError(t, err)
		profile, err := s.services.ProfileService.GetProfile(ctx, result.User.UserID, login.Session.ID)
		require.NoError(t, err)
		require.NotNil(t, profile.Email)
		assert.Equal(t, "quentin@example.com", *profile.Email)
	})
}
