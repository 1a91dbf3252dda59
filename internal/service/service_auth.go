package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-pii-keeper/internal/config"
	"github.com/MKhiriev/go-pii-keeper/internal/crypto"
	"github.com/MKhiriev/go-pii-keeper/internal/logger"
	"github.com/MKhiriev/go-pii-keeper/internal/store"
	"github.com/MKhiriev/go-pii-keeper/internal/utils"
	"github.com/MKhiriev/go-pii-keeper/internal/validators"
	"github.com/MKhiriev/go-pii-keeper/models"
)

// authService is the concrete implementation of AuthService.
// Passwords are verified against bcrypt hashes; the same password unwraps
// the user's data key, which is then cached on the new session.
type authService struct {
	// userRepository and sessionRepository hold credential records and
	// sessions.
	userRepository    store.UserRepository
	sessionRepository store.SessionRepository

	// keyVault creates, unwraps and rewraps data keys.
	keyVault KeyVaultService

	// custodian caches the unwrapped data key on the session row.
	custodian KeyCustodian

	// fieldCrypto seals PII written at signup and hashes emails.
	fieldCrypto FieldCryptoService

	// migration upgrades the user's legacy PII at login.
	migration MigrationPolicy

	finder    userFinder
	validator validators.Validator
	caps      store.Capabilities

	// tokens signs and verifies the JWTs that point at sessions.
	tokens utils.SessionTokens

	// tokenDuration is the lifetime of both the session row and its token.
	tokenDuration time.Duration

	bcryptCost int
	dummyHash  func() []byte
	ids        utils.SessionIDs
	now        func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. The returned service is safe
// for concurrent use; all state is read-only after construction.
func NewAuthService(
	storages *store.Storages,
	keyVault KeyVaultService,
	custodian KeyCustodian,
	fieldCrypto FieldCryptoService,
	migration MigrationPolicy,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	a := &authService{
		userRepository:    storages.UserRepository,
		sessionRepository: storages.SessionRepository,
		keyVault:          keyVault,
		custodian:         custodian,
		fieldCrypto:       fieldCrypto,
		migration:         migration,
		finder: userFinder{
			userRepository: storages.UserRepository,
			fieldCrypto:    fieldCrypto,
			caps:           storages.Capabilities,
		},
		validator:     validators.NewInputValidator(),
		caps:          storages.Capabilities,
		tokens:        utils.NewSessionTokens(cfg.TokenIssuer, cfg.TokenSignKey),
		tokenDuration: cfg.TokenDuration,
		bcryptCost:    bcrypt.DefaultCost,
		ids:           utils.NewSessionIDs(),
		now:           time.Now,
		logger:        logger,
	}
	a.dummyHash = sync.OnceValue(func() []byte {
		hash, _ := bcrypt.GenerateFromPassword([]byte("go-pii-keeper"), a.bcryptCost)
		return hash
	})
	return a
}

// Register creates a user with a fresh data key wrapped under the password,
// seals the email and display name with it, and opens the first session.
//
// On a schema without envelope columns the user is stored in legacy
// plaintext form and the session carries no key.
//
// Returns:
//   - ErrInvalidDataProvided for an empty or malformed email or password.
//   - ErrEmailTaken if any user already has the email in either form.
func (a *authService) Register(ctx context.Context, credentials models.Credentials) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	credentials.Email = crypto.NormalizeEmail(credentials.Email)
	credentials.DisplayName = strings.TrimSpace(credentials.DisplayName)
	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("invalid user data provided")
		return models.AuthResult{}, invalidInput(err)
	}
	email := credentials.Email

	taken, err := a.finder.emailTaken(ctx, email, 0)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("email lookup failed")
		return models.AuthResult{}, fmt.Errorf("email lookup failed: %w", err)
	}
	if taken {
		return models.AuthResult{}, ErrEmailTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), a.bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return models.AuthResult{}, ErrInvalidDataProvided
	}
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("error hashing password: %w", err)
	}

	user := models.User{
		Email:        email,
		DisplayName:  credentials.DisplayName,
		PasswordHash: string(passwordHash),
		CreatedAt:    a.now().UTC(),
	}

	var dataKey []byte
	if a.caps.FieldSealing() {
		dataKey, user, err = a.sealNewUser(user, credentials.Password)
		if err != nil {
			log.Err(err).Str("func", "*authService.Register").Msg("error sealing new user")
			return models.AuthResult{}, err
		}
	} else {
		log.Warn().Str("func", "*authService.Register").
			Msg("schema cannot hold a data key, user stored in legacy form")
	}

	created, err := a.userRepository.CreateUser(ctx, user)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.AuthResult{}, ErrEmailTaken
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("user creation ended with error")
		return models.AuthResult{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	session, err := a.startSession(ctx, created.UserID, dataKey)
	if err != nil {
		return models.AuthResult{}, err
	}

	return models.AuthResult{User: created, Session: session}, nil
}

func (a *authService) sealNewUser(user models.User, password string) ([]byte, models.User, error) {
	dataKey, wrapped, err := a.keyVault.NewWrappedDataKey(password)
	if err != nil {
		return nil, models.User{}, err
	}
	user.WrappedDataKey = wrapped
	user.EmailHash = a.fieldCrypto.HashEmail(user.Email)

	if user.Email, err = a.fieldCrypto.EncryptField(user.Email, dataKey); err != nil {
		return nil, models.User{}, err
	}
	if user.DisplayName != "" {
		if user.DisplayName, err = a.fieldCrypto.EncryptField(user.DisplayName, dataKey); err != nil {
			return nil, models.User{}, err
		}
	}

	return dataKey, user, nil
}

// Login verifies the password, recovers the data key and opens a session.
//
// A user without a wrapped data key gets one generated and wrapped under the
// verified password. Legacy PII of the user is upgraded once the key is
// known. Failing to cache the key or to upgrade PII never fails the login.
//
// Unknown email, wrong password and an unopenable wrapped key all return
// ErrInvalidCredentials; in those cases no session is created.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.AuthResult, error) {
	email := crypto.NormalizeEmail(credentials.Email)
	if email == "" || credentials.Password == "" {
		return models.AuthResult{}, ErrInvalidDataProvided
	}

	user, err := a.authenticate(ctx, email, credentials)
	if err != nil {
		return models.AuthResult{}, err
	}

	dataKey, err := a.recoverDataKey(ctx, &user, credentials.Password)
	if err != nil {
		return models.AuthResult{}, err
	}

	session, err := a.startSession(ctx, user.UserID, dataKey)
	if err != nil {
		return models.AuthResult{}, err
	}

	if dataKey != nil {
		user = a.migration.UpgradeUser(ctx, user, dataKey)
	}

	return models.AuthResult{User: user, Session: session}, nil
}

// authenticate finds the user that email and password identify. The
// upgraded row holding the email hash is tried first; legacy rows are only
// read when it is missing or rejects the password. Unknown emails still pay
// for one bcrypt comparison.
func (a *authService) authenticate(ctx context.Context, email string, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)
	password := []byte(credentials.Password)

	hashed, found, err := a.finder.byHash(ctx, email)
	if err != nil {
		log.Err(err).Str("func", "*authService.authenticate").Msg("user search by email hash failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}
	if found && bcrypt.CompareHashAndPassword([]byte(hashed.PasswordHash), password) == nil {
		return hashed, nil
	}

	legacy, err := a.finder.legacy(ctx, email, credentials.Email)
	if err != nil {
		log.Err(err).Str("func", "*authService.authenticate").Msg("user search by legacy email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}
	tried := found
	for _, user := range legacy {
		if found && user.UserID == hashed.UserID {
			continue
		}
		tried = true
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), password) == nil {
			return user, nil
		}
	}

	if !tried {
		_ = bcrypt.CompareHashAndPassword(a.dummyHash(), password)
		log.Info().Str("func", "*authService.authenticate").Msg("login for unknown email")
	} else {
		log.Info().Str("func", "*authService.authenticate").Msg("wrong password")
	}
	return models.User{}, ErrInvalidCredentials
}

// recoverDataKey unwraps the user's data key or backfills one for a legacy
// user. A nil key with a nil error means the login proceeds without PII
// access.
func (a *authService) recoverDataKey(ctx context.Context, user *models.User, password string) ([]byte, error) {
	log := logger.FromContext(ctx)

	if user.WrappedDataKey != "" {
		dataKey := a.keyVault.UnwrapDataKey(*user, password)
		if dataKey == nil {
			log.Warn().Str("func", "*authService.recoverDataKey").Int64("user_id", user.UserID).
				Msg("password verified but wrapped data key did not open")
			return nil, ErrInvalidCredentials
		}
		return dataKey, nil
	}

	if !a.caps.UserWrappedDataKey() {
		return nil, nil
	}

	dataKey, err := a.keyVault.Backfill(ctx, user.UserID, password)
	if err != nil {
		log.Warn().Err(err).Str("func", "*authService.recoverDataKey").Int64("user_id", user.UserID).
			Msg("data key backfill failed, session has no PII access")
		return nil, nil
	}

	return dataKey, nil
}

func (a *authService) startSession(ctx context.Context, userID int64, dataKey []byte) (models.Session, error) {
	log := logger.FromContext(ctx)

	now := a.now().UTC()
	session := models.Session{
		ID:        a.ids.Next(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(a.tokenDuration),
	}

	if err := a.sessionRepository.CreateSession(ctx, session); err != nil {
		log.Err(err).Str("func", "*authService.startSession").Int64("user_id", userID).
			Msg("error creating session")
		return models.Session{}, fmt.Errorf("error creating session: %w", err)
	}

	if dataKey != nil {
		a.custodian.Attach(ctx, session.ID, dataKey)
	}

	return session, nil
}

// Logout evicts the session's data key and deletes the session.
func (a *authService) Logout(ctx context.Context, sessionID string) error {
	a.custodian.Evict(ctx, sessionID)

	err := a.sessionRepository.DeleteSession(ctx, sessionID)
	if errors.Is(err, store.ErrSessionNotFound) {
		return ErrSessionInvalid
	}
	if err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}

	return nil
}

// ChangePassword verifies the old password and rewraps the same data key
// under the new one, so PII sealed before the change stays readable. The
// current session keeps its cached key.
func (a *authService) ChangePassword(ctx context.Context, userID int64, sessionID string, change models.PasswordChange) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, change); err != nil {
		return invalidInput(err)
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("user search by id failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(change.OldPassword)); err != nil {
		return ErrInvalidCredentials
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(change.NewPassword), a.bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return ErrInvalidDataProvided
	}
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	var wrapped string
	var freshKey []byte
	switch {
	case user.WrappedDataKey != "":
		dataKey := a.keyVault.UnwrapDataKey(user, change.OldPassword)
		if dataKey == nil {
			log.Warn().Str("func", "*authService.ChangePassword").Int64("user_id", userID).
				Msg("password verified but wrapped data key did not open")
			return ErrInvalidCredentials
		}
		if wrapped, err = a.keyVault.RewrapForPasswordChange(dataKey, change.NewPassword); err != nil {
			return err
		}
	case a.caps.UserWrappedDataKey():
		if freshKey, wrapped, err = a.keyVault.NewWrappedDataKey(change.NewPassword); err != nil {
			return err
		}
	}

	if err = a.userRepository.UpdateCredentials(ctx, userID, string(passwordHash), wrapped); err != nil {
		log.Err(err).Str("func", "*authService.ChangePassword").Int64("user_id", userID).
			Msg("error updating credentials")
		return fmt.Errorf("error updating credentials: %w", err)
	}
	if freshKey != nil {
		a.custodian.Attach(ctx, sessionID, freshKey)
	}

	log.Info().Str("func", "*authService.ChangePassword").Int64("user_id", userID).Msg("password changed")
	return nil
}

func (a *authService) EmailExists(ctx context.Context, email string) (bool, error) {
	email = crypto.NormalizeEmail(email)
	if email == "" {
		return false, ErrInvalidDataProvided
	}
	return a.finder.emailTaken(ctx, email, 0)
}

// CreateToken issues a signed JWT pointing at result's session.
func (a *authService) CreateToken(ctx context.Context, result models.AuthResult) (models.Token, error) {
	token, err := a.tokens.Issue(result.Session)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string. Any validation failure
// is normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := a.tokens.Parse(tokenString)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) ValidateSession(ctx context.Context, token models.Token) error {
	session, err := a.sessionRepository.FindSession(ctx, token.SessionID, a.now())
	if errors.Is(err, store.ErrSessionNotFound) {
		return ErrSessionInvalid
	}
	if err != nil {
		return fmt.Errorf("session lookup failed: %w", err)
	}

	if session.UserID != token.UserID {
		logger.FromContext(ctx).Warn().Str("func", "*authService.ValidateSession").
			Str("session_id", session.ID).Int64("token_user_id", token.UserID).
			Msg("token subject does not own the session")
		return ErrSessionInvalid
	}

	return nil
}
