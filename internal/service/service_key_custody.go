package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-pii-keeper/internal/crypto"
	"github.com/MKhiriev/go-pii-keeper/internal/logger"
	"github.com/MKhiriev/go-pii-keeper/internal/store"
)

// keyCustodian stores data keys on session rows. The key lives exactly as
// long as the row; there is no separate expiry.
type keyCustodian struct {
	sessionRepository store.SessionRepository
	sealer            *crypto.SessionKeySealer
	caps              store.Capabilities
	now               func() time.Time

	logger *logger.Logger
}

// NewKeyCustodian constructs a KeyCustodian. sealer decides whether keys are
// sealed with the server secret before they reach the database.
func NewKeyCustodian(sessionRepository store.SessionRepository, sealer *crypto.SessionKeySealer, caps store.Capabilities, logger *logger.Logger) KeyCustodian {
	return &keyCustodian{
		sessionRepository: sessionRepository,
		sealer:            sealer,
		caps:              caps,
		now:               time.Now,
		logger:            logger,
	}
}

// Attach caches dataKey on the session. Failure leaves the session without
// a key: PII reads in it return null until the next login.
func (c *keyCustodian) Attach(ctx context.Context, sessionID string, dataKey []byte) {
	log := logger.FromContext(ctx)

	if !c.caps.SessionDataKey() {
		log.Warn().Str("func", "*keyCustodian.Attach").Str("session_id", sessionID).
			Msg("sessions.data_key column is missing, data key not cached")
		return
	}

	stored, err := c.sealer.SealKey(dataKey)
	if err != nil {
		log.Warn().Err(err).Str("func", "*keyCustodian.Attach").Str("session_id", sessionID).
			Msg("error sealing data key for session")
		return
	}

	if err = c.sessionRepository.SetSessionDataKey(ctx, sessionID, stored); err != nil {
		log.Warn().Err(err).Str("func", "*keyCustodian.Attach").Str("session_id", sessionID).
			Msg("error caching data key on session")
	}
}

// Fetch returns the data key cached on a live session, or nil.
func (c *keyCustodian) Fetch(ctx context.Context, sessionID string) []byte {
	log := logger.FromContext(ctx)

	if !c.caps.SessionDataKey() || sessionID == "" {
		return nil
	}

	session, err := c.sessionRepository.FindSession(ctx, sessionID, c.now())
	if errors.Is(err, store.ErrSessionNotFound) {
		log.Debug().Str("func", "*keyCustodian.Fetch").Str("session_id", sessionID).
			Msg("session is gone, no data key")
		return nil
	}
	if err != nil {
		log.Warn().Err(err).Str("func", "*keyCustodian.Fetch").Str("session_id", sessionID).
			Msg("error loading session data key")
		return nil
	}

	if session.DataKey == "" {
		return nil
	}

	dataKey, err := c.sealer.OpenKey(session.DataKey)
	if err != nil {
		log.Warn().Err(err).Str("func", "*keyCustodian.Fetch").Str("session_id", sessionID).
			Msg("cached session data key cannot be opened")
		return nil
	}

	return dataKey
}

// Evict clears the session's key. Deleting the session row has the same
// effect.
func (c *keyCustodian) Evict(ctx context.Context, sessionID string) {
	log := logger.FromContext(ctx)

	if !c.caps.SessionDataKey() {
		return
	}

	err := c.sessionRepository.ClearSessionDataKey(ctx, sessionID)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrSessionNotFound):
		log.Debug().Str("func", "*keyCustodian.Evict").Str("session_id", sessionID).
			Msg("session already gone")
	default:
		log.Warn().Err(err).Str("func", "*keyCustodian.Evict").Str("session_id", sessionID).
			Msg("error clearing session data key")
	}
}
