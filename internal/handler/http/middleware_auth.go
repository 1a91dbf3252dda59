package http

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-pii-keeper/internal/logger"
	"github.com/MKhiriev/go-pii-keeper/internal/service"
	"github.com/MKhiriev/go-pii-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces session-token authentication.
//
// The bearer token is parsed and its session row must still exist and
// belong to the token subject, so a logged-out or swept session is rejected
// even while its JWT has not expired. On success the user id and session id
// are stored in the request context (see [utils.WithSession]) and added to
// the request logger.
//
// Every rejection is answered with 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.users.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, service.ErrTokenIsExpiredOrInvalid.Error(), http.StatusUnauthorized)
			return
		}

		if err = h.users.ValidateSession(ctx, token); err != nil {
			log.Err(err).Str("session_id", token.SessionID).Msg("session rejected")
			if errors.Is(err, service.ErrSessionInvalid) {
				utils.WriteError(w, service.ErrSessionInvalid.Error(), http.StatusUnauthorized)
				return
			}
			writeError(w, err)
			return
		}

		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Int64("user_id", token.UserID).Str("session_id", token.SessionID)
		})
		ctx = log.WithContext(utils.WithSession(ctx, token.UserID, token.SessionID))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionFromRequest returns the user and session stored by auth.
func sessionFromRequest(r *http.Request) (int64, string, error) {
	ref, ok := utils.SessionFromContext(r.Context())
	if !ok {
		return 0, "", ErrNoSessionInContext
	}
	return ref.UserID, ref.SessionID, nil
}
