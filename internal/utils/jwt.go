package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-pii-keeper/models"
)

var (
	ErrTokenConfig       = errors.New("token issuer and sign key are required")
	ErrTokenSession      = errors.New("token needs a live session")
	ErrTokenClaims       = errors.New("token claims do not name a user session")
	ErrInvalidAuthHeader = errors.New("invalid authorization header")
)

// SessionTokens issues and verifies HS256 JWTs that point at a session row:
// "sub" is the user id, "jti" the session id and "exp" the session expiry.
// The token carries no key material.
type SessionTokens struct {
	issuer  string
	signKey []byte
}

func NewSessionTokens(issuer, signKey string) SessionTokens {
	return SessionTokens{issuer: issuer, signKey: []byte(signKey)}
}

// Issue signs a token for session. The token never outlives the session.
func (s SessionTokens) Issue(session models.Session) (models.Token, error) {
	if s.issuer == "" || len(s.signKey) == 0 {
		return models.Token{}, ErrTokenConfig
	}
	if session.ID == "" || session.ExpiresAt.IsZero() {
		return models.Token{}, ErrTokenSession
	}

	claims := jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   strconv.FormatInt(session.UserID, 10),
		ID:        session.ID,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error signing session token: %w", err)
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: claims,
		SignedString:     signed,
		UserID:           session.UserID,
		SessionID:        session.ID,
	}, nil
}

// Parse verifies signature, issuer and expiry of raw and returns the
// session it points at.
func (s SessionTokens) Parse(raw string) (models.Token, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(raw, &claims,
		func(*jwt.Token) (any, error) { return s.signKey, nil },
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error verifying session token: %w", err)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || claims.ID == "" {
		return models.Token{}, ErrTokenClaims
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: claims,
		SignedString:     raw,
		UserID:           userID,
		SessionID:        claims.ID,
	}, nil
}

// ParseBearerToken extracts <token> from an "Authorization: Bearer <token>"
// header value. The scheme is case-insensitive.
func ParseBearerToken(header string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" || strings.ContainsAny(token, " \t") {
		return "", ErrInvalidAuthHeader
	}
	return token, nil
}
