// Package token issues and verifies the signed identity tokens used by the
// API. Tokens carry only the subject user id and an expiry; there is no
// revocation list, so a token stays valid until it expires regardless of
// later account changes.
package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTTL is the fixed token lifetime from issuance.
const DefaultTTL = 100 * time.Hour

var (
	// ErrInvalidToken covers bad signatures, malformed payloads and
	// unparseable subjects.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken indicates a structurally valid token past its expiry.
	ErrExpiredToken = errors.New("token expired")
)

// Claims is the token payload. The subject holds the user id.
type Claims struct {
	jwt.RegisteredClaims
}

// Service signs and verifies identity tokens with a process-wide secret
// injected at construction.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService creates a token service. A non-positive ttl falls back to
// DefaultTTL.
func NewService(secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed HS256 token for the given user id, expiring at
// issuance time plus the service TTL.
func (s *Service) Issue(userID uint) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks the signature and expiry of a raw token and returns the
// subject user id. Expiry is reported as ErrExpiredToken; every other
// failure is ErrInvalidToken.
func (s *Service) Verify(raw string) (uint, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrExpiredToken
		}
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 32)
	if err != nil || userID == 0 {
		return 0, ErrInvalidToken
	}
	return uint(userID), nil
}
