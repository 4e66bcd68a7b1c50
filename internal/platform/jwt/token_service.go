// Package jwtmw はJWTの発行・検証とGin用の認証ミドルウェアを提供します。
package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// defaultTTL is the fallback lifetime applied when Issue receives a
// non-positive TTL. The login flow always passes its own 30 minute TTL, so
// this path is only hit by callers that do not care about the exact expiry.
const defaultTTL = 15 * time.Minute

// ErrInvalidToken is returned for any token that fails validation: malformed,
// bad signature, expired, or missing the subject claim. Callers must not
// distinguish between these cases.
var ErrInvalidToken = errors.New("invalid token")

// TokenService issues and validates HS256-signed access tokens.
// The signing secret is injected once at startup; nothing here reads the
// environment.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a TokenService signing with the given secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue creates a signed token carrying the subject email and an absolute
// expiry of now+ttl. A non-positive ttl falls back to defaultTTL.
func (s *TokenService) Issue(email string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": email,
		"exp": now.Add(ttl).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify checks the signature and expiry of tokenStr and returns the subject
// email. Every failure mode collapses into ErrInvalidToken.
func (s *TokenService) Verify(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Check signing algorithm (only HMAC allowed)
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidToken
	}

	return sub, nil
}
