// Package services – AuthService
//
// This file implements the AuthService, which backs the single-password
// admin login. A successful login issues a short-lived HMAC-signed bearer
// token (JWT); the auth middleware verifies it on every /api/admin call.
// The token is held only in the client's memory, so "logout" is purely a
// client-side discard and there is no server-side session state.
package services

import (
	"crypto/subtle"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// adminSubject is the subject claim carried by all admin tokens.
const adminSubject = "admin"

// AuthService issues and verifies admin bearer tokens.
type AuthService struct {
	// Password is the configured admin password; empty disables login.
	Password string
	// Secret is the HMAC signing key for issued tokens.
	Secret []byte
	// TokenTTL is the issued token lifetime.
	TokenTTL time.Duration

	// now is a test seam; defaults to time.Now.
	now func() time.Time
}

// NewAuthService constructs an AuthService from the configured credentials.
func NewAuthService(password, secret string, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthService{
		Password: password,
		Secret:   []byte(secret),
		TokenTTL: ttl,
		now:      time.Now,
	}
}

// Login compares password against the configured admin password in constant
// time and returns a signed bearer token on success. ErrInvalidPassword is
// returned for a mismatch; ErrAuthDisabled when no password is configured.
func (s *AuthService) Login(password string) (string, error) {
	if s.Password == "" {
		return "", ErrAuthDisabled
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.Password)) != 1 {
		return "", ErrInvalidPassword
	}

	now := s.clock()
	claims := jwt.RegisteredClaims{
		Subject:   adminSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.TokenTTL)),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.Secret)
}

// Verify checks a bearer token's signature and expiry and returns the
// subject it was issued for. Any failure maps to ErrInvalidToken.
func (s *AuthService) Verify(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.clock))
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject != adminSubject {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

func (s *AuthService) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}
