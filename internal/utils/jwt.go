package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"webchat/internal/config"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenManager issues and validates the signed session tokens. It is built
// once from the process configuration; nothing here reads the environment.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(cfg config.AuthConfig) *TokenManager {
	return &TokenManager{secret: []byte(cfg.Secret), ttl: cfg.TokenTTL}
}

// Generate produces a signed, time-bounded token carrying the user's email.
func (m *TokenManager) Generate(email string) (string, error) {
	claims := jwt.MapClaims{
		"sub": email,
		"exp": time.Now().Add(m.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Validate checks signature, algorithm and expiry, and returns the email
// claim together with the token's expiry. Any failure maps to ErrInvalidToken.
func (m *TokenManager) Validate(tokenString string) (string, time.Time, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", time.Time{}, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", time.Time{}, ErrInvalidToken
	}
	email, ok := claims["sub"].(string)
	if !ok || email == "" {
		return "", time.Time{}, ErrInvalidToken
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return "", time.Time{}, ErrInvalidToken
	}
	return email, exp.Time, nil
}
