package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webchat/internal/config"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager(config.AuthConfig{Secret: "test-secret", TokenTTL: time.Hour})

	token, err := m.Generate("a@x.com")
	require.NoError(t, err)

	email, expiresAt, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)
}

func TestTokenExpired(t *testing.T) {
	m := NewTokenManager(config.AuthConfig{Secret: "test-secret", TokenTTL: -time.Minute})

	token, err := m.Generate("a@x.com")
	require.NoError(t, err)

	_, _, err = m.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenManager(config.AuthConfig{Secret: "one-secret", TokenTTL: time.Hour})
	verifier := NewTokenManager(config.AuthConfig{Secret: "another-secret", TokenTTL: time.Hour})

	token, err := issuer.Generate("a@x.com")
	require.NoError(t, err)

	_, _, err = verifier.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	m := NewTokenManager(config.AuthConfig{Secret: "test-secret", TokenTTL: time.Hour})

	_, _, err := m.Validate("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
