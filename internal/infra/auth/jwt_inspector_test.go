package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-only-secret"))
	require.NoError(t, err)

	return token
}

func TestJWTInspector_ExpiresAt(t *testing.T) {
	exp := time.Now().Add(15 * time.Minute).Truncate(time.Second)
	token := signTestToken(t, jwt.MapClaims{
		"user_id":    42,
		"token_type": "access",
		"exp":        exp.Unix(),
	})

	got, ok, err := NewJWTInspector().ExpiresAt(token)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, got.Equal(exp))
}

func TestJWTInspector_ExpiredTokenStillInspected(t *testing.T) {
	exp := time.Now().Add(-time.Hour).Truncate(time.Second)
	token := signTestToken(t, jwt.MapClaims{"exp": exp.Unix()})

	got, ok, err := NewJWTInspector().ExpiresAt(token)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, got.Equal(exp))
}

func TestJWTInspector_NoExpiry(t *testing.T) {
	token := signTestToken(t, jwt.MapClaims{"sub": "1"})

	_, ok, err := NewJWTInspector().ExpiresAt(token)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestJWTInspector_InvalidToken(t *testing.T) {
	_, _, err := NewJWTInspector().ExpiresAt("invalid.token.string")
	assert.Error(t, err)
}
