package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "customer", "secret", time.Hour)
	require.NoError(t, err)

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (any, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "customer", claims.Role)
}

func TestGenerateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(1, "customer", "secret", time.Hour)
	require.NoError(t, err)

	_, err = jwt.ParseWithClaims(token, &Claims{}, func(tok *jwt.Token) (any, error) {
		return []byte("other"), nil
	})
	assert.Error(t, err)
}

func TestGenerateTokenExpired(t *testing.T) {
	token, err := GenerateToken(1, "customer", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = jwt.ParseWithClaims(token, &Claims{}, func(tok *jwt.Token) (any, error) {
		return []byte("secret"), nil
	})
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
