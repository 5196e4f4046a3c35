package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthTokenRoundTrip(t *testing.T) {
	tok, err := NewAuthToken("secret", "507f1f77bcf86cd799439011", "ana@example.com", 7)
	require.NoError(t, err)
	require.NotEmpty(t, tok.Token)

	claims, err := ParseAuthToken("secret", tok.Token)
	require.NoError(t, err)
	assert.Equal(t, "507f1f77bcf86cd799439011", claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.WithinDuration(t, tok.Exp, claims.ExpiresAt.Time, 0)
}

func TestParseAuthTokenWrongSecret(t *testing.T) {
	tok, err := NewAuthToken("secret", "u1", "x@example.com", 7)
	require.NoError(t, err)

	_, err = ParseAuthToken("other-secret", tok.Token)
	assert.Error(t, err)
}

func TestParseAuthTokenExpired(t *testing.T) {
	// negative TTL puts the expiry in the past
	tok, err := NewAuthToken("secret", "u1", "x@example.com", -1)
	require.NoError(t, err)

	_, err = ParseAuthToken("secret", tok.Token)
	assert.Error(t, err)
}

func TestParseAuthTokenGarbage(t *testing.T) {
	_, err := ParseAuthToken("secret", "not.a.token")
	assert.Error(t, err)
}
