package auth_test

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopkart-backend/auth"
)

var secret = []byte("test-secret")

func TestTokenRoundTrip(t *testing.T) {
	token, err := auth.GenerateToken(secret, "64f0c0ffee0ddba11ca75e11", "alice")
	require.NoError(t, err)

	claims, err := auth.ParseToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "64f0c0ffee0ddba11ca75e11", claims.UserID)
	assert.Equal(t, "alice", claims.Username)

	expiry := time.Unix(claims.ExpiresAt, 0)
	assert.WithinDuration(t, time.Now().Add(auth.TokenTTL), expiry, time.Minute)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := auth.GenerateToken([]byte("other-secret"), "id", "bob")
	require.NoError(t, err)

	_, err = auth.ParseToken(secret, token)
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	claims := auth.Claims{
		UserID:   "id",
		Username: "bob",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)

	_, err = auth.ParseToken(secret, token)
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := auth.ParseToken(secret, "not-a-token")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, auth.CheckPassword(hash, "s3cret"))
	assert.False(t, auth.CheckPassword(hash, "wrong"))

	// Hashing is salted: the same input never maps to the same hash.
	again, err := auth.HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again)
}
