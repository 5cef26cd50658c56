package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHMACKeyRoundTrip(t *testing.T) {
	a := New("jwt", "master")
	key := a.GenerateHMACKey("depot-ops")

	userID, err := a.VerifyHMACKey(key)
	require.NoError(t, err)
	assert.Equal(t, "depot-ops", userID)

	// A different master secret rejects the key.
	_, err = New("jwt", "other").VerifyHMACKey(key)
	assert.Error(t, err)

	for _, bad := range []string{"", "no-dot", ".sig", "a.b.c", "depot-ops.deadbeef"} {
		_, err := a.VerifyHMACKey(bad)
		assert.Error(t, err, bad)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	a := New("jwt", "master")
	token, err := a.CreateToken("admin")
	require.NoError(t, err)

	claims, err := a.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, time.Minute)

	_, err = New("other", "master").VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyToken_Expired(t *testing.T) {
	a := New("jwt", "master")
	claims := &Claims{
		Username: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwtAlgorithm, claims).SignedString([]byte("jwt"))
	require.NoError(t, err)

	_, err = a.VerifyToken(token)
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	a := New("jwt", "master").WithBcryptCost(4)
	hash, err := a.HashPassword("s3cret")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("s3cret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
