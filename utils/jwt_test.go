package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abinet16/Mulu-Asset-Managment-template/config"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	config.JWTKey = []byte("test-secret")
	config.JWTExpiration = time.Hour

	token, err := GenerateJWT("U-1", "alice@corp.io", "admin")
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "U-1", claims.UserID)
	assert.Equal(t, "alice@corp.io", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateJWTExpired(t *testing.T) {
	config.JWTKey = []byte("test-secret")
	config.JWTExpiration = -time.Minute

	token, err := GenerateJWT("U-1", "alice@corp.io", "admin")
	require.NoError(t, err)

	_, err = ValidateJWT(token)
	require.Error(t, err)
	// expiry must never be conflated with a bad signature
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.NotErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateJWTWrongSecret(t *testing.T) {
	config.JWTKey = []byte("right-secret")
	config.JWTExpiration = time.Hour

	token, err := GenerateJWT("U-1", "alice@corp.io", "admin")
	require.NoError(t, err)

	config.JWTKey = []byte("wrong-secret")
	_, err = ValidateJWT(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateJWTMalformed(t *testing.T) {
	config.JWTKey = []byte("test-secret")

	_, err := ValidateJWT("not.a.jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
