package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndExtractClaims(t *testing.T) {
	token, err := GenerateToken("user-1", "client", time.Hour)
	require.NoError(t, err)

	sub, role, err := ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", sub)
	assert.Equal(t, "client", role)
}

func TestExtractClaims_Expired(t *testing.T) {
	token, err := GenerateToken("user-1", "client", -time.Minute)
	require.NoError(t, err)

	_, _, err = ExtractClaims(token)
	assert.Error(t, err)
}

func TestExtractClaims_WrongKey(t *testing.T) {
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin-1", "role": "admin", "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("not-the-secret"))
	require.NoError(t, err)

	_, _, err = ExtractClaims(forged)
	assert.Error(t, err)
}

func TestExtractClaims_MissingSubject(t *testing.T) {
	token, err := GenerateToken("", "client", time.Hour)
	require.NoError(t, err)

	_, _, err = ExtractClaims(token)
	assert.Error(t, err)
}
