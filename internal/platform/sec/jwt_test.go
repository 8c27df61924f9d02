// Copyright (c) 2026 Codeflix. All rights reserved.

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeflix/catalog/internal/platform/sec"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestNewTokenService_RejectsShortSecret(t *testing.T) {
	_, err := sec.NewTokenService("too-short", "issuer")
	assert.Error(t, err)
}

func TestTokenRoundTrip(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "catalog.test")
	require.NoError(t, err)

	token, err := service.GenerateAccessToken("session-123", "admin", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "session-123", claims.SessionID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "catalog.test", claims.Issuer)
}

func TestVerifyToken_Expired(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "catalog.test")
	require.NoError(t, err)

	token, err := service.GenerateAccessToken("session-123", "admin", -time.Minute)
	require.NoError(t, err)

	_, err = service.VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	issuing, err := sec.NewTokenService(testSecret, "catalog.test")
	require.NoError(t, err)
	verifying, err := sec.NewTokenService("ffffffffffffffffffffffffffffffff", "catalog.test")
	require.NoError(t, err)

	token, err := issuing.GenerateAccessToken("session-123", "admin", time.Hour)
	require.NoError(t, err)

	_, err = verifying.VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyToken_WrongIssuer(t *testing.T) {
	issuing, err := sec.NewTokenService(testSecret, "someone-else")
	require.NoError(t, err)
	verifying, err := sec.NewTokenService(testSecret, "catalog.test")
	require.NoError(t, err)

	token, err := issuing.GenerateAccessToken("session-123", "admin", time.Hour)
	require.NoError(t, err)

	_, err = verifying.VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyToken_Garbage(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "catalog.test")
	require.NoError(t, err)

	_, err = service.VerifyToken("not.a.jwt")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := sec.HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, sec.CheckPasswordHash("s3cret-password", hash))
	assert.False(t, sec.CheckPasswordHash("wrong-password", hash))
}
