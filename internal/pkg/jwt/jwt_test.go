package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour, false)

	token, expiresAt, err := svc.GenerateAccessToken("session-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), expiresAt, 5)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	sid, ok := decoded.Get(ClaimSessionID)
	require.True(t, ok)
	assert.Equal(t, "session-1", sid)

	isAdmin, _ := decoded.Get(ClaimIsAdmin)
	assert.Equal(t, true, isAdmin)

	typ, _ := decoded.Get(ClaimType)
	assert.Equal(t, TokenTypeAccess, typ)
}

func TestRevokeToken(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour, false)
	now := time.Now()

	svc.RevokeToken("old", now.Add(-time.Minute).Unix())
	svc.RevokeToken("fresh", now.Add(time.Hour).Unix())
	assert.True(t, svc.IsTokenRevoked("old"))
	assert.True(t, svc.IsTokenRevoked("fresh"))
	assert.False(t, svc.IsTokenRevoked("other"))

	assert.Equal(t, 1, svc.PurgeRevoked(now))
	assert.False(t, svc.IsTokenRevoked("old"))
	assert.True(t, svc.IsTokenRevoked("fresh"))
}

func TestCookies(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour, true)

	c := svc.AccessTokenCookie("tok", time.Now().Add(time.Hour).Unix())
	assert.Equal(t, CookieName, c.Name)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)

	cleared := svc.ClearedCookie()
	assert.Equal(t, -1, cleared.MaxAge)
	assert.Empty(t, cleared.Value)
}
