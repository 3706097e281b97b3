package auth

import (
	"encoding/hex"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKeyHex(t *testing.T) string {
	t.Helper()
	return strings.Repeat("ab", 32)
}

func TestNewTokenService_RejectsBadKeys(t *testing.T) {
	_, err := NewTokenService("too-short", time.Hour)
	assert.Error(t, err)

	// Right length, not hex.
	_, err = NewTokenService(strings.Repeat("zz", 32), time.Hour)
	assert.Error(t, err)
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc, err := NewTokenService(testKeyHex(t), time.Hour)
	require.NoError(t, err)

	token, err := svc.Issue("user-abc123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(token, "v4.local."))

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-abc123", claims.SubjectID())
	assert.Equal(t, "newsdesk-server", claims.Issuer)
	assert.Equal(t, "newsdesk-client", claims.Audience)
	assert.True(t, strings.HasPrefix(claims.TokenID, "token-"))
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.Expiration, 5*time.Second)
}

func TestTokenService_VerifyIsStateless(t *testing.T) {
	svc, err := NewTokenService(testKeyHex(t), time.Hour)
	require.NoError(t, err)

	token, err := svc.Issue("user-abc123")
	require.NoError(t, err)

	// Repeated verification yields the same claims with the same expiry.
	first, err := svc.Verify(token)
	require.NoError(t, err)
	second, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, first.Expiration, second.Expiration)
	assert.Equal(t, first.TokenID, second.TokenID)
}

func TestTokenService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewTokenService(testKeyHex(t), -time.Minute)
	require.NoError(t, err)

	token, err := svc.Issue("user-abc123")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestTokenService_RejectsTamperedToken(t *testing.T) {
	svc, err := NewTokenService(testKeyHex(t), time.Hour)
	require.NoError(t, err)

	token, err := svc.Issue("user-abc123")
	require.NoError(t, err)

	tampered := token[:len(token)-4] + "AAAA"
	_, err = svc.Verify(tampered)
	assert.Error(t, err)

	_, err = svc.Verify("not-a-token")
	assert.Error(t, err)
}

func TestTokenService_RejectsTokenFromOtherKey(t *testing.T) {
	svcA, err := NewTokenService(testKeyHex(t), time.Hour)
	require.NoError(t, err)
	svcB, err := NewTokenService(strings.Repeat("cd", 32), time.Hour)
	require.NoError(t, err)

	token, err := svcA.Issue("user-abc123")
	require.NoError(t, err)

	_, err = svcB.Verify(token)
	assert.Error(t, err)
}

func TestLoadOrGenerateKey(t *testing.T) {
	dir := t.TempDir()

	keyHex, err := LoadOrGenerateKey(dir)
	require.NoError(t, err)
	assert.Len(t, keyHex, keyHexSize)
	_, err = hex.DecodeString(keyHex)
	require.NoError(t, err)

	// Loading again returns the same key.
	again, err := LoadOrGenerateKey(dir)
	require.NoError(t, err)
	assert.Equal(t, keyHex, again)

	// Generated key works with the token service.
	svc, err := NewTokenService(keyHex, time.Hour)
	require.NoError(t, err)
	token, err := svc.Issue("user-abc123")
	require.NoError(t, err)
	_, err = svc.Verify(token)
	assert.NoError(t, err)
}
