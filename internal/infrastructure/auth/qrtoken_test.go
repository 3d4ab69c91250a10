package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRTokenService_IssueAndValidate(t *testing.T) {
	svc := NewQRTokenService("test-secret", 24)

	token, err := svc.Issue()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.True(t, svc.Validate(token))
}

func TestQRTokenService_ExpiryBoundary(t *testing.T) {
	svc := NewQRTokenService("test-secret", 24)

	issuedAt := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	token, err := svc.issueAt(issuedAt)
	require.NoError(t, err)

	assert.True(t, svc.validateAt(token, issuedAt.Add(23*time.Hour+59*time.Minute)))
	assert.False(t, svc.validateAt(token, issuedAt.Add(24*time.Hour+1*time.Minute)))
}

func TestQRTokenService_RejectsWrongSecret(t *testing.T) {
	issuer := NewQRTokenService("secret-a", 24)
	verifier := NewQRTokenService("secret-b", 24)

	token, err := issuer.Issue()
	require.NoError(t, err)

	assert.False(t, verifier.Validate(token))
}

func TestQRTokenService_RejectsMalformed(t *testing.T) {
	svc := NewQRTokenService("test-secret", 24)

	assert.False(t, svc.Validate(""))
	assert.False(t, svc.Validate("not-a-jwt"))
	assert.False(t, svc.Validate("aaaa.bbbb.cccc"))
}

func TestQRTokenService_RejectsLoginToken(t *testing.T) {
	// a valid login JWT must never pass as a display token, even when the
	// two services share a secret
	jwtSvc := NewJWTService("shared-secret", 7)
	qrSvc := NewQRTokenService("shared-secret", 24)

	loginToken, _, err := jwtSvc.Generate(1, "alice@example.com", "user")
	require.NoError(t, err)

	assert.False(t, qrSvc.Validate(loginToken))
}
