package auth

import (
	"testing"
	"time"

	"tasklist/config"
	domainerrors "tasklist/internal/domain/errors"
	"tasklist/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.AccessTTL = ttl

	return cfg
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_secret_key_very_long_for_testing", 15*time.Minute))
	require.NoError(t, err)

	token, err := svc.Issue(7, "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	subject, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "7:alice", subject)

	id, err := service.ParseSubject(subject)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	// A negative TTL puts the embedded expiry in the past while the
	// signature stays valid.
	svc, err := NewJWTService(newTestConfig("test_secret_key_very_long_for_testing", -time.Minute))
	require.NoError(t, err)

	token, err := svc.Issue(7, "alice")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrTokenExpired.ErrorCode(), appErr.ErrorCode())
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_secret_key_very_long_for_testing", 15*time.Minute))
	require.NoError(t, err)

	_, err = svc.Verify("clearly-not-a-jwt-token-format")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrTokenInvalid.ErrorCode(), appErr.ErrorCode())
}

func TestJWTService_BadSignature(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("issuer_secret_key_very_long_for_testing", 15*time.Minute))
	require.NoError(t, err)

	verifier, err := NewJWTService(newTestConfig("different_secret_key_very_long_testing", 15*time.Minute))
	require.NoError(t, err)

	token, err := issuer.Issue(7, "alice")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrTokenInvalid.ErrorCode(), appErr.ErrorCode())
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("", 15*time.Minute))
	assert.Error(t, err)
	assert.Nil(t, svc)
}
