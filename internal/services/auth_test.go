package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authAdapter "littlemaestros/internal/adapters/auth"
	"littlemaestros/internal/domain"
)

func newTestAuthService(password, hash string) domain.AuthService {
	tokens := authAdapter.NewJWTTokens("test-secret")
	checker := authAdapter.NewSharedSecretChecker(password, hash)
	return NewAuthService(checker, tokens, tokens, time.Hour)
}

func TestAuthLoginSuccess(t *testing.T) {
	svc := newTestAuthService("hunter2", "")

	token, err := svc.Login(context.Background(), "hunter2")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, svc.Verify(token))
}

func TestAuthLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService("hunter2", "")

	token, err := svc.Login(context.Background(), "letmein")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestAuthLoginNotConfigured(t *testing.T) {
	svc := newTestAuthService("", "")

	_, err := svc.Login(context.Background(), "anything")

	assert.ErrorIs(t, err, domain.ErrAuthNotConfigured)
}

func TestAuthVerifyRejectsGarbage(t *testing.T) {
	svc := newTestAuthService("hunter2", "")

	assert.False(t, svc.Verify(""))
	assert.False(t, svc.Verify("not-a-token"))
}

func TestAuthVerifyRejectsForeignSecret(t *testing.T) {
	issuer := newTestAuthService("hunter2", "")
	token, err := issuer.Login(context.Background(), "hunter2")
	require.NoError(t, err)

	other := NewAuthService(
		authAdapter.NewSharedSecretChecker("hunter2", ""),
		authAdapter.NewJWTTokens("different-secret"),
		authAdapter.NewJWTTokens("different-secret"),
		time.Hour,
	)
	assert.False(t, other.Verify(token))
}
