package domain

import (
	"context"
	"time"
)

// TokenIssuer issues session tokens (e.g. JWT) for an authenticated admin.
type TokenIssuer interface {
	Issue(subject string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a session token and returns its subject.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}

// PasswordChecker checks a submitted password against the configured admin
// secret. Returns ErrInvalidCredentials on mismatch and ErrAuthNotConfigured
// when no secret is configured at all.
type PasswordChecker interface {
	Check(password string) error
}

// AuthService defines the shared-password admin authentication logic.
type AuthService interface {
	Login(ctx context.Context, password string) (token string, err error)
	Verify(token string) bool
}
