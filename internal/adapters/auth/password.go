package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"littlemaestros/internal/domain"
)

type sharedSecretChecker struct {
	password string
	hash     string
}

// NewSharedSecretChecker returns a PasswordChecker for the single shared
// admin secret. When bcryptHash is set it takes precedence over the plain
// password; the plain comparison is constant-time.
func NewSharedSecretChecker(password, bcryptHash string) domain.PasswordChecker {
	return &sharedSecretChecker{password: password, hash: bcryptHash}
}

func (c *sharedSecretChecker) Check(password string) error {
	if c.hash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(c.hash), []byte(password)); err != nil {
			return domain.ErrInvalidCredentials
		}
		return nil
	}
	if c.password == "" {
		return domain.ErrAuthNotConfigured
	}
	if subtle.ConstantTimeCompare([]byte(c.password), []byte(password)) != 1 {
		return domain.ErrInvalidCredentials
	}
	return nil
}
