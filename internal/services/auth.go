package services

import (
	"context"
	"errors"
	"time"

	"littlemaestros/internal/domain"
)

const tokenSubject = "admin"

type authService struct {
	checker    domain.PasswordChecker
	issuer     domain.TokenIssuer
	verifier   domain.TokenVerifier
	sessionTTL time.Duration
}

// NewAuthService creates the shared-password AuthService. A successful login
// yields a session token valid for sessionTTL.
func NewAuthService(checker domain.PasswordChecker, issuer domain.TokenIssuer, verifier domain.TokenVerifier, sessionTTL time.Duration) domain.AuthService {
	return &authService{
		checker:    checker,
		issuer:     issuer,
		verifier:   verifier,
		sessionTTL: sessionTTL,
	}
}

func (s *authService) Login(ctx context.Context, password string) (string, error) {
	if err := s.checker.Check(password); err != nil {
		if errors.Is(err, domain.ErrAuthNotConfigured) {
			return "", domain.ErrAuthNotConfigured
		}
		return "", domain.ErrInvalidCredentials
	}
	return s.issuer.Issue(tokenSubject, s.sessionTTL)
}

func (s *authService) Verify(token string) bool {
	subject, err := s.verifier.Verify(token)
	return err == nil && subject == tokenSubject
}
