package domain

import "errors"

// Sentinel errors shared across repositories and services.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateEmail     = errors.New("email already subscribed")
	ErrInvalidCredentials = errors.New("invalid password")
	ErrAuthNotConfigured  = errors.New("admin password not configured")
)
