// Package common defines shared constants and sentinel errors used across
// the busfleet server components. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound         = errors.New("not found")
	ErrAlreadyExists    = errors.New("already exists")
	ErrInvalidReference = errors.New("invalid reference")

	// Service-level errors (generic/internal flow control).
	ErrInternal   = errors.New("internal error")
	ErrValidation = errors.New("validation error")

	// Auth errors. ErrInvalidCredentials is deliberately the same for an
	// unknown email and a wrong password so account existence does not leak.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("missing credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
)
