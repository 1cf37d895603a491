// Package common defines shared constants and sentinel errors used across
// the back-office components. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Auth errors. Terminal outcomes of a single attempt; never retried
	// automatically, the caller decides whether to prompt again.
	ErrNotFound           = errors.New("no account for this email")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("admin access required")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrDuplicateAccount   = errors.New("an account with this email already exists")
	ErrUnauthenticated    = errors.New("not authenticated")

	// Session/token lifecycle errors.
	ErrInvalidToken   = errors.New("invalid token")
	ErrSessionExpired = errors.New("session expired")

	// ErrStoreCorrupt is only ever surfaced with demo mode off; in demo
	// mode corrupt state is re-seeded silently.
	ErrStoreCorrupt = errors.New("persisted auth state is corrupt")

	// ErrUnknownCollection marks a collection name with no dataset. It is
	// never absorbed by the mock fallback.
	ErrUnknownCollection = errors.New("unknown collection")
)
