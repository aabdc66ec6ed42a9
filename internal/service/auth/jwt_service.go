// Package auth provides the token service and password handling for
// stateless request authentication.
package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT encoding the user as its subject,
	// expiring after the configured token lifetime. Returns the serialized
	// token string and the exact expiry signed into it, so callers can
	// advertise the real expiry rather than recomputing one.
	GenerateToken(ctx context.Context, userID int64) (string, time.Time, error)

	// GenerateTokenWithTTL is GenerateToken with an explicit lifetime,
	// overriding the configured default. Used by callers that need
	// short-lived tokens and by expiry tests.
	GenerateTokenWithTTL(ctx context.Context, userID int64, ttl time.Duration) (string, time.Time, error)

	// ValidateToken verifies the token string and extracts the claims.
	// Failures are reported with the specific sentinel from errors.go
	// (malformed, bad signature, expired, missing or invalid subject);
	// callers outside the logging path must not distinguish between them.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the verified content of a token: who the caller is and when the
// assertion stops being valid. Nothing here is stored server-side; a token
// is self-contained.
type Claims struct {
	// UserID is the authenticated principal's ID, parsed from the subject.
	UserID int64

	// IssuedAt and ExpiresAt bound the token's validity window.
	IssuedAt  time.Time
	ExpiresAt time.Time

	// ID is the unique token ID (jti claim).
	ID string
}
