package mocks

import (
	"context"
	"time"

	"github.com/inkpost/blog-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing
type MockJWTService struct {
	// GenerateTokenFn allows test cases to mock the GenerateToken behavior
	GenerateTokenFn func(ctx context.Context, userID int64) (string, time.Time, error)

	// GenerateTokenWithTTLFn allows test cases to mock the GenerateTokenWithTTL behavior
	GenerateTokenWithTTLFn func(ctx context.Context, userID int64, ttl time.Duration) (string, time.Time, error)

	// ValidateTokenFn allows test cases to mock the ValidateToken behavior
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Default values used when functions aren't explicitly defined
	Token       string
	ExpiresAt   time.Time
	Err         error
	ValidateErr error
	Claims      *auth.Claims
}

// GenerateToken implements the auth.JWTService interface
func (m *MockJWTService) GenerateToken(ctx context.Context, userID int64) (string, time.Time, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, userID)
	}
	return m.Token, m.ExpiresAt, m.Err
}

// GenerateTokenWithTTL implements the auth.JWTService interface
func (m *MockJWTService) GenerateTokenWithTTL(
	ctx context.Context,
	userID int64,
	ttl time.Duration,
) (string, time.Time, error) {
	if m.GenerateTokenWithTTLFn != nil {
		return m.GenerateTokenWithTTLFn(ctx, userID, ttl)
	}
	return m.Token, m.ExpiresAt, m.Err
}

// ValidateToken implements the auth.JWTService interface
func (m *MockJWTService) ValidateToken(
	ctx context.Context,
	tokenString string,
) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return m.Claims, m.ValidateErr
}
