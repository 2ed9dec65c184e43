package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/brianhe1/smartcards-ai/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing
type MockJWTService struct {
	// Custom behavior functions
	GenerateTokenFn        func(ctx context.Context, userID uuid.UUID) (string, error)
	ValidateTokenFn        func(ctx context.Context, tokenString string) (*auth.Claims, error)
	GenerateRefreshTokenFn func(ctx context.Context, userID uuid.UUID) (string, error)
	ValidateRefreshTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Default response values
	Token        string
	RefreshToken string
	Claims       *auth.Claims
	Err          error
}

// Ensure MockJWTService implements the auth.JWTService interface
var _ auth.JWTService = (*MockJWTService)(nil)

// NewMockJWTServiceForUser creates a MockJWTService that validates every
// token as belonging to the given user.
func NewMockJWTServiceForUser(userID uuid.UUID) *MockJWTService {
	now := time.Now().UTC()
	return &MockJWTService{
		Token:        "test-access-token",
		RefreshToken: "test-refresh-token",
		Claims: &auth.Claims{
			UserID:    userID,
			TokenType: auth.TokenTypeAccess,
			IssuedAt:  now,
			ExpiresAt: now.Add(time.Hour),
		},
	}
}

// GenerateToken implements the auth.JWTService interface
func (m *MockJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, userID)
	}
	return m.Token, m.Err
}

// ValidateToken implements the auth.JWTService interface
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return m.Claims, m.Err
}

// GenerateRefreshToken implements the auth.JWTService interface
func (m *MockJWTService) GenerateRefreshToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.GenerateRefreshTokenFn != nil {
		return m.GenerateRefreshTokenFn(ctx, userID)
	}
	return m.RefreshToken, m.Err
}

// ValidateRefreshToken implements the auth.JWTService interface
func (m *MockJWTService) ValidateRefreshToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateRefreshTokenFn != nil {
		return m.ValidateRefreshTokenFn(ctx, tokenString)
	}
	return m.Claims, m.Err
}
