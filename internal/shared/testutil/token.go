package testutil

import (
	"time"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/token"
)

// Fixed bearer tokens understood by the default MockTokenManager
const (
	AdminToken  = "test-admin-token"  // user 1, role admin
	EditorToken = "test-editor-token" // user 2, role editor
)

// MockTokenManager is a mock implementation of token.Manager for testing
type MockTokenManager struct {
	GenerateAccessTokenFunc  func(userID, email, role string) (string, error)
	GenerateRefreshTokenFunc func(userID, email, role string) (string, error)
	ValidateTokenFunc        func(tokenString string) (*token.Claims, error)
}

func (m *MockTokenManager) GenerateAccessToken(userID, email, role string) (string, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(userID, email, role)
	}
	return "mock-access-token", nil
}

func (m *MockTokenManager) GenerateRefreshToken(userID, email, role string) (string, error) {
	if m.GenerateRefreshTokenFunc != nil {
		return m.GenerateRefreshTokenFunc(userID, email, role)
	}
	return "mock-refresh-token", nil
}

func (m *MockTokenManager) ValidateToken(tokenString string) (*token.Claims, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(tokenString)
	}

	switch tokenString {
	case AdminToken:
		return &token.Claims{UserID: "1", Email: "admin@tour.test", Role: "admin", TokenType: token.ACCESS}, nil
	case EditorToken:
		return &token.Claims{UserID: "2", Email: "editor@tour.test", Role: "editor", TokenType: token.ACCESS}, nil
	default:
		return nil, token.ErrInvalidToken
	}
}

func (m *MockTokenManager) AccessExpiry() time.Duration {
	return time.Hour
}

// Ensure MockTokenManager implements token.Manager
var _ token.Manager = (*MockTokenManager)(nil)

// NewMockTokenManager creates a new mock token manager with default behavior
func NewMockTokenManager() *MockTokenManager {
	return &MockTokenManager{}
}
