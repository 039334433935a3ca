package mocks

import (
	"context"

	"github.com/JGS-JAVA/albaing-personalpart/domain"
)

// MockSessionGateway implements domain.SessionGateway interface for testing
type MockSessionGateway struct {
	LoginFunc   func(ctx context.Context, sessionID string, role domain.SessionRole, accountID uint) error
	LogoutFunc  func(ctx context.Context, sessionID string) error
	CurrentFunc func(ctx context.Context, sessionID string) (*domain.Session, error)
}

// NewMockSessionGateway creates a new MockSessionGateway with default behaviors
func NewMockSessionGateway() *MockSessionGateway {
	return &MockSessionGateway{}
}

// Login binds an identity to a session
func (m *MockSessionGateway) Login(ctx context.Context, sessionID string, role domain.SessionRole, accountID uint) error {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, sessionID, role, accountID)
	}
	// Default behavior: success
	return nil
}

// Logout deletes a session
func (m *MockSessionGateway) Logout(ctx context.Context, sessionID string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, sessionID)
	}
	// Default behavior: success
	return nil
}

// Current returns the session bindings
func (m *MockSessionGateway) Current(ctx context.Context, sessionID string) (*domain.Session, error) {
	if m.CurrentFunc != nil {
		return m.CurrentFunc(ctx, sessionID)
	}
	// Default behavior: not found
	return nil, domain.ErrSessionNotFound
}

// Compile-time interface compliance verification
var _ domain.SessionGateway = (*MockSessionGateway)(nil)
