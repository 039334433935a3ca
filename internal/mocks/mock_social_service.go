package mocks

import (
	"context"
	"fmt"

	"github.com/JGS-JAVA/albaing-personalpart/domain"
)

// MockSocialService implements domain.SocialService interface for testing
type MockSocialService struct {
	AuthCodeURLFunc    func(provider, state string) (string, error)
	HandleCallbackFunc func(ctx context.Context, provider, code, sessionID string) (string, error)
}

// NewMockSocialService creates a new MockSocialService with default behaviors
func NewMockSocialService() *MockSocialService {
	return &MockSocialService{}
}

// AuthCodeURL returns the provider consent URL
func (m *MockSocialService) AuthCodeURL(provider, state string) (string, error) {
	if m.AuthCodeURLFunc != nil {
		return m.AuthCodeURLFunc(provider, state)
	}
	// Default behavior: fixed URL per provider
	return fmt.Sprintf("https://%s.example/authorize?state=%s", provider, state), nil
}

// HandleCallback completes the code exchange
func (m *MockSocialService) HandleCallback(ctx context.Context, provider, code, sessionID string) (string, error) {
	if m.HandleCallbackFunc != nil {
		return m.HandleCallbackFunc(ctx, provider, code, sessionID)
	}
	// Default behavior: land on a fixed home URL
	return "http://localhost:3000", nil
}

// Compile-time interface compliance verification
var _ domain.SocialService = (*MockSocialService)(nil)
