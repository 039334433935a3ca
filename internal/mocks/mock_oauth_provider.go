package mocks

import (
	"context"

	"github.com/JGS-JAVA/albaing-personalpart/domain"
)

// MockOAuthProvider implements domain.OAuthProvider interface for testing
type MockOAuthProvider struct {
	NameValue        string
	AuthCodeURLFunc  func(state string) string
	ExchangeFunc     func(ctx context.Context, code string) (string, error)
	FetchProfileFunc func(ctx context.Context, accessToken string) (*domain.SocialProfile, error)
}

// NewMockOAuthProvider creates a new MockOAuthProvider with default behaviors
func NewMockOAuthProvider(name string) *MockOAuthProvider {
	return &MockOAuthProvider{NameValue: name}
}

// Name returns the provider name
func (m *MockOAuthProvider) Name() string { return m.NameValue }

// AuthCodeURL returns the consent URL
func (m *MockOAuthProvider) AuthCodeURL(state string) string {
	if m.AuthCodeURLFunc != nil {
		return m.AuthCodeURLFunc(state)
	}
	// Default behavior: fixed URL with the state appended
	return "https://provider.example/authorize?state=" + state
}

// Exchange swaps the code for an access token
func (m *MockOAuthProvider) Exchange(ctx context.Context, code string) (string, error) {
	if m.ExchangeFunc != nil {
		return m.ExchangeFunc(ctx, code)
	}
	// Default behavior: fixed token
	return "mock_access_token", nil
}

// FetchProfile retrieves the normalized profile
func (m *MockOAuthProvider) FetchProfile(ctx context.Context, accessToken string) (*domain.SocialProfile, error) {
	if m.FetchProfileFunc != nil {
		return m.FetchProfileFunc(ctx, accessToken)
	}
	// Default behavior: minimal profile
	return &domain.SocialProfile{
		Provider:   m.NameValue,
		ExternalID: "12345",
		Nickname:   "tester",
		Email:      "tester@example.com",
	}, nil
}

// Compile-time interface compliance verification
var _ domain.OAuthProvider = (*MockOAuthProvider)(nil)
