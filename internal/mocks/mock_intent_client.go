package mocks

import (
	"context"

	"github.com/JGS-JAVA/albaing-personalpart/domain"
)

// MockIntentClient implements domain.IntentClient interface for testing
type MockIntentClient struct {
	DetectIntentFunc func(ctx context.Context, sessionID, message string) (string, error)
}

// NewMockIntentClient creates a new MockIntentClient with default behaviors
func NewMockIntentClient() *MockIntentClient {
	return &MockIntentClient{}
}

// DetectIntent returns the agent reply
func (m *MockIntentClient) DetectIntent(ctx context.Context, sessionID, message string) (string, error) {
	if m.DetectIntentFunc != nil {
		return m.DetectIntentFunc(ctx, sessionID, message)
	}
	// Default behavior: echo
	return "echo: " + message, nil
}

// Compile-time interface compliance verification
var _ domain.IntentClient = (*MockIntentClient)(nil)
