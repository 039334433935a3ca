package mocks

import (
	"github.com/JGS-JAVA/albaing-personalpart/domain"
)

// MockMailService implements domain.MailService interface for testing
type MockMailService struct {
	SendFunc func(to, subject, body string) error

	// Sent records every successful default-behavior send.
	Sent []string
}

// NewMockMailService creates a new MockMailService with default behaviors
func NewMockMailService() *MockMailService {
	return &MockMailService{}
}

// Send dispatches a message
func (m *MockMailService) Send(to, subject, body string) error {
	if m.SendFunc != nil {
		return m.SendFunc(to, subject, body)
	}
	// Default behavior: record and succeed
	m.Sent = append(m.Sent, to)
	return nil
}

// Compile-time interface compliance verification
var _ domain.MailService = (*MockMailService)(nil)
