package mocks

import (
	"context"

	"github.com/JGS-JAVA/albaing-personalpart/domain"
)

// MockVerificationStore implements domain.VerificationStore interface for testing
type MockVerificationStore struct {
	IssueCodeFunc    func(ctx context.Context, email string) (string, error)
	CheckCodeFunc    func(ctx context.Context, email, code string) (bool, error)
	MarkVerifiedFunc func(ctx context.Context, email string) error
	IsVerifiedFunc   func(ctx context.Context, email string) (bool, error)
	ClearFunc        func(ctx context.Context, email string) error
}

// NewMockVerificationStore creates a new MockVerificationStore with default behaviors
func NewMockVerificationStore() *MockVerificationStore {
	return &MockVerificationStore{}
}

// IssueCode issues a fresh code
func (m *MockVerificationStore) IssueCode(ctx context.Context, email string) (string, error) {
	if m.IssueCodeFunc != nil {
		return m.IssueCodeFunc(ctx, email)
	}
	// Default behavior: fixed code
	return "123456", nil
}

// CheckCode checks a code
func (m *MockVerificationStore) CheckCode(ctx context.Context, email, code string) (bool, error) {
	if m.CheckCodeFunc != nil {
		return m.CheckCodeFunc(ctx, email, code)
	}
	// Default behavior: mismatch
	return false, nil
}

// MarkVerified flips the verified flag
func (m *MockVerificationStore) MarkVerified(ctx context.Context, email string) error {
	if m.MarkVerifiedFunc != nil {
		return m.MarkVerifiedFunc(ctx, email)
	}
	// Default behavior: success
	return nil
}

// IsVerified reports the verified flag
func (m *MockVerificationStore) IsVerified(ctx context.Context, email string) (bool, error) {
	if m.IsVerifiedFunc != nil {
		return m.IsVerifiedFunc(ctx, email)
	}
	// Default behavior: not verified
	return false, nil
}

// Clear removes the record
func (m *MockVerificationStore) Clear(ctx context.Context, email string) error {
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx, email)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.VerificationStore = (*MockVerificationStore)(nil)

// MockVerificationService implements domain.VerificationService interface for testing
type MockVerificationService struct {
	SendCodeFunc     func(ctx context.Context, email string) error
	CheckCodeFunc    func(ctx context.Context, email, code string) (bool, error)
	MarkVerifiedFunc func(ctx context.Context, email string) error
	IsVerifiedFunc   func(ctx context.Context, email string) (bool, error)
	ClearFunc        func(ctx context.Context, email string) error
}

// NewMockVerificationService creates a new MockVerificationService with default behaviors
func NewMockVerificationService() *MockVerificationService {
	return &MockVerificationService{}
}

// SendCode dispatches a code
func (m *MockVerificationService) SendCode(ctx context.Context, email string) error {
	if m.SendCodeFunc != nil {
		return m.SendCodeFunc(ctx, email)
	}
	// Default behavior: success
	return nil
}

// CheckCode checks a code
func (m *MockVerificationService) CheckCode(ctx context.Context, email, code string) (bool, error) {
	if m.CheckCodeFunc != nil {
		return m.CheckCodeFunc(ctx, email, code)
	}
	// Default behavior: mismatch
	return false, nil
}

// MarkVerified flips the verified flag
func (m *MockVerificationService) MarkVerified(ctx context.Context, email string) error {
	if m.MarkVerifiedFunc != nil {
		return m.MarkVerifiedFunc(ctx, email)
	}
	// Default behavior: success
	return nil
}

// IsVerified reports the verified flag
func (m *MockVerificationService) IsVerified(ctx context.Context, email string) (bool, error) {
	if m.IsVerifiedFunc != nil {
		return m.IsVerifiedFunc(ctx, email)
	}
	// Default behavior: verified, so registration tests pass by default
	return true, nil
}

// Clear removes the record
func (m *MockVerificationService) Clear(ctx context.Context, email string) error {
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx, email)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.VerificationService = (*MockVerificationService)(nil)
