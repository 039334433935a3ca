package mocks

import (
	"context"

	"github.com/JGS-JAVA/albaing-personalpart/domain"
)

// MockFindService implements domain.FindService interface for testing
type MockFindService struct {
	FindUserEmailFunc            func(ctx context.Context, name, phone string) (*domain.User, error)
	FindCompanyEmailFunc         func(ctx context.Context, name, phone string) (*domain.Company, error)
	VerifyUserCredentialsFunc    func(ctx context.Context, email, password string) (bool, error)
	VerifyCompanyCredentialsFunc func(ctx context.Context, email, password string) (bool, error)
	ResetUserPasswordFunc        func(ctx context.Context, email, newPassword string) error
	ResetCompanyPasswordFunc     func(ctx context.Context, email, newPassword string) error
}

// NewMockFindService creates a new MockFindService with default behaviors
func NewMockFindService() *MockFindService {
	return &MockFindService{}
}

// FindUserEmail recovers a person account by name and phone
func (m *MockFindService) FindUserEmail(ctx context.Context, name, phone string) (*domain.User, error) {
	if m.FindUserEmailFunc != nil {
		return m.FindUserEmailFunc(ctx, name, phone)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindCompanyEmail recovers a company account by owner name and phone
func (m *MockFindService) FindCompanyEmail(ctx context.Context, name, phone string) (*domain.Company, error) {
	if m.FindCompanyEmailFunc != nil {
		return m.FindCompanyEmailFunc(ctx, name, phone)
	}
	// Default behavior: not found
	return nil, domain.ErrCompanyNotFound
}

// VerifyUserCredentials re-checks a person's credentials
func (m *MockFindService) VerifyUserCredentials(ctx context.Context, email, password string) (bool, error) {
	if m.VerifyUserCredentialsFunc != nil {
		return m.VerifyUserCredentialsFunc(ctx, email, password)
	}
	// Default behavior: mismatch
	return false, nil
}

// VerifyCompanyCredentials re-checks a company's credentials
func (m *MockFindService) VerifyCompanyCredentials(ctx context.Context, email, password string) (bool, error) {
	if m.VerifyCompanyCredentialsFunc != nil {
		return m.VerifyCompanyCredentialsFunc(ctx, email, password)
	}
	// Default behavior: mismatch
	return false, nil
}

// ResetUserPassword resets a person's password
func (m *MockFindService) ResetUserPassword(ctx context.Context, email, newPassword string) error {
	if m.ResetUserPasswordFunc != nil {
		return m.ResetUserPasswordFunc(ctx, email, newPassword)
	}
	// Default behavior: success
	return nil
}

// ResetCompanyPassword resets a company's password
func (m *MockFindService) ResetCompanyPassword(ctx context.Context, email, newPassword string) error {
	if m.ResetCompanyPasswordFunc != nil {
		return m.ResetCompanyPasswordFunc(ctx, email, newPassword)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.FindService = (*MockFindService)(nil)
