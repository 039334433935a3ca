package mocks

import (
	"context"

	"github.com/JGS-JAVA/albaing-personalpart/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	RegisterPersonFunc       func(ctx context.Context, user *domain.User) error
	RegisterCompanyFunc      func(ctx context.Context, company *domain.Company) error
	LoginPersonFunc          func(ctx context.Context, email, password string) (*domain.User, error)
	LoginCompanyFunc         func(ctx context.Context, email, password string) (*domain.Company, error)
	ValidatePersonInputFunc  func(user *domain.User) error
	ValidateCompanyInputFunc func(company *domain.Company) error
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// RegisterPerson registers a person account
func (m *MockAuthService) RegisterPerson(ctx context.Context, user *domain.User) error {
	if m.RegisterPersonFunc != nil {
		return m.RegisterPersonFunc(ctx, user)
	}
	// Default behavior: success
	return nil
}

// RegisterCompany registers a company account
func (m *MockAuthService) RegisterCompany(ctx context.Context, company *domain.Company) error {
	if m.RegisterCompanyFunc != nil {
		return m.RegisterCompanyFunc(ctx, company)
	}
	// Default behavior: success
	return nil
}

// LoginPerson authenticates a person
func (m *MockAuthService) LoginPerson(ctx context.Context, email, password string) (*domain.User, error) {
	if m.LoginPersonFunc != nil {
		return m.LoginPersonFunc(ctx, email, password)
	}
	// Default behavior: invalid credentials
	return nil, domain.ErrInvalidCredentials
}

// LoginCompany authenticates a company
func (m *MockAuthService) LoginCompany(ctx context.Context, email, password string) (*domain.Company, error) {
	if m.LoginCompanyFunc != nil {
		return m.LoginCompanyFunc(ctx, email, password)
	}
	// Default behavior: invalid credentials
	return nil, domain.ErrInvalidCredentials
}

// ValidatePersonInput validates person signup input
func (m *MockAuthService) ValidatePersonInput(user *domain.User) error {
	if m.ValidatePersonInputFunc != nil {
		return m.ValidatePersonInputFunc(user)
	}
	// Default behavior: valid
	return nil
}

// ValidateCompanyInput validates company signup input
func (m *MockAuthService) ValidateCompanyInput(company *domain.Company) error {
	if m.ValidateCompanyInputFunc != nil {
		return m.ValidateCompanyInputFunc(company)
	}
	// Default behavior: valid
	return nil
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
