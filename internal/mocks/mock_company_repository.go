package mocks

import (
	"context"

	"github.com/JGS-JAVA/albaing-personalpart/domain"
)

// MockCompanyRepository implements domain.CompanyRepository interface for testing
type MockCompanyRepository struct {
	CreateFunc                func(ctx context.Context, company *domain.Company) error
	ExistsByEmailFunc         func(ctx context.Context, email string) (bool, error)
	ExistsByPhoneFunc         func(ctx context.Context, phone string) (bool, error)
	FindByEmailFunc           func(ctx context.Context, email string) (*domain.Company, error)
	FindByIDFunc              func(ctx context.Context, id uint) (*domain.Company, error)
	FindByCredentialMatchFunc func(ctx context.Context, name, phone string) (*domain.Company, error)
	UpdateFunc                func(ctx context.Context, company *domain.Company) error
	UpdatePasswordFunc        func(ctx context.Context, email, newHash string) error
	DeleteFunc                func(ctx context.Context, id uint) error
}

// NewMockCompanyRepository creates a new MockCompanyRepository with default behaviors
func NewMockCompanyRepository() *MockCompanyRepository {
	return &MockCompanyRepository{}
}

// Create creates a new company
func (m *MockCompanyRepository) Create(ctx context.Context, company *domain.Company) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, company)
	}
	// Default behavior: success
	return nil
}

// ExistsByEmail reports whether the email is taken
func (m *MockCompanyRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	// Default behavior: available
	return false, nil
}

// ExistsByPhone reports whether the phone is taken
func (m *MockCompanyRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	if m.ExistsByPhoneFunc != nil {
		return m.ExistsByPhoneFunc(ctx, phone)
	}
	// Default behavior: available
	return false, nil
}

// FindByEmail finds a company by email
func (m *MockCompanyRepository) FindByEmail(ctx context.Context, email string) (*domain.Company, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrCompanyNotFound
}

// FindByID finds a company by ID
func (m *MockCompanyRepository) FindByID(ctx context.Context, id uint) (*domain.Company, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrCompanyNotFound
}

// FindByCredentialMatch finds a company by owner name and phone
func (m *MockCompanyRepository) FindByCredentialMatch(ctx context.Context, name, phone string) (*domain.Company, error) {
	if m.FindByCredentialMatchFunc != nil {
		return m.FindByCredentialMatchFunc(ctx, name, phone)
	}
	// Default behavior: not found
	return nil, domain.ErrCompanyNotFound
}

// Update updates an existing company
func (m *MockCompanyRepository) Update(ctx context.Context, company *domain.Company) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, company)
	}
	// Default behavior: success
	return nil
}

// UpdatePassword replaces the stored password hash
func (m *MockCompanyRepository) UpdatePassword(ctx context.Context, email, newHash string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, email, newHash)
	}
	// Default behavior: success
	return nil
}

// Delete removes a company
func (m *MockCompanyRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.CompanyRepository = (*MockCompanyRepository)(nil)
