package services

import (
	"context"
	"fmt"

	"github.com/JGS-JAVA/albaing-personalpart/domain"
)

// FindServiceImpl implements domain.FindService: account recovery by
// name and phone, credential re-checks, and password resets.
type FindServiceImpl struct {
	userRepo    domain.UserRepository
	companyRepo domain.CompanyRepository
	passwordSvc domain.PasswordService
}

// NewFindService creates a new find service
func NewFindService(
	userRepo domain.UserRepository,
	companyRepo domain.CompanyRepository,
	passwordSvc domain.PasswordService,
) domain.FindService {
	return &FindServiceImpl{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		passwordSvc: passwordSvc,
	}
}

// FindUserEmail implements domain.FindService
func (s *FindServiceImpl) FindUserEmail(ctx context.Context, name, phone string) (*domain.User, error) {
	return s.userRepo.FindByCredentialMatch(ctx, name, phone)
}

// FindCompanyEmail implements domain.FindService. The match is on the
// owner's name, not the company name.
func (s *FindServiceImpl) FindCompanyEmail(ctx context.Context, name, phone string) (*domain.Company, error) {
	return s.companyRepo.FindByCredentialMatch(ctx, name, phone)
}

// VerifyUserCredentials implements domain.FindService. Used to gate a
// password reset; an unknown email surfaces as ErrUserNotFound.
func (s *FindServiceImpl) VerifyUserCredentials(ctx context.Context, email, password string) (bool, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return s.passwordSvc.Verify(user.PasswordHash, password), nil
}

// VerifyCompanyCredentials implements domain.FindService
func (s *FindServiceImpl) VerifyCompanyCredentials(ctx context.Context, email, password string) (bool, error) {
	company, err := s.companyRepo.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return s.passwordSvc.Verify(company.PasswordHash, password), nil
}

// ResetUserPassword implements domain.FindService
func (s *FindServiceImpl) ResetUserPassword(ctx context.Context, email, newPassword string) error {
	if !validPassword(newPassword) {
		return domain.NewValidationError("userPassword",
			"password must be at least 8 characters and include a letter, a digit and a special character")
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err != nil {
		return err
	}

	hash, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.UpdatePassword(ctx, email, hash)
}

// ResetCompanyPassword implements domain.FindService
func (s *FindServiceImpl) ResetCompanyPassword(ctx context.Context, email, newPassword string) error {
	if !validPassword(newPassword) {
		return domain.NewValidationError("companyPassword",
			"password must be at least 8 characters and include a letter, a digit and a special character")
	}

	if _, err := s.companyRepo.FindByEmail(ctx, email); err != nil {
		return err
	}

	hash, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.companyRepo.UpdatePassword(ctx, email, hash)
}
