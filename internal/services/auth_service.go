package services

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/JGS-JAVA/albaing-personalpart/domain"
)

// Input patterns. The password policy needs lookahead so it is enforced in
// code rather than with a single expression.
var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	// Two or more consecutive Hangul syllables.
	namePattern = regexp.MustCompile(`^[가-힣]{2,}$`)
	// Korean mobile numbers (010/011/016/017/018/019), dashes optional.
	mobilePattern = regexp.MustCompile(`^01[016789]-?[0-9]{3,4}-?[0-9]{4,}$`)
	// Korean landline or internet phone numbers, dashes optional.
	landlinePattern = regexp.MustCompile(`^(?:0(2|[3-6][1-5]|70))-?[0-9]{3,4}-?[0-9]{4}$`)
	// Business registration numbers: NNN-NN-NNNNN.
	registrationNumberPattern = regexp.MustCompile(`^[0-9]{3}-[0-9]{2}-[0-9]{5}$`)
)

const passwordSymbols = "!@#$%^&*"

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo     domain.UserRepository
	companyRepo  domain.CompanyRepository
	passwordSvc  domain.PasswordService
	verification domain.VerificationService
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	companyRepo domain.CompanyRepository,
	passwordSvc domain.PasswordService,
	verification domain.VerificationService,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:     userRepo,
		companyRepo:  companyRepo,
		passwordSvc:  passwordSvc,
		verification: verification,
	}
}

// RegisterPerson implements domain.AuthService. Check order is load-bearing:
// uniqueness before required fields before verification, so a duplicate
// email wins over a missing verification.
func (s *AuthServiceImpl) RegisterPerson(ctx context.Context, user *domain.User) error {
	taken, err := s.userRepo.ExistsByEmail(ctx, user.Email)
	if err != nil {
		return fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if taken {
		return domain.ErrEmailTaken
	}

	taken, err = s.userRepo.ExistsByPhone(ctx, user.Phone)
	if err != nil {
		return fmt.Errorf("failed to check phone uniqueness: %w", err)
	}
	if taken {
		return domain.ErrPhoneTaken
	}

	if user.Email == "" {
		return domain.NewValidationError("userEmail", "email is required")
	}
	if user.Password == "" {
		return domain.NewValidationError("userPassword", "password is required")
	}
	if user.Name == "" {
		return domain.NewValidationError("userName", "name is required")
	}

	// A social account already proved email ownership at the provider, so
	// the code flow is bypassed by marking the email verified up front.
	if user.KakaoID != "" || user.NaverID != "" {
		if err := s.verification.MarkVerified(ctx, user.Email); err != nil {
			return fmt.Errorf("failed to mark email verified: %w", err)
		}
	}

	verified, err := s.verification.IsVerified(ctx, user.Email)
	if err != nil {
		return fmt.Errorf("failed to check email verification: %w", err)
	}
	if !verified {
		return domain.ErrEmailNotVerified
	}

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = now
	}

	hash, err := s.passwordSvc.Hash(user.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hash
	user.Password = ""

	if err := s.userRepo.Create(ctx, user); err != nil {
		return err
	}

	// The verification record has served its purpose.
	if err := s.verification.Clear(ctx, user.Email); err != nil {
		return fmt.Errorf("failed to clear verification record: %w", err)
	}

	return nil
}

// RegisterCompany implements domain.AuthService. Companies have no social
// bypass and start in the approving state.
func (s *AuthServiceImpl) RegisterCompany(ctx context.Context, company *domain.Company) error {
	taken, err := s.companyRepo.ExistsByEmail(ctx, company.Email)
	if err != nil {
		return fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if taken {
		return domain.ErrEmailTaken
	}

	taken, err = s.companyRepo.ExistsByPhone(ctx, company.Phone)
	if err != nil {
		return fmt.Errorf("failed to check phone uniqueness: %w", err)
	}
	if taken {
		return domain.ErrPhoneTaken
	}

	if company.Email == "" {
		return domain.NewValidationError("companyEmail", "email is required")
	}
	if company.Password == "" {
		return domain.NewValidationError("companyPassword", "password is required")
	}
	if company.Name == "" {
		return domain.NewValidationError("companyName", "company name is required")
	}

	verified, err := s.verification.IsVerified(ctx, company.Email)
	if err != nil {
		return fmt.Errorf("failed to check email verification: %w", err)
	}
	if !verified {
		return domain.ErrEmailNotVerified
	}

	now := time.Now()
	if company.CreatedAt.IsZero() {
		company.CreatedAt = now
	}
	if company.UpdatedAt.IsZero() {
		company.UpdatedAt = now
	}
	if company.ApprovalStatus == "" {
		company.ApprovalStatus = domain.ApprovalApproving
	}

	hash, err := s.passwordSvc.Hash(company.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	company.PasswordHash = hash
	company.Password = ""

	if err := s.companyRepo.Create(ctx, company); err != nil {
		return err
	}

	if err := s.verification.Clear(ctx, company.Email); err != nil {
		return fmt.Errorf("failed to clear verification record: %w", err)
	}

	return nil
}

// LoginPerson implements domain.AuthService
func (s *AuthServiceImpl) LoginPerson(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

// LoginCompany implements domain.AuthService. Credentials are checked before
// approval status: a wrong password on an approved account is a credential
// failure, not a status rejection.
func (s *AuthServiceImpl) LoginCompany(ctx context.Context, email, password string) (*domain.Company, error) {
	company, err := s.companyRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !s.passwordSvc.Verify(company.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	if company.ApprovalStatus == domain.ApprovalApproving {
		return nil, domain.ErrCompanyAwaitingApproval
	}
	if company.ApprovalStatus != domain.ApprovalApproved {
		return nil, domain.ErrCompanyLoginNotAllowed
	}

	return company, nil
}

// ValidatePersonInput implements domain.AuthService. Pure field validation;
// no repository access happens here.
func (s *AuthServiceImpl) ValidatePersonInput(user *domain.User) error {
	if user.Email == "" {
		return domain.NewValidationError("userEmail", "email is required")
	}
	if user.Password == "" {
		return domain.NewValidationError("userPassword", "password is required")
	}
	if user.Name == "" {
		return domain.NewValidationError("userName", "name is required")
	}

	if !emailPattern.MatchString(user.Email) {
		return domain.NewValidationError("userEmail", "invalid email format")
	}
	if !validPassword(user.Password) {
		return domain.NewValidationError("userPassword",
			"password must be at least 8 characters and include a letter, a digit and a special character")
	}
	if !namePattern.MatchString(user.Name) {
		return domain.NewValidationError("userName", "name must be at least 2 Hangul characters")
	}
	if user.Birthdate != nil && user.Birthdate.After(time.Now()) {
		return domain.NewValidationError("userBirthdate", "birth date cannot be in the future")
	}
	if !mobilePattern.MatchString(user.Phone) {
		return domain.NewValidationError("userPhone", "invalid phone number format")
	}

	return nil
}

// ValidateCompanyInput implements domain.AuthService
func (s *AuthServiceImpl) ValidateCompanyInput(company *domain.Company) error {
	if company.RegistrationNumber == "" {
		return domain.NewValidationError("companyRegistrationNumber", "business registration number is required")
	}
	if company.Email == "" {
		return domain.NewValidationError("companyEmail", "email is required")
	}
	if company.Password == "" {
		return domain.NewValidationError("companyPassword", "password is required")
	}
	if company.OwnerName == "" {
		return domain.NewValidationError("companyOwnerName", "owner name is required")
	}
	if company.Name == "" {
		return domain.NewValidationError("companyName", "company name is required")
	}
	if company.OpenDate == nil {
		return domain.NewValidationError("companyOpenDate", "founding date is required")
	}
	if company.Address == "" {
		return domain.NewValidationError("companyLocalAddress", "business address is required")
	}

	if !emailPattern.MatchString(company.Email) {
		return domain.NewValidationError("companyEmail", "invalid email format")
	}
	if !validPassword(company.Password) {
		return domain.NewValidationError("companyPassword",
			"password must be at least 8 characters and include a letter, a digit and a special character")
	}
	if !landlinePattern.MatchString(company.Phone) && !mobilePattern.MatchString(company.Phone) {
		return domain.NewValidationError("companyPhone", "invalid phone number format")
	}
	if !registrationNumberPattern.MatchString(company.RegistrationNumber) {
		return domain.NewValidationError("companyRegistrationNumber",
			"invalid business registration number format (e.g. 123-45-67890)")
	}

	return nil
}

// validPassword enforces the password policy: at least 8 characters from
// the allowed set, with at least one letter, one digit and one symbol.
func validPassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var hasLetter, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			found := false
			for _, s := range passwordSymbols {
				if r == s {
					found = true
					break
				}
			}
			if !found {
				return false
			}
			hasSymbol = true
		}
	}

	return hasLetter && hasDigit && hasSymbol
}
