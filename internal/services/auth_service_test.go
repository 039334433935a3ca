package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/JGS-JAVA/albaing-personalpart/domain"
	"github.com/JGS-JAVA/albaing-personalpart/internal/mocks"
)

func validUser() *domain.User {
	birthdate := time.Date(1999, 3, 14, 0, 0, 0, 0, time.UTC)
	return &domain.User{
		Email:     "person@example.com",
		Password:  "secret1!a",
		Name:      "김철수",
		Birthdate: &birthdate,
		Gender:    domain.GenderMale,
		Phone:     "010-1234-5678",
	}
}

func TestRegisterPerson(t *testing.T) {
	tests := []struct {
		name       string
		user       *domain.User
		setupMocks func(*mocks.MockUserRepository, *mocks.MockVerificationService)
		wantErr    error
	}{
		{
			name:       "success",
			user:       validUser(),
			setupMocks: func(userRepo *mocks.MockUserRepository, verification *mocks.MockVerificationService) {},
			wantErr:    nil,
		},
		{
			name: "duplicate email wins over everything else",
			user: &domain.User{Email: "person@example.com"},
			setupMocks: func(userRepo *mocks.MockUserRepository, verification *mocks.MockVerificationService) {
				userRepo.ExistsByEmailFunc = func(ctx context.Context, email string) (bool, error) {
					return true, nil
				}
			},
			wantErr: domain.ErrEmailTaken,
		},
		{
			name: "duplicate phone",
			user: validUser(),
			setupMocks: func(userRepo *mocks.MockUserRepository, verification *mocks.MockVerificationService) {
				userRepo.ExistsByPhoneFunc = func(ctx context.Context, phone string) (bool, error) {
					return true, nil
				}
			},
			wantErr: domain.ErrPhoneTaken,
		},
		{
			name: "unverified email rejected",
			user: validUser(),
			setupMocks: func(userRepo *mocks.MockUserRepository, verification *mocks.MockVerificationService) {
				verification.IsVerifiedFunc = func(ctx context.Context, email string) (bool, error) {
					return false, nil
				}
			},
			wantErr: domain.ErrEmailNotVerified,
		},
		{
			name: "missing password fails before verification check",
			user: &domain.User{Email: "person@example.com", Name: "김철수"},
			setupMocks: func(userRepo *mocks.MockUserRepository, verification *mocks.MockVerificationService) {
				verification.IsVerifiedFunc = func(ctx context.Context, email string) (bool, error) {
					t.Fatal("verification must not be consulted for incomplete input")
					return false, nil
				}
			},
			wantErr: &domain.ValidationError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			companyRepo := mocks.NewMockCompanyRepository()
			verification := mocks.NewMockVerificationService()
			tt.setupMocks(userRepo, verification)

			svc := NewAuthService(userRepo, companyRepo, mocks.NewMockPasswordService(), verification)
			err := svc.RegisterPerson(context.Background(), tt.user)

			switch want := tt.wantErr.(type) {
			case nil:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			case *domain.ValidationError:
				_ = want
				if !domain.IsValidation(err) {
					t.Fatalf("expected validation error, got %v", err)
				}
			default:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
			}
		})
	}
}

func TestRegisterPersonSurfacesCreateConflict(t *testing.T) {
	// The uniqueness pre-checks race concurrent registrations; the store's
	// unique constraints are the backstop and their violation must still
	// come out as a conflict, not a server error.
	userRepo := mocks.NewMockUserRepository()
	userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
		return domain.ErrAccountExists
	}

	svc := NewAuthService(userRepo, mocks.NewMockCompanyRepository(),
		mocks.NewMockPasswordService(), mocks.NewMockVerificationService())

	err := svc.RegisterPerson(context.Background(), validUser())
	if !errors.Is(err, domain.ErrAccountExists) {
		t.Fatalf("expected %v, got %v", domain.ErrAccountExists, err)
	}
	if !domain.IsConflict(err) {
		t.Fatalf("constraint violation must classify as a conflict, got %v", err)
	}
}

func TestRegisterCompanySurfacesCreateConflict(t *testing.T) {
	companyRepo := mocks.NewMockCompanyRepository()
	companyRepo.CreateFunc = func(ctx context.Context, company *domain.Company) error {
		return domain.ErrAccountExists
	}

	svc := NewAuthService(mocks.NewMockUserRepository(), companyRepo,
		mocks.NewMockPasswordService(), mocks.NewMockVerificationService())

	err := svc.RegisterCompany(context.Background(), &domain.Company{
		Name:     "알바주식회사",
		Email:    "biz@example.com",
		Password: "secret1!a",
		Phone:    "02-123-4567",
	})
	if !domain.IsConflict(err) {
		t.Fatalf("constraint violation must classify as a conflict, got %v", err)
	}
}

func TestRegisterPersonHashesPassword(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	var created *domain.User
	userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
		created = user
		return nil
	}

	svc := NewAuthService(userRepo, mocks.NewMockCompanyRepository(),
		mocks.NewMockPasswordService(), mocks.NewMockVerificationService())

	user := validUser()
	if err := svc.RegisterPerson(context.Background(), user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created == nil {
		t.Fatal("user was not persisted")
	}
	if created.Password != "" {
		t.Error("plaintext password must be cleared before persistence")
	}
	if created.PasswordHash == "" || created.PasswordHash == "secret1!a" {
		t.Errorf("password was not hashed: %q", created.PasswordHash)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("timestamps were not defaulted")
	}
}

func TestRegisterPersonSocialBypass(t *testing.T) {
	verification := mocks.NewMockVerificationService()
	marked := ""
	verification.MarkVerifiedFunc = func(ctx context.Context, email string) error {
		marked = email
		return nil
	}
	verification.IsVerifiedFunc = func(ctx context.Context, email string) (bool, error) {
		// Only verified through the bypass.
		return marked == email, nil
	}

	svc := NewAuthService(mocks.NewMockUserRepository(), mocks.NewMockCompanyRepository(),
		mocks.NewMockPasswordService(), verification)

	user := validUser()
	user.KakaoID = "987654321"
	if err := svc.RegisterPerson(context.Background(), user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if marked != user.Email {
		t.Errorf("social signup must mark the email verified, marked=%q", marked)
	}
}

func TestRegisterCompanyDefaultsToApproving(t *testing.T) {
	companyRepo := mocks.NewMockCompanyRepository()
	var created *domain.Company
	companyRepo.CreateFunc = func(ctx context.Context, company *domain.Company) error {
		created = company
		return nil
	}

	svc := NewAuthService(mocks.NewMockUserRepository(), companyRepo,
		mocks.NewMockPasswordService(), mocks.NewMockVerificationService())

	company := &domain.Company{
		Name:     "알바주식회사",
		Email:    "biz@example.com",
		Password: "secret1!a",
		Phone:    "02-123-4567",
	}
	if err := svc.RegisterCompany(context.Background(), company); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ApprovalStatus != domain.ApprovalApproving {
		t.Errorf("new company must await approval, got %q", created.ApprovalStatus)
	}
}

func TestLoginPerson(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		setup    func(*mocks.MockUserRepository)
		wantErr  error
	}{
		{
			name:     "success",
			email:    "person@example.com",
			password: "secret1!a",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return &domain.User{ID: 7, Email: email, PasswordHash: "hashed_secret1!a"}, nil
				}
			},
		},
		{
			name:     "unknown email",
			email:    "missing@example.com",
			password: "secret1!a",
			setup:    func(userRepo *mocks.MockUserRepository) {},
			wantErr:  domain.ErrUserNotFound,
		},
		{
			name:     "wrong password",
			email:    "person@example.com",
			password: "wrong",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return &domain.User{ID: 7, Email: email, PasswordHash: "hashed_secret1!a"}, nil
				}
			},
			wantErr: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			tt.setup(userRepo)

			svc := NewAuthService(userRepo, mocks.NewMockCompanyRepository(),
				mocks.NewMockPasswordService(), mocks.NewMockVerificationService())

			user, err := svc.LoginPerson(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user.ID != 7 {
				t.Errorf("wrong user returned: %+v", user)
			}
		})
	}
}

func TestLoginCompanyApprovalStates(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.ApprovalStatus
		wantErr error
	}{
		{"approved logs in", domain.ApprovalApproved, nil},
		{"approving is told to wait", domain.ApprovalApproving, domain.ErrCompanyAwaitingApproval},
		{"hidden is rejected generically", domain.ApprovalHidden, domain.ErrCompanyLoginNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			companyRepo := mocks.NewMockCompanyRepository()
			companyRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.Company, error) {
				return &domain.Company{
					ID:             3,
					Email:          email,
					PasswordHash:   "hashed_secret1!a",
					ApprovalStatus: tt.status,
				}, nil
			}

			svc := NewAuthService(mocks.NewMockUserRepository(), companyRepo,
				mocks.NewMockPasswordService(), mocks.NewMockVerificationService())

			_, err := svc.LoginCompany(context.Background(), "biz@example.com", "secret1!a")
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoginCompanyWrongPasswordBeatsApprovalStatus(t *testing.T) {
	companyRepo := mocks.NewMockCompanyRepository()
	companyRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.Company, error) {
		return &domain.Company{
			Email:          email,
			PasswordHash:   "hashed_secret1!a",
			ApprovalStatus: domain.ApprovalApproving,
		}, nil
	}

	svc := NewAuthService(mocks.NewMockUserRepository(), companyRepo,
		mocks.NewMockPasswordService(), mocks.NewMockVerificationService())

	_, err := svc.LoginCompany(context.Background(), "biz@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected credential failure, got %v", err)
	}
}

func TestValidatePersonInput(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*domain.User)
		wantField string
	}{
		{"valid", func(u *domain.User) {}, ""},
		{"bad email", func(u *domain.User) { u.Email = "not-an-email" }, "userEmail"},
		{"password too short", func(u *domain.User) { u.Password = "a1!" }, "userPassword"},
		{"password without digit", func(u *domain.User) { u.Password = "abcdefg!" }, "userPassword"},
		{"password without symbol", func(u *domain.User) { u.Password = "abcdefg1" }, "userPassword"},
		{"password with forbidden character", func(u *domain.User) { u.Password = "abcdef1! " }, "userPassword"},
		{"non-Hangul name", func(u *domain.User) { u.Name = "John" }, "userName"},
		{"single-syllable name", func(u *domain.User) { u.Name = "김" }, "userName"},
		{"future birth date", func(u *domain.User) {
			future := time.Now().Add(48 * time.Hour)
			u.Birthdate = &future
		}, "userBirthdate"},
		{"landline is not a mobile number", func(u *domain.User) { u.Phone = "02-123-4567" }, "userPhone"},
		{"undashed mobile accepted", func(u *domain.User) { u.Phone = "01012345678" }, ""},
	}

	svc := NewAuthService(mocks.NewMockUserRepository(), mocks.NewMockCompanyRepository(),
		mocks.NewMockPasswordService(), mocks.NewMockVerificationService())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := validUser()
			tt.mutate(user)

			err := svc.ValidatePersonInput(user)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if ve.Field != tt.wantField {
				t.Errorf("expected field %q, got %q (%s)", tt.wantField, ve.Field, ve.Message)
			}
		})
	}
}

func TestValidateCompanyInput(t *testing.T) {
	openDate := time.Date(2015, 6, 1, 0, 0, 0, 0, time.UTC)
	valid := func() *domain.Company {
		return &domain.Company{
			Name:               "알바주식회사",
			RegistrationNumber: "123-45-67890",
			OwnerName:          "박영희",
			OpenDate:           &openDate,
			Password:           "secret1!a",
			Email:              "biz@example.com",
			Phone:              "02-123-4567",
			Address:            "서울특별시 강남구",
		}
	}

	tests := []struct {
		name      string
		mutate    func(*domain.Company)
		wantField string
	}{
		{"valid with landline", func(co *domain.Company) {}, ""},
		{"valid with mobile", func(co *domain.Company) { co.Phone = "010-9876-5432" }, ""},
		{"missing registration number", func(co *domain.Company) { co.RegistrationNumber = "" }, "companyRegistrationNumber"},
		{"malformed registration number", func(co *domain.Company) { co.RegistrationNumber = "1234567890" }, "companyRegistrationNumber"},
		{"missing open date", func(co *domain.Company) { co.OpenDate = nil }, "companyOpenDate"},
		{"missing address", func(co *domain.Company) { co.Address = "" }, "companyLocalAddress"},
		{"bad phone", func(co *domain.Company) { co.Phone = "123-456" }, "companyPhone"},
	}

	svc := NewAuthService(mocks.NewMockUserRepository(), mocks.NewMockCompanyRepository(),
		mocks.NewMockPasswordService(), mocks.NewMockVerificationService())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			company := valid()
			tt.mutate(company)

			err := svc.ValidateCompanyInput(company)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if ve.Field != tt.wantField {
				t.Errorf("expected field %q, got %q (%s)", tt.wantField, ve.Field, ve.Message)
			}
		})
	}
}
