package services

import (
	"context"
	"errors"
	"testing"

	"github.com/JGS-JAVA/albaing-personalpart/domain"
	"github.com/JGS-JAVA/albaing-personalpart/internal/mocks"
)

func TestFindUserEmail(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByCredentialMatchFunc = func(ctx context.Context, name, phone string) (*domain.User, error) {
		if name == "김철수" && phone == "010-1234-5678" {
			return &domain.User{Email: "person@example.com"}, nil
		}
		return nil, domain.ErrUserNotFound
	}

	svc := NewFindService(userRepo, mocks.NewMockCompanyRepository(), mocks.NewMockPasswordService())

	user, err := svc.FindUserEmail(context.Background(), "김철수", "010-1234-5678")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "person@example.com" {
		t.Errorf("wrong account: %+v", user)
	}

	if _, err := svc.FindUserEmail(context.Background(), "김철수", "010-0000-0000"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestVerifyUserCredentials(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return &domain.User{Email: email, PasswordHash: "hashed_secret1!a"}, nil
	}

	svc := NewFindService(userRepo, mocks.NewMockCompanyRepository(), mocks.NewMockPasswordService())

	ok, err := svc.VerifyUserCredentials(context.Background(), "person@example.com", "secret1!a")
	if err != nil || !ok {
		t.Fatalf("expected match, got ok=%v err=%v", ok, err)
	}

	ok, err = svc.VerifyUserCredentials(context.Background(), "person@example.com", "wrong")
	if err != nil || ok {
		t.Fatalf("expected mismatch, got ok=%v err=%v", ok, err)
	}
}

func TestResetUserPassword(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return &domain.User{Email: email}, nil
	}
	var storedHash string
	userRepo.UpdatePasswordFunc = func(ctx context.Context, email, newHash string) error {
		storedHash = newHash
		return nil
	}

	svc := NewFindService(userRepo, mocks.NewMockCompanyRepository(), mocks.NewMockPasswordService())

	if err := svc.ResetUserPassword(context.Background(), "person@example.com", "newpass1!"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if storedHash != "hashed_newpass1!" {
		t.Errorf("hash was not stored, got %q", storedHash)
	}
}

func TestResetUserPasswordRejectsWeakPassword(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.UpdatePasswordFunc = func(ctx context.Context, email, newHash string) error {
		t.Fatal("weak password must not reach the repository")
		return nil
	}

	svc := NewFindService(userRepo, mocks.NewMockCompanyRepository(), mocks.NewMockPasswordService())

	err := svc.ResetUserPassword(context.Background(), "person@example.com", "short")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestResetCompanyPasswordUnknownEmail(t *testing.T) {
	svc := NewFindService(mocks.NewMockUserRepository(), mocks.NewMockCompanyRepository(),
		mocks.NewMockPasswordService())

	err := svc.ResetCompanyPassword(context.Background(), "missing@example.com", "newpass1!")
	if !errors.Is(err, domain.ErrCompanyNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
