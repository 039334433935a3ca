package services

import (
	"context"
	"fmt"

	"github.com/JGS-JAVA/albaing-personalpart/domain"
)

const verificationMailSubject = "Albaing email verification code"

// VerificationServiceImpl implements domain.VerificationService
type VerificationServiceImpl struct {
	store domain.VerificationStore
	mail  domain.MailService
}

// NewVerificationService creates a new verification service
func NewVerificationService(store domain.VerificationStore, mail domain.MailService) domain.VerificationService {
	return &VerificationServiceImpl{store: store, mail: mail}
}

// SendCode implements domain.VerificationService. The code is issued before
// sending; if delivery fails the record is rolled back so a stale code
// cannot be confirmed later.
func (s *VerificationServiceImpl) SendCode(ctx context.Context, email string) error {
	code, err := s.store.IssueCode(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to issue verification code: %w", err)
	}

	body := fmt.Sprintf("Your Albaing verification code is %s. It expires in 10 minutes.", code)
	if err := s.mail.Send(email, verificationMailSubject, body); err != nil {
		if clearErr := s.store.Clear(ctx, email); clearErr != nil {
			return fmt.Errorf("failed to roll back verification code after delivery error: %w", clearErr)
		}
		return err
	}

	return nil
}

// CheckCode implements domain.VerificationService
func (s *VerificationServiceImpl) CheckCode(ctx context.Context, email, code string) (bool, error) {
	return s.store.CheckCode(ctx, email, code)
}

// MarkVerified implements domain.VerificationService
func (s *VerificationServiceImpl) MarkVerified(ctx context.Context, email string) error {
	return s.store.MarkVerified(ctx, email)
}

// IsVerified implements domain.VerificationService
func (s *VerificationServiceImpl) IsVerified(ctx context.Context, email string) (bool, error) {
	return s.store.IsVerified(ctx, email)
}

// Clear implements domain.VerificationService
func (s *VerificationServiceImpl) Clear(ctx context.Context, email string) error {
	return s.store.Clear(ctx, email)
}
