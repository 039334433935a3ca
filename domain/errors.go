package domain

import (
	"errors"
	"fmt"
)

// Account errors
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrCompanyNotFound = errors.New("company not found")
	ErrEmailTaken      = errors.New("email is already registered")
	ErrPhoneTaken      = errors.New("phone number is already registered")
	ErrAccountExists   = errors.New("account already exists")
)

// Authentication errors
var (
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrCompanyAwaitingApproval = errors.New("company account is awaiting approval")
	ErrCompanyLoginNotAllowed  = errors.New("company account is not permitted to log in")
)

// Verification errors
var (
	ErrEmailNotVerified     = errors.New("email has not been verified")
	ErrVerificationNotFound = errors.New("verification record not found")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrNotLoggedIn     = errors.New("not logged in")
)

// ValidationError reports a field-specific input problem.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationError builds a field-specific validation failure.
func NewValidationError(field, message string) *ValidationError {
	return invalid(field, message)
}

// DeliveryError wraps a failure from the mail collaborator.
type DeliveryError struct {
	To  string
	Err error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("mail delivery to %s failed: %v", e.To, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// ProviderStage identifies which step of the social onboarding bridge failed.
type ProviderStage string

const (
	StageToken   ProviderStage = "token"
	StageProfile ProviderStage = "profile"
)

// ProviderError reports a failed exchange with an OAuth provider.
type ProviderError struct {
	Provider string
	Stage    ProviderStage
	Message  string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Provider, e.Stage, e.Message)
}

// IsValidation reports whether err is a field validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsConflict reports whether err is a uniqueness conflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrEmailTaken) ||
		errors.Is(err, ErrPhoneTaken) ||
		errors.Is(err, ErrAccountExists)
}
