package domain

import (
	"context"
	"mime/multipart"
)

// UserRepository defines person account data access operations.
// All lookups are exact match on the persisted value.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByCredentialMatch(ctx context.Context, name, phone string) (*User, error)
	Update(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, email, newHash string) error
	Delete(ctx context.Context, id uint) error
}

// CompanyRepository defines employer account data access operations.
type CompanyRepository interface {
	Create(ctx context.Context, company *Company) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*Company, error)
	FindByID(ctx context.Context, id uint) (*Company, error)
	FindByCredentialMatch(ctx context.Context, name, phone string) (*Company, error)
	Update(ctx context.Context, company *Company) error
	UpdatePassword(ctx context.Context, email, newHash string) error
	Delete(ctx context.Context, id uint) error
}

// VerificationStore owns verification records exclusively; no other
// component reads or writes them directly.
type VerificationStore interface {
	// IssueCode creates or overwrites the record for email with a fresh
	// random code and returns it.
	IssueCode(ctx context.Context, email string) (string, error)
	// CheckCode is true iff a record exists, the code matches and the
	// record has not expired.
	CheckCode(ctx context.Context, email, code string) (bool, error)
	// MarkVerified flips the verified flag. It is a no-op when no record
	// exists for email.
	MarkVerified(ctx context.Context, email string) error
	IsVerified(ctx context.Context, email string) (bool, error)
	Clear(ctx context.Context, email string) error
}

// VerificationService orchestrates code issuance and delivery.
type VerificationService interface {
	SendCode(ctx context.Context, email string) error
	CheckCode(ctx context.Context, email, code string) (bool, error)
	MarkVerified(ctx context.Context, email string) error
	IsVerified(ctx context.Context, email string) (bool, error)
	Clear(ctx context.Context, email string) error
}

// MailService dispatches mail through an external collaborator.
type MailService interface {
	Send(to, subject, body string) error
}

// PasswordService defines one-way credential hashing operations.
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// AuthService defines the registration/login workflow.
type AuthService interface {
	RegisterPerson(ctx context.Context, user *User) error
	RegisterCompany(ctx context.Context, company *Company) error
	LoginPerson(ctx context.Context, email, password string) (*User, error)
	LoginCompany(ctx context.Context, email, password string) (*Company, error)
	ValidatePersonInput(user *User) error
	ValidateCompanyInput(company *Company) error
}

// FindService covers account recovery: find-my-email, credential
// re-verification and password reset.
type FindService interface {
	FindUserEmail(ctx context.Context, name, phone string) (*User, error)
	FindCompanyEmail(ctx context.Context, name, phone string) (*Company, error)
	VerifyUserCredentials(ctx context.Context, email, password string) (bool, error)
	VerifyCompanyCredentials(ctx context.Context, email, password string) (bool, error)
	ResetUserPassword(ctx context.Context, email, newPassword string) error
	ResetCompanyPassword(ctx context.Context, email, newPassword string) error
}

// SessionGateway maps a client session to at most one identity per role.
type SessionGateway interface {
	Login(ctx context.Context, sessionID string, role SessionRole, accountID uint) error
	Logout(ctx context.Context, sessionID string) error
	Current(ctx context.Context, sessionID string) (*Session, error)
}

// OAuthProvider abstracts one external identity source (Kakao, Naver).
type OAuthProvider interface {
	Name() string
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (string, error)
	FetchProfile(ctx context.Context, accessToken string) (*SocialProfile, error)
}

// SocialService runs the onboarding bridge for a provider callback.
type SocialService interface {
	AuthCodeURL(provider, state string) (string, error)
	HandleCallback(ctx context.Context, provider, code, sessionID string) (string, error)
}

// IntentClient proxies a chat message to the conversational intent service.
type IntentClient interface {
	DetectIntent(ctx context.Context, sessionID, message string) (string, error)
}

// FileStore persists an uploaded file and returns a servable reference.
// Remove discards a previously saved file; a missing file is not an error.
type FileStore interface {
	Save(file *multipart.FileHeader) (string, error)
	Remove(ref string) error
}
