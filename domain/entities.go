package domain

import "time"

// Gender is the job seeker gender enum persisted with the account.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ApprovalStatus gates company login eligibility.
type ApprovalStatus string

const (
	ApprovalApproved  ApprovalStatus = "approved"
	ApprovalApproving ApprovalStatus = "approving"
	ApprovalHidden    ApprovalStatus = "hidden"
)

// User represents a job-seeker account.
// Password and NewPassword are transient input carriers, never persisted.
type User struct {
	ID           uint
	Email        string
	Password     string
	PasswordHash string
	Name         string
	Birthdate    *time.Time
	Gender       Gender
	Phone        string
	Address      string
	ProfileImage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	TermsAgreed  bool
	IsAdmin      bool
	KakaoID      string
	NaverID      string
	NewPassword  string
}

// Company represents an employer account.
type Company struct {
	ID                 uint
	Name               string
	RegistrationNumber string
	OwnerName          string
	OpenDate           *time.Time
	Password           string
	PasswordHash       string
	Email              string
	Phone              string
	Address            string
	ApprovalStatus     ApprovalStatus
	Logo               string
	Description        string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	NewPassword        string
}

// VerificationRecord is a time-boxed email ownership proof.
// A new record for the same email supersedes the previous one.
type VerificationRecord struct {
	Email     string
	Code      string
	ExpiresAt time.Time
	Verified  bool
}

// Expired reports whether the code window has passed. The verified flag is
// deliberately not consulted here; callers decide where expiry matters.
func (r *VerificationRecord) Expired() bool {
	return time.Now().After(r.ExpiresAt)
}

// SessionRole selects which identity a session binding refers to.
type SessionRole string

const (
	RolePerson  SessionRole = "person"
	RoleCompany SessionRole = "company"
)

// Session maps a client session to at most one person and one company
// identity. A zero ID means no binding for that role.
type Session struct {
	ID        string    `json:"id"`
	UserID    uint      `json:"user_id"`
	CompanyID uint      `json:"company_id"`
	CreatedAt time.Time `json:"created_at"`
}

// SocialProfile carries the normalized fields extracted from an OAuth
// provider profile response. Missing optional fields are empty strings.
type SocialProfile struct {
	Provider     string
	ExternalID   string
	Nickname     string
	Email        string
	ProfileImage string
	Gender       string
	Birthday     string
	Birthyear    string
}
