package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JGS-JAVA/albaing-personalpart/domain"
)

const dateLayout = "2006-01-02"

// UserResponse is the outward shape of a person account. Password material
// never leaves the service, so there is no field for it to leak through.
type UserResponse struct {
	UserID             uint    `json:"userId"`
	UserEmail          string  `json:"userEmail"`
	UserName           string  `json:"userName"`
	UserBirthdate      *string `json:"userBirthdate"`
	UserGender         string  `json:"userGender"`
	UserPhone          string  `json:"userPhone"`
	UserAddress        string  `json:"userAddress"`
	UserProfileImage   string  `json:"userProfileImage"`
	UserCreatedDate    string  `json:"userCreatedDate"`
	UserUpdatedDate    string  `json:"userUpdatedDate"`
	UserTermsAgreement bool    `json:"userTermsAgreement"`
	UserIsAdmin        bool    `json:"userIsAdmin"`
	UserKakaoID        string  `json:"userKakaoId,omitempty"`
	UserNaverID        string  `json:"userNaverId,omitempty"`
}

// CompanyResponse is the outward shape of an employer account.
type CompanyResponse struct {
	CompanyID                 uint    `json:"companyId"`
	CompanyName               string  `json:"companyName"`
	CompanyRegistrationNumber string  `json:"companyRegistrationNumber"`
	CompanyOwnerName          string  `json:"companyOwnerName"`
	CompanyOpenDate           *string `json:"companyOpenDate"`
	CompanyEmail              string  `json:"companyEmail"`
	CompanyPhone              string  `json:"companyPhone"`
	CompanyLocalAddress       string  `json:"companyLocalAddress"`
	CompanyApprovalStatus     string  `json:"companyApprovalStatus"`
	CompanyLogo               string  `json:"companyLogo"`
	CompanyDescription        string  `json:"companyDescription"`
	CompanyCreatedDate        string  `json:"companyCreatedDate"`
	CompanyUpdatedDate        string  `json:"companyUpdatedDate"`
}

func presentUser(u *domain.User) UserResponse {
	return UserResponse{
		UserID:             u.ID,
		UserEmail:          u.Email,
		UserName:           u.Name,
		UserBirthdate:      formatDate(u.Birthdate),
		UserGender:         string(u.Gender),
		UserPhone:          u.Phone,
		UserAddress:        u.Address,
		UserProfileImage:   u.ProfileImage,
		UserCreatedDate:    u.CreatedAt.Format(time.RFC3339),
		UserUpdatedDate:    u.UpdatedAt.Format(time.RFC3339),
		UserTermsAgreement: u.TermsAgreed,
		UserIsAdmin:        u.IsAdmin,
		UserKakaoID:        u.KakaoID,
		UserNaverID:        u.NaverID,
	}
}

func presentCompany(co *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:                 co.ID,
		CompanyName:               co.Name,
		CompanyRegistrationNumber: co.RegistrationNumber,
		CompanyOwnerName:          co.OwnerName,
		CompanyOpenDate:           formatDate(co.OpenDate),
		CompanyEmail:              co.Email,
		CompanyPhone:              co.Phone,
		CompanyLocalAddress:       co.Address,
		CompanyApprovalStatus:     string(co.ApprovalStatus),
		CompanyLogo:               co.Logo,
		CompanyDescription:        co.Description,
		CompanyCreatedDate:        co.CreatedAt.Format(time.RFC3339),
		CompanyUpdatedDate:        co.UpdatedAt.Format(time.RFC3339),
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

// respondWorkflowError translates a workflow failure into the status
// mapping: validation, conflicts and unverified email are 400 "fail";
// bad credentials and missing accounts are 401 "fail"; everything else
// is a generic 500 "error" with the detail kept server-side.
func respondWorkflowError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case domain.IsValidation(err), domain.IsConflict(err), errors.Is(err, domain.ErrEmailNotVerified):
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrCompanyNotFound),
		errors.Is(err, domain.ErrNotLoggedIn):
		c.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": err.Error()})
	case errors.Is(err, domain.ErrCompanyAwaitingApproval):
		c.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "company account is awaiting approval"})
	case errors.Is(err, domain.ErrCompanyLoginNotAllowed):
		c.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "login is not available for this account"})
	default:
		logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "internal server error"})
	}
}
