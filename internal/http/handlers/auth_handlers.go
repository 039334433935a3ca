package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/JGS-JAVA/albaing-personalpart/domain"
)

// AuthHandlers handles registration, login and verification HTTP requests
type AuthHandlers struct {
	authSvc      domain.AuthService
	verification domain.VerificationService
	sessions     domain.SessionGateway
	userRepo     domain.UserRepository
	companyRepo  domain.CompanyRepository
	files        domain.FileStore
	logger       *zap.Logger
	cookieName   string
	sessionTTL   time.Duration
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(
	authSvc domain.AuthService,
	verification domain.VerificationService,
	sessions domain.SessionGateway,
	userRepo domain.UserRepository,
	companyRepo domain.CompanyRepository,
	files domain.FileStore,
	logger *zap.Logger,
	cookieName string,
	sessionTTL time.Duration,
) *AuthHandlers {
	return &AuthHandlers{
		authSvc:      authSvc,
		verification: verification,
		sessions:     sessions,
		userRepo:     userRepo,
		companyRepo:  companyRepo,
		files:        files,
		logger:       logger,
		cookieName:   cookieName,
		sessionTTL:   sessionTTL,
	}
}

// registerPersonRequest is the JSON part of the person signup form.
type registerPersonRequest struct {
	UserEmail          string `json:"userEmail"`
	UserPassword       string `json:"userPassword"`
	UserName           string `json:"userName"`
	UserBirthdate      string `json:"userBirthdate"`
	UserGender         string `json:"userGender"`
	UserPhone          string `json:"userPhone"`
	UserAddress        string `json:"userAddress"`
	UserTermsAgreement bool   `json:"userTermsAgreement"`
	UserKakaoID        string `json:"userKakaoId"`
	UserNaverID        string `json:"userNaverId"`
}

// registerCompanyRequest is the JSON part of the company signup form.
type registerCompanyRequest struct {
	CompanyName               string `json:"companyName"`
	CompanyRegistrationNumber string `json:"companyRegistrationNumber"`
	CompanyOwnerName          string `json:"companyOwnerName"`
	CompanyOpenDate           string `json:"companyOpenDate"`
	CompanyPassword           string `json:"companyPassword"`
	CompanyEmail              string `json:"companyEmail"`
	CompanyPhone              string `json:"companyPhone"`
	CompanyLocalAddress       string `json:"companyLocalAddress"`
	CompanyDescription        string `json:"companyDescription"`
}

type loginPersonRequest struct {
	UserEmail    string `json:"userEmail" binding:"required"`
	UserPassword string `json:"userPassword" binding:"required"`
}

type loginCompanyRequest struct {
	CompanyEmail    string `json:"companyEmail" binding:"required"`
	CompanyPassword string `json:"companyPassword" binding:"required"`
}

type emailRequest struct {
	Email string `json:"email" binding:"required"`
}

type codeRequest struct {
	Email string `json:"email" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

// RegisterPerson handles person signup. The body is multipart: a "user"
// field carrying the account JSON plus an optional "userProfileImage" file.
func (h *AuthHandlers) RegisterPerson(c *gin.Context) {
	payload := c.PostForm("user")
	if payload == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "missing user payload"})
		return
	}

	var req registerPersonRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "invalid user payload"})
		return
	}

	user := &domain.User{
		Email:       req.UserEmail,
		Password:    req.UserPassword,
		Name:        req.UserName,
		Gender:      domain.Gender(req.UserGender),
		Phone:       req.UserPhone,
		Address:     req.UserAddress,
		TermsAgreed: req.UserTermsAgreement,
		KakaoID:     req.UserKakaoID,
		NaverID:     req.UserNaverID,
	}
	if req.UserBirthdate != "" {
		birthdate, err := time.Parse(dateLayout, req.UserBirthdate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "invalid birth date format"})
			return
		}
		user.Birthdate = &birthdate
	}

	if err := h.authSvc.ValidatePersonInput(user); err != nil {
		respondWorkflowError(c, h.logger, err)
		return
	}

	if file, err := c.FormFile("userProfileImage"); err == nil && file != nil {
		ref, err := h.files.Save(file)
		if err != nil {
			respondWorkflowError(c, h.logger, err)
			return
		}
		user.ProfileImage = ref
	}

	if err := h.authSvc.RegisterPerson(c.Request.Context(), user); err != nil {
		h.discardUpload(user.ProfileImage)
		respondWorkflowError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "registration complete"})
}

// RegisterCompany handles company signup: a "company" JSON field plus an
// optional "companyLogo" file.
func (h *AuthHandlers) RegisterCompany(c *gin.Context) {
	payload := c.PostForm("company")
	if payload == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "missing company payload"})
		return
	}

	var req registerCompanyRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "invalid company payload"})
		return
	}

	company := &domain.Company{
		Name:               req.CompanyName,
		RegistrationNumber: req.CompanyRegistrationNumber,
		OwnerName:          req.CompanyOwnerName,
		Password:           req.CompanyPassword,
		Email:              req.CompanyEmail,
		Phone:              req.CompanyPhone,
		Address:            req.CompanyLocalAddress,
		Description:        req.CompanyDescription,
	}
	if req.CompanyOpenDate != "" {
		openDate, err := time.Parse(dateLayout, req.CompanyOpenDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "invalid founding date format"})
			return
		}
		company.OpenDate = &openDate
	}

	if err := h.authSvc.ValidateCompanyInput(company); err != nil {
		respondWorkflowError(c, h.logger, err)
		return
	}

	if file, err := c.FormFile("companyLogo"); err == nil && file != nil {
		ref, err := h.files.Save(file)
		if err != nil {
			respondWorkflowError(c, h.logger, err)
			return
		}
		company.Logo = ref
	}

	if err := h.authSvc.RegisterCompany(c.Request.Context(), company); err != nil {
		h.discardUpload(company.Logo)
		respondWorkflowError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "registration requested, awaiting approval"})
}

// LoginPerson handles person login and binds the account to the session.
func (h *AuthHandlers) LoginPerson(c *gin.Context) {
	var req loginPersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "email and password are required"})
		return
	}

	user, err := h.authSvc.LoginPerson(c.Request.Context(), req.UserEmail, req.UserPassword)
	if err != nil {
		respondWorkflowError(c, h.logger, err)
		return
	}

	sessionID, err := h.openSession(c, domain.RolePerson, user.ID)
	if err != nil {
		respondWorkflowError(c, h.logger, err)
		return
	}

	h.logger.Info("person logged in", zap.Uint("user_id", user.ID), zap.String("session", sessionID))
	c.JSON(http.StatusOK, gin.H{"status": "success", "user": presentUser(user)})
}

// LoginCompany handles company login.
func (h *AuthHandlers) LoginCompany(c *gin.Context) {
	var req loginCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "email and password are required"})
		return
	}

	company, err := h.authSvc.LoginCompany(c.Request.Context(), req.CompanyEmail, req.CompanyPassword)
	if err != nil {
		respondWorkflowError(c, h.logger, err)
		return
	}

	sessionID, err := h.openSession(c, domain.RoleCompany, company.ID)
	if err != nil {
		respondWorkflowError(c, h.logger, err)
		return
	}

	h.logger.Info("company logged in", zap.Uint("company_id", company.ID), zap.String("session", sessionID))
	c.JSON(http.StatusOK, gin.H{"status": "success", "company": presentCompany(company)})
}

// Logout deletes the session and expires the cookie.
func (h *AuthHandlers) Logout(c *gin.Context) {
	sessionID, err := c.Cookie(h.cookieName)
	if err == nil && sessionID != "" {
		if err := h.sessions.Logout(c.Request.Context(), sessionID); err != nil {
			respondWorkflowError(c, h.logger, err)
			return
		}
	}
	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "logged out"})
}

// CheckLogin returns the identity bound to the session. When both roles
// are bound the person identity wins.
func (h *AuthHandlers) CheckLogin(c *gin.Context) {
	sessionID, err := c.Cookie(h.cookieName)
	if err != nil || sessionID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "not logged in"})
		return
	}

	session, err := h.sessions.Current(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "not logged in"})
			return
		}
		respondWorkflowError(c, h.logger, err)
		return
	}

	if session.UserID != 0 {
		user, err := h.userRepo.FindByID(c.Request.Context(), session.UserID)
		if err != nil {
			respondWorkflowError(c, h.logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "role": "person", "user": presentUser(user)})
		return
	}

	if session.CompanyID != 0 {
		company, err := h.companyRepo.FindByID(c.Request.Context(), session.CompanyID)
		if err != nil {
			respondWorkflowError(c, h.logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "role": "company", "company": presentCompany(company)})
		return
	}

	c.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "not logged in"})
}

// SendCode dispatches a verification code to the given address.
func (h *AuthHandlers) SendCode(c *gin.Context) {
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "email is required"})
		return
	}

	if err := h.verification.SendCode(c.Request.Context(), req.Email); err != nil {
		var deliveryErr *domain.DeliveryError
		if errors.As(err, &deliveryErr) {
			h.logger.Error("verification mail delivery failed",
				zap.String("to", deliveryErr.To), zap.Error(deliveryErr))
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "failed to send verification code"})
			return
		}
		respondWorkflowError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "verification code sent"})
}

// CheckCode confirms a verification code and marks the email verified.
func (h *AuthHandlers) CheckCode(c *gin.Context) {
	var req codeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "email and code are required"})
		return
	}

	ok, err := h.verification.CheckCode(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		respondWorkflowError(c, h.logger, err)
		return
	}
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "verification code is invalid or expired"})
		return
	}

	if err := h.verification.MarkVerified(c.Request.Context(), req.Email); err != nil {
		respondWorkflowError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "email verified"})
}

// discardUpload drops a file stored for a signup that did not go through,
// so rejected registrations leave no orphans behind.
func (h *AuthHandlers) discardUpload(ref string) {
	if ref == "" {
		return
	}
	if err := h.files.Remove(ref); err != nil {
		h.logger.Warn("failed to remove upload of rejected registration",
			zap.String("ref", ref), zap.Error(err))
	}
}

// openSession binds an identity to the client session, issuing a new
// session id when the browser does not present one yet.
func (h *AuthHandlers) openSession(c *gin.Context, role domain.SessionRole, accountID uint) (string, error) {
	sessionID, err := c.Cookie(h.cookieName)
	if err != nil || sessionID == "" {
		sessionID = uuid.NewString()
	}

	if err := h.sessions.Login(c.Request.Context(), sessionID, role, accountID); err != nil {
		return "", err
	}

	c.SetCookie(h.cookieName, sessionID, int(h.sessionTTL.Seconds()), "/", "", false, true)
	return sessionID, nil
}
