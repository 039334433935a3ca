package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JGS-JAVA/albaing-personalpart/domain"
)

// FindHandlers handles account recovery HTTP requests
type FindHandlers struct {
	findSvc domain.FindService
	logger  *zap.Logger
}

// NewFindHandlers creates new find handlers
func NewFindHandlers(findSvc domain.FindService, logger *zap.Logger) *FindHandlers {
	return &FindHandlers{findSvc: findSvc, logger: logger}
}

type verifyUserRequest struct {
	UserEmail    string `json:"userEmail" binding:"required"`
	UserPassword string `json:"userPassword" binding:"required"`
}

type verifyCompanyRequest struct {
	CompanyEmail    string `json:"companyEmail" binding:"required"`
	CompanyPassword string `json:"companyPassword" binding:"required"`
}

type resetPasswordRequest struct {
	Email       string `json:"email" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// FindUserEmail looks up a person account by name and phone. No match is
// a 200 with an empty body so the form can render "not found" itself.
func (h *FindHandlers) FindUserEmail(c *gin.Context) {
	name := c.Query("userName")
	phone := c.Query("userPhone")
	if name == "" || phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "name and phone are required"})
		return
	}

	user, err := h.findSvc.FindUserEmail(c.Request.Context(), name, phone)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusOK, gin.H{})
			return
		}
		respondWorkflowError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"userEmail": user.Email})
}

// FindCompanyEmail looks up a company account by owner name and phone.
func (h *FindHandlers) FindCompanyEmail(c *gin.Context) {
	name := c.Query("companyOwnerName")
	phone := c.Query("companyPhone")
	if name == "" || phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "owner name and phone are required"})
		return
	}

	company, err := h.findSvc.FindCompanyEmail(c.Request.Context(), name, phone)
	if err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) {
			c.JSON(http.StatusOK, gin.H{})
			return
		}
		respondWorkflowError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"companyEmail": company.Email})
}

// VerifyUser re-checks a person's credentials before a sensitive change.
func (h *FindHandlers) VerifyUser(c *gin.Context) {
	var req verifyUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "email and password are required"})
		return
	}

	ok, err := h.findSvc.VerifyUserCredentials(c.Request.Context(), req.UserEmail, req.UserPassword)
	if err != nil {
		respondWorkflowError(c, h.logger, err)
		return
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// VerifyCompany re-checks a company's credentials.
func (h *FindHandlers) VerifyCompany(c *gin.Context) {
	var req verifyCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "email and password are required"})
		return
	}

	ok, err := h.findSvc.VerifyCompanyCredentials(c.Request.Context(), req.CompanyEmail, req.CompanyPassword)
	if err != nil {
		respondWorkflowError(c, h.logger, err)
		return
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// UpdateUserPassword resets a person's password.
func (h *FindHandlers) UpdateUserPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "email and new password are required"})
		return
	}

	if err := h.findSvc.ResetUserPassword(c.Request.Context(), req.Email, req.NewPassword); err != nil {
		respondWorkflowError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "password updated"})
}

// UpdateCompanyPassword resets a company's password.
func (h *FindHandlers) UpdateCompanyPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "email and new password are required"})
		return
	}

	if err := h.findSvc.ResetCompanyPassword(c.Request.Context(), req.Email, req.NewPassword); err != nil {
		respondWorkflowError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "password updated"})
}
