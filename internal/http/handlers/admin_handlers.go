package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JGS-JAVA/albaing-personalpart/domain"
)

// AdminHandlers covers back-office operations on company accounts
type AdminHandlers struct {
	companyRepo domain.CompanyRepository
	logger      *zap.Logger
}

// NewAdminHandlers creates new admin handlers
func NewAdminHandlers(companyRepo domain.CompanyRepository, logger *zap.Logger) *AdminHandlers {
	return &AdminHandlers{companyRepo: companyRepo, logger: logger}
}

type approvalRequest struct {
	CompanyApprovalStatus string `json:"companyApprovalStatus" binding:"required"`
}

// UpdateApproval flips a company's approval status.
func (h *AdminHandlers) UpdateApproval(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "invalid company id"})
		return
	}

	var req approvalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "approval status is required"})
		return
	}

	status := domain.ApprovalStatus(req.CompanyApprovalStatus)
	switch status {
	case domain.ApprovalApproved, domain.ApprovalApproving, domain.ApprovalHidden:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "unknown approval status"})
		return
	}

	company, err := h.companyRepo.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		respondWorkflowError(c, h.logger, err)
		return
	}

	company.ApprovalStatus = status
	company.UpdatedAt = time.Now()
	if err := h.companyRepo.Update(c.Request.Context(), company); err != nil {
		respondWorkflowError(c, h.logger, err)
		return
	}

	h.logger.Info("company approval updated",
		zap.Uint("company_id", company.ID), zap.String("status", string(status)))
	c.JSON(http.StatusOK, gin.H{"status": "success", "company": presentCompany(company)})
}
