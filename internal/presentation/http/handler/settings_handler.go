package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/billcraft/billcraft-api/internal/application/service"
	"github.com/billcraft/billcraft-api/internal/presentation/http/dto/request"
	"github.com/billcraft/billcraft-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles company profile HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetCompanyProfile retrieves the user's company profile
// @Summary Get Company Profile
// @Description Get the company profile used on quotes and invoices
// @Tags settings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /settings/company-profile [get]
func (h *SettingsHandler) GetCompanyProfile(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	profile, err := h.settingsService.GetCompanyProfile(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Company profile retrieved successfully", profile)
}

// UpdateCompanyProfile updates the user's company profile
// @Summary Update Company Profile
// @Description Update the company profile used on quotes and invoices
// @Tags settings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.UpdateCompanyProfileRequest true "Profile data"
// @Success 200 {object} response.APIResponse
// @Router /settings/company-profile [put]
func (h *SettingsHandler) UpdateCompanyProfile(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.UpdateCompanyProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	profile, err := h.settingsService.UpdateCompanyProfile(c.Request.Context(), &service.UpdateCompanyProfileInput{
		UserID:              *userID,
		CompanyName:         req.CompanyName,
		GSTIN:               req.GSTIN,
		Email:               req.Email,
		Phone:               req.Phone,
		Address:             req.Address,
		City:                req.City,
		State:               req.State,
		Pincode:             req.Pincode,
		Currency:            req.Currency,
		QuoteValidityDays:   req.QuoteValidityDays,
		InvoiceDueDays:      req.InvoiceDueDays,
		DefaultQuoteTerms:   req.DefaultQuoteTerms,
		DefaultInvoiceTerms: req.DefaultInvoiceTerms,
		BankAccountName:     req.BankAccountName,
		BankAccountNumber:   req.BankAccountNumber,
		BankName:            req.BankName,
		BankIFSC:            req.BankIFSC,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Company profile updated successfully", profile)
}
