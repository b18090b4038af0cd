package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/billcraft/billcraft-api/internal/application/service"
	"github.com/billcraft/billcraft-api/internal/domain/enum"
	"github.com/billcraft/billcraft-api/internal/presentation/http/dto/request"
	"github.com/billcraft/billcraft-api/internal/presentation/http/dto/response"
	"github.com/billcraft/billcraft-api/pkg/pagination"
)

// QuoteHandler handles quote-related HTTP requests
type QuoteHandler struct {
	quoteService    *service.QuoteService
	documentService *service.DocumentService
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(quoteService *service.QuoteService, documentService *service.DocumentService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService, documentService: documentService}
}

// List handles listing quotes
// @Summary List Quotes
// @Description Get all quotes with pagination and filtering
// @Tags quotes
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search term"
// @Param status query string false "Status filter"
// @Param client_id query string false "Client filter"
// @Success 200 {object} response.APIResponse
// @Router /quotes [get]
func (h *QuoteHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var filter request.QuoteFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	var status *enum.QuoteStatus
	if filter.Status != "" {
		parsed, err := enum.ParseQuoteStatus(filter.Status)
		if err != nil {
			response.BadRequest(c, "Invalid status filter")
			return
		}
		status = &parsed
	}

	var clientID *uuid.UUID
	if filter.ClientID != "" {
		parsed, err := uuid.Parse(filter.ClientID)
		if err != nil {
			response.BadRequest(c, "Invalid client ID")
			return
		}
		clientID = &parsed
	}

	result, err := h.quoteService.ListQuotes(c.Request.Context(), &service.ListQuotesInput{
		UserID: *userID,
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:    filter.Search,
		Status:    status,
		ClientID:  clientID,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Quotes retrieved successfully", result)
}

// Get handles getting a single quote
// @Summary Get Quote
// @Description Get a quote by ID with its line items
// @Tags quotes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} response.APIResponse
// @Router /quotes/{id} [get]
func (h *QuoteHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	quote, err := h.quoteService.GetQuote(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote retrieved successfully", quote)
}

// Create handles creating a quote
// @Summary Create Quote
// @Description Create a new quote in draft status
// @Tags quotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateQuoteRequest true "Quote data"
// @Success 201 {object} response.APIResponse
// @Router /quotes [post]
func (h *QuoteHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	quoteDate, err := time.Parse("2006-01-02", req.QuoteDate)
	if err != nil {
		response.BadRequest(c, "Invalid quote date. Use YYYY-MM-DD")
		return
	}

	quote, err := h.quoteService.CreateQuote(c.Request.Context(), &service.CreateQuoteInput{
		UserID:          *userID,
		ClientID:        req.ClientID,
		QuoteDate:       quoteDate,
		DiscountPercent: req.DiscountPercent,
		CGSTPercent:     req.CGSTPercent,
		SGSTPercent:     req.SGSTPercent,
		IGSTPercent:     req.IGSTPercent,
		ShippingCharges: req.ShippingCharges,
		ValidityDays:    req.ValidityDays,
		Notes:           req.Notes,
		Terms:           req.Terms,
		Sections:        req.Sections,
		Items:           quoteItemInputs(req.Items),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Quote created successfully", quote)
}

// Update handles updating an editable quote
// @Summary Update Quote
// @Description Update a draft or sent quote and reprice it
// @Tags quotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param request body request.UpdateQuoteRequest true "Quote data"
// @Success 200 {object} response.APIResponse
// @Router /quotes/{id} [put]
func (h *QuoteHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	var req request.UpdateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	quoteDate, err := time.Parse("2006-01-02", req.QuoteDate)
	if err != nil {
		response.BadRequest(c, "Invalid quote date. Use YYYY-MM-DD")
		return
	}

	quote, err := h.quoteService.UpdateQuote(c.Request.Context(), &service.UpdateQuoteInput{
		UserID:          *userID,
		ID:              id,
		ClientID:        req.ClientID,
		QuoteDate:       quoteDate,
		DiscountPercent: req.DiscountPercent,
		CGSTPercent:     req.CGSTPercent,
		SGSTPercent:     req.SGSTPercent,
		IGSTPercent:     req.IGSTPercent,
		ShippingCharges: req.ShippingCharges,
		ValidityDays:    req.ValidityDays,
		Notes:           req.Notes,
		Terms:           req.Terms,
		Sections:        req.Sections,
		Items:           quoteItemInputs(req.Items),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote updated successfully", quote)
}

// Delete handles deleting a quote
// @Summary Delete Quote
// @Description Delete a quote that has not been invoiced
// @Tags quotes
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Success 204
// @Router /quotes/{id} [delete]
func (h *QuoteHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	if err := h.quoteService.DeleteQuote(c.Request.Context(), *userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// UpdateStatus handles quote lifecycle transitions
// @Summary Update Quote Status
// @Description Move a quote through its lifecycle (draft, sent, approved, rejected)
// @Tags quotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param request body request.UpdateQuoteStatusRequest true "Target status"
// @Success 200 {object} response.APIResponse
// @Router /quotes/{id}/status [patch]
func (h *QuoteHandler) UpdateStatus(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	var req request.UpdateQuoteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	status, err := enum.ParseQuoteStatus(req.Status)
	if err != nil {
		response.BadRequest(c, "Invalid quote status")
		return
	}

	quote, err := h.quoteService.UpdateQuoteStatus(c.Request.Context(), *userID, id, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote status updated successfully", quote)
}

// ConvertToInvoice handles converting an approved quote into an invoice
// @Summary Convert Quote to Invoice
// @Description Atomically convert an approved quote into an invoice
// @Tags quotes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Quote ID"
// @Success 201 {object} response.APIResponse
// @Router /quotes/{id}/convert-to-invoice [post]
func (h *QuoteHandler) ConvertToInvoice(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	invoice, err := h.quoteService.ConvertToInvoice(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Quote converted to invoice successfully", invoice)
}

// DownloadPDF handles rendering a quote as a PDF document
// @Summary Download Quote PDF
// @Description Render a quote as a PDF document
// @Tags quotes
// @Security BearerAuth
// @Produce application/pdf
// @Param id path string true "Quote ID"
// @Success 200 {file} binary
// @Router /quotes/{id}/pdf [get]
func (h *QuoteHandler) DownloadPDF(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	data, filename, err := h.documentService.RenderQuotePDF(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(200, "application/pdf", data)
}

// Send handles emailing a quote to its client
// @Summary Send Quote
// @Description Email the rendered quote PDF to the client
// @Tags quotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param request body request.SendDocumentRequest false "Optional message"
// @Success 200 {object} response.APIResponse
// @Router /quotes/{id}/send [post]
func (h *QuoteHandler) Send(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	var req request.SendDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.documentService.SendQuote(c.Request.Context(), *userID, id, req.Message); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote sent successfully", nil)
}

func quoteItemInputs(items []request.QuoteItemRequest) []service.QuoteItemInput {
	inputs := make([]service.QuoteItemInput, len(items))
	for i, item := range items {
		inputs[i] = service.QuoteItemInput{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}
	return inputs
}
