package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// QuoteItemRequest represents one line item in a quote payload
type QuoteItemRequest struct {
	Description string          `json:"description" binding:"required,max=500"`
	Quantity    int             `json:"quantity" binding:"required,min=1"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateQuoteRequest represents a quote creation request. Dates use the
// YYYY-MM-DD wire format; monetary and percentage values are exact decimals.
type CreateQuoteRequest struct {
	ClientID        *uuid.UUID         `json:"client_id"`
	QuoteDate       string             `json:"quote_date" binding:"required"`
	DiscountPercent decimal.Decimal    `json:"discount_percent"`
	CGSTPercent     decimal.Decimal    `json:"cgst_percent"`
	SGSTPercent     decimal.Decimal    `json:"sgst_percent"`
	IGSTPercent     decimal.Decimal    `json:"igst_percent"`
	ShippingCharges decimal.Decimal    `json:"shipping_charges"`
	ValidityDays    int                `json:"validity_days" binding:"omitempty,min=1"`
	Notes           *string            `json:"notes"`
	Terms           *string            `json:"terms"`
	Sections        datatypes.JSON     `json:"sections"`
	Items           []QuoteItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateQuoteRequest represents a quote update request
type UpdateQuoteRequest struct {
	ClientID        *uuid.UUID         `json:"client_id"`
	QuoteDate       string             `json:"quote_date" binding:"required"`
	DiscountPercent decimal.Decimal    `json:"discount_percent"`
	CGSTPercent     decimal.Decimal    `json:"cgst_percent"`
	SGSTPercent     decimal.Decimal    `json:"sgst_percent"`
	IGSTPercent     decimal.Decimal    `json:"igst_percent"`
	ShippingCharges decimal.Decimal    `json:"shipping_charges"`
	ValidityDays    int                `json:"validity_days" binding:"omitempty,min=1"`
	Notes           *string            `json:"notes"`
	Terms           *string            `json:"terms"`
	Sections        datatypes.JSON     `json:"sections"`
	Items           []QuoteItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateQuoteStatusRequest represents a lifecycle transition request
type UpdateQuoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SendDocumentRequest represents a request to email a rendered document
type SendDocumentRequest struct {
	Message string `json:"message" binding:"omitempty,max=2000"`
}

// QuoteFilterRequest represents quote filter parameters
type QuoteFilterRequest struct {
	Search    string `form:"search"`
	Status    string `form:"status"`
	ClientID  string `form:"client_id"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
