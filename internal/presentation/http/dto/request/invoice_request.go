package request

import (
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest represents a payment ledger entry request
type RecordPaymentRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method" binding:"required"`
	PaymentDate   string          `json:"payment_date" binding:"required"`
	TransactionID *string         `json:"transaction_id" binding:"omitempty,max=255"`
	Notes         *string         `json:"notes"`
}

// UpdatePaymentStatusRequest represents a payment status override request
type UpdatePaymentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// InvoiceFilterRequest represents invoice filter parameters
type InvoiceFilterRequest struct {
	Search        string `form:"search"`
	PaymentStatus string `form:"payment_status"`
	ClientID      string `form:"client_id"`
	SortBy        string `form:"sort_by"`
	SortOrder     string `form:"sort_order"`
	Page          int    `form:"page"`
	PerPage       int    `form:"per_page"`
}
