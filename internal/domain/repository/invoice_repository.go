package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/billcraft/billcraft-api/internal/domain/entity"
	"github.com/billcraft/billcraft-api/internal/domain/enum"
	"github.com/billcraft/billcraft-api/pkg/pagination"
)

// InvoiceRepository defines the interface for invoice data operations
type InvoiceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	GetByQuoteID(ctx context.Context, quoteID uuid.UUID) (*entity.Invoice, error)
	// GetWithDetails loads the invoice with its items, payments and client.
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	List(ctx context.Context, userID uuid.UUID, params *InvoiceFilterParams) ([]entity.Invoice, int64, error)
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status enum.PaymentStatus) error
	// UpdatePaidAmount writes the re-derived ledger sum onto the invoice.
	UpdatePaidAmount(ctx context.Context, id uuid.UUID, paid decimal.Decimal) error
	NextSequenceNumber(ctx context.Context) (int, error)

	// CreateFromQuote atomically flips the quote to invoiced and inserts the
	// invoice with its copied line items. The status update is guarded by a
	// WHERE status = 'approved' clause; if another request converted the
	// quote first, the whole transaction rolls back and the quote is left
	// untouched in its current state.
	CreateFromQuote(ctx context.Context, quoteID uuid.UUID, invoice *entity.Invoice, items []entity.InvoiceItem) error
}

// InvoiceFilterParams contains filtering parameters for invoice queries
type InvoiceFilterParams struct {
	Pagination    *pagination.PaginationParams
	Search        string
	PaymentStatus *enum.PaymentStatus
	ClientID      *uuid.UUID
	SortBy        string
	SortOrder     string
}

// PaymentRepository defines the interface for the append-only payment ledger
type PaymentRepository interface {
	Create(ctx context.Context, entry *entity.PaymentHistoryEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PaymentHistoryEntry, error)
	ListByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]entity.PaymentHistoryEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// SumByInvoiceID re-derives the paid total by summing all remaining
	// entries. Callers must use this instead of incremental arithmetic.
	SumByInvoiceID(ctx context.Context, invoiceID uuid.UUID) (decimal.Decimal, error)
}
