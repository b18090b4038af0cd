package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/billcraft/billcraft-api/internal/domain/entity"
	"github.com/billcraft/billcraft-api/internal/domain/enum"
	"github.com/billcraft/billcraft-api/internal/domain/repository"
	"github.com/billcraft/billcraft-api/pkg/apperror"
	"github.com/billcraft/billcraft-api/pkg/pagination"
)

// InvoiceService handles invoice reads and the append-only payment ledger.
// paid_amount is a cached sum over ledger entries and is re-derived from the
// ledger after every mutation, never adjusted in place.
type InvoiceService struct {
	invoiceRepo repository.InvoiceRepository
	paymentRepo repository.PaymentRepository
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
	}
}

// GetInvoice retrieves an invoice with items and payment history
func (s *InvoiceService) GetInvoice(ctx context.Context, userID, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	if invoice.UserID != userID {
		return nil, apperror.ErrForbidden
	}
	return invoice, nil
}

// ListInvoicesInput represents the input for listing invoices
type ListInvoicesInput struct {
	UserID        uuid.UUID
	Pagination    *pagination.PaginationParams
	Search        string
	PaymentStatus *enum.PaymentStatus
	ClientID      *uuid.UUID
	SortBy        string
	SortOrder     string
}

// ListInvoices lists invoices with filtering
func (s *InvoiceService) ListInvoices(ctx context.Context, input *ListInvoicesInput) (*pagination.PaginatedResult[entity.Invoice], error) {
	params := &repository.InvoiceFilterParams{
		Pagination:    input.Pagination,
		Search:        input.Search,
		PaymentStatus: input.PaymentStatus,
		ClientID:      input.ClientID,
		SortBy:        input.SortBy,
		SortOrder:     input.SortOrder,
	}

	invoices, total, err := s.invoiceRepo.List(ctx, input.UserID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(invoices, pag), nil
}

// RecordPaymentInput represents the input for recording a payment
type RecordPaymentInput struct {
	UserID        uuid.UUID
	InvoiceID     uuid.UUID
	Amount        decimal.Decimal
	Method        enum.PaymentMethod
	PaymentDate   time.Time
	TransactionID *string
	Notes         *string
}

// PaymentResult carries the updated invoice plus the status recommendation
// and any overpayment warning produced by recording or deleting a payment.
type PaymentResult struct {
	Invoice           *entity.Invoice
	RecommendedStatus enum.PaymentStatus
	Warning           string
}

// RecordPayment appends a ledger entry and re-derives the invoice's paid
// amount by summing the ledger. Overpayment is accepted with a warning and
// leaves outstanding negative. The recommended status is returned, not
// applied; the caller confirms it through UpdatePaymentStatus.
func (s *InvoiceService) RecordPayment(ctx context.Context, input *RecordPaymentInput) (*PaymentResult, error) {
	if !input.Amount.IsPositive() {
		return nil, apperror.NewBadRequestError("payment amount must be greater than zero")
	}
	if !input.Method.IsValid() {
		return nil, apperror.NewBadRequestError("invalid payment method")
	}

	invoice, err := s.invoiceRepo.GetByID(ctx, input.InvoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	if invoice.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}

	entry := &entity.PaymentHistoryEntry{
		InvoiceID:     invoice.ID,
		Amount:        input.Amount,
		Method:        input.Method,
		TransactionID: input.TransactionID,
		Notes:         input.Notes,
		PaymentDate:   input.PaymentDate,
		RecordedBy:    input.UserID,
	}
	if err := s.paymentRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return s.rederive(ctx, invoice)
}

// DeletePayment removes a ledger entry and re-derives the invoice's paid
// amount from the remaining entries
func (s *InvoiceService) DeletePayment(ctx context.Context, userID, paymentID uuid.UUID) (*PaymentResult, error) {
	entry, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperror.NewNotFoundError("Payment")
	}

	invoice, err := s.invoiceRepo.GetByID(ctx, entry.InvoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	if invoice.UserID != userID {
		return nil, apperror.ErrForbidden
	}

	if err := s.paymentRepo.Delete(ctx, paymentID); err != nil {
		return nil, err
	}

	return s.rederive(ctx, invoice)
}

// UpdatePaymentStatus applies a caller-chosen payment status. The service
// recommends a status after each ledger change but never forces it; this is
// where the caller confirms or overrides.
func (s *InvoiceService) UpdatePaymentStatus(ctx context.Context, userID, invoiceID uuid.UUID, status enum.PaymentStatus) (*entity.Invoice, error) {
	if !status.IsValid() {
		return nil, apperror.NewBadRequestError("invalid payment status")
	}

	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	if invoice.UserID != userID {
		return nil, apperror.ErrForbidden
	}

	if err := s.invoiceRepo.UpdatePaymentStatus(ctx, invoiceID, status); err != nil {
		return nil, err
	}
	invoice.PaymentStatus = status
	return invoice, nil
}

// ListPayments returns the invoice's ledger entries in payment order
func (s *InvoiceService) ListPayments(ctx context.Context, userID, invoiceID uuid.UUID) ([]entity.PaymentHistoryEntry, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	if invoice.UserID != userID {
		return nil, apperror.ErrForbidden
	}
	return s.paymentRepo.ListByInvoiceID(ctx, invoiceID)
}

func (s *InvoiceService) rederive(ctx context.Context, invoice *entity.Invoice) (*PaymentResult, error) {
	paid, err := s.paymentRepo.SumByInvoiceID(ctx, invoice.ID)
	if err != nil {
		return nil, err
	}
	if err := s.invoiceRepo.UpdatePaidAmount(ctx, invoice.ID, paid); err != nil {
		return nil, err
	}
	invoice.PaidAmount = paid

	result := &PaymentResult{
		Invoice:           invoice,
		RecommendedStatus: RecommendPaymentStatus(invoice.TotalAmount, paid),
	}
	if paid.GreaterThan(invoice.TotalAmount) {
		result.Warning = "recorded payments exceed the invoice total by " +
			paid.Sub(invoice.TotalAmount).StringFixed(2)
	}
	return result, nil
}

// RecommendPaymentStatus derives the payment status implied by the ledger
// sum. Paid covers overpayment; anything between zero and the total is
// partial.
func RecommendPaymentStatus(total, paid decimal.Decimal) enum.PaymentStatus {
	switch {
	case paid.GreaterThanOrEqual(total) && total.IsPositive():
		return enum.PaymentStatusPaid
	case paid.IsPositive():
		return enum.PaymentStatusPartial
	default:
		return enum.PaymentStatusPending
	}
}
