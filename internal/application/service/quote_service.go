package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/billcraft/billcraft-api/internal/domain/entity"
	"github.com/billcraft/billcraft-api/internal/domain/enum"
	"github.com/billcraft/billcraft-api/internal/domain/pricing"
	"github.com/billcraft/billcraft-api/internal/domain/repository"
	"github.com/billcraft/billcraft-api/pkg/apperror"
	"github.com/billcraft/billcraft-api/pkg/pagination"
	"github.com/billcraft/billcraft-api/pkg/utils"
)

// QuoteService handles the quote lifecycle: pricing, status transitions and
// conversion into an invoice.
type QuoteService struct {
	quoteRepo     repository.QuoteRepository
	quoteItemRepo repository.QuoteItemRepository
	invoiceRepo   repository.InvoiceRepository
	clientRepo    repository.ClientRepository
	profileRepo   repository.CompanyProfileRepository
}

// NewQuoteService creates a new quote service
func NewQuoteService(
	quoteRepo repository.QuoteRepository,
	quoteItemRepo repository.QuoteItemRepository,
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	profileRepo repository.CompanyProfileRepository,
) *QuoteService {
	return &QuoteService{
		quoteRepo:     quoteRepo,
		quoteItemRepo: quoteItemRepo,
		invoiceRepo:   invoiceRepo,
		clientRepo:    clientRepo,
		profileRepo:   profileRepo,
	}
}

// QuoteItemInput represents a line item input
type QuoteItemInput struct {
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// CreateQuoteInput represents the input for creating a quote
type CreateQuoteInput struct {
	UserID          uuid.UUID
	ClientID        *uuid.UUID
	QuoteDate       time.Time
	DiscountPercent decimal.Decimal
	CGSTPercent     decimal.Decimal
	SGSTPercent     decimal.Decimal
	IGSTPercent     decimal.Decimal
	ShippingCharges decimal.Decimal
	ValidityDays    int
	Notes           *string
	Terms           *string
	Sections        datatypes.JSON
	Items           []QuoteItemInput
}

// CreateQuote prices and persists a new draft quote
func (s *QuoteService) CreateQuote(ctx context.Context, input *CreateQuoteInput) (*entity.Quote, error) {
	if err := s.validateItems(input.Items); err != nil {
		return nil, err
	}
	if err := s.validateRates(input.DiscountPercent, input.CGSTPercent, input.SGSTPercent, input.IGSTPercent, input.ShippingCharges); err != nil {
		return nil, err
	}

	if input.ClientID != nil {
		client, err := s.clientRepo.GetByID(ctx, *input.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, apperror.NewNotFoundError("Client")
		}
		if client.UserID != input.UserID {
			return nil, apperror.ErrForbidden
		}
	}

	nextNum, err := s.quoteRepo.NextSequenceNumber(ctx)
	if err != nil {
		return nil, err
	}

	validityDays := input.ValidityDays
	if validityDays <= 0 {
		validityDays = 30
		if profile, err := s.profileRepo.GetByUserID(ctx, input.UserID); err == nil && profile != nil && profile.QuoteValidityDays > 0 {
			validityDays = profile.QuoteValidityDays
		}
	}

	breakdown := s.price(input.Items, input.DiscountPercent, input.CGSTPercent, input.SGSTPercent, input.IGSTPercent, input.ShippingCharges)

	quote := &entity.Quote{
		UserID:          input.UserID,
		ClientID:        input.ClientID,
		QuoteNumber:     utils.QuoteNumber(nextNum),
		QuoteDate:       input.QuoteDate,
		DiscountPercent: input.DiscountPercent,
		CGSTPercent:     input.CGSTPercent,
		SGSTPercent:     input.SGSTPercent,
		IGSTPercent:     input.IGSTPercent,
		SubTotal:        breakdown.SubTotal,
		DiscountAmount:  breakdown.DiscountAmount,
		CGSTAmount:      breakdown.CGSTAmount,
		SGSTAmount:      breakdown.SGSTAmount,
		IGSTAmount:      breakdown.IGSTAmount,
		ShippingCharges: breakdown.ShippingCharges,
		TotalAmount:     breakdown.Total,
		Status:          enum.QuoteStatusDraft,
		ValidityDays:    validityDays,
		Notes:           input.Notes,
		Terms:           input.Terms,
		Sections:        input.Sections,
	}

	if err := s.quoteRepo.Create(ctx, quote); err != nil {
		return nil, err
	}

	if err := s.quoteItemRepo.CreateBatch(ctx, s.buildItems(quote.ID, input.Items)); err != nil {
		return nil, err
	}

	return s.quoteRepo.GetWithItems(ctx, quote.ID)
}

// GetQuote retrieves a quote with its line items
func (s *QuoteService) GetQuote(ctx context.Context, userID, id uuid.UUID) (*entity.Quote, error) {
	quote, err := s.quoteRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, apperror.NewNotFoundError("Quote")
	}
	if quote.UserID != userID {
		return nil, apperror.ErrForbidden
	}
	return quote, nil
}

// ListQuotesInput represents the input for listing quotes
type ListQuotesInput struct {
	UserID     uuid.UUID
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.QuoteStatus
	ClientID   *uuid.UUID
	SortBy     string
	SortOrder  string
}

// ListQuotes lists quotes with filtering
func (s *QuoteService) ListQuotes(ctx context.Context, input *ListQuotesInput) (*pagination.PaginatedResult[entity.Quote], error) {
	params := &repository.QuoteFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Status:     input.Status,
		ClientID:   input.ClientID,
		SortBy:     input.SortBy,
		SortOrder:  input.SortOrder,
	}

	quotes, total, err := s.quoteRepo.List(ctx, input.UserID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(quotes, pag), nil
}

// UpdateQuoteInput represents the input for updating a quote
type UpdateQuoteInput struct {
	UserID          uuid.UUID
	ID              uuid.UUID
	ClientID        *uuid.UUID
	QuoteDate       time.Time
	DiscountPercent decimal.Decimal
	CGSTPercent     decimal.Decimal
	SGSTPercent     decimal.Decimal
	IGSTPercent     decimal.Decimal
	ShippingCharges decimal.Decimal
	ValidityDays    int
	Notes           *string
	Terms           *string
	Sections        datatypes.JSON
	Items           []QuoteItemInput
}

// UpdateQuote reprices and rewrites an editable quote. Quotes that have left
// the draft/sent window are frozen and reject edits with a state violation.
func (s *QuoteService) UpdateQuote(ctx context.Context, input *UpdateQuoteInput) (*entity.Quote, error) {
	quote, err := s.quoteRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, apperror.NewNotFoundError("Quote")
	}
	if quote.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}
	if !quote.Status.IsEditable() {
		return nil, apperror.NewStateViolationError("quote in status '" + string(quote.Status) + "' cannot be edited")
	}

	if err := s.validateItems(input.Items); err != nil {
		return nil, err
	}
	if err := s.validateRates(input.DiscountPercent, input.CGSTPercent, input.SGSTPercent, input.IGSTPercent, input.ShippingCharges); err != nil {
		return nil, err
	}

	if input.ClientID != nil {
		client, err := s.clientRepo.GetByID(ctx, *input.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, apperror.NewNotFoundError("Client")
		}
		if client.UserID != input.UserID {
			return nil, apperror.ErrForbidden
		}
	}

	breakdown := s.price(input.Items, input.DiscountPercent, input.CGSTPercent, input.SGSTPercent, input.IGSTPercent, input.ShippingCharges)

	quote.ClientID = input.ClientID
	quote.QuoteDate = input.QuoteDate
	quote.DiscountPercent = input.DiscountPercent
	quote.CGSTPercent = input.CGSTPercent
	quote.SGSTPercent = input.SGSTPercent
	quote.IGSTPercent = input.IGSTPercent
	quote.SubTotal = breakdown.SubTotal
	quote.DiscountAmount = breakdown.DiscountAmount
	quote.CGSTAmount = breakdown.CGSTAmount
	quote.SGSTAmount = breakdown.SGSTAmount
	quote.IGSTAmount = breakdown.IGSTAmount
	quote.ShippingCharges = breakdown.ShippingCharges
	quote.TotalAmount = breakdown.Total
	if input.ValidityDays > 0 {
		quote.ValidityDays = input.ValidityDays
	}
	quote.Notes = input.Notes
	quote.Terms = input.Terms
	quote.Sections = input.Sections

	if err := s.quoteRepo.Update(ctx, quote); err != nil {
		return nil, err
	}

	// Items are replaced wholesale on every edit
	if err := s.quoteItemRepo.DeleteByQuoteID(ctx, quote.ID); err != nil {
		return nil, err
	}
	if err := s.quoteItemRepo.CreateBatch(ctx, s.buildItems(quote.ID, input.Items)); err != nil {
		return nil, err
	}

	return s.quoteRepo.GetWithItems(ctx, quote.ID)
}

// DeleteQuote removes a quote that has not been invoiced
func (s *QuoteService) DeleteQuote(ctx context.Context, userID, id uuid.UUID) error {
	quote, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if quote == nil {
		return apperror.NewNotFoundError("Quote")
	}
	if quote.UserID != userID {
		return apperror.ErrForbidden
	}
	if quote.Status == enum.QuoteStatusInvoiced {
		return apperror.NewStateViolationError("an invoiced quote cannot be deleted")
	}

	if err := s.quoteItemRepo.DeleteByQuoteID(ctx, id); err != nil {
		return err
	}
	return s.quoteRepo.Delete(ctx, id)
}

// UpdateQuoteStatus moves a quote along the lifecycle. Every transition is
// checked against the transition table; anything else is a state violation.
func (s *QuoteService) UpdateQuoteStatus(ctx context.Context, userID, id uuid.UUID, status enum.QuoteStatus) (*entity.Quote, error) {
	quote, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, apperror.NewNotFoundError("Quote")
	}
	if quote.UserID != userID {
		return nil, apperror.ErrForbidden
	}
	if status == enum.QuoteStatusInvoiced {
		return nil, apperror.NewStateViolationError("use convert-to-invoice to move a quote to invoiced")
	}
	if !quote.Status.CanTransitionTo(status) {
		return nil, apperror.NewStateViolationError(
			"cannot transition quote from '" + string(quote.Status) + "' to '" + string(status) + "'")
	}

	if err := s.quoteRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	quote.Status = status
	return quote, nil
}

// ConvertToInvoice atomically turns an approved quote into an invoice. The
// financial snapshot and line items are copied; the quote is frozen as
// invoiced in the same transaction. A second call fails: the status guard
// sees a non-approved quote and the unique index on quote_id backs it up.
func (s *QuoteService) ConvertToInvoice(ctx context.Context, userID, quoteID uuid.UUID) (*entity.Invoice, error) {
	quote, err := s.quoteRepo.GetWithItems(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, apperror.NewNotFoundError("Quote")
	}
	if quote.UserID != userID {
		return nil, apperror.ErrForbidden
	}
	if quote.Status != enum.QuoteStatusApproved {
		return nil, apperror.NewStateViolationError(
			"only approved quotes can be converted, quote is '" + string(quote.Status) + "'")
	}

	existing, err := s.invoiceRepo.GetByQuoteID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("quote has already been converted to invoice " + existing.InvoiceNumber)
	}

	nextNum, err := s.invoiceRepo.NextSequenceNumber(ctx)
	if err != nil {
		return nil, err
	}

	dueDays := 30
	if profile, err := s.profileRepo.GetByUserID(ctx, userID); err == nil && profile != nil && profile.InvoiceDueDays > 0 {
		dueDays = profile.InvoiceDueDays
	}

	now := time.Now()
	invoice := &entity.Invoice{
		UserID:          quote.UserID,
		ClientID:        quote.ClientID,
		QuoteID:         quote.ID,
		InvoiceNumber:   utils.InvoiceNumber(nextNum),
		InvoiceDate:     now,
		DueDate:         now.AddDate(0, 0, dueDays),
		SubTotal:        quote.SubTotal,
		DiscountAmount:  quote.DiscountAmount,
		CGSTAmount:      quote.CGSTAmount,
		SGSTAmount:      quote.SGSTAmount,
		IGSTAmount:      quote.IGSTAmount,
		ShippingCharges: quote.ShippingCharges,
		TotalAmount:     quote.TotalAmount,
		PaymentStatus:   enum.PaymentStatusPending,
		PaidAmount:      decimal.Zero,
		Notes:           quote.Notes,
		Terms:           quote.Terms,
	}

	items := make([]entity.InvoiceItem, 0, len(quote.Items))
	for _, qi := range quote.Items {
		items = append(items, entity.InvoiceItem{
			Description: qi.Description,
			Quantity:    qi.Quantity,
			UnitPrice:   qi.UnitPrice,
			SubTotal:    qi.SubTotal,
			Position:    qi.Position,
		})
	}

	if err := s.invoiceRepo.CreateFromQuote(ctx, quote.ID, invoice, items); err != nil {
		return nil, err
	}

	return s.invoiceRepo.GetWithDetails(ctx, invoice.ID)
}

func (s *QuoteService) validateItems(items []QuoteItemInput) error {
	if len(items) == 0 {
		return apperror.NewBadRequestError("a quote requires at least one line item")
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return apperror.NewBadRequestError("line item quantity must be positive")
		}
		if item.UnitPrice.IsNegative() {
			return apperror.NewBadRequestError("line item unit price cannot be negative")
		}
	}
	return nil
}

// validateRates rejects negative percentage and shipping inputs before they
// reach the calculator, which assumes non-negative rates.
func (s *QuoteService) validateRates(discount, cgst, sgst, igst, shipping decimal.Decimal) error {
	if discount.IsNegative() {
		return apperror.NewBadRequestError("discount percent cannot be negative")
	}
	if cgst.IsNegative() || sgst.IsNegative() || igst.IsNegative() {
		return apperror.NewBadRequestError("tax percent cannot be negative")
	}
	if shipping.IsNegative() {
		return apperror.NewBadRequestError("shipping charges cannot be negative")
	}
	return nil
}

func (s *QuoteService) price(items []QuoteItemInput, discount, cgst, sgst, igst, shipping decimal.Decimal) pricing.Breakdown {
	lines := make([]pricing.LineItem, 0, len(items))
	for _, item := range items {
		lines = append(lines, pricing.LineItem{Quantity: item.Quantity, UnitPrice: item.UnitPrice})
	}
	return pricing.Compute(lines, pricing.Rates{
		DiscountPercent: discount,
		CGSTPercent:     cgst,
		SGSTPercent:     sgst,
		IGSTPercent:     igst,
		ShippingCharges: shipping,
	})
}

func (s *QuoteService) buildItems(quoteID uuid.UUID, inputs []QuoteItemInput) []entity.QuoteItem {
	items := make([]entity.QuoteItem, 0, len(inputs))
	for i, item := range inputs {
		items = append(items, entity.QuoteItem{
			QuoteID:     quoteID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			SubTotal:    pricing.LineSubTotal(item.Quantity, item.UnitPrice),
			Position:    i,
		})
	}
	return items
}
