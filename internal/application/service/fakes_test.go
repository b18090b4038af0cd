package service

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/billcraft/billcraft-api/internal/domain/entity"
	"github.com/billcraft/billcraft-api/internal/domain/enum"
	"github.com/billcraft/billcraft-api/internal/domain/repository"
	"github.com/billcraft/billcraft-api/pkg/apperror"
	"github.com/billcraft/billcraft-api/pkg/pagination"
)

// In-memory fakes for the repository interfaces. They mirror the database
// behavior the services rely on, including the guarded status flip inside
// invoice creation.

type fakeQuoteRepo struct {
	quotes   map[uuid.UUID]*entity.Quote
	itemRepo *fakeQuoteItemRepo
	seq      int
}

func newFakeQuoteRepo(itemRepo *fakeQuoteItemRepo) *fakeQuoteRepo {
	return &fakeQuoteRepo{quotes: make(map[uuid.UUID]*entity.Quote), itemRepo: itemRepo}
}

func (r *fakeQuoteRepo) Create(_ context.Context, quote *entity.Quote) error {
	if quote.ID == uuid.Nil {
		quote.ID = uuid.New()
	}
	copied := *quote
	r.quotes[quote.ID] = &copied
	return nil
}

func (r *fakeQuoteRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Quote, error) {
	quote, ok := r.quotes[id]
	if !ok {
		return nil, nil
	}
	copied := *quote
	return &copied, nil
}

func (r *fakeQuoteRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Quote, error) {
	quote, err := r.GetByID(ctx, id)
	if err != nil || quote == nil {
		return quote, err
	}
	items, _ := r.itemRepo.GetByQuoteID(ctx, id)
	quote.Items = items
	return quote, nil
}

func (r *fakeQuoteRepo) Update(_ context.Context, quote *entity.Quote) error {
	copied := *quote
	r.quotes[quote.ID] = &copied
	return nil
}

func (r *fakeQuoteRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.quotes, id)
	return nil
}

func (r *fakeQuoteRepo) List(_ context.Context, userID uuid.UUID, _ *repository.QuoteFilterParams) ([]entity.Quote, int64, error) {
	var out []entity.Quote
	for _, quote := range r.quotes {
		if quote.UserID == userID {
			out = append(out, *quote)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeQuoteRepo) UpdateStatus(_ context.Context, id uuid.UUID, status enum.QuoteStatus) error {
	if quote, ok := r.quotes[id]; ok {
		quote.Status = status
	}
	return nil
}

func (r *fakeQuoteRepo) NextSequenceNumber(_ context.Context) (int, error) {
	r.seq++
	return r.seq, nil
}

type fakeQuoteItemRepo struct {
	items []entity.QuoteItem
}

func (r *fakeQuoteItemRepo) CreateBatch(_ context.Context, items []entity.QuoteItem) error {
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
	}
	r.items = append(r.items, items...)
	return nil
}

func (r *fakeQuoteItemRepo) GetByQuoteID(_ context.Context, quoteID uuid.UUID) ([]entity.QuoteItem, error) {
	var out []entity.QuoteItem
	for _, item := range r.items {
		if item.QuoteID == quoteID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r *fakeQuoteItemRepo) DeleteByQuoteID(_ context.Context, quoteID uuid.UUID) error {
	kept := r.items[:0]
	for _, item := range r.items {
		if item.QuoteID != quoteID {
			kept = append(kept, item)
		}
	}
	r.items = kept
	return nil
}

type fakeInvoiceRepo struct {
	invoices  map[uuid.UUID]*entity.Invoice
	items     map[uuid.UUID][]entity.InvoiceItem
	quoteRepo *fakeQuoteRepo
	seq       int
}

func newFakeInvoiceRepo(quoteRepo *fakeQuoteRepo) *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		invoices:  make(map[uuid.UUID]*entity.Invoice),
		items:     make(map[uuid.UUID][]entity.InvoiceItem),
		quoteRepo: quoteRepo,
	}
}

func (r *fakeInvoiceRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	copied := *invoice
	return &copied, nil
}

func (r *fakeInvoiceRepo) GetByQuoteID(_ context.Context, quoteID uuid.UUID) (*entity.Invoice, error) {
	for _, invoice := range r.invoices {
		if invoice.QuoteID == quoteID {
			copied := *invoice
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := r.GetByID(ctx, id)
	if err != nil || invoice == nil {
		return invoice, err
	}
	invoice.Items = r.items[id]
	return invoice, nil
}

func (r *fakeInvoiceRepo) List(_ context.Context, userID uuid.UUID, _ *repository.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	var out []entity.Invoice
	for _, invoice := range r.invoices {
		if invoice.UserID == userID {
			out = append(out, *invoice)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeInvoiceRepo) UpdatePaymentStatus(_ context.Context, id uuid.UUID, status enum.PaymentStatus) error {
	if invoice, ok := r.invoices[id]; ok {
		invoice.PaymentStatus = status
	}
	return nil
}

func (r *fakeInvoiceRepo) UpdatePaidAmount(_ context.Context, id uuid.UUID, paid decimal.Decimal) error {
	if invoice, ok := r.invoices[id]; ok {
		invoice.PaidAmount = paid
	}
	return nil
}

func (r *fakeInvoiceRepo) NextSequenceNumber(_ context.Context) (int, error) {
	r.seq++
	return r.seq, nil
}

func (r *fakeInvoiceRepo) CreateFromQuote(_ context.Context, quoteID uuid.UUID, invoice *entity.Invoice, items []entity.InvoiceItem) error {
	quote, ok := r.quoteRepo.quotes[quoteID]
	if !ok || quote.Status != enum.QuoteStatusApproved {
		return apperror.NewStateViolationError("quote is not in approved state")
	}
	for _, existing := range r.invoices {
		if existing.QuoteID == quoteID {
			return apperror.NewConflictError("duplicate quote_id")
		}
	}
	quote.Status = enum.QuoteStatusInvoiced

	if invoice.ID == uuid.Nil {
		invoice.ID = uuid.New()
	}
	for i := range items {
		items[i].InvoiceID = invoice.ID
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
	}
	copied := *invoice
	r.invoices[invoice.ID] = &copied
	r.items[invoice.ID] = items
	return nil
}

type fakePaymentRepo struct {
	entries []entity.PaymentHistoryEntry
}

func (r *fakePaymentRepo) Create(_ context.Context, entry *entity.PaymentHistoryEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakePaymentRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.PaymentHistoryEntry, error) {
	for _, entry := range r.entries {
		if entry.ID == id {
			copied := entry
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakePaymentRepo) ListByInvoiceID(_ context.Context, invoiceID uuid.UUID) ([]entity.PaymentHistoryEntry, error) {
	var out []entity.PaymentHistoryEntry
	for _, entry := range r.entries {
		if entry.InvoiceID == invoiceID {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) Delete(_ context.Context, id uuid.UUID) error {
	kept := r.entries[:0]
	for _, entry := range r.entries {
		if entry.ID != id {
			kept = append(kept, entry)
		}
	}
	r.entries = kept
	return nil
}

func (r *fakePaymentRepo) SumByInvoiceID(_ context.Context, invoiceID uuid.UUID) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, entry := range r.entries {
		if entry.InvoiceID == invoiceID {
			sum = sum.Add(entry.Amount)
		}
	}
	return sum, nil
}

type fakeClientRepo struct {
	clients map[uuid.UUID]*entity.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[uuid.UUID]*entity.Client)}
}

func (r *fakeClientRepo) Create(_ context.Context, client *entity.Client) error {
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	copied := *client
	r.clients[client.ID] = &copied
	return nil
}

func (r *fakeClientRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Client, error) {
	client, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	copied := *client
	return &copied, nil
}

func (r *fakeClientRepo) GetByEmail(_ context.Context, email string) (*entity.Client, error) {
	for _, client := range r.clients {
		if client.Email != nil && *client.Email == email {
			copied := *client
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeClientRepo) Update(_ context.Context, client *entity.Client) error {
	copied := *client
	r.clients[client.ID] = &copied
	return nil
}

func (r *fakeClientRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.clients, id)
	return nil
}

func (r *fakeClientRepo) List(_ context.Context, userID uuid.UUID, _ *pagination.PaginationParams, _ string) ([]entity.Client, int64, error) {
	var out []entity.Client
	for _, client := range r.clients {
		if client.UserID == userID {
			out = append(out, *client)
		}
	}
	return out, int64(len(out)), nil
}

type fakeProfileRepo struct {
	profiles map[uuid.UUID]*entity.CompanyProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[uuid.UUID]*entity.CompanyProfile)}
}

func (r *fakeProfileRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*entity.CompanyProfile, error) {
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, nil
	}
	copied := *profile
	return &copied, nil
}

func (r *fakeProfileRepo) Create(_ context.Context, profile *entity.CompanyProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	copied := *profile
	r.profiles[profile.UserID] = &copied
	return nil
}

func (r *fakeProfileRepo) Update(_ context.Context, profile *entity.CompanyProfile) error {
	copied := *profile
	r.profiles[profile.UserID] = &copied
	return nil
}
