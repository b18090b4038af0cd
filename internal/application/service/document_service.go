package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/billcraft/billcraft-api/internal/domain/entity"
	"github.com/billcraft/billcraft-api/internal/domain/repository"
	"github.com/billcraft/billcraft-api/pkg/apperror"
	"github.com/billcraft/billcraft-api/pkg/email"
	"github.com/billcraft/billcraft-api/pkg/pdf"
)

// DocumentService renders quotes and invoices as PDFs and dispatches them to
// clients by email. Rendering reads the stored financial snapshot; nothing
// is recalculated here.
type DocumentService struct {
	quoteRepo    repository.QuoteRepository
	invoiceRepo  repository.InvoiceRepository
	profileRepo  repository.CompanyProfileRepository
	renderer     pdf.Renderer
	emailService *email.EmailService
}

// NewDocumentService creates a new document service
func NewDocumentService(
	quoteRepo repository.QuoteRepository,
	invoiceRepo repository.InvoiceRepository,
	profileRepo repository.CompanyProfileRepository,
	renderer pdf.Renderer,
	emailService *email.EmailService,
) *DocumentService {
	return &DocumentService{
		quoteRepo:    quoteRepo,
		invoiceRepo:  invoiceRepo,
		profileRepo:  profileRepo,
		renderer:     renderer,
		emailService: emailService,
	}
}

// RenderQuotePDF renders the quote as a PDF and returns the bytes together
// with a suggested filename
func (s *DocumentService) RenderQuotePDF(ctx context.Context, userID, quoteID uuid.UUID) ([]byte, string, error) {
	quote, profile, err := s.loadQuote(ctx, userID, quoteID)
	if err != nil {
		return nil, "", err
	}

	doc := s.quoteDocument(quote, profile)
	data, err := s.renderer.Render(doc)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render quote PDF: %w", err)
	}
	return data, quote.QuoteNumber + ".pdf", nil
}

// RenderInvoicePDF renders the invoice as a PDF and returns the bytes
// together with a suggested filename
func (s *DocumentService) RenderInvoicePDF(ctx context.Context, userID, invoiceID uuid.UUID) ([]byte, string, error) {
	invoice, profile, err := s.loadInvoice(ctx, userID, invoiceID)
	if err != nil {
		return nil, "", err
	}

	doc := s.invoiceDocument(invoice, profile)
	data, err := s.renderer.Render(doc)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render invoice PDF: %w", err)
	}
	return data, invoice.InvoiceNumber + ".pdf", nil
}

// SendQuote emails the rendered quote PDF to the client. Delivery failures
// are returned to the caller and never retried.
func (s *DocumentService) SendQuote(ctx context.Context, userID, quoteID uuid.UUID, message string) error {
	quote, profile, err := s.loadQuote(ctx, userID, quoteID)
	if err != nil {
		return err
	}
	if quote.Client == nil || quote.Client.Email == nil {
		return apperror.NewBadRequestError("quote has no client email to send to")
	}

	data, err := s.renderer.Render(s.quoteDocument(quote, profile))
	if err != nil {
		return fmt.Errorf("failed to render quote PDF: %w", err)
	}

	subject := fmt.Sprintf("Quote %s from %s", quote.QuoteNumber, profile.CompanyName)
	if message == "" {
		message = fmt.Sprintf("Please find attached quote %s, valid until %s.",
			quote.QuoteNumber, quote.ValidUntil().Format("02 Jan 2006"))
	}
	return s.emailService.SendDocument(*quote.Client.Email, subject, message, quote.QuoteNumber+".pdf", data)
}

// SendInvoice emails the rendered invoice PDF to the client
func (s *DocumentService) SendInvoice(ctx context.Context, userID, invoiceID uuid.UUID, message string) error {
	invoice, profile, err := s.loadInvoice(ctx, userID, invoiceID)
	if err != nil {
		return err
	}
	if invoice.Client == nil || invoice.Client.Email == nil {
		return apperror.NewBadRequestError("invoice has no client email to send to")
	}

	data, err := s.renderer.Render(s.invoiceDocument(invoice, profile))
	if err != nil {
		return fmt.Errorf("failed to render invoice PDF: %w", err)
	}

	subject := fmt.Sprintf("Invoice %s from %s", invoice.InvoiceNumber, profile.CompanyName)
	if message == "" {
		message = fmt.Sprintf("Please find attached invoice %s, due %s.",
			invoice.InvoiceNumber, invoice.DueDate.Format("02 Jan 2006"))
	}
	return s.emailService.SendDocument(*invoice.Client.Email, subject, message, invoice.InvoiceNumber+".pdf", data)
}

func (s *DocumentService) loadQuote(ctx context.Context, userID, quoteID uuid.UUID) (*entity.Quote, *entity.CompanyProfile, error) {
	quote, err := s.quoteRepo.GetWithItems(ctx, quoteID)
	if err != nil {
		return nil, nil, err
	}
	if quote == nil {
		return nil, nil, apperror.NewNotFoundError("Quote")
	}
	if quote.UserID != userID {
		return nil, nil, apperror.ErrForbidden
	}

	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return quote, profile, nil
}

func (s *DocumentService) loadInvoice(ctx context.Context, userID, invoiceID uuid.UUID) (*entity.Invoice, *entity.CompanyProfile, error) {
	invoice, err := s.invoiceRepo.GetWithDetails(ctx, invoiceID)
	if err != nil {
		return nil, nil, err
	}
	if invoice == nil {
		return nil, nil, apperror.NewNotFoundError("Invoice")
	}
	if invoice.UserID != userID {
		return nil, nil, apperror.ErrForbidden
	}

	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return invoice, profile, nil
}

func (s *DocumentService) loadProfile(ctx context.Context, userID uuid.UUID) (*entity.CompanyProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = &entity.CompanyProfile{CompanyName: "My Company", Currency: "INR"}
	}
	return profile, nil
}

func (s *DocumentService) quoteDocument(quote *entity.Quote, profile *entity.CompanyProfile) pdf.Document {
	doc := pdf.Document{
		Title:      "Quotation",
		Number:     quote.QuoteNumber,
		IssueDate:  quote.QuoteDate.Format("02 Jan 2006"),
		SecondDate: "Valid until: " + quote.ValidUntil().Format("02 Jan 2006"),
		Currency:   profile.Currency,
		From:       companyParty(profile),
		BillTo:     clientParty(quote.Client),
		Notes:      deref(quote.Notes),
		Terms:      deref(quote.Terms),
		Sections:   parseSections(quote.Sections),
	}

	for _, item := range quote.Items {
		doc.Items = append(doc.Items, pdf.LineItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.StringFixed(2),
			SubTotal:    item.SubTotal.StringFixed(2),
		})
	}

	doc.Totals = totalLines(
		quote.SubTotal, quote.DiscountAmount,
		quote.CGSTAmount, quote.SGSTAmount, quote.IGSTAmount,
		quote.ShippingCharges, quote.TotalAmount,
	)
	return doc
}

func (s *DocumentService) invoiceDocument(invoice *entity.Invoice, profile *entity.CompanyProfile) pdf.Document {
	doc := pdf.Document{
		Title:      "Invoice",
		Number:     invoice.InvoiceNumber,
		IssueDate:  invoice.InvoiceDate.Format("02 Jan 2006"),
		SecondDate: "Due date: " + invoice.DueDate.Format("02 Jan 2006"),
		Currency:   profile.Currency,
		From:       companyParty(profile),
		BillTo:     clientParty(invoice.Client),
		Notes:      deref(invoice.Notes),
		Terms:      deref(invoice.Terms),
	}

	for _, item := range invoice.Items {
		doc.Items = append(doc.Items, pdf.LineItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.StringFixed(2),
			SubTotal:    item.SubTotal.StringFixed(2),
		})
	}

	doc.Totals = totalLines(
		invoice.SubTotal, invoice.DiscountAmount,
		invoice.CGSTAmount, invoice.SGSTAmount, invoice.IGSTAmount,
		invoice.ShippingCharges, invoice.TotalAmount,
	)

	if invoice.PaidAmount.IsPositive() {
		doc.Totals = append(doc.Totals,
			pdf.TotalLine{Label: "Paid", Amount: invoice.PaidAmount.StringFixed(2)},
			pdf.TotalLine{Label: "Balance due", Amount: invoice.Outstanding().StringFixed(2), Emphasis: true},
		)
	}

	if bank := bankSection(profile); bank != nil {
		doc.Sections = append(doc.Sections, *bank)
	}
	return doc
}

func totalLines(subTotal, discount, cgst, sgst, igst, shipping, total decimal.Decimal) []pdf.TotalLine {
	lines := []pdf.TotalLine{{Label: "Subtotal", Amount: subTotal.StringFixed(2)}}
	if discount.IsPositive() {
		lines = append(lines, pdf.TotalLine{Label: "Discount", Amount: "-" + discount.StringFixed(2)})
	}
	if cgst.IsPositive() {
		lines = append(lines, pdf.TotalLine{Label: "CGST", Amount: cgst.StringFixed(2)})
	}
	if sgst.IsPositive() {
		lines = append(lines, pdf.TotalLine{Label: "SGST", Amount: sgst.StringFixed(2)})
	}
	if igst.IsPositive() {
		lines = append(lines, pdf.TotalLine{Label: "IGST", Amount: igst.StringFixed(2)})
	}
	if shipping.IsPositive() {
		lines = append(lines, pdf.TotalLine{Label: "Shipping", Amount: shipping.StringFixed(2)})
	}
	lines = append(lines, pdf.TotalLine{Label: "Total", Amount: total.StringFixed(2), Emphasis: true})
	return lines
}

func companyParty(profile *entity.CompanyProfile) pdf.Party {
	return pdf.Party{
		Name:    profile.CompanyName,
		Address: joinAddress(profile.Address, profile.City, profile.State, profile.Pincode),
		Email:   deref(profile.Email),
		Phone:   deref(profile.Phone),
		GSTIN:   deref(profile.GSTIN),
	}
}

func clientParty(client *entity.Client) pdf.Party {
	if client == nil {
		return pdf.Party{}
	}
	return pdf.Party{
		Name:    client.Name,
		Company: deref(client.CompanyName),
		Address: joinAddress(client.Address, client.City, client.State, client.Pincode),
		Email:   deref(client.Email),
		Phone:   deref(client.Phone),
		GSTIN:   deref(client.GSTIN),
	}
}

func bankSection(profile *entity.CompanyProfile) *pdf.Section {
	var rows []string
	if profile.BankAccountName != nil {
		rows = append(rows, "Account name: "+*profile.BankAccountName)
	}
	if profile.BankAccountNumber != nil {
		rows = append(rows, "Account number: "+*profile.BankAccountNumber)
	}
	if profile.BankName != nil {
		rows = append(rows, "Bank: "+*profile.BankName)
	}
	if profile.BankIFSC != nil {
		rows = append(rows, "IFSC: "+*profile.BankIFSC)
	}
	if len(rows) == 0 {
		return nil
	}
	return &pdf.Section{Title: "Payment details", Rows: rows}
}

func joinAddress(parts ...*string) string {
	var present []string
	for _, p := range parts {
		if p != nil && *p != "" {
			present = append(present, *p)
		}
	}
	return strings.Join(present, ", ")
}

// parseSections decodes the quote's structured sections (bill of materials,
// SLA, timeline) from their jsonb column. Malformed content is skipped
// rather than failing the render.
func parseSections(raw datatypes.JSON) []pdf.Section {
	if len(raw) == 0 {
		return nil
	}
	var stored []struct {
		Title string   `json:"title"`
		Rows  []string `json:"rows"`
	}
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil
	}
	sections := make([]pdf.Section, 0, len(stored))
	for _, s := range stored {
		if s.Title == "" && len(s.Rows) == 0 {
			continue
		}
		sections = append(sections, pdf.Section{Title: s.Title, Rows: s.Rows})
	}
	return sections
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
