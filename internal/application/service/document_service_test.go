package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/billcraft/billcraft-api/internal/domain/entity"
	"github.com/billcraft/billcraft-api/pkg/apperror"
	"github.com/billcraft/billcraft-api/pkg/pdf"
)

// capturingRenderer records the document snapshot handed to it.
type capturingRenderer struct {
	doc pdf.Document
}

func (r *capturingRenderer) Render(doc pdf.Document) ([]byte, error) {
	r.doc = doc
	return []byte("%PDF"), nil
}

func newDocumentServiceFixture(renderer pdf.Renderer) (*DocumentService, *QuoteService, *fakeProfileRepo) {
	quoteSvc, quoteRepo, invoiceRepo, profileRepo := newQuoteServiceFixture()
	docSvc := NewDocumentService(quoteRepo, invoiceRepo, profileRepo, renderer, nil)
	return docSvc, quoteSvc, profileRepo
}

func TestRenderQuotePDFBuildsDocumentSnapshot(t *testing.T) {
	renderer := &capturingRenderer{}
	docSvc, quoteSvc, profileRepo := newDocumentServiceFixture(renderer)
	userID := uuid.New()

	require.NoError(t, profileRepo.Create(context.Background(), &entity.CompanyProfile{
		UserID:      userID,
		CompanyName: "Acme Studio",
		Currency:    "INR",
	}))

	notes := "Delivery within two weeks"
	quote, err := quoteSvc.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:          userID,
		QuoteDate:       time.Now(),
		DiscountPercent: mustDecimal(t, "10"),
		CGSTPercent:     mustDecimal(t, "9"),
		SGSTPercent:     mustDecimal(t, "9"),
		ShippingCharges: mustDecimal(t, "50"),
		Notes:           &notes,
		Sections:        datatypes.JSON(`[{"title":"Bill of materials","rows":["Steel frame","Powder coating"]}]`),
		Items: []QuoteItemInput{
			{Description: "Consulting", Quantity: 2, UnitPrice: mustDecimal(t, "500")},
		},
	})
	require.NoError(t, err)

	data, filename, err := docSvc.RenderQuotePDF(context.Background(), userID, quote.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), data)
	assert.Equal(t, quote.QuoteNumber+".pdf", filename)

	doc := renderer.doc
	assert.Equal(t, "Quotation", doc.Title)
	assert.Equal(t, quote.QuoteNumber, doc.Number)
	assert.Equal(t, "Acme Studio", doc.From.Name)
	assert.Equal(t, "INR", doc.Currency)
	assert.Equal(t, notes, doc.Notes)

	require.Len(t, doc.Items, 1)
	assert.Equal(t, "Consulting", doc.Items[0].Description)
	assert.Equal(t, "500.00", doc.Items[0].UnitPrice)
	assert.Equal(t, "1000.00", doc.Items[0].SubTotal)

	require.NotEmpty(t, doc.Totals)
	last := doc.Totals[len(doc.Totals)-1]
	assert.Equal(t, "Total", last.Label)
	assert.Equal(t, "1112.00", last.Amount)
	assert.True(t, last.Emphasis)

	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "Bill of materials", doc.Sections[0].Title)
	assert.Equal(t, []string{"Steel frame", "Powder coating"}, doc.Sections[0].Rows)
}

func TestRenderInvoicePDFUsesInvoiceSnapshot(t *testing.T) {
	renderer := &capturingRenderer{}
	docSvc, quoteSvc, profileRepo := newDocumentServiceFixture(renderer)
	userID := uuid.New()

	bankName := "State Bank"
	require.NoError(t, profileRepo.Create(context.Background(), &entity.CompanyProfile{
		UserID:      userID,
		CompanyName: "Acme Studio",
		Currency:    "INR",
		BankName:    &bankName,
	}))

	quoteID := approvedQuote(t, quoteSvc, userID)
	invoice, err := quoteSvc.ConvertToInvoice(context.Background(), userID, quoteID)
	require.NoError(t, err)

	data, filename, err := docSvc.RenderInvoicePDF(context.Background(), userID, invoice.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, invoice.InvoiceNumber+".pdf", filename)

	doc := renderer.doc
	assert.Equal(t, "Invoice", doc.Title)
	assert.Equal(t, invoice.InvoiceNumber, doc.Number)

	last := doc.Totals[len(doc.Totals)-1]
	assert.Equal(t, "Total", last.Label)
	assert.Equal(t, "1112.00", last.Amount)

	require.NotEmpty(t, doc.Sections)
	assert.Equal(t, "Payment details", doc.Sections[len(doc.Sections)-1].Title)
}

func TestRenderQuotePDFWithRenderingDisabled(t *testing.T) {
	docSvc, quoteSvc, _ := newDocumentServiceFixture(pdf.NewNullRenderer())
	userID := uuid.New()

	quote, err := quoteSvc.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:    userID,
		QuoteDate: time.Now(),
		Items: []QuoteItemInput{
			{Description: "Consulting", Quantity: 1, UnitPrice: mustDecimal(t, "100")},
		},
	})
	require.NoError(t, err)

	data, filename, err := docSvc.RenderQuotePDF(context.Background(), userID, quote.ID)
	require.NoError(t, err)
	assert.Empty(t, data)
	assert.Equal(t, quote.QuoteNumber+".pdf", filename)
}

func TestSendQuoteRequiresClientEmail(t *testing.T) {
	docSvc, quoteSvc, _ := newDocumentServiceFixture(pdf.NewNullRenderer())
	userID := uuid.New()

	quote, err := quoteSvc.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:    userID,
		QuoteDate: time.Now(),
		Items: []QuoteItemInput{
			{Description: "Consulting", Quantity: 1, UnitPrice: mustDecimal(t, "100")},
		},
	})
	require.NoError(t, err)

	err = docSvc.SendQuote(context.Background(), userID, quote.ID, "")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}
