package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billcraft/billcraft-api/internal/domain/entity"
	"github.com/billcraft/billcraft-api/internal/domain/enum"
	"github.com/billcraft/billcraft-api/pkg/apperror"
)

func newQuoteServiceFixture() (*QuoteService, *fakeQuoteRepo, *fakeInvoiceRepo, *fakeProfileRepo) {
	itemRepo := &fakeQuoteItemRepo{}
	quoteRepo := newFakeQuoteRepo(itemRepo)
	invoiceRepo := newFakeInvoiceRepo(quoteRepo)
	clientRepo := newFakeClientRepo()
	profileRepo := newFakeProfileRepo()
	svc := NewQuoteService(quoteRepo, itemRepo, invoiceRepo, clientRepo, profileRepo)
	return svc, quoteRepo, invoiceRepo, profileRepo
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestCreateQuotePricesFixedOrder(t *testing.T) {
	svc, _, _, _ := newQuoteServiceFixture()
	userID := uuid.New()

	quote, err := svc.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:          userID,
		QuoteDate:       time.Now(),
		DiscountPercent: mustDecimal(t, "10"),
		CGSTPercent:     mustDecimal(t, "9"),
		SGSTPercent:     mustDecimal(t, "9"),
		ShippingCharges: mustDecimal(t, "50"),
		Items: []QuoteItemInput{
			{Description: "Consulting", Quantity: 2, UnitPrice: mustDecimal(t, "500")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "QT-000001", quote.QuoteNumber)
	assert.Equal(t, enum.QuoteStatusDraft, quote.Status)
	assert.True(t, quote.SubTotal.Equal(mustDecimal(t, "1000")), "subtotal %s", quote.SubTotal)
	assert.True(t, quote.DiscountAmount.Equal(mustDecimal(t, "100")))
	assert.True(t, quote.CGSTAmount.Equal(mustDecimal(t, "81")))
	assert.True(t, quote.SGSTAmount.Equal(mustDecimal(t, "81")))
	assert.True(t, quote.TotalAmount.Equal(mustDecimal(t, "1112")), "total %s", quote.TotalAmount)
	require.Len(t, quote.Items, 1)
	assert.True(t, quote.Items[0].SubTotal.Equal(mustDecimal(t, "1000")))
}

func TestCreateQuoteRejectsBadItems(t *testing.T) {
	svc, _, _, _ := newQuoteServiceFixture()
	userID := uuid.New()

	_, err := svc.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:    userID,
		QuoteDate: time.Now(),
		Items:     nil,
	})
	require.Error(t, err)

	_, err = svc.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:    userID,
		QuoteDate: time.Now(),
		Items: []QuoteItemInput{
			{Description: "Bad", Quantity: 0, UnitPrice: mustDecimal(t, "10")},
		},
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestCreateQuoteRejectsNegativeRates(t *testing.T) {
	svc, quoteRepo, _, _ := newQuoteServiceFixture()
	userID := uuid.New()
	items := []QuoteItemInput{
		{Description: "Consulting", Quantity: 2, UnitPrice: mustDecimal(t, "500")},
	}

	cases := []struct {
		name  string
		input CreateQuoteInput
	}{
		{"negative discount", CreateQuoteInput{DiscountPercent: mustDecimal(t, "-10")}},
		{"negative cgst", CreateQuoteInput{CGSTPercent: mustDecimal(t, "-9")}},
		{"negative sgst", CreateQuoteInput{SGSTPercent: mustDecimal(t, "-9")}},
		{"negative igst", CreateQuoteInput{IGSTPercent: mustDecimal(t, "-18")}},
		{"negative shipping", CreateQuoteInput{ShippingCharges: mustDecimal(t, "-50")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := tc.input
			input.UserID = userID
			input.QuoteDate = time.Now()
			input.Items = items

			_, err := svc.CreateQuote(context.Background(), &input)
			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
		})
	}

	// Nothing reached persistence
	assert.Empty(t, quoteRepo.quotes)
}

func TestUpdateQuoteRejectsNegativeRates(t *testing.T) {
	svc, _, _, _ := newQuoteServiceFixture()
	userID := uuid.New()

	quote, err := svc.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:    userID,
		QuoteDate: time.Now(),
		Items: []QuoteItemInput{
			{Description: "Consulting", Quantity: 1, UnitPrice: mustDecimal(t, "100")},
		},
	})
	require.NoError(t, err)

	_, err = svc.UpdateQuote(context.Background(), &UpdateQuoteInput{
		UserID:          userID,
		ID:              quote.ID,
		QuoteDate:       quote.QuoteDate,
		DiscountPercent: mustDecimal(t, "-10"),
		ShippingCharges: mustDecimal(t, "-50"),
		Items: []QuoteItemInput{
			{Description: "Consulting", Quantity: 1, UnitPrice: mustDecimal(t, "100")},
		},
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)

	// Quote is untouched
	unchanged, err := svc.GetQuote(context.Background(), userID, quote.ID)
	require.NoError(t, err)
	assert.True(t, unchanged.TotalAmount.Equal(mustDecimal(t, "100")))
	assert.True(t, unchanged.DiscountAmount.IsZero())
}

func TestUpdateQuoteReplacesItemsAndReprices(t *testing.T) {
	svc, _, _, _ := newQuoteServiceFixture()
	userID := uuid.New()

	quote, err := svc.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:    userID,
		QuoteDate: time.Now(),
		Items: []QuoteItemInput{
			{Description: "Old line", Quantity: 1, UnitPrice: mustDecimal(t, "100")},
		},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateQuote(context.Background(), &UpdateQuoteInput{
		UserID:    userID,
		ID:        quote.ID,
		QuoteDate: quote.QuoteDate,
		Items: []QuoteItemInput{
			{Description: "New line A", Quantity: 3, UnitPrice: mustDecimal(t, "200")},
			{Description: "New line B", Quantity: 1, UnitPrice: mustDecimal(t, "400")},
		},
	})
	require.NoError(t, err)

	require.Len(t, updated.Items, 2)
	assert.Equal(t, "New line A", updated.Items[0].Description)
	assert.True(t, updated.SubTotal.Equal(mustDecimal(t, "1000")))
	assert.True(t, updated.TotalAmount.Equal(mustDecimal(t, "1000")))
}

func TestUpdateInvoicedQuoteFails(t *testing.T) {
	svc, quoteRepo, _, _ := newQuoteServiceFixture()
	userID := uuid.New()

	quote, err := svc.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:    userID,
		QuoteDate: time.Now(),
		Items: []QuoteItemInput{
			{Description: "Line", Quantity: 1, UnitPrice: mustDecimal(t, "100")},
		},
	})
	require.NoError(t, err)
	quoteRepo.quotes[quote.ID].Status = enum.QuoteStatusInvoiced

	_, err = svc.UpdateQuote(context.Background(), &UpdateQuoteInput{
		UserID:    userID,
		ID:        quote.ID,
		QuoteDate: quote.QuoteDate,
		Items: []QuoteItemInput{
			{Description: "Line", Quantity: 1, UnitPrice: mustDecimal(t, "100")},
		},
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)
}

func TestQuoteStatusTransitions(t *testing.T) {
	svc, _, _, _ := newQuoteServiceFixture()
	userID := uuid.New()

	quote, err := svc.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:    userID,
		QuoteDate: time.Now(),
		Items: []QuoteItemInput{
			{Description: "Line", Quantity: 1, UnitPrice: mustDecimal(t, "100")},
		},
	})
	require.NoError(t, err)

	// draft cannot jump straight to approved
	_, err = svc.UpdateQuoteStatus(context.Background(), userID, quote.ID, enum.QuoteStatusApproved)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)

	updated, err := svc.UpdateQuoteStatus(context.Background(), userID, quote.ID, enum.QuoteStatusSent)
	require.NoError(t, err)
	assert.Equal(t, enum.QuoteStatusSent, updated.Status)

	updated, err = svc.UpdateQuoteStatus(context.Background(), userID, quote.ID, enum.QuoteStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, enum.QuoteStatusApproved, updated.Status)

	// invoiced is reached only through conversion
	_, err = svc.UpdateQuoteStatus(context.Background(), userID, quote.ID, enum.QuoteStatusInvoiced)
	require.Error(t, err)

	// approved is terminal for the status endpoint
	_, err = svc.UpdateQuoteStatus(context.Background(), userID, quote.ID, enum.QuoteStatusRejected)
	require.Error(t, err)
}

func approvedQuote(t *testing.T, svc *QuoteService, userID uuid.UUID) uuid.UUID {
	t.Helper()
	quote, err := svc.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:          userID,
		QuoteDate:       time.Now(),
		DiscountPercent: mustDecimal(t, "10"),
		CGSTPercent:     mustDecimal(t, "9"),
		SGSTPercent:     mustDecimal(t, "9"),
		ShippingCharges: mustDecimal(t, "50"),
		Items: []QuoteItemInput{
			{Description: "Consulting", Quantity: 2, UnitPrice: mustDecimal(t, "500")},
		},
	})
	require.NoError(t, err)
	_, err = svc.UpdateQuoteStatus(context.Background(), userID, quote.ID, enum.QuoteStatusSent)
	require.NoError(t, err)
	_, err = svc.UpdateQuoteStatus(context.Background(), userID, quote.ID, enum.QuoteStatusApproved)
	require.NoError(t, err)
	return quote.ID
}

func TestConvertToInvoiceCopiesSnapshot(t *testing.T) {
	svc, quoteRepo, _, profileRepo := newQuoteServiceFixture()
	userID := uuid.New()
	require.NoError(t, profileRepo.Create(context.Background(), &entity.CompanyProfile{
		UserID:         userID,
		CompanyName:    "Acme Consulting",
		InvoiceDueDays: 15,
	}))

	quoteID := approvedQuote(t, svc, userID)

	invoice, err := svc.ConvertToInvoice(context.Background(), userID, quoteID)
	require.NoError(t, err)

	assert.Equal(t, "INV-000001", invoice.InvoiceNumber)
	assert.Equal(t, quoteID, invoice.QuoteID)
	assert.Equal(t, enum.PaymentStatusPending, invoice.PaymentStatus)
	assert.True(t, invoice.PaidAmount.IsZero())
	assert.True(t, invoice.TotalAmount.Equal(mustDecimal(t, "1112")))
	assert.True(t, invoice.SubTotal.Equal(mustDecimal(t, "1000")))
	assert.True(t, invoice.DiscountAmount.Equal(mustDecimal(t, "100")))
	require.Len(t, invoice.Items, 1)
	assert.Equal(t, "Consulting", invoice.Items[0].Description)
	assert.True(t, invoice.Items[0].SubTotal.Equal(mustDecimal(t, "1000")))

	// due date honors the configured term
	expectedDue := time.Now().AddDate(0, 0, 15)
	assert.WithinDuration(t, expectedDue, invoice.DueDate, time.Minute)

	// the quote is frozen as invoiced in the same operation
	assert.Equal(t, enum.QuoteStatusInvoiced, quoteRepo.quotes[quoteID].Status)
}

func TestConvertToInvoiceTwiceFails(t *testing.T) {
	svc, _, _, _ := newQuoteServiceFixture()
	userID := uuid.New()
	quoteID := approvedQuote(t, svc, userID)

	_, err := svc.ConvertToInvoice(context.Background(), userID, quoteID)
	require.NoError(t, err)

	_, err = svc.ConvertToInvoice(context.Background(), userID, quoteID)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)
}

func TestConvertUnapprovedQuoteFails(t *testing.T) {
	svc, _, _, _ := newQuoteServiceFixture()
	userID := uuid.New()

	quote, err := svc.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:    userID,
		QuoteDate: time.Now(),
		Items: []QuoteItemInput{
			{Description: "Line", Quantity: 1, UnitPrice: mustDecimal(t, "100")},
		},
	})
	require.NoError(t, err)

	_, err = svc.ConvertToInvoice(context.Background(), userID, quote.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)
}

func TestDeleteInvoicedQuoteFails(t *testing.T) {
	svc, _, _, _ := newQuoteServiceFixture()
	userID := uuid.New()
	quoteID := approvedQuote(t, svc, userID)

	_, err := svc.ConvertToInvoice(context.Background(), userID, quoteID)
	require.NoError(t, err)

	err = svc.DeleteQuote(context.Background(), userID, quoteID)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)
}

func TestQuoteOwnershipEnforced(t *testing.T) {
	svc, _, _, _ := newQuoteServiceFixture()
	owner := uuid.New()
	stranger := uuid.New()

	quote, err := svc.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:    owner,
		QuoteDate: time.Now(),
		Items: []QuoteItemInput{
			{Description: "Line", Quantity: 1, UnitPrice: mustDecimal(t, "100")},
		},
	})
	require.NoError(t, err)

	_, err = svc.GetQuote(context.Background(), stranger, quote.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apperror.GetAppError(err).Code)
}
