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

func newInvoiceServiceFixture(t *testing.T, userID uuid.UUID, total string) (*InvoiceService, *fakeInvoiceRepo, *fakePaymentRepo, uuid.UUID) {
	t.Helper()
	itemRepo := &fakeQuoteItemRepo{}
	quoteRepo := newFakeQuoteRepo(itemRepo)
	invoiceRepo := newFakeInvoiceRepo(quoteRepo)
	paymentRepo := &fakePaymentRepo{}

	invoiceID := uuid.New()
	invoiceRepo.invoices[invoiceID] = &entity.Invoice{
		ID:            invoiceID,
		UserID:        userID,
		QuoteID:       uuid.New(),
		InvoiceNumber: "INV-000001",
		InvoiceDate:   time.Now(),
		DueDate:       time.Now().AddDate(0, 0, 30),
		TotalAmount:   mustDecimal(t, total),
		PaymentStatus: enum.PaymentStatusPending,
		PaidAmount:    decimal.Zero,
	}

	return NewInvoiceService(invoiceRepo, paymentRepo), invoiceRepo, paymentRepo, invoiceID
}

func TestRecordPaymentPartial(t *testing.T) {
	userID := uuid.New()
	svc, _, _, invoiceID := newInvoiceServiceFixture(t, userID, "1112")

	result, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
		UserID:      userID,
		InvoiceID:   invoiceID,
		Amount:      mustDecimal(t, "500"),
		Method:      enum.PaymentMethodBankTransfer,
		PaymentDate: time.Now(),
	})
	require.NoError(t, err)

	assert.True(t, result.Invoice.PaidAmount.Equal(mustDecimal(t, "500")))
	assert.Equal(t, enum.PaymentStatusPartial, result.RecommendedStatus)
	assert.Empty(t, result.Warning)
	assert.True(t, result.Invoice.Outstanding().Equal(mustDecimal(t, "612")))
}

func TestRecordPaymentSettlesInFull(t *testing.T) {
	userID := uuid.New()
	svc, _, _, invoiceID := newInvoiceServiceFixture(t, userID, "1112")

	result, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
		UserID:      userID,
		InvoiceID:   invoiceID,
		Amount:      mustDecimal(t, "1112"),
		Method:      enum.PaymentMethodUPI,
		PaymentDate: time.Now(),
	})
	require.NoError(t, err)

	assert.Equal(t, enum.PaymentStatusPaid, result.RecommendedStatus)
	assert.Empty(t, result.Warning)
	assert.True(t, result.Invoice.Outstanding().IsZero())
}

func TestRecordPaymentOverpaymentWarns(t *testing.T) {
	userID := uuid.New()
	svc, _, _, invoiceID := newInvoiceServiceFixture(t, userID, "1112")

	result, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
		UserID:      userID,
		InvoiceID:   invoiceID,
		Amount:      mustDecimal(t, "1200"),
		Method:      enum.PaymentMethodCash,
		PaymentDate: time.Now(),
	})
	require.NoError(t, err)

	assert.Equal(t, enum.PaymentStatusPaid, result.RecommendedStatus)
	assert.NotEmpty(t, result.Warning)
	assert.True(t, result.Invoice.Outstanding().Equal(mustDecimal(t, "-88")),
		"outstanding %s", result.Invoice.Outstanding())
}

func TestRecordPaymentRejectsNonPositiveAmounts(t *testing.T) {
	userID := uuid.New()
	svc, _, paymentRepo, invoiceID := newInvoiceServiceFixture(t, userID, "1112")

	for _, amount := range []string{"0", "-10"} {
		_, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
			UserID:      userID,
			InvoiceID:   invoiceID,
			Amount:      mustDecimal(t, amount),
			Method:      enum.PaymentMethodCash,
			PaymentDate: time.Now(),
		})
		require.Error(t, err, "amount %s", amount)
		assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
	}

	// the ledger was never touched
	assert.Empty(t, paymentRepo.entries)
}

func TestDeletePaymentRederivesFromLedger(t *testing.T) {
	userID := uuid.New()
	svc, _, paymentRepo, invoiceID := newInvoiceServiceFixture(t, userID, "1112")

	first, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
		UserID:      userID,
		InvoiceID:   invoiceID,
		Amount:      mustDecimal(t, "400"),
		Method:      enum.PaymentMethodCheck,
		PaymentDate: time.Now(),
	})
	require.NoError(t, err)
	_ = first

	_, err = svc.RecordPayment(context.Background(), &RecordPaymentInput{
		UserID:      userID,
		InvoiceID:   invoiceID,
		Amount:      mustDecimal(t, "300"),
		Method:      enum.PaymentMethodCash,
		PaymentDate: time.Now(),
	})
	require.NoError(t, err)

	require.Len(t, paymentRepo.entries, 2)
	firstEntryID := paymentRepo.entries[0].ID

	result, err := svc.DeletePayment(context.Background(), userID, firstEntryID)
	require.NoError(t, err)

	assert.True(t, result.Invoice.PaidAmount.Equal(mustDecimal(t, "300")),
		"paid %s", result.Invoice.PaidAmount)
	assert.Equal(t, enum.PaymentStatusPartial, result.RecommendedStatus)
}

func TestUpdatePaymentStatusOverride(t *testing.T) {
	userID := uuid.New()
	svc, invoiceRepo, _, invoiceID := newInvoiceServiceFixture(t, userID, "1112")

	invoice, err := svc.UpdatePaymentStatus(context.Background(), userID, invoiceID, enum.PaymentStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, enum.PaymentStatusPaid, invoice.PaymentStatus)
	assert.Equal(t, enum.PaymentStatusPaid, invoiceRepo.invoices[invoiceID].PaymentStatus)

	_, err = svc.UpdatePaymentStatus(context.Background(), userID, invoiceID, enum.PaymentStatus("overdue"))
	require.Error(t, err)
}

func TestInvoiceOverdueIsDerived(t *testing.T) {
	now := time.Now()
	invoice := &entity.Invoice{
		DueDate:       now.AddDate(0, 0, -1),
		PaymentStatus: enum.PaymentStatusPartial,
	}
	assert.True(t, invoice.IsOverdue(now))

	invoice.PaymentStatus = enum.PaymentStatusPaid
	assert.False(t, invoice.IsOverdue(now))

	invoice.PaymentStatus = enum.PaymentStatusPending
	invoice.DueDate = now.AddDate(0, 0, 1)
	assert.False(t, invoice.IsOverdue(now))
}

func TestRecommendPaymentStatus(t *testing.T) {
	total := decimal.NewFromInt(100)

	assert.Equal(t, enum.PaymentStatusPending, RecommendPaymentStatus(total, decimal.Zero))
	assert.Equal(t, enum.PaymentStatusPartial, RecommendPaymentStatus(total, decimal.NewFromInt(40)))
	assert.Equal(t, enum.PaymentStatusPaid, RecommendPaymentStatus(total, decimal.NewFromInt(100)))
	assert.Equal(t, enum.PaymentStatusPaid, RecommendPaymentStatus(total, decimal.NewFromInt(150)))
}
