package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/billcraft/billcraft-api/internal/domain/enum"
)

// MonthlyRevenueResult represents invoiced and collected revenue for one month
type MonthlyRevenueResult struct {
	Month     time.Time
	Invoiced  decimal.Decimal
	Collected decimal.Decimal
}

// QuoteStatusCountResult represents the number of quotes in one lifecycle state
type QuoteStatusCountResult struct {
	Status enum.QuoteStatus
	Count  int64
}

// TopClientResult represents a client's billed volume
type TopClientResult struct {
	ClientID     uuid.UUID
	ClientName   string
	TotalBilled  decimal.Decimal
	InvoiceCount int64
}

// AnalyticsRepository defines interface for dashboard aggregation queries
type AnalyticsRepository interface {
	// CountClients returns the number of active clients for the user
	CountClients(ctx context.Context, userID uuid.UUID) (int64, error)

	// CountQuotesByStatus returns quote counts grouped by lifecycle state
	CountQuotesByStatus(ctx context.Context, userID uuid.UUID) ([]QuoteStatusCountResult, error)

	// CountInvoices returns the total number of invoices for the user
	CountInvoices(ctx context.Context, userID uuid.UUID) (int64, error)

	// TotalInvoiced returns the sum of all invoice totals
	TotalInvoiced(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)

	// TotalCollected returns the sum of all recorded payments
	TotalCollected(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)

	// CountOverdueInvoices returns the number of unpaid invoices past due date
	CountOverdueInvoices(ctx context.Context, userID uuid.UUID, asOf time.Time) (int64, error)

	// MonthlyRevenue returns invoiced/collected sums per month for the last N months
	MonthlyRevenue(ctx context.Context, userID uuid.UUID, months int) ([]MonthlyRevenueResult, error)

	// TopClients returns the highest-billed clients
	TopClients(ctx context.Context, userID uuid.UUID, limit int) ([]TopClientResult, error)
}
