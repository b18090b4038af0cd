package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/billcraft/billcraft-api/internal/domain/enum"
	"github.com/billcraft/billcraft-api/internal/domain/repository"
)

// DashboardService provides dashboard statistics
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository) *DashboardService {
	return &DashboardService{analyticsRepo: analyticsRepo}
}

// DashboardStats represents dashboard statistics
type DashboardStats struct {
	TotalClients    int64            `json:"total_clients"`
	TotalQuotes     int64            `json:"total_quotes"`
	TotalInvoices   int64            `json:"total_invoices"`
	QuotesByStatus  map[string]int64 `json:"quotes_by_status"`
	ConversionRate  float64          `json:"conversion_rate"`
	TotalInvoiced   decimal.Decimal  `json:"total_invoiced"`
	TotalCollected  decimal.Decimal  `json:"total_collected"`
	Outstanding     decimal.Decimal  `json:"outstanding"`
	OverdueInvoices int64            `json:"overdue_invoices"`
	MonthlyRevenue  []MonthlyPoint   `json:"monthly_revenue"`
	TopClients      []TopClientPoint `json:"top_clients"`
}

// MonthlyPoint represents one month of invoiced vs collected revenue
type MonthlyPoint struct {
	Month     string          `json:"month"`
	Invoiced  decimal.Decimal `json:"invoiced"`
	Collected decimal.Decimal `json:"collected"`
}

// TopClientPoint represents a client's billed volume
type TopClientPoint struct {
	ClientID     uuid.UUID       `json:"client_id"`
	ClientName   string          `json:"client_name"`
	TotalBilled  decimal.Decimal `json:"total_billed"`
	InvoiceCount int64           `json:"invoice_count"`
}

// GetDashboardStats returns dashboard statistics for the user
func (s *DashboardService) GetDashboardStats(ctx context.Context, userID uuid.UUID) (*DashboardStats, error) {
	stats := &DashboardStats{
		QuotesByStatus: make(map[string]int64),
		TotalInvoiced:  decimal.Zero,
		TotalCollected: decimal.Zero,
	}

	clientCount, err := s.analyticsRepo.CountClients(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats.TotalClients = clientCount

	statusCounts, err := s.analyticsRepo.CountQuotesByStatus(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, sc := range statusCounts {
		stats.QuotesByStatus[string(sc.Status)] = sc.Count
		stats.TotalQuotes += sc.Count
	}
	if stats.TotalQuotes > 0 {
		stats.ConversionRate = float64(stats.QuotesByStatus[string(enum.QuoteStatusInvoiced)]) /
			float64(stats.TotalQuotes) * 100
	}

	invoiceCount, err := s.analyticsRepo.CountInvoices(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats.TotalInvoices = invoiceCount

	invoiced, err := s.analyticsRepo.TotalInvoiced(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats.TotalInvoiced = invoiced

	collected, err := s.analyticsRepo.TotalCollected(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats.TotalCollected = collected
	stats.Outstanding = invoiced.Sub(collected)

	overdue, err := s.analyticsRepo.CountOverdueInvoices(ctx, userID, time.Now())
	if err != nil {
		return nil, err
	}
	stats.OverdueInvoices = overdue

	monthly, err := s.analyticsRepo.MonthlyRevenue(ctx, userID, 12)
	if err != nil {
		return nil, err
	}
	stats.MonthlyRevenue = make([]MonthlyPoint, 0, len(monthly))
	for _, m := range monthly {
		stats.MonthlyRevenue = append(stats.MonthlyRevenue, MonthlyPoint{
			Month:     m.Month.Format("Jan 2006"),
			Invoiced:  m.Invoiced,
			Collected: m.Collected,
		})
	}

	top, err := s.analyticsRepo.TopClients(ctx, userID, 5)
	if err != nil {
		return nil, err
	}
	stats.TopClients = make([]TopClientPoint, 0, len(top))
	for _, t := range top {
		stats.TopClients = append(stats.TopClients, TopClientPoint{
			ClientID:     t.ClientID,
			ClientName:   t.ClientName,
			TotalBilled:  t.TotalBilled,
			InvoiceCount: t.InvoiceCount,
		})
	}

	return stats, nil
}
