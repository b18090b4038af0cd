package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/billcraft/billcraft-api/internal/domain/entity"
	domainRepo "github.com/billcraft/billcraft-api/internal/domain/repository"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) CountClients(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Client{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *analyticsRepository) CountQuotesByStatus(ctx context.Context, userID uuid.UUID) ([]domainRepo.QuoteStatusCountResult, error) {
	var results []domainRepo.QuoteStatusCountResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) as count
		FROM quotes
		WHERE user_id = ? AND deleted_at IS NULL
		GROUP BY status
	`, userID).Scan(&results).Error

	return results, err
}

func (r *analyticsRepository) CountInvoices(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *analyticsRepository) TotalInvoiced(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_amount), 0)
		FROM invoices
		WHERE user_id = ? AND deleted_at IS NULL
	`, userID).Scan(&total).Error
	if err != nil || !total.Valid {
		return decimal.Zero, err
	}
	return total.Decimal, nil
}

func (r *analyticsRepository) TotalCollected(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(ph.amount), 0)
		FROM payment_history ph
		JOIN invoices i ON i.id = ph.invoice_id
		WHERE i.user_id = ? AND i.deleted_at IS NULL
	`, userID).Scan(&total).Error
	if err != nil || !total.Valid {
		return decimal.Zero, err
	}
	return total.Decimal, nil
}

func (r *analyticsRepository) CountOverdueInvoices(ctx context.Context, userID uuid.UUID, asOf time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Where("user_id = ? AND payment_status <> ? AND due_date < ?", userID, "paid", asOf).
		Count(&count).Error
	return count, err
}

func (r *analyticsRepository) MonthlyRevenue(ctx context.Context, userID uuid.UUID, months int) ([]domainRepo.MonthlyRevenueResult, error) {
	var results []domainRepo.MonthlyRevenueResult

	since := time.Now().AddDate(0, -months, 0)
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			date_trunc('month', i.invoice_date) as month,
			COALESCE(SUM(i.total_amount), 0) as invoiced,
			COALESCE((
				SELECT SUM(ph.amount)
				FROM payment_history ph
				JOIN invoices pi ON pi.id = ph.invoice_id
				WHERE pi.user_id = i.user_id
				AND date_trunc('month', ph.payment_date) = date_trunc('month', i.invoice_date)
			), 0) as collected
		FROM invoices i
		WHERE i.user_id = ? AND i.deleted_at IS NULL AND i.invoice_date >= ?
		GROUP BY date_trunc('month', i.invoice_date), i.user_id
		ORDER BY month ASC
	`, userID, since).Scan(&results).Error

	return results, err
}

func (r *analyticsRepository) TopClients(ctx context.Context, userID uuid.UUID, limit int) ([]domainRepo.TopClientResult, error) {
	var results []domainRepo.TopClientResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			c.id as client_id,
			c.name as client_name,
			COALESCE(SUM(i.total_amount), 0) as total_billed,
			COUNT(i.id) as invoice_count
		FROM invoices i
		JOIN clients c ON c.id = i.client_id
		WHERE i.user_id = ? AND i.deleted_at IS NULL
		GROUP BY c.id, c.name
		ORDER BY total_billed DESC
		LIMIT ?
	`, userID, limit).Scan(&results).Error

	return results, err
}
