package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/billcraft/billcraft-api/internal/domain/entity"
	"github.com/billcraft/billcraft-api/internal/domain/enum"
	"github.com/billcraft/billcraft-api/pkg/pagination"
)

// QuoteRepository defines the interface for quote data operations
type QuoteRepository interface {
	Create(ctx context.Context, quote *entity.Quote) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Quote, error)
	// GetWithItems loads the quote together with its ordered line items and client.
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Quote, error)
	Update(ctx context.Context, quote *entity.Quote) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *QuoteFilterParams) ([]entity.Quote, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.QuoteStatus) error
	NextSequenceNumber(ctx context.Context) (int, error)
}

// QuoteFilterParams contains filtering parameters for quote queries
type QuoteFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.QuoteStatus
	ClientID   *uuid.UUID
	SortBy     string
	SortOrder  string
}

// QuoteItemRepository defines the interface for quote line item operations.
// Items are replaced wholesale on quote edit, so the only mutations are
// batch create and delete-by-quote.
type QuoteItemRepository interface {
	CreateBatch(ctx context.Context, items []entity.QuoteItem) error
	GetByQuoteID(ctx context.Context, quoteID uuid.UUID) ([]entity.QuoteItem, error)
	DeleteByQuoteID(ctx context.Context, quoteID uuid.UUID) error
}
