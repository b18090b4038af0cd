package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/billcraft/billcraft-api/internal/domain/enum"
)

// Quote represents a priced proposal sent to a client before sale.
// All monetary fields are stored as exact decimals; the derived fields
// (subtotal, discount, taxes, total) are written by the pricing calculator
// and must satisfy total = taxable + cgst + sgst + igst + shipping.
type Quote struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	ClientID    *uuid.UUID `gorm:"type:uuid;index" json:"client_id,omitempty"`
	QuoteNumber string     `gorm:"size:100;unique;not null" json:"quote_number"`
	QuoteDate   time.Time  `gorm:"type:date;not null" json:"quote_date"`

	DiscountPercent decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"discount_percent"`
	CGSTPercent     decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"cgst_percent"`
	SGSTPercent     decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"sgst_percent"`
	IGSTPercent     decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"igst_percent"`

	SubTotal        decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"sub_total"`
	DiscountAmount  decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"discount_amount"`
	CGSTAmount      decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"cgst_amount"`
	SGSTAmount      decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"sgst_amount"`
	IGSTAmount      decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"igst_amount"`
	ShippingCharges decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"shipping_charges"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"total_amount"`

	Status       enum.QuoteStatus `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	ValidityDays int              `gorm:"default:30" json:"validity_days"`
	Notes        *string          `gorm:"type:text" json:"notes,omitempty"`
	Terms        *string          `gorm:"type:text" json:"terms,omitempty"`

	// Optional structured sub-sections (bill of materials, SLA, timeline)
	// rendered as extra pages on the PDF.
	Sections datatypes.JSON `gorm:"type:jsonb" json:"sections,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User   User        `gorm:"foreignKey:UserID" json:"-"`
	Client *Client     `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Items  []QuoteItem `gorm:"foreignKey:QuoteID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new quote
func (q *Quote) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Quote model
func (Quote) TableName() string {
	return "quotes"
}

// ValidUntil returns the end of the quote's validity window.
func (q *Quote) ValidUntil() time.Time {
	return q.QuoteDate.AddDate(0, 0, q.ValidityDays)
}

// QuoteItem represents a line item in a quote. Items are owned exclusively
// by one quote and are deleted and recreated wholesale on quote edit.
type QuoteItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	QuoteID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"quote_id"`
	Description string          `gorm:"size:500;not null" json:"description"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	SubTotal    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"sub_total"`
	Position    int             `gorm:"not null;default:0" json:"position"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Relationships
	Quote Quote `gorm:"foreignKey:QuoteID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new quote item
func (qi *QuoteItem) BeforeCreate(tx *gorm.DB) error {
	if qi.ID == uuid.Nil {
		qi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the QuoteItem model
func (QuoteItem) TableName() string {
	return "quote_items"
}
