package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/billcraft/billcraft-api/internal/domain/enum"
)

// Invoice is the billing document generated from exactly one approved quote.
// The financial fields are copied from the quote at conversion time and are
// never recomputed afterwards; the quote_id unique index is what makes the
// conversion idempotent under double submission.
type Invoice struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	ClientID      *uuid.UUID `gorm:"type:uuid;index" json:"client_id,omitempty"`
	QuoteID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"quote_id"`
	InvoiceNumber string     `gorm:"size:100;unique;not null" json:"invoice_number"`
	InvoiceDate   time.Time  `gorm:"type:date;not null" json:"invoice_date"`
	DueDate       time.Time  `gorm:"type:date;not null" json:"due_date"`

	SubTotal        decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"sub_total"`
	DiscountAmount  decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"discount_amount"`
	CGSTAmount      decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"cgst_amount"`
	SGSTAmount      decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"sgst_amount"`
	IGSTAmount      decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"igst_amount"`
	ShippingCharges decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"shipping_charges"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"total_amount"`

	PaymentStatus enum.PaymentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"payment_status"`
	PaidAmount    decimal.Decimal    `gorm:"type:decimal(15,2);default:0" json:"paid_amount"`

	Notes *string `gorm:"type:text" json:"notes,omitempty"`
	Terms *string `gorm:"type:text" json:"terms,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User     User                  `gorm:"foreignKey:UserID" json:"-"`
	Client   *Client               `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Quote    Quote                 `gorm:"foreignKey:QuoteID" json:"-"`
	Items    []InvoiceItem         `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`
	Payments []PaymentHistoryEntry `gorm:"foreignKey:InvoiceID" json:"payments,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// Outstanding returns total minus paid. It may legitimately be negative
// under overpayment; callers choose whether to zero-floor for display.
func (i *Invoice) Outstanding() decimal.Decimal {
	return i.TotalAmount.Sub(i.PaidAmount)
}

// IsOverdue reports whether the invoice is unpaid past its due date.
// Overdue is derived, never stored.
func (i *Invoice) IsOverdue(now time.Time) bool {
	return i.PaymentStatus != enum.PaymentStatusPaid && now.After(i.DueDate)
}

// InvoiceItem is a line item copied from the source quote at conversion time.
type InvoiceItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"invoice_id"`
	Description string          `gorm:"size:500;not null" json:"description"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	SubTotal    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"sub_total"`
	Position    int             `gorm:"not null;default:0" json:"position"`
	CreatedAt   time.Time       `json:"created_at"`

	// Relationships
	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new invoice item
func (ii *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if ii.ID == uuid.Nil {
		ii.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}
