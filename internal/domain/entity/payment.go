package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/billcraft/billcraft-api/internal/domain/enum"
)

// PaymentHistoryEntry is one row of an invoice's append-only payment ledger.
// The invoice's paid_amount is a cached sum over these rows and is always
// re-derived by summation after an insert or delete, never adjusted
// incrementally.
type PaymentHistoryEntry struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID     uuid.UUID          `gorm:"type:uuid;not null;index" json:"invoice_id"`
	Amount        decimal.Decimal    `gorm:"type:decimal(15,2);not null" json:"amount"`
	Method        enum.PaymentMethod `gorm:"type:varchar(20);not null" json:"method"`
	TransactionID *string            `gorm:"size:255" json:"transaction_id,omitempty"`
	Notes         *string            `gorm:"type:text" json:"notes,omitempty"`
	PaymentDate   time.Time          `gorm:"type:date;not null" json:"payment_date"`
	RecordedBy    uuid.UUID          `gorm:"type:uuid;not null" json:"recorded_by"`
	CreatedAt     time.Time          `json:"created_at"`

	// Relationships
	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
	User    User    `gorm:"foreignKey:RecordedBy" json:"-"`
}

// BeforeCreate generates a UUID before creating a new payment entry
func (p *PaymentHistoryEntry) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PaymentHistoryEntry model
func (PaymentHistoryEntry) TableName() string {
	return "payment_history"
}
