package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyProfile holds the issuing business's identity and document defaults.
// It feeds the PDF header/footer and the conversion defaults (due term,
// validity window); one profile per account.
type CompanyProfile struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`

	CompanyName string  `gorm:"size:255;not null" json:"company_name"`
	GSTIN       *string `gorm:"size:20;column:gstin" json:"gstin,omitempty"`
	Email       *string `gorm:"size:255" json:"email,omitempty"`
	Phone       *string `gorm:"size:50" json:"phone,omitempty"`
	Address     *string `gorm:"type:text" json:"address,omitempty"`
	City        *string `gorm:"size:100" json:"city,omitempty"`
	State       *string `gorm:"size:100" json:"state,omitempty"`
	Pincode     *string `gorm:"size:20" json:"pincode,omitempty"`

	// Document defaults
	Currency             string  `gorm:"size:10;default:'INR'" json:"currency"`
	QuoteValidityDays    int     `gorm:"default:30" json:"quote_validity_days"`
	InvoiceDueDays       int     `gorm:"default:30" json:"invoice_due_days"`
	DefaultQuoteTerms    *string `gorm:"type:text" json:"default_quote_terms,omitempty"`
	DefaultInvoiceTerms  *string `gorm:"type:text" json:"default_invoice_terms,omitempty"`
	BankAccountName      *string `gorm:"size:255" json:"bank_account_name,omitempty"`
	BankAccountNumber    *string `gorm:"size:100" json:"bank_account_number,omitempty"`
	BankName             *string `gorm:"size:255" json:"bank_name,omitempty"`
	BankIFSC             *string `gorm:"size:20;column:bank_ifsc" json:"bank_ifsc,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new profile
func (p *CompanyProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CompanyProfile model
func (CompanyProfile) TableName() string {
	return "company_profiles"
}
