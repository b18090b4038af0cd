package request

// UpdateCompanyProfileRequest represents a company profile update request
type UpdateCompanyProfileRequest struct {
	CompanyName         string  `json:"company_name" binding:"required,min=2,max=255"`
	GSTIN               *string `json:"gstin" binding:"omitempty,max=20"`
	Email               *string `json:"email" binding:"omitempty,email"`
	Phone               *string `json:"phone" binding:"omitempty,max=50"`
	Address             *string `json:"address"`
	City                *string `json:"city" binding:"omitempty,max=100"`
	State               *string `json:"state" binding:"omitempty,max=100"`
	Pincode             *string `json:"pincode" binding:"omitempty,max=20"`
	Currency            string  `json:"currency" binding:"omitempty,max=10"`
	QuoteValidityDays   int     `json:"quote_validity_days" binding:"omitempty,min=1,max=365"`
	InvoiceDueDays      int     `json:"invoice_due_days" binding:"omitempty,min=1,max=365"`
	DefaultQuoteTerms   *string `json:"default_quote_terms"`
	DefaultInvoiceTerms *string `json:"default_invoice_terms"`
	BankAccountName     *string `json:"bank_account_name" binding:"omitempty,max=255"`
	BankAccountNumber   *string `json:"bank_account_number" binding:"omitempty,max=100"`
	BankName            *string `json:"bank_name" binding:"omitempty,max=255"`
	BankIFSC            *string `json:"bank_ifsc" binding:"omitempty,max=20"`
}
