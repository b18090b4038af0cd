package request

// CreateClientRequest represents a client creation request
type CreateClientRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=255"`
	CompanyName *string `json:"company_name" binding:"omitempty,max=255"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone" binding:"omitempty,max=50"`
	GSTIN       *string `json:"gstin" binding:"omitempty,max=20"`
	Address     *string `json:"address"`
	City        *string `json:"city" binding:"omitempty,max=100"`
	State       *string `json:"state" binding:"omitempty,max=100"`
	Pincode     *string `json:"pincode" binding:"omitempty,max=20"`
}

// UpdateClientRequest represents a client update request
type UpdateClientRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=255"`
	CompanyName *string `json:"company_name" binding:"omitempty,max=255"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone" binding:"omitempty,max=50"`
	GSTIN       *string `json:"gstin" binding:"omitempty,max=20"`
	Address     *string `json:"address"`
	City        *string `json:"city" binding:"omitempty,max=100"`
	State       *string `json:"state" binding:"omitempty,max=100"`
	Pincode     *string `json:"pincode" binding:"omitempty,max=20"`
}

// ClientFilterRequest represents client filter parameters
type ClientFilterRequest struct {
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
