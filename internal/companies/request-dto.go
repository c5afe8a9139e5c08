package companies

type CreateCompanyRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=255"`
	LegalName    string `json:"legal_name" binding:"max=255"`
	TaxID        string `json:"tax_id" binding:"max=50"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone string `json:"contact_phone" binding:"max=30"`
}

type UpdateCompanyRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=2,max=255"`
	LegalName    *string `json:"legal_name" binding:"omitempty,max=255"`
	ContactEmail *string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone *string `json:"contact_phone" binding:"omitempty,max=30"`
	IsActive     *bool   `json:"is_active"`
}

type CreateBranchRequest struct {
	Name       string  `json:"name" binding:"required,min=2,max=255"`
	LocationID *string `json:"location_id" binding:"omitempty,uuid"`
	Phone      string  `json:"phone" binding:"max=30"`
}

type UpdateBranchRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=2,max=255"`
	LocationID *string `json:"location_id" binding:"omitempty,uuid"`
	Phone      *string `json:"phone" binding:"omitempty,max=30"`
	IsActive   *bool   `json:"is_active"`
}
