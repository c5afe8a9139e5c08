package companies

import (
	"time"

	"github.com/google/uuid"
)

// Company is a bus operator. All fleet, route, staffing and financial
// records hang off a company; users carry a company scope for access checks.
type Company struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name         string    `json:"name" gorm:"not null;size:255"`
	LegalName    string    `json:"legal_name" gorm:"size:255"`
	TaxID        string    `json:"tax_id" gorm:"size:50;uniqueIndex"`
	ContactEmail string    `json:"contact_email" gorm:"size:255"`
	ContactPhone string    `json:"contact_phone" gorm:"size:30"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Branches []Branch `json:"branches,omitempty" gorm:"foreignKey:CompanyID"`
}

func (Company) TableName() string {
	return "companies"
}

// Branch is a company office at a location. Tickets and parcels record the
// branch where they were sold or received for the liquidation rollups.
type Branch struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	CompanyID  uuid.UUID  `json:"company_id" gorm:"type:uuid;not null;index"`
	LocationID *uuid.UUID `json:"location_id" gorm:"type:uuid;index"`
	Name       string     `json:"name" gorm:"not null;size:255"`
	Phone      string     `json:"phone" gorm:"size:30"`
	IsActive   bool       `json:"is_active" gorm:"default:true"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (Branch) TableName() string {
	return "branches"
}
