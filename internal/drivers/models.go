package drivers

import (
	"time"

	"github.com/google/uuid"
)

// Driver is company staff licensed to operate buses. A driver may be
// linked to a login account for self-service trip views.
type Driver struct {
	ID            uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	CompanyID     uuid.UUID  `json:"company_id" gorm:"type:uuid;not null;index"`
	UserID        *uuid.UUID `json:"user_id" gorm:"type:uuid;uniqueIndex"`
	FirstName     string     `json:"first_name" gorm:"not null;size:100"`
	LastName      string     `json:"last_name" gorm:"not null;size:100"`
	DocumentID    string     `json:"document_id" gorm:"not null;size:50;uniqueIndex"`
	LicenseNumber string     `json:"license_number" gorm:"not null;size:50;uniqueIndex"`
	LicenseClass  string     `json:"license_class" gorm:"size:10"`
	LicenseExpiry time.Time  `json:"license_expiry" gorm:"not null"`
	Phone         string     `json:"phone" gorm:"size:30"`
	IsActive      bool       `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (Driver) TableName() string {
	return "drivers"
}

// LicenseValidOn reports whether the driver's license covers the given day.
func (d *Driver) LicenseValidOn(day time.Time) bool {
	return !d.LicenseExpiry.Before(day.Truncate(24 * time.Hour))
}

type CreateDriverRequest struct {
	FirstName     string  `json:"first_name" binding:"required,min=2,max=100"`
	LastName      string  `json:"last_name" binding:"required,min=2,max=100"`
	DocumentID    string  `json:"document_id" binding:"required,min=4,max=50"`
	LicenseNumber string  `json:"license_number" binding:"required,min=4,max=50"`
	LicenseClass  string  `json:"license_class" binding:"max=10"`
	LicenseExpiry string  `json:"license_expiry" binding:"required"` // YYYY-MM-DD
	Phone         string  `json:"phone" binding:"max=30"`
	UserID        *string `json:"user_id" binding:"omitempty,uuid"`
}

type UpdateDriverRequest struct {
	FirstName     *string `json:"first_name" binding:"omitempty,min=2,max=100"`
	LastName      *string `json:"last_name" binding:"omitempty,min=2,max=100"`
	LicenseNumber *string `json:"license_number" binding:"omitempty,min=4,max=50"`
	LicenseClass  *string `json:"license_class" binding:"omitempty,max=10"`
	LicenseExpiry *string `json:"license_expiry"` // YYYY-MM-DD
	Phone         *string `json:"phone" binding:"omitempty,max=30"`
	IsActive      *bool   `json:"is_active"`
}
