package customers

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a passenger or parcel sender/recipient identified by a
// national document. Customers are deduplicated by document ID so ticket
// and parcel history accumulates on one record.
type Customer struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	FirstName  string    `json:"first_name" gorm:"not null;size:100"`
	LastName   string    `json:"last_name" gorm:"not null;size:100"`
	DocumentID string    `json:"document_id" gorm:"not null;size:50;uniqueIndex"`
	Phone      string    `json:"phone" gorm:"size:30"`
	Email      string    `json:"email" gorm:"size:255"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Customer) TableName() string {
	return "customers"
}

func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

type UpsertCustomerRequest struct {
	FirstName  string `json:"first_name" binding:"required,min=2,max=100"`
	LastName   string `json:"last_name" binding:"required,min=2,max=100"`
	DocumentID string `json:"document_id" binding:"required,min=4,max=50"`
	Phone      string `json:"phone" binding:"max=30"`
	Email      string `json:"email" binding:"omitempty,email"`
}
