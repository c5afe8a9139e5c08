package locations

import (
	"time"

	"github.com/google/uuid"
)

// Location is a terminal or stop served by one or more routes.
type Location struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name      string    `json:"name" gorm:"not null;size:255"`
	City      string    `json:"city" gorm:"not null;size:100;index"`
	Region    string    `json:"region" gorm:"size:100"`
	Address   string    `json:"address" gorm:"size:500"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Location) TableName() string {
	return "locations"
}

type CreateLocationRequest struct {
	Name      string  `json:"name" binding:"required,min=2,max=255"`
	City      string  `json:"city" binding:"required,min=2,max=100"`
	Region    string  `json:"region" binding:"max=100"`
	Address   string  `json:"address" binding:"max=500"`
	Latitude  float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
}

type UpdateLocationRequest struct {
	Name      *string  `json:"name" binding:"omitempty,min=2,max=255"`
	City      *string  `json:"city" binding:"omitempty,min=2,max=100"`
	Region    *string  `json:"region" binding:"omitempty,max=100"`
	Address   *string  `json:"address" binding:"omitempty,max=500"`
	Latitude  *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	IsActive  *bool    `json:"is_active"`
}
