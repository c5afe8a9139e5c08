package users

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID  `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	FirstName string     `json:"first_name" gorm:"not null"`
	LastName  string     `json:"last_name" gorm:"not null"`
	Password  string     `json:"-" gorm:"not null"` // hide in json
	Role      Role       `json:"role" gorm:"not null;default:'CLERK'"`
	Email     string     `json:"email" gorm:"uniqueIndex;not null"`
	CompanyID *uuid.UUID `json:"company_id,omitempty" gorm:"type:uuid;index"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func IsValidRole(role string) bool {
	switch role {
	case string(RoleAdmin), string(RoleManager), string(RoleClerk), string(RoleDriver):
		return true
	default:
		return false
	}
}
