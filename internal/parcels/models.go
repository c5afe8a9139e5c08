package parcels

import (
	"time"

	"github.com/google/uuid"
)

// Parcel statuses
const (
	StatusReceived  = "RECEIVED"
	StatusInTransit = "IN_TRANSIT"
	StatusDelivered = "DELIVERED"
	StatusLost      = "LOST"
)

// validTransitions is the parcel progression. DELIVERED and LOST are
// terminal; LOST is reachable while the parcel is still moving.
var validTransitions = map[string][]string{
	StatusReceived:  {StatusInTransit, StatusLost},
	StatusInTransit: {StatusDelivered, StatusLost},
	StatusDelivered: {},
	StatusLost:      {},
}

// CanTransition reports whether a parcel may move between two statuses.
func CanTransition(from, to string) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Parcel is cargo shipped on a schedule. Unlike a ticket it occupies no
// seat, so there is no uniqueness invariant beyond the tracking code.
type Parcel struct {
	ID               uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	ScheduleID       uuid.UUID  `json:"schedule_id" gorm:"type:uuid;not null;index"`
	TrackingCode     string     `json:"tracking_code" gorm:"not null;size:30"`
	SenderCustomerID *uuid.UUID `json:"sender_customer_id" gorm:"type:uuid;index"`
	ReceiverName     string     `json:"receiver_name" gorm:"not null;size:200"`
	ReceiverPhone    string     `json:"receiver_phone" gorm:"size:30"`
	BranchID         *uuid.UUID `json:"branch_id" gorm:"type:uuid;index"`
	Description      string     `json:"description" gorm:"size:500"`
	WeightKG         float64    `json:"weight_kg"`
	Price            float64    `json:"price" gorm:"not null"`
	Status           string     `json:"status" gorm:"not null;default:'RECEIVED';size:20"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	StatusUpdates []ParcelStatusUpdate `json:"status_updates,omitempty" gorm:"foreignKey:ParcelID"`
}

func (Parcel) TableName() string {
	return "parcels"
}

// ParcelStatusUpdate is the append-only history row written in the same
// transaction as each status change, including the initial RECEIVED.
type ParcelStatusUpdate struct {
	ID              uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	ParcelID        uuid.UUID  `json:"parcel_id" gorm:"type:uuid;not null;index"`
	FromStatus      string     `json:"from_status" gorm:"size:20"`
	ToStatus        string     `json:"to_status" gorm:"not null;size:20"`
	Notes           string     `json:"notes" gorm:"size:500"`
	UpdatedByUserID *uuid.UUID `json:"updated_by_user_id" gorm:"type:uuid"`
	CreatedAt       time.Time  `json:"created_at"`
}

func (ParcelStatusUpdate) TableName() string {
	return "parcel_status_updates"
}

type CreateParcelRequest struct {
	SenderCustomerID *string  `json:"sender_customer_id" binding:"omitempty,uuid"`
	ReceiverName     string   `json:"receiver_name" binding:"required,min=2,max=200"`
	ReceiverPhone    string   `json:"receiver_phone" binding:"max=30"`
	BranchID         *string  `json:"branch_id" binding:"omitempty,uuid"`
	Description      string   `json:"description" binding:"max=500"`
	WeightKG         float64  `json:"weight_kg" binding:"omitempty,gt=0"`
	Price            *float64 `json:"price" binding:"required,gt=0"`
}

type UpdateParcelStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=IN_TRANSIT DELIVERED LOST"`
	Notes  string `json:"notes" binding:"max=500"`
}
