package finances

import (
	"time"

	"github.com/google/uuid"
)

// Liquidation statuses
const (
	StatusOpen     = "OPEN"
	StatusClosed   = "CLOSED"
	StatusApproved = "APPROVED"
)

// Liquidation is the post-trip financial reconciliation for one
// schedule: ticket and parcel income against itemized expenses. Totals
// are computed live while OPEN and frozen at close.
type Liquidation struct {
	ID               uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	ScheduleID       uuid.UUID  `json:"schedule_id" gorm:"type:uuid;not null"`
	Status           string     `json:"status" gorm:"not null;default:'OPEN';size:20"`
	TicketIncome     float64    `json:"ticket_income"`
	ParcelIncome     float64    `json:"parcel_income"`
	TotalExpenses    float64    `json:"total_expenses"`
	NetTotal         float64    `json:"net_total"`
	ClosedAt         *time.Time `json:"closed_at"`
	ClosedByUserID   *uuid.UUID `json:"closed_by_user_id" gorm:"type:uuid"`
	ApprovedAt       *time.Time `json:"approved_at"`
	ApprovedByUserID *uuid.UUID `json:"approved_by_user_id" gorm:"type:uuid"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	Expenses []LiquidationExpense `json:"expenses,omitempty" gorm:"foreignKey:LiquidationID"`
}

func (Liquidation) TableName() string {
	return "liquidations"
}

// LiquidationExpense is one cost item charged against a trip: fuel,
// tolls, per-diems and the like. Only addable while the liquidation is
// OPEN.
type LiquidationExpense struct {
	ID              uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	LiquidationID   uuid.UUID  `json:"liquidation_id" gorm:"type:uuid;not null;index"`
	Category        string     `json:"category" gorm:"not null;size:50"`
	Description     string     `json:"description" gorm:"size:500"`
	Amount          float64    `json:"amount" gorm:"not null"`
	CreatedByUserID *uuid.UUID `json:"created_by_user_id" gorm:"type:uuid"`
	CreatedAt       time.Time  `json:"created_at"`
}

func (LiquidationExpense) TableName() string {
	return "liquidation_expenses"
}

type AddExpenseRequest struct {
	Category    string  `json:"category" binding:"required,min=2,max=50"`
	Description string  `json:"description" binding:"max=500"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
}

// IncomeSummary is the aggregated revenue for a schedule.
type IncomeSummary struct {
	TicketIncome float64 `json:"ticket_income"`
	TicketCount  int64   `json:"ticket_count"`
	ParcelIncome float64 `json:"parcel_income"`
	ParcelCount  int64   `json:"parcel_count"`
}
