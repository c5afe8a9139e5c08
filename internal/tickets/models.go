package tickets

import (
	"time"

	"github.com/google/uuid"
)

// Ticket statuses
const (
	StatusActive    = "ACTIVE"
	StatusCancelled = "CANCELLED"
	StatusUsed      = "USED"
)

// Ticket reserves one bus seat on one schedule. At most one ACTIVE
// ticket may exist per (schedule, seat) pair; the partial unique index
// ux_tickets_schedule_seat_active enforces this under concurrency.
// Tickets are never hard-deleted.
type Ticket struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	ScheduleID   uuid.UUID  `json:"schedule_id" gorm:"type:uuid;not null;index"`
	BusSeatID    uuid.UUID  `json:"bus_seat_id" gorm:"type:uuid;not null;index"`
	CustomerID   *uuid.UUID `json:"customer_id" gorm:"type:uuid;index"`
	BranchID     *uuid.UUID `json:"branch_id" gorm:"type:uuid;index"`
	SoldByUserID *uuid.UUID `json:"sold_by_user_id" gorm:"type:uuid"`
	Price        float64    `json:"price" gorm:"not null"`
	Status       string     `json:"status" gorm:"not null;default:'ACTIVE';size:20"`
	Notes        string     `json:"notes" gorm:"size:500"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Ticket) TableName() string {
	return "tickets"
}

// TicketCancellation is the append-only audit row written in the same
// transaction as the status change it documents.
type TicketCancellation struct {
	ID                uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	TicketID          uuid.UUID  `json:"ticket_id" gorm:"type:uuid;not null;index"`
	Reason            string     `json:"reason" gorm:"not null;size:500"`
	CancelledByUserID *uuid.UUID `json:"cancelled_by_user_id" gorm:"type:uuid"`
	CreatedAt         time.Time  `json:"created_at"`
}

func (TicketCancellation) TableName() string {
	return "ticket_cancellations"
}

// TicketReassignment records a move of an active ticket to a new
// (schedule, seat) pair, capturing both sides of the move.
type TicketReassignment struct {
	ID               uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	TicketID         uuid.UUID  `json:"ticket_id" gorm:"type:uuid;not null;index"`
	OldScheduleID    uuid.UUID  `json:"old_schedule_id" gorm:"type:uuid;not null"`
	OldBusSeatID     uuid.UUID  `json:"old_bus_seat_id" gorm:"type:uuid;not null"`
	NewScheduleID    uuid.UUID  `json:"new_schedule_id" gorm:"type:uuid;not null"`
	NewBusSeatID     uuid.UUID  `json:"new_bus_seat_id" gorm:"type:uuid;not null"`
	Reason           string     `json:"reason" gorm:"size:500"`
	ReassignedByUser *uuid.UUID `json:"reassigned_by_user_id" gorm:"type:uuid;column:reassigned_by_user_id"`
	CreatedAt        time.Time  `json:"created_at"`
}

func (TicketReassignment) TableName() string {
	return "ticket_reassignments"
}
