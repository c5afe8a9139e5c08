package fleet

import (
	"time"

	"github.com/google/uuid"
)

// Bus statuses
const (
	BusStatusActive      = "ACTIVE"
	BusStatusMaintenance = "MAINTENANCE"
	BusStatusRetired     = "RETIRED"
)

// BusSeat statuses
const (
	SeatStatusActive      = "ACTIVE"
	SeatStatusInactive    = "INACTIVE"
	SeatStatusMaintenance = "MAINTENANCE"
)

// BusAssignment statuses
const (
	AssignmentStatusAssigned  = "ASSIGNED"
	AssignmentStatusCompleted = "COMPLETED"
	AssignmentStatusCancelled = "CANCELLED"
)

// SeatTier is a price class for seats (e.g. standard, semi-bed, bed).
// The multiplier scales the route base price for seats in the tier.
type SeatTier struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	CompanyID       uuid.UUID `json:"company_id" gorm:"type:uuid;not null;index;uniqueIndex:ux_seat_tiers_company_code"`
	Name            string    `json:"name" gorm:"not null;size:100"`
	Code            string    `json:"code" gorm:"not null;size:20;uniqueIndex:ux_seat_tiers_company_code"`
	PriceMultiplier float64   `json:"price_multiplier" gorm:"not null;default:1.0"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (SeatTier) TableName() string {
	return "seat_tiers"
}

// BusTemplate is a reusable seat layout. Applying it to a bus
// materializes one BusSeat per TemplateSeat.
type BusTemplate struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	CompanyID uuid.UUID `json:"company_id" gorm:"type:uuid;not null;index"`
	Name      string    `json:"name" gorm:"not null;size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Seats []TemplateSeat `json:"seats,omitempty" gorm:"foreignKey:TemplateID"`
}

func (BusTemplate) TableName() string {
	return "bus_templates"
}

type TemplateSeat struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	TemplateID uuid.UUID `json:"template_id" gorm:"type:uuid;not null;index;uniqueIndex:ux_template_seats_number"`
	SeatTierID uuid.UUID `json:"seat_tier_id" gorm:"type:uuid;not null"`
	SeatNumber string    `json:"seat_number" gorm:"not null;size:10;uniqueIndex:ux_template_seats_number"`
	Floor      int       `json:"floor" gorm:"default:1"`
	Row        int       `json:"row"`
	Column     string    `json:"column" gorm:"size:5"`
	CreatedAt  time.Time `json:"created_at"`
}

func (TemplateSeat) TableName() string {
	return "template_seats"
}

// Bus is a physical vehicle. Plate is unique within its company.
type Bus struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	CompanyID uuid.UUID `json:"company_id" gorm:"type:uuid;not null;index;uniqueIndex:ux_buses_company_plate"`
	Plate     string    `json:"plate" gorm:"not null;size:20;uniqueIndex:ux_buses_company_plate"`
	Model     string    `json:"model" gorm:"size:100"`
	Year      int       `json:"year"`
	Status    string    `json:"status" gorm:"not null;default:'ACTIVE';size:20"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Seats []BusSeat `json:"seats,omitempty" gorm:"foreignKey:BusID"`
}

func (Bus) TableName() string {
	return "buses"
}

// BusSeat is a bookable seat on a bus. Seats that have ever been
// ticketed are deactivated rather than deleted so history stays intact.
type BusSeat struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	BusID      uuid.UUID `json:"bus_id" gorm:"type:uuid;not null;index;uniqueIndex:ux_bus_seats_number"`
	SeatTierID uuid.UUID `json:"seat_tier_id" gorm:"type:uuid;not null;index"`
	SeatNumber string    `json:"seat_number" gorm:"not null;size:10;uniqueIndex:ux_bus_seats_number"`
	Floor      int       `json:"floor" gorm:"default:1"`
	Row        int       `json:"row"`
	Column     string    `json:"column" gorm:"size:5"`
	Status     string    `json:"status" gorm:"not null;default:'ACTIVE';size:20"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Tier *SeatTier `json:"tier,omitempty" gorm:"foreignKey:SeatTierID"`
}

func (BusSeat) TableName() string {
	return "bus_seats"
}

// BusAssignment links a schedule to the bus and crew operating it.
// Schedule transitions cascade the status here.
type BusAssignment struct {
	ID                uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	ScheduleID        uuid.UUID  `json:"schedule_id" gorm:"type:uuid;not null;index"`
	BusID             uuid.UUID  `json:"bus_id" gorm:"type:uuid;not null;index"`
	PrimaryDriverID   uuid.UUID  `json:"primary_driver_id" gorm:"type:uuid;not null"`
	SecondaryDriverID *uuid.UUID `json:"secondary_driver_id" gorm:"type:uuid"`
	Status            string     `json:"status" gorm:"not null;default:'ASSIGNED';size:20"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func (BusAssignment) TableName() string {
	return "bus_assignments"
}
