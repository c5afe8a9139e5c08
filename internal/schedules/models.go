package schedules

import (
	"time"

	"github.com/google/uuid"
)

// TripLog event types
const (
	TripLogDeparture = "DEPARTURE"
	TripLogArrival   = "ARRIVAL"
	TripLogDelay     = "DELAY"
	TripLogCancel    = "CANCELLATION"
)

// Schedule is one dated trip: a route-schedule instantiated for a
// departure date with a bus and crew. Never deleted; cancellation is a
// status change.
type Schedule struct {
	ID                     uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	RouteScheduleID        uuid.UUID  `json:"route_schedule_id" gorm:"type:uuid;not null;index"`
	RouteID                uuid.UUID  `json:"route_id" gorm:"type:uuid;not null;index"`
	BusID                  uuid.UUID  `json:"bus_id" gorm:"type:uuid;not null;index"`
	PrimaryDriverID        uuid.UUID  `json:"primary_driver_id" gorm:"type:uuid;not null"`
	SecondaryDriverID      *uuid.UUID `json:"secondary_driver_id" gorm:"type:uuid"`
	DepartureDate          time.Time  `json:"departure_date" gorm:"type:date;not null;index"`
	EstimatedDepartureTime time.Time  `json:"estimated_departure_time" gorm:"not null"`
	EstimatedArrivalTime   *time.Time `json:"estimated_arrival_time"`
	ActualDepartureTime    *time.Time `json:"actual_departure_time"`
	ActualArrivalTime      *time.Time `json:"actual_arrival_time"`
	Price                  float64    `json:"price" gorm:"not null"`
	Status                 string     `json:"status" gorm:"not null;default:'SCHEDULED';size:20;index"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

func (Schedule) TableName() string {
	return "schedules"
}

// TripLog is an append-only operational record for a schedule:
// departures, arrivals, delays and cancellations with their location.
type TripLog struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	ScheduleID uuid.UUID  `json:"schedule_id" gorm:"type:uuid;not null;index"`
	EventType  string     `json:"event_type" gorm:"not null;size:20"`
	LocationID *uuid.UUID `json:"location_id" gorm:"type:uuid"`
	Notes      string     `json:"notes" gorm:"size:500"`
	LoggedAt   time.Time  `json:"logged_at" gorm:"not null"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (TripLog) TableName() string {
	return "trip_logs"
}
