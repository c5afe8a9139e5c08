package schedules

import (
	"github.com/google/uuid"
)

// SeatAvailability is one seat in the availability partition.
type SeatAvailability struct {
	SeatID     uuid.UUID `json:"seat_id"`
	SeatNumber string    `json:"seat_number"`
	TierID     uuid.UUID `json:"tier_id"`
	TierName   string    `json:"tier_name,omitempty"`
	TierCode   string    `json:"tier_code,omitempty"`
	Floor      int       `json:"floor"`
	State      string    `json:"state"` // BOOKED, AVAILABLE or INACTIVE
}

// TierAvailability groups the partition per seat tier.
type TierAvailability struct {
	TierID    uuid.UUID `json:"tier_id"`
	TierName  string    `json:"tier_name,omitempty"`
	TierCode  string    `json:"tier_code,omitempty"`
	Total     int       `json:"total"`
	Booked    int       `json:"booked"`
	Available int       `json:"available"`
	Inactive  int       `json:"inactive"`
}

// AvailabilityResponse is the full availability picture for a schedule.
// OccupancyRate is bookedCount/totalSeats, defined as 0 for a bus with
// no seats.
type AvailabilityResponse struct {
	ScheduleID     uuid.UUID          `json:"schedule_id"`
	ScheduleStatus string             `json:"schedule_status"`
	TotalSeats     int                `json:"total_seats"`
	BookedCount    int                `json:"booked_count"`
	AvailableCount int                `json:"available_count"`
	InactiveCount  int                `json:"inactive_count"`
	OccupancyRate  float64            `json:"occupancy_rate"`
	Seats          []SeatAvailability `json:"seats"`
	ByTier         []TierAvailability `json:"by_tier"`
}
