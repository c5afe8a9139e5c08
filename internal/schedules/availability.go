package schedules

import (
	"sort"

	"buslink/internal/fleet"

	"github.com/google/uuid"
)

// Seat states in an availability partition
const (
	SeatStateBooked    = "BOOKED"
	SeatStateAvailable = "AVAILABLE"
	SeatStateInactive  = "INACTIVE"
)

// ComputeAvailability partitions a bus's seats for one schedule.
// A seat is BOOKED when an active ticket holds it, INACTIVE when the
// seat itself is out of service, AVAILABLE otherwise. Inactive seats
// stay in the total so the occupancy rate reflects the physical bus.
func ComputeAvailability(schedule *Schedule, seats []fleet.BusSeat, bookedSeatIDs []uuid.UUID) *AvailabilityResponse {
	booked := make(map[uuid.UUID]bool, len(bookedSeatIDs))
	for _, id := range bookedSeatIDs {
		booked[id] = true
	}

	resp := &AvailabilityResponse{
		ScheduleID:     schedule.ID,
		ScheduleStatus: schedule.Status,
		TotalSeats:     len(seats),
		Seats:          make([]SeatAvailability, 0, len(seats)),
	}

	tiers := make(map[uuid.UUID]*TierAvailability)

	for _, seat := range seats {
		state := SeatStateAvailable
		switch {
		case booked[seat.ID]:
			state = SeatStateBooked
			resp.BookedCount++
		case seat.Status != fleet.SeatStatusActive:
			state = SeatStateInactive
			resp.InactiveCount++
		default:
			resp.AvailableCount++
		}

		entry := SeatAvailability{
			SeatID:     seat.ID,
			SeatNumber: seat.SeatNumber,
			TierID:     seat.SeatTierID,
			Floor:      seat.Floor,
			State:      state,
		}
		if seat.Tier != nil {
			entry.TierName = seat.Tier.Name
			entry.TierCode = seat.Tier.Code
		}
		resp.Seats = append(resp.Seats, entry)

		tier, ok := tiers[seat.SeatTierID]
		if !ok {
			tier = &TierAvailability{TierID: seat.SeatTierID}
			if seat.Tier != nil {
				tier.TierName = seat.Tier.Name
				tier.TierCode = seat.Tier.Code
			}
			tiers[seat.SeatTierID] = tier
		}
		tier.Total++
		switch state {
		case SeatStateBooked:
			tier.Booked++
		case SeatStateInactive:
			tier.Inactive++
		default:
			tier.Available++
		}
	}

	// Zero seats means zero occupancy, not a division error.
	if resp.TotalSeats > 0 {
		resp.OccupancyRate = float64(resp.BookedCount) / float64(resp.TotalSeats)
	}

	resp.ByTier = make([]TierAvailability, 0, len(tiers))
	for _, tier := range tiers {
		resp.ByTier = append(resp.ByTier, *tier)
	}
	sort.Slice(resp.ByTier, func(i, j int) bool {
		return resp.ByTier[i].TierCode < resp.ByTier[j].TierCode
	})

	return resp
}
