package schedules

import (
	"testing"

	"buslink/internal/fleet"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeSeats(tier *fleet.SeatTier, numbers ...string) []fleet.BusSeat {
	seats := make([]fleet.BusSeat, 0, len(numbers))
	for _, n := range numbers {
		seats = append(seats, fleet.BusSeat{
			ID:         uuid.New(),
			SeatTierID: tier.ID,
			SeatNumber: n,
			Status:     fleet.SeatStatusActive,
			Tier:       tier,
		})
	}
	return seats
}

func TestComputeAvailability(t *testing.T) {
	schedule := &Schedule{ID: uuid.New(), Status: StatusScheduled}
	standard := &fleet.SeatTier{ID: uuid.New(), Name: "Standard", Code: "STD"}
	bed := &fleet.SeatTier{ID: uuid.New(), Name: "Bed", Code: "BED"}

	t.Run("partitions seats into booked, available and inactive", func(t *testing.T) {
		seats := makeSeats(standard, "1", "2", "3", "4")
		seats[2].Status = fleet.SeatStatusInactive
		bookedIDs := []uuid.UUID{seats[0].ID}

		resp := ComputeAvailability(schedule, seats, bookedIDs)

		assert.Equal(t, 4, resp.TotalSeats)
		assert.Equal(t, 1, resp.BookedCount)
		assert.Equal(t, 2, resp.AvailableCount)
		assert.Equal(t, 1, resp.InactiveCount)
		assert.Equal(t, 0.25, resp.OccupancyRate)

		states := make(map[string]string, len(resp.Seats))
		for _, s := range resp.Seats {
			states[s.SeatNumber] = s.State
		}
		assert.Equal(t, SeatStateBooked, states["1"])
		assert.Equal(t, SeatStateAvailable, states["2"])
		assert.Equal(t, SeatStateInactive, states["3"])
		assert.Equal(t, SeatStateAvailable, states["4"])
	})

	t.Run("booked wins over inactive", func(t *testing.T) {
		seats := makeSeats(standard, "1")
		seats[0].Status = fleet.SeatStatusInactive

		resp := ComputeAvailability(schedule, seats, []uuid.UUID{seats[0].ID})

		assert.Equal(t, 1, resp.BookedCount)
		assert.Equal(t, 0, resp.InactiveCount)
		assert.Equal(t, SeatStateBooked, resp.Seats[0].State)
	})

	t.Run("zero seats yields zero occupancy", func(t *testing.T) {
		resp := ComputeAvailability(schedule, nil, nil)

		assert.Equal(t, 0, resp.TotalSeats)
		assert.Equal(t, 0.0, resp.OccupancyRate)
		assert.Empty(t, resp.Seats)
		assert.Empty(t, resp.ByTier)
	})

	t.Run("groups counts per tier sorted by code", func(t *testing.T) {
		seats := append(makeSeats(standard, "1", "2"), makeSeats(bed, "3")...)
		bookedIDs := []uuid.UUID{seats[0].ID, seats[2].ID}

		resp := ComputeAvailability(schedule, seats, bookedIDs)

		require.Len(t, resp.ByTier, 2)
		assert.Equal(t, "BED", resp.ByTier[0].TierCode)
		assert.Equal(t, 1, resp.ByTier[0].Total)
		assert.Equal(t, 1, resp.ByTier[0].Booked)
		assert.Equal(t, "STD", resp.ByTier[1].TierCode)
		assert.Equal(t, 2, resp.ByTier[1].Total)
		assert.Equal(t, 1, resp.ByTier[1].Booked)
		assert.Equal(t, 1, resp.ByTier[1].Available)
	})

	t.Run("carries the schedule status through", func(t *testing.T) {
		delayed := &Schedule{ID: uuid.New(), Status: StatusDelayed}
		resp := ComputeAvailability(delayed, makeSeats(standard, "1"), nil)
		assert.Equal(t, StatusDelayed, resp.ScheduleStatus)
	})
}
