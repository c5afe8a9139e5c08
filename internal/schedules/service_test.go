package schedules

import (
	"context"
	"testing"
	"time"

	"buslink/internal/drivers"
	"buslink/internal/fleet"
	busroutes "buslink/internal/routes"
	"buslink/internal/shared/apperrors"
	"buslink/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	Repository
	existing map[string]bool
	created  []*Schedule
}

func (f *fakeRepo) ExistsForRouteScheduleAndDate(ctx context.Context, routeScheduleID uuid.UUID, date time.Time) (bool, error) {
	return f.existing[routeScheduleID.String()+date.Format("2006-01-02")], nil
}

func (f *fakeRepo) CreateWithAssignment(ctx context.Context, schedule *Schedule, assignment *fleet.BusAssignment) error {
	schedule.ID = uuid.New()
	assignment.ScheduleID = schedule.ID
	f.created = append(f.created, schedule)
	return nil
}

type fakeRouteRepo struct {
	busroutes.Repository
	routes    map[uuid.UUID]*busroutes.Route
	timetable map[uuid.UUID]*busroutes.RouteSchedule
}

func (f *fakeRouteRepo) GetRouteByID(ctx context.Context, id uuid.UUID) (*busroutes.Route, error) {
	if r, ok := f.routes[id]; ok {
		return r, nil
	}
	return nil, apperrors.NotFound("route %s", id)
}

func (f *fakeRouteRepo) GetRouteScheduleByID(ctx context.Context, id uuid.UUID) (*busroutes.RouteSchedule, error) {
	if rs, ok := f.timetable[id]; ok {
		return rs, nil
	}
	return nil, apperrors.NotFound("route schedule %s", id)
}

type fakeBusRepo struct {
	fleet.Repository
	buses map[uuid.UUID]*fleet.Bus
}

func (f *fakeBusRepo) GetBusByID(ctx context.Context, id uuid.UUID) (*fleet.Bus, error) {
	if b, ok := f.buses[id]; ok {
		return b, nil
	}
	return nil, apperrors.NotFound("bus %s", id)
}

type fakeDriverRepo struct {
	drivers.Repository
	byID map[uuid.UUID]*drivers.Driver
}

func (f *fakeDriverRepo) GetByID(ctx context.Context, id uuid.UUID) (*drivers.Driver, error) {
	if d, ok := f.byID[id]; ok {
		return d, nil
	}
	return nil, apperrors.NotFound("driver %s", id)
}

type createFixture struct {
	svc             Service
	repo            *fakeRepo
	routeRepo       *fakeRouteRepo
	busRepo         *fakeBusRepo
	driverRepo      *fakeDriverRepo
	companyID       uuid.UUID
	routeID         uuid.UUID
	routeScheduleID uuid.UUID
	busID           uuid.UUID
	driverID        uuid.UUID
}

// newCreateFixture builds a consistent world: an active route departing
// 08:00 every day, an active bus and a licensed driver, all on one
// company. 2026-09-07 is a Monday.
func newCreateFixture(t *testing.T) *createFixture {
	t.Helper()

	f := &createFixture{
		companyID:       uuid.New(),
		routeID:         uuid.New(),
		routeScheduleID: uuid.New(),
		busID:           uuid.New(),
		driverID:        uuid.New(),
	}

	f.routeRepo = &fakeRouteRepo{
		routes: map[uuid.UUID]*busroutes.Route{
			f.routeID: {
				ID:                   f.routeID,
				CompanyID:            f.companyID,
				BasePrice:            90,
				EstimatedDurationMin: 960,
				IsActive:             true,
			},
		},
		timetable: map[uuid.UUID]*busroutes.RouteSchedule{
			f.routeScheduleID: {
				ID:            f.routeScheduleID,
				RouteID:       f.routeID,
				DepartureTime: "08:00",
				DaysOfWeek:    "MON,TUE,WED,THU,FRI,SAT,SUN",
				IsActive:      true,
			},
		},
	}
	f.busRepo = &fakeBusRepo{buses: map[uuid.UUID]*fleet.Bus{
		f.busID: {ID: f.busID, CompanyID: f.companyID, Status: fleet.BusStatusActive},
	}}
	f.driverRepo = &fakeDriverRepo{byID: map[uuid.UUID]*drivers.Driver{
		f.driverID: {
			ID:            f.driverID,
			CompanyID:     f.companyID,
			IsActive:      true,
			LicenseExpiry: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}}
	f.repo = &fakeRepo{existing: map[string]bool{}}

	f.svc = NewService(f.repo, f.routeRepo, f.busRepo, f.driverRepo, nil, nil, logger.GetDefault())
	return f
}

func (f *createFixture) request() *CreateScheduleRequest {
	return &CreateScheduleRequest{
		RouteScheduleID: f.routeScheduleID.String(),
		DepartureDate:   "2026-09-07",
		BusID:           f.busID.String(),
		PrimaryDriverID: f.driverID.String(),
	}
}

func TestCreateSchedule(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a trip with derived times and route price", func(t *testing.T) {
		f := newCreateFixture(t)

		schedule, err := f.svc.CreateSchedule(ctx, f.request())
		require.NoError(t, err)

		assert.Equal(t, StatusScheduled, schedule.Status)
		assert.Equal(t, 90.0, schedule.Price)
		assert.Equal(t, f.routeID, schedule.RouteID)

		expectedDeparture := time.Date(2026, 9, 7, 8, 0, 0, 0, time.UTC)
		assert.Equal(t, expectedDeparture, schedule.EstimatedDepartureTime)
		require.NotNil(t, schedule.EstimatedArrivalTime)
		assert.Equal(t, expectedDeparture.Add(16*time.Hour), *schedule.EstimatedArrivalTime)
	})

	t.Run("timetable price override beats the route base price", func(t *testing.T) {
		f := newCreateFixture(t)
		override := 110.0
		f.routeRepo.timetable[f.routeScheduleID].PriceOverride = &override

		schedule, err := f.svc.CreateSchedule(ctx, f.request())
		require.NoError(t, err)
		assert.Equal(t, 110.0, schedule.Price)
	})

	t.Run("explicit request price beats everything", func(t *testing.T) {
		f := newCreateFixture(t)
		price := 50.0
		req := f.request()
		req.Price = &price

		schedule, err := f.svc.CreateSchedule(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, 50.0, schedule.Price)
	})

	t.Run("rejects a day the timetable entry does not run on", func(t *testing.T) {
		f := newCreateFixture(t)
		f.routeRepo.timetable[f.routeScheduleID].DaysOfWeek = "TUE,THU"

		_, err := f.svc.CreateSchedule(ctx, f.request())
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("rejects an inactive timetable entry", func(t *testing.T) {
		f := newCreateFixture(t)
		f.routeRepo.timetable[f.routeScheduleID].IsActive = false

		_, err := f.svc.CreateSchedule(ctx, f.request())
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("rejects an inactive route", func(t *testing.T) {
		f := newCreateFixture(t)
		f.routeRepo.routes[f.routeID].IsActive = false

		_, err := f.svc.CreateSchedule(ctx, f.request())
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("rejects a bus under maintenance", func(t *testing.T) {
		f := newCreateFixture(t)
		f.busRepo.buses[f.busID].Status = fleet.BusStatusMaintenance

		_, err := f.svc.CreateSchedule(ctx, f.request())
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("rejects a bus from another company", func(t *testing.T) {
		f := newCreateFixture(t)
		f.busRepo.buses[f.busID].CompanyID = uuid.New()

		_, err := f.svc.CreateSchedule(ctx, f.request())
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("rejects a driver whose license expires before departure", func(t *testing.T) {
		f := newCreateFixture(t)
		f.driverRepo.byID[f.driverID].LicenseExpiry = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

		_, err := f.svc.CreateSchedule(ctx, f.request())
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("rejects a driver from another company", func(t *testing.T) {
		f := newCreateFixture(t)
		f.driverRepo.byID[f.driverID].CompanyID = uuid.New()

		_, err := f.svc.CreateSchedule(ctx, f.request())
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("rejects the same driver as primary and secondary", func(t *testing.T) {
		f := newCreateFixture(t)
		req := f.request()
		id := f.driverID.String()
		req.SecondaryDriverID = &id

		_, err := f.svc.CreateSchedule(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("rejects a duplicate trip for the same timetable entry and date", func(t *testing.T) {
		f := newCreateFixture(t)
		departure, _ := time.Parse("2006-01-02", "2026-09-07")
		f.repo.existing[f.routeScheduleID.String()+departure.Format("2006-01-02")] = true

		_, err := f.svc.CreateSchedule(ctx, f.request())
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("rejects a malformed departure date", func(t *testing.T) {
		f := newCreateFixture(t)
		req := f.request()
		req.DepartureDate = "07/09/2026"

		_, err := f.svc.CreateSchedule(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestListSchedulesValidation(t *testing.T) {
	ctx := context.Background()
	f := newCreateFixture(t)

	_, _, err := f.svc.ListSchedules(ctx, &ListSchedulesQuery{
		DateFrom: "2026-09-10",
		DateTo:   "2026-09-01",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, _, err = f.svc.ListSchedules(ctx, &ListSchedulesQuery{RouteID: "nope"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
