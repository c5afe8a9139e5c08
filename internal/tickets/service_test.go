package tickets

import (
	"context"
	"testing"

	"buslink/internal/customers"
	"buslink/internal/fleet"
	"buslink/internal/schedules"
	"buslink/internal/shared/apperrors"
	"buslink/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fakes embed the interface so only the methods the service touches
// need an implementation.

type fakeScheduleRepo struct {
	schedules.Repository
	byID map[uuid.UUID]*schedules.Schedule
}

func (f *fakeScheduleRepo) GetByID(ctx context.Context, id uuid.UUID) (*schedules.Schedule, error) {
	if s, ok := f.byID[id]; ok {
		return s, nil
	}
	return nil, apperrors.NotFound("schedule %s", id)
}

type fakeFleetRepo struct {
	fleet.Repository
	seats map[uuid.UUID]*fleet.BusSeat
}

func (f *fakeFleetRepo) GetBusSeatByID(ctx context.Context, id uuid.UUID) (*fleet.BusSeat, error) {
	if s, ok := f.seats[id]; ok {
		return s, nil
	}
	return nil, apperrors.NotFound("seat %s", id)
}

type fakeTicketRepo struct {
	Repository
	active  map[[2]uuid.UUID]bool
	created []*Ticket
}

func (f *fakeTicketRepo) HasActiveTicket(ctx context.Context, scheduleID, busSeatID uuid.UUID) (bool, error) {
	return f.active[[2]uuid.UUID{scheduleID, busSeatID}], nil
}

func (f *fakeTicketRepo) Create(ctx context.Context, ticket *Ticket) error {
	ticket.ID = uuid.New()
	f.created = append(f.created, ticket)
	return nil
}

func (f *fakeTicketRepo) CreateBulk(ctx context.Context, tickets []*Ticket) error {
	for _, t := range tickets {
		t.ID = uuid.New()
	}
	f.created = append(f.created, tickets...)
	return nil
}

type fakeCustomerService struct {
	customers.Service
	byID map[uuid.UUID]*customers.Customer
}

func (f *fakeCustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*customers.Customer, error) {
	if c, ok := f.byID[id]; ok {
		return c, nil
	}
	return nil, apperrors.NotFound("customer %s", id)
}

func (f *fakeCustomerService) UpsertByDocument(ctx context.Context, req *customers.UpsertCustomerRequest) (*customers.Customer, error) {
	c := &customers.Customer{
		ID:         uuid.New(),
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		DocumentID: req.DocumentID,
	}
	f.byID[c.ID] = c
	return c, nil
}

type bookingFixture struct {
	svc        Service
	ticketRepo *fakeTicketRepo
	scheduleID uuid.UUID
	busID      uuid.UUID
	seatID     uuid.UUID
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	scheduleID := uuid.New()
	busID := uuid.New()
	seatID := uuid.New()

	scheduleRepo := &fakeScheduleRepo{byID: map[uuid.UUID]*schedules.Schedule{
		scheduleID: {ID: scheduleID, BusID: busID, Price: 90, Status: schedules.StatusScheduled},
	}}
	fleetRepo := &fakeFleetRepo{seats: map[uuid.UUID]*fleet.BusSeat{
		seatID: {ID: seatID, BusID: busID, SeatNumber: "12", Status: fleet.SeatStatusActive},
	}}
	ticketRepo := &fakeTicketRepo{active: map[[2]uuid.UUID]bool{}}
	customerSvc := &fakeCustomerService{byID: map[uuid.UUID]*customers.Customer{}}

	svc := NewService(ticketRepo, scheduleRepo, fleetRepo, customerSvc, nil, nil, logger.GetDefault())
	return &bookingFixture{
		svc:        svc,
		ticketRepo: ticketRepo,
		scheduleID: scheduleID,
		busID:      busID,
		seatID:     seatID,
	}
}

func (f *bookingFixture) schedule() *schedules.Schedule {
	return f.svc.(*service).scheduleRepo.(*fakeScheduleRepo).byID[f.scheduleID]
}

func (f *bookingFixture) seat() *fleet.BusSeat {
	return f.svc.(*service).fleetRepo.(*fakeFleetRepo).seats[f.seatID]
}

func TestBookTicket(t *testing.T) {
	ctx := context.Background()

	t.Run("books an active seat at the schedule price", func(t *testing.T) {
		f := newBookingFixture(t)

		ticket, err := f.svc.BookTicket(ctx, f.scheduleID, &BookTicketRequest{
			BusSeatID: f.seatID.String(),
		}, nil)
		require.NoError(t, err)

		assert.Equal(t, StatusActive, ticket.Status)
		assert.Equal(t, 90.0, ticket.Price)
		assert.Equal(t, f.scheduleID, ticket.ScheduleID)
		assert.Len(t, f.ticketRepo.created, 1)
	})

	t.Run("explicit price wins over the schedule price", func(t *testing.T) {
		f := newBookingFixture(t)
		price := 75.0

		ticket, err := f.svc.BookTicket(ctx, f.scheduleID, &BookTicketRequest{
			BusSeatID: f.seatID.String(),
			Price:     &price,
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, 75.0, ticket.Price)
	})

	t.Run("unknown schedule is not found", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.svc.BookTicket(ctx, uuid.New(), &BookTicketRequest{
			BusSeatID: f.seatID.String(),
		}, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("cancelled schedule rejects bookings", func(t *testing.T) {
		f := newBookingFixture(t)
		f.schedule().Status = schedules.StatusCancelled

		_, err := f.svc.BookTicket(ctx, f.scheduleID, &BookTicketRequest{
			BusSeatID: f.seatID.String(),
		}, nil)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("unknown seat is not found", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.svc.BookTicket(ctx, f.scheduleID, &BookTicketRequest{
			BusSeatID: uuid.New().String(),
		}, nil)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("seat from another bus conflicts", func(t *testing.T) {
		f := newBookingFixture(t)
		f.seat().BusID = uuid.New()

		_, err := f.svc.BookTicket(ctx, f.scheduleID, &BookTicketRequest{
			BusSeatID: f.seatID.String(),
		}, nil)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("inactive seat conflicts", func(t *testing.T) {
		f := newBookingFixture(t)
		f.seat().Status = fleet.SeatStatusInactive

		_, err := f.svc.BookTicket(ctx, f.scheduleID, &BookTicketRequest{
			BusSeatID: f.seatID.String(),
		}, nil)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("already booked seat conflicts", func(t *testing.T) {
		f := newBookingFixture(t)
		f.ticketRepo.active[[2]uuid.UUID{f.scheduleID, f.seatID}] = true

		_, err := f.svc.BookTicket(ctx, f.scheduleID, &BookTicketRequest{
			BusSeatID: f.seatID.String(),
		}, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
		assert.Contains(t, err.Error(), "already booked")
	})

	t.Run("schedule check runs before the seat check", func(t *testing.T) {
		f := newBookingFixture(t)
		f.schedule().Status = schedules.StatusCompleted
		f.seat().Status = fleet.SeatStatusInactive

		_, err := f.svc.BookTicket(ctx, f.scheduleID, &BookTicketRequest{
			BusSeatID: f.seatID.String(),
		}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "COMPLETED schedule")
	})

	t.Run("invalid seat id fails validation", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.svc.BookTicket(ctx, f.scheduleID, &BookTicketRequest{
			BusSeatID: "not-a-uuid",
		}, nil)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("walk-in customer is upserted by document", func(t *testing.T) {
		f := newBookingFixture(t)

		ticket, err := f.svc.BookTicket(ctx, f.scheduleID, &BookTicketRequest{
			BusSeatID: f.seatID.String(),
			Customer: &customers.UpsertCustomerRequest{
				FirstName:  "Ana",
				LastName:   "Torres",
				DocumentID: "71234567",
			},
		}, nil)
		require.NoError(t, err)
		require.NotNil(t, ticket.CustomerID)
	})
}

func TestBulkBook(t *testing.T) {
	ctx := context.Background()

	t.Run("creates every ticket in one batch", func(t *testing.T) {
		f := newBookingFixture(t)
		otherSeatID := uuid.New()
		f.svc.(*service).fleetRepo.(*fakeFleetRepo).seats[otherSeatID] =
			&fleet.BusSeat{ID: otherSeatID, BusID: f.busID, SeatNumber: "13", Status: fleet.SeatStatusActive}

		tickets, err := f.svc.BulkBook(ctx, &BulkBookRequest{Tickets: []BulkTicketItem{
			{ScheduleID: f.scheduleID.String(), BookTicketRequest: BookTicketRequest{BusSeatID: f.seatID.String()}},
			{ScheduleID: f.scheduleID.String(), BookTicketRequest: BookTicketRequest{BusSeatID: otherSeatID.String()}},
		}}, nil)
		require.NoError(t, err)
		assert.Len(t, tickets, 2)
		assert.Len(t, f.ticketRepo.created, 2)
	})

	t.Run("duplicate seat within the request conflicts", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.svc.BulkBook(ctx, &BulkBookRequest{Tickets: []BulkTicketItem{
			{ScheduleID: f.scheduleID.String(), BookTicketRequest: BookTicketRequest{BusSeatID: f.seatID.String()}},
			{ScheduleID: f.scheduleID.String(), BookTicketRequest: BookTicketRequest{BusSeatID: f.seatID.String()}},
		}}, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
		assert.Contains(t, err.Error(), "ticket 1")
	})

	t.Run("failing item is reported by position and nothing is created", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.svc.BulkBook(ctx, &BulkBookRequest{Tickets: []BulkTicketItem{
			{ScheduleID: f.scheduleID.String(), BookTicketRequest: BookTicketRequest{BusSeatID: f.seatID.String()}},
			{ScheduleID: f.scheduleID.String(), BookTicketRequest: BookTicketRequest{BusSeatID: uuid.New().String()}},
		}}, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Contains(t, err.Error(), "ticket 1")
		assert.Empty(t, f.ticketRepo.created)
	})
}
