package tickets

import (
	"context"
	"fmt"

	"buslink/internal/customers"
	"buslink/internal/fleet"
	"buslink/internal/notifications"
	"buslink/internal/schedules"
	"buslink/internal/shared/apperrors"
	"buslink/internal/shared/constants"
	"buslink/pkg/cache"
	"buslink/pkg/logger"

	"github.com/google/uuid"
)

type Service interface {
	BookTicket(ctx context.Context, scheduleID uuid.UUID, req *BookTicketRequest, soldBy *uuid.UUID) (*Ticket, error)
	BulkBook(ctx context.Context, req *BulkBookRequest, soldBy *uuid.UUID) ([]*Ticket, error)
	GetTicket(ctx context.Context, id uuid.UUID) (*Ticket, error)
	CancelTicket(ctx context.Context, id uuid.UUID, req *CancelTicketRequest, byUserID *uuid.UUID) (*Ticket, error)
	ReassignTicket(ctx context.Context, id uuid.UUID, req *ReassignTicketRequest, byUserID *uuid.UUID) (*Ticket, error)
	MarkUsed(ctx context.Context, id uuid.UUID) (*Ticket, error)
	ListBySchedule(ctx context.Context, scheduleID uuid.UUID, status string) ([]Ticket, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]Ticket, error)
}

type service struct {
	repo         Repository
	scheduleRepo schedules.Repository
	fleetRepo    fleet.Repository
	customerSvc  customers.Service
	cache        cache.Service
	publisher    notifications.Publisher
	log          *logger.Logger
}

func NewService(
	repo Repository,
	scheduleRepo schedules.Repository,
	fleetRepo fleet.Repository,
	customerSvc customers.Service,
	cacheService cache.Service,
	publisher notifications.Publisher,
	log *logger.Logger,
) Service {
	return &service{
		repo:         repo,
		scheduleRepo: scheduleRepo,
		fleetRepo:    fleetRepo,
		customerSvc:  customerSvc,
		cache:        cacheService,
		publisher:    publisher,
		log:          log,
	}
}

// validateBooking runs the booking preconditions in their fixed order
// and returns the resolved schedule. The duplicate pre-check gives a
// friendly error; the partial unique index is what actually guarantees
// at-most-one under concurrency.
func (s *service) validateBooking(ctx context.Context, scheduleID, seatID uuid.UUID) (*schedules.Schedule, error) {
	schedule, err := s.scheduleRepo.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	if !schedules.IsBookable(schedule.Status) {
		return nil, apperrors.Conflict("cannot book on a %s schedule", schedule.Status)
	}

	seat, err := s.fleetRepo.GetBusSeatByID(ctx, seatID)
	if err != nil {
		return nil, err
	}

	if seat.BusID != schedule.BusID {
		return nil, apperrors.Conflict("seat %s does not belong to this schedule's bus", seatID)
	}

	if seat.Status != fleet.SeatStatusActive {
		return nil, apperrors.Conflict("seat %s is out of service", seatID)
	}

	booked, err := s.repo.HasActiveTicket(ctx, scheduleID, seatID)
	if err != nil {
		return nil, err
	}
	if booked {
		return nil, apperrors.Conflict("seat already booked on this schedule")
	}

	return schedule, nil
}

func (s *service) resolveCustomer(ctx context.Context, req *BookTicketRequest) (*uuid.UUID, error) {
	if req.CustomerID != nil {
		customerID, err := uuid.Parse(*req.CustomerID)
		if err != nil {
			return nil, apperrors.Validation("invalid customer_id")
		}
		if _, err := s.customerSvc.GetCustomer(ctx, customerID); err != nil {
			return nil, err
		}
		return &customerID, nil
	}
	if req.Customer != nil {
		customer, err := s.customerSvc.UpsertByDocument(ctx, req.Customer)
		if err != nil {
			return nil, err
		}
		return &customer.ID, nil
	}
	return nil, nil
}

func (s *service) buildTicket(ctx context.Context, scheduleID uuid.UUID, schedule *schedules.Schedule, req *BookTicketRequest, soldBy *uuid.UUID) (*Ticket, error) {
	seatID, _ := uuid.Parse(req.BusSeatID)

	customerID, err := s.resolveCustomer(ctx, req)
	if err != nil {
		return nil, err
	}

	var branchID *uuid.UUID
	if req.BranchID != nil {
		id, err := uuid.Parse(*req.BranchID)
		if err != nil {
			return nil, apperrors.Validation("invalid branch_id")
		}
		branchID = &id
	}

	price := schedule.Price
	if req.Price != nil {
		price = *req.Price
	}

	return &Ticket{
		ScheduleID:   scheduleID,
		BusSeatID:    seatID,
		CustomerID:   customerID,
		BranchID:     branchID,
		SoldByUserID: soldBy,
		Price:        price,
		Status:       StatusActive,
		Notes:        req.Notes,
	}, nil
}

func (s *service) BookTicket(ctx context.Context, scheduleID uuid.UUID, req *BookTicketRequest, soldBy *uuid.UUID) (*Ticket, error) {
	seatID, err := uuid.Parse(req.BusSeatID)
	if err != nil {
		return nil, apperrors.Validation("invalid bus_seat_id")
	}

	schedule, err := s.validateBooking(ctx, scheduleID, seatID)
	if err != nil {
		return nil, err
	}

	ticket, err := s.buildTicket(ctx, scheduleID, schedule, req, soldBy)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, ticket); err != nil {
		return nil, err
	}

	s.log.LogTicketBooked(ctx, ticket.ID.String(), scheduleID.String(), seatID.String())
	s.invalidateAvailability(ctx, scheduleID)
	s.publish(ctx, notifications.EventTicketBooked, scheduleID, map[string]interface{}{
		"ticket_id":   ticket.ID,
		"bus_seat_id": seatID,
	})
	return ticket, nil
}

// BulkBook validates every requested ticket first, identifying the
// failing record by position, then creates all of them in one
// all-or-nothing transaction.
func (s *service) BulkBook(ctx context.Context, req *BulkBookRequest, soldBy *uuid.UUID) ([]*Ticket, error) {
	type pair struct{ schedule, seat uuid.UUID }
	seen := make(map[pair]bool, len(req.Tickets))
	built := make([]*Ticket, 0, len(req.Tickets))

	for i := range req.Tickets {
		item := &req.Tickets[i]

		scheduleID, err := uuid.Parse(item.ScheduleID)
		if err != nil {
			return nil, apperrors.Validation("ticket %d: invalid schedule_id", i)
		}
		seatID, err := uuid.Parse(item.BusSeatID)
		if err != nil {
			return nil, apperrors.Validation("ticket %d: invalid bus_seat_id", i)
		}

		key := pair{scheduleID, seatID}
		if seen[key] {
			return nil, apperrors.Conflict("ticket %d: duplicate seat within this request", i)
		}
		seen[key] = true

		schedule, err := s.validateBooking(ctx, scheduleID, seatID)
		if err != nil {
			return nil, fmt.Errorf("ticket %d: %w", i, err)
		}

		ticket, err := s.buildTicket(ctx, scheduleID, schedule, &item.BookTicketRequest, soldBy)
		if err != nil {
			return nil, fmt.Errorf("ticket %d: %w", i, err)
		}
		built = append(built, ticket)
	}

	if err := s.repo.CreateBulk(ctx, built); err != nil {
		return nil, err
	}

	for _, ticket := range built {
		s.log.LogTicketBooked(ctx, ticket.ID.String(), ticket.ScheduleID.String(), ticket.BusSeatID.String())
		s.invalidateAvailability(ctx, ticket.ScheduleID)
		s.publish(ctx, notifications.EventTicketBooked, ticket.ScheduleID, map[string]interface{}{
			"ticket_id":   ticket.ID,
			"bus_seat_id": ticket.BusSeatID,
		})
	}
	return built, nil
}

func (s *service) GetTicket(ctx context.Context, id uuid.UUID) (*Ticket, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) CancelTicket(ctx context.Context, id uuid.UUID, req *CancelTicketRequest, byUserID *uuid.UUID) (*Ticket, error) {
	ticket, err := s.repo.Cancel(ctx, id, req.Reason, byUserID)
	if err != nil {
		return nil, err
	}

	s.log.LogTicketCancelled(ctx, id.String(), req.Reason)
	s.invalidateAvailability(ctx, ticket.ScheduleID)
	s.publish(ctx, notifications.EventTicketCancelled, ticket.ScheduleID, map[string]interface{}{
		"ticket_id": ticket.ID,
		"reason":    req.Reason,
	})
	return ticket, nil
}

func (s *service) ReassignTicket(ctx context.Context, id uuid.UUID, req *ReassignTicketRequest, byUserID *uuid.UUID) (*Ticket, error) {
	newScheduleID, err := uuid.Parse(req.NewScheduleID)
	if err != nil {
		return nil, apperrors.Validation("invalid new_schedule_id")
	}
	newSeatID, err := uuid.Parse(req.NewBusSeatID)
	if err != nil {
		return nil, apperrors.Validation("invalid new_bus_seat_id")
	}

	// The target pair passes the same gauntlet as a fresh booking.
	if _, err := s.validateBooking(ctx, newScheduleID, newSeatID); err != nil {
		return nil, err
	}

	oldTicket, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldScheduleID := oldTicket.ScheduleID

	ticket, err := s.repo.Reassign(ctx, id, newScheduleID, newSeatID, req.Reason, byUserID)
	if err != nil {
		return nil, err
	}

	s.invalidateAvailability(ctx, oldScheduleID)
	s.invalidateAvailability(ctx, newScheduleID)
	s.publish(ctx, notifications.EventTicketReassigned, newScheduleID, map[string]interface{}{
		"ticket_id":       ticket.ID,
		"old_schedule_id": oldScheduleID,
	})
	return ticket, nil
}

func (s *service) MarkUsed(ctx context.Context, id uuid.UUID) (*Ticket, error) {
	return s.repo.MarkUsed(ctx, id)
}

func (s *service) ListBySchedule(ctx context.Context, scheduleID uuid.UUID, status string) ([]Ticket, error) {
	if _, err := s.scheduleRepo.GetByID(ctx, scheduleID); err != nil {
		return nil, err
	}
	return s.repo.ListBySchedule(ctx, scheduleID, status)
}

func (s *service) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]Ticket, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}

func (s *service) invalidateAvailability(ctx context.Context, scheduleID uuid.UUID) {
	if s.cache != nil {
		_ = s.cache.Delete(ctx, constants.BuildAvailabilityKey(scheduleID.String()))
	}
}

func (s *service) publish(ctx context.Context, eventType string, scheduleID uuid.UUID, payload map[string]interface{}) {
	if s.publisher != nil {
		s.publisher.Publish(ctx, notifications.NewEvent(eventType, scheduleID, payload))
	}
}
