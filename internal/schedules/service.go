package schedules

import (
	"context"
	"time"

	"buslink/internal/drivers"
	"buslink/internal/fleet"
	"buslink/internal/notifications"
	busroutes "buslink/internal/routes"
	"buslink/internal/shared/apperrors"
	"buslink/internal/shared/constants"
	"buslink/pkg/cache"
	"buslink/pkg/logger"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type Service interface {
	CreateSchedule(ctx context.Context, req *CreateScheduleRequest) (*Schedule, error)
	GetSchedule(ctx context.Context, id uuid.UUID) (*Schedule, error)
	ListSchedules(ctx context.Context, query *ListSchedulesQuery) ([]Schedule, int64, error)
	GetAvailability(ctx context.Context, scheduleID uuid.UUID) (*AvailabilityResponse, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, req *TransitionRequest) (*Schedule, error)
	GetTripLogs(ctx context.Context, scheduleID uuid.UUID) ([]TripLog, error)

	// InvalidateAvailability drops the cached availability for a
	// schedule. Booking-side writes call this after commit.
	InvalidateAvailability(ctx context.Context, scheduleID uuid.UUID)
}

type service struct {
	repo       Repository
	routeRepo  busroutes.Repository
	fleetRepo  fleet.Repository
	driverRepo drivers.Repository
	cache      cache.Service
	publisher  notifications.Publisher
	log        *logger.Logger
}

func NewService(
	repo Repository,
	routeRepo busroutes.Repository,
	fleetRepo fleet.Repository,
	driverRepo drivers.Repository,
	cacheService cache.Service,
	publisher notifications.Publisher,
	log *logger.Logger,
) Service {
	return &service{
		repo:       repo,
		routeRepo:  routeRepo,
		fleetRepo:  fleetRepo,
		driverRepo: driverRepo,
		cache:      cacheService,
		publisher:  publisher,
		log:        log,
	}
}

func (s *service) CreateSchedule(ctx context.Context, req *CreateScheduleRequest) (*Schedule, error) {
	routeScheduleID, err := uuid.Parse(req.RouteScheduleID)
	if err != nil {
		return nil, apperrors.Validation("invalid route_schedule_id")
	}
	busID, err := uuid.Parse(req.BusID)
	if err != nil {
		return nil, apperrors.Validation("invalid bus_id")
	}
	primaryDriverID, err := uuid.Parse(req.PrimaryDriverID)
	if err != nil {
		return nil, apperrors.Validation("invalid primary_driver_id")
	}

	departureDate, err := time.Parse(dateLayout, req.DepartureDate)
	if err != nil {
		return nil, apperrors.Validation("departure_date must be YYYY-MM-DD")
	}

	routeSchedule, err := s.routeRepo.GetRouteScheduleByID(ctx, routeScheduleID)
	if err != nil {
		return nil, err
	}
	if !routeSchedule.IsActive {
		return nil, apperrors.Conflict("route schedule %s is inactive", routeScheduleID)
	}
	if !routeSchedule.RunsOn(departureDate.Weekday()) {
		return nil, apperrors.Validation("route schedule does not run on %s", departureDate.Weekday())
	}

	route, err := s.routeRepo.GetRouteByID(ctx, routeSchedule.RouteID)
	if err != nil {
		return nil, err
	}
	if !route.IsActive {
		return nil, apperrors.Conflict("route %s is inactive", route.ID)
	}

	bus, err := s.fleetRepo.GetBusByID(ctx, busID)
	if err != nil {
		return nil, err
	}
	if bus.Status != fleet.BusStatusActive {
		return nil, apperrors.Conflict("bus %s is not in service", busID)
	}
	if bus.CompanyID != route.CompanyID {
		return nil, apperrors.Forbidden("bus %s belongs to another company", busID)
	}

	primaryDriver, err := s.validateDriver(ctx, primaryDriverID, route.CompanyID, departureDate)
	if err != nil {
		return nil, err
	}

	var secondaryDriverID *uuid.UUID
	if req.SecondaryDriverID != nil {
		id, err := uuid.Parse(*req.SecondaryDriverID)
		if err != nil {
			return nil, apperrors.Validation("invalid secondary_driver_id")
		}
		if id == primaryDriver.ID {
			return nil, apperrors.Validation("secondary driver must differ from primary driver")
		}
		if _, err := s.validateDriver(ctx, id, route.CompanyID, departureDate); err != nil {
			return nil, err
		}
		secondaryDriverID = &id
	}

	exists, err := s.repo.ExistsForRouteScheduleAndDate(ctx, routeScheduleID, departureDate)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.Conflict("schedule already exists for route schedule %s on %s",
			routeScheduleID, req.DepartureDate)
	}

	price := route.BasePrice
	if routeSchedule.PriceOverride != nil {
		price = *routeSchedule.PriceOverride
	}
	if req.Price != nil {
		price = *req.Price
	}

	estimatedDeparture, err := combineDateAndTime(departureDate, routeSchedule.DepartureTime)
	if err != nil {
		return nil, apperrors.Validation("route schedule has malformed departure time")
	}
	var estimatedArrival *time.Time
	if route.EstimatedDurationMin > 0 {
		arrival := estimatedDeparture.Add(time.Duration(route.EstimatedDurationMin) * time.Minute)
		estimatedArrival = &arrival
	}

	schedule := &Schedule{
		RouteScheduleID:        routeScheduleID,
		RouteID:                route.ID,
		BusID:                  busID,
		PrimaryDriverID:        primaryDriver.ID,
		SecondaryDriverID:      secondaryDriverID,
		DepartureDate:          departureDate,
		EstimatedDepartureTime: estimatedDeparture,
		EstimatedArrivalTime:   estimatedArrival,
		Price:                  price,
		Status:                 StatusScheduled,
	}
	assignment := &fleet.BusAssignment{
		BusID:             busID,
		PrimaryDriverID:   primaryDriver.ID,
		SecondaryDriverID: secondaryDriverID,
		Status:            fleet.AssignmentStatusAssigned,
	}

	if err := s.repo.CreateWithAssignment(ctx, schedule, assignment); err != nil {
		return nil, err
	}

	s.invalidateScheduleCaches(ctx)
	return schedule, nil
}

func (s *service) validateDriver(ctx context.Context, driverID, companyID uuid.UUID, day time.Time) (*drivers.Driver, error) {
	driver, err := s.driverRepo.GetByID(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if driver.CompanyID != companyID {
		return nil, apperrors.Forbidden("driver %s belongs to another company", driverID)
	}
	if !driver.IsActive {
		return nil, apperrors.Conflict("driver %s is inactive", driverID)
	}
	if !driver.LicenseValidOn(day) {
		return nil, apperrors.Conflict("driver %s license expires before %s",
			driverID, day.Format(dateLayout))
	}
	return driver, nil
}

func combineDateAndTime(date time.Time, hhmm string) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}

func (s *service) GetSchedule(ctx context.Context, id uuid.UUID) (*Schedule, error) {
	if s.cache != nil {
		var schedule Schedule
		err := s.cache.GetOrSet(ctx, constants.BuildScheduleDetailKey(id.String()), constants.TTL_SCHEDULE_DETAIL,
			func() (interface{}, error) {
				return s.repo.GetByID(ctx, id)
			}, &schedule)
		if err == nil {
			return &schedule, nil
		}
		if apperrors.HTTPStatus(err) != 500 {
			return nil, err
		}
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListSchedules(ctx context.Context, query *ListSchedulesQuery) ([]Schedule, int64, error) {
	filter := ListFilter{
		Status: query.Status,
		Page:   query.Page,
		Limit:  query.Limit,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	if query.RouteID != "" {
		routeID, err := uuid.Parse(query.RouteID)
		if err != nil {
			return nil, 0, apperrors.Validation("invalid route_id")
		}
		filter.RouteID = &routeID
	}
	if query.DateFrom != "" {
		from, err := time.Parse(dateLayout, query.DateFrom)
		if err != nil {
			return nil, 0, apperrors.Validation("date_from must be YYYY-MM-DD")
		}
		filter.DateFrom = &from
	}
	if query.DateTo != "" {
		to, err := time.Parse(dateLayout, query.DateTo)
		if err != nil {
			return nil, 0, apperrors.Validation("date_to must be YYYY-MM-DD")
		}
		filter.DateTo = &to
	}
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateTo.Before(*filter.DateFrom) {
		return nil, 0, apperrors.Validation("date_to must not precede date_from")
	}

	return s.repo.List(ctx, filter)
}

func (s *service) GetAvailability(ctx context.Context, scheduleID uuid.UUID) (*AvailabilityResponse, error) {
	if s.cache != nil {
		var resp AvailabilityResponse
		err := s.cache.GetOrSet(ctx, constants.BuildAvailabilityKey(scheduleID.String()), constants.TTL_SCHEDULE_AVAILABILITY,
			func() (interface{}, error) {
				return s.computeAvailability(ctx, scheduleID)
			}, &resp)
		if err == nil {
			return &resp, nil
		}
		if apperrors.HTTPStatus(err) != 500 {
			return nil, err
		}
	}
	return s.computeAvailability(ctx, scheduleID)
}

func (s *service) computeAvailability(ctx context.Context, scheduleID uuid.UUID) (*AvailabilityResponse, error) {
	schedule, err := s.repo.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	seats, err := s.fleetRepo.GetSeatsByBus(ctx, schedule.BusID)
	if err != nil {
		return nil, err
	}
	bookedSeatIDs, err := s.repo.GetBookedSeatIDs(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	return ComputeAvailability(schedule, seats, bookedSeatIDs), nil
}

func (s *service) TransitionStatus(ctx context.Context, id uuid.UUID, req *TransitionRequest) (*Schedule, error) {
	schedule, from, err := s.repo.Transition(ctx, id, req)
	if err != nil {
		return nil, err
	}

	s.log.LogScheduleTransition(ctx, id.String(), from, schedule.Status)
	s.invalidateScheduleCaches(ctx)

	if s.publisher != nil {
		eventType := transitionEventType(schedule.Status)
		if eventType != "" {
			s.publisher.Publish(ctx, notifications.NewEvent(eventType, schedule.ID, map[string]interface{}{
				"from":   from,
				"to":     schedule.Status,
				"bus_id": schedule.BusID,
			}))
		}
	}
	return schedule, nil
}

func transitionEventType(status string) string {
	switch status {
	case StatusInProgress:
		return notifications.EventScheduleDeparted
	case StatusCompleted:
		return notifications.EventScheduleArrived
	case StatusDelayed:
		return notifications.EventScheduleDelayed
	case StatusCancelled:
		return notifications.EventScheduleCancelled
	}
	return ""
}

func (s *service) GetTripLogs(ctx context.Context, scheduleID uuid.UUID) ([]TripLog, error) {
	if _, err := s.repo.GetByID(ctx, scheduleID); err != nil {
		return nil, err
	}
	return s.repo.GetTripLogs(ctx, scheduleID)
}

func (s *service) InvalidateAvailability(ctx context.Context, scheduleID uuid.UUID) {
	if s.cache != nil {
		_ = s.cache.Delete(ctx, constants.BuildAvailabilityKey(scheduleID.String()))
		_ = s.cache.Delete(ctx, constants.BuildScheduleDetailKey(scheduleID.String()))
	}
}

func (s *service) invalidateScheduleCaches(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.DeletePattern(ctx, constants.PATTERN_INVALIDATE_SCHEDULES)
	}
}
