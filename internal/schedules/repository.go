package schedules

import (
	"context"
	"errors"
	"time"

	"buslink/internal/fleet"
	busroutes "buslink/internal/routes"
	"buslink/internal/shared/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	CreateWithAssignment(ctx context.Context, schedule *Schedule, assignment *fleet.BusAssignment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Schedule, error)
	List(ctx context.Context, filter ListFilter) ([]Schedule, int64, error)
	GetBookedSeatIDs(ctx context.Context, scheduleID uuid.UUID) ([]uuid.UUID, error)
	Transition(ctx context.Context, id uuid.UUID, req *TransitionRequest) (*Schedule, string, error)
	GetTripLogs(ctx context.Context, scheduleID uuid.UUID) ([]TripLog, error)
	ExistsForRouteScheduleAndDate(ctx context.Context, routeScheduleID uuid.UUID, date time.Time) (bool, error)
}

type ListFilter struct {
	RouteID  *uuid.UUID
	Status   string
	DateFrom *time.Time
	DateTo   *time.Time
	Page     int
	Limit    int
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateWithAssignment inserts the schedule and its crew assignment in
// one transaction so a trip never exists without a bus and driver.
func (r *repository) CreateWithAssignment(ctx context.Context, schedule *Schedule, assignment *fleet.BusAssignment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(schedule).Error; err != nil {
			return err
		}
		assignment.ScheduleID = schedule.ID
		return tx.Create(assignment).Error
	})
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Schedule, error) {
	var schedule Schedule
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("schedule %s", id)
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Schedule, int64, error) {
	query := r.db.WithContext(ctx).Model(&Schedule{})

	if filter.RouteID != nil {
		query = query.Where("route_id = ?", *filter.RouteID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.DateFrom != nil {
		query = query.Where("departure_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("departure_date <= ?", *filter.DateTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var schedules []Schedule
	offset := (filter.Page - 1) * filter.Limit
	err := query.
		Order("departure_date, estimated_departure_time").
		Offset(offset).
		Limit(filter.Limit).
		Find(&schedules).Error
	return schedules, total, err
}

// GetBookedSeatIDs queries the tickets table directly to keep the
// package graph acyclic; only active tickets block a seat.
func (r *repository) GetBookedSeatIDs(ctx context.Context, scheduleID uuid.UUID) ([]uuid.UUID, error) {
	var seatIDs []uuid.UUID
	err := r.db.WithContext(ctx).Table("tickets").
		Where("schedule_id = ? AND status = ?", scheduleID, "ACTIVE").
		Pluck("bus_seat_id", &seatIDs).Error
	return seatIDs, err
}

// Transition performs a status change with its side effects in a single
// transaction: the schedule row is locked, the transition validated,
// actual times set on first entry, a trip log row appended and bus
// assignments cascaded for terminal outcomes. Returns the updated
// schedule and the previous status.
func (r *repository) Transition(ctx context.Context, id uuid.UUID, req *TransitionRequest) (*Schedule, string, error) {
	var schedule Schedule
	var from string

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&schedule).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("schedule %s", id)
			}
			return err
		}

		from = schedule.Status
		if !CanTransition(from, req.Status) {
			return apperrors.Conflict("cannot transition schedule from %s to %s", from, req.Status)
		}

		var route busroutes.Route
		if err := tx.Select("id", "origin_location_id", "destination_location_id").
			Where("id = ?", schedule.RouteID).
			First(&route).Error; err != nil {
			return err
		}

		now := time.Now().UTC()
		log := TripLog{
			ScheduleID: schedule.ID,
			Notes:      req.Notes,
			LoggedAt:   now,
		}

		switch req.Status {
		case StatusInProgress:
			if schedule.ActualDepartureTime == nil {
				departedAt := now
				if req.ActualDepartureTime != nil {
					departedAt = *req.ActualDepartureTime
				}
				schedule.ActualDepartureTime = &departedAt
			}
			log.EventType = TripLogDeparture
			log.LocationID = &route.OriginLocationID

		case StatusDelayed:
			log.EventType = TripLogDelay

		case StatusCompleted:
			if schedule.ActualArrivalTime == nil {
				arrivedAt := now
				if req.ActualArrivalTime != nil {
					arrivedAt = *req.ActualArrivalTime
				}
				schedule.ActualArrivalTime = &arrivedAt
			}
			log.EventType = TripLogArrival
			log.LocationID = &route.DestinationLocationID
			if err := cascadeAssignments(tx, schedule.ID, fleet.AssignmentStatusCompleted); err != nil {
				return err
			}

		case StatusCancelled:
			log.EventType = TripLogCancel
			if err := cascadeAssignments(tx, schedule.ID, fleet.AssignmentStatusCancelled); err != nil {
				return err
			}
		}

		schedule.Status = req.Status
		if err := tx.Save(&schedule).Error; err != nil {
			return err
		}
		return tx.Create(&log).Error
	})
	if err != nil {
		return nil, "", err
	}
	return &schedule, from, nil
}

func cascadeAssignments(tx *gorm.DB, scheduleID uuid.UUID, status string) error {
	return tx.Model(&fleet.BusAssignment{}).
		Where("schedule_id = ? AND status = ?", scheduleID, fleet.AssignmentStatusAssigned).
		Update("status", status).Error
}

func (r *repository) GetTripLogs(ctx context.Context, scheduleID uuid.UUID) ([]TripLog, error) {
	var logs []TripLog
	err := r.db.WithContext(ctx).
		Where("schedule_id = ?", scheduleID).
		Order("logged_at").
		Find(&logs).Error
	return logs, err
}

func (r *repository) ExistsForRouteScheduleAndDate(ctx context.Context, routeScheduleID uuid.UUID, date time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Schedule{}).
		Where("route_schedule_id = ? AND departure_date = ? AND status <> ?",
			routeScheduleID, date, StatusCancelled).
		Count(&count).Error
	return count > 0, err
}
