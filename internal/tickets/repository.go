package tickets

import (
	"context"
	"errors"

	"buslink/internal/shared/apperrors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Create(ctx context.Context, ticket *Ticket) error
	CreateBulk(ctx context.Context, tickets []*Ticket) error
	GetByID(ctx context.Context, id uuid.UUID) (*Ticket, error)
	HasActiveTicket(ctx context.Context, scheduleID, busSeatID uuid.UUID) (bool, error)
	Cancel(ctx context.Context, id uuid.UUID, reason string, byUserID *uuid.UUID) (*Ticket, error)
	Reassign(ctx context.Context, id, newScheduleID, newBusSeatID uuid.UUID, reason string, byUserID *uuid.UUID) (*Ticket, error)
	MarkUsed(ctx context.Context, id uuid.UUID) (*Ticket, error)
	ListBySchedule(ctx context.Context, scheduleID uuid.UUID, status string) ([]Ticket, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]Ticket, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// isUniqueViolation detects the partial unique index firing under a
// concurrent double-booking attempt.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *repository) Create(ctx context.Context, ticket *Ticket) error {
	err := r.db.WithContext(ctx).Create(ticket).Error
	if isUniqueViolation(err) {
		return apperrors.Conflict("seat already booked on this schedule")
	}
	return err
}

// CreateBulk inserts every ticket in one transaction; any failure rolls
// back the whole batch.
func (r *repository) CreateBulk(ctx context.Context, tickets []*Ticket) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, ticket := range tickets {
			if err := tx.Create(ticket).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if isUniqueViolation(err) {
		return apperrors.Conflict("one of the requested seats is already booked")
	}
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Ticket, error) {
	var ticket Ticket
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&ticket).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("ticket %s", id)
		}
		return nil, err
	}
	return &ticket, nil
}

func (r *repository) HasActiveTicket(ctx context.Context, scheduleID, busSeatID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Ticket{}).
		Where("schedule_id = ? AND bus_seat_id = ? AND status = ?", scheduleID, busSeatID, StatusActive).
		Count(&count).Error
	return count > 0, err
}

// Cancel flips an active ticket to CANCELLED and writes the audit row
// in the same transaction. The row lock serializes concurrent cancels.
func (r *repository) Cancel(ctx context.Context, id uuid.UUID, reason string, byUserID *uuid.UUID) (*Ticket, error) {
	var ticket Ticket

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&ticket).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("ticket %s", id)
			}
			return err
		}

		if ticket.Status != StatusActive {
			return apperrors.Conflict("ticket %s is %s, only active tickets can be cancelled", id, ticket.Status)
		}

		ticket.Status = StatusCancelled
		if err := tx.Save(&ticket).Error; err != nil {
			return err
		}

		audit := TicketCancellation{
			TicketID:          ticket.ID,
			Reason:            reason,
			CancelledByUserID: byUserID,
		}
		return tx.Create(&audit).Error
	})
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// Reassign moves an active ticket to a new (schedule, seat) pair and
// records both sides of the move atomically. The partial unique index
// rejects a target pair that gains an active ticket concurrently.
func (r *repository) Reassign(ctx context.Context, id, newScheduleID, newBusSeatID uuid.UUID, reason string, byUserID *uuid.UUID) (*Ticket, error) {
	var ticket Ticket

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&ticket).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("ticket %s", id)
			}
			return err
		}

		if ticket.Status != StatusActive {
			return apperrors.Conflict("ticket %s is %s, only active tickets can be reassigned", id, ticket.Status)
		}

		audit := TicketReassignment{
			TicketID:         ticket.ID,
			OldScheduleID:    ticket.ScheduleID,
			OldBusSeatID:     ticket.BusSeatID,
			NewScheduleID:    newScheduleID,
			NewBusSeatID:     newBusSeatID,
			Reason:           reason,
			ReassignedByUser: byUserID,
		}
		if err := tx.Create(&audit).Error; err != nil {
			return err
		}

		ticket.ScheduleID = newScheduleID
		ticket.BusSeatID = newBusSeatID
		return tx.Save(&ticket).Error
	})
	if isUniqueViolation(err) {
		return nil, apperrors.Conflict("target seat already booked on that schedule")
	}
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *repository) MarkUsed(ctx context.Context, id uuid.UUID) (*Ticket, error) {
	var ticket Ticket

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&ticket).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("ticket %s", id)
			}
			return err
		}

		if ticket.Status != StatusActive {
			return apperrors.Conflict("ticket %s is %s, only active tickets can be used", id, ticket.Status)
		}

		ticket.Status = StatusUsed
		return tx.Save(&ticket).Error
	})
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *repository) ListBySchedule(ctx context.Context, scheduleID uuid.UUID, status string) ([]Ticket, error) {
	var tickets []Ticket
	query := r.db.WithContext(ctx).
		Where("schedule_id = ?", scheduleID).
		Order("created_at")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&tickets).Error
	return tickets, err
}

func (r *repository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]Ticket, error) {
	var tickets []Ticket
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&tickets).Error
	return tickets, err
}
