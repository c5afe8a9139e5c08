package finances

import (
	"context"
	"errors"
	"time"

	"buslink/internal/shared/apperrors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Create(ctx context.Context, liquidation *Liquidation) error
	GetByID(ctx context.Context, id uuid.UUID) (*Liquidation, error)
	GetByScheduleID(ctx context.Context, scheduleID uuid.UUID) (*Liquidation, error)
	AddExpense(ctx context.Context, liquidationID uuid.UUID, expense *LiquidationExpense) error
	SumExpenses(ctx context.Context, liquidationID uuid.UUID) (float64, error)
	AggregateIncome(ctx context.Context, scheduleID uuid.UUID) (*IncomeSummary, error)
	Close(ctx context.Context, id uuid.UUID, summary *IncomeSummary, byUserID *uuid.UUID) (*Liquidation, error)
	Approve(ctx context.Context, id uuid.UUID, byUserID *uuid.UUID) (*Liquidation, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *repository) Create(ctx context.Context, liquidation *Liquidation) error {
	err := r.db.WithContext(ctx).Create(liquidation).Error
	if isUniqueViolation(err) {
		return apperrors.Conflict("liquidation already exists for schedule %s", liquidation.ScheduleID)
	}
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Liquidation, error) {
	var liquidation Liquidation
	err := r.db.WithContext(ctx).
		Preload("Expenses", func(db *gorm.DB) *gorm.DB {
			return db.Order("liquidation_expenses.created_at")
		}).
		Where("id = ?", id).
		First(&liquidation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("liquidation %s", id)
		}
		return nil, err
	}
	return &liquidation, nil
}

func (r *repository) GetByScheduleID(ctx context.Context, scheduleID uuid.UUID) (*Liquidation, error) {
	var liquidation Liquidation
	err := r.db.WithContext(ctx).
		Preload("Expenses", func(db *gorm.DB) *gorm.DB {
			return db.Order("liquidation_expenses.created_at")
		}).
		Where("schedule_id = ?", scheduleID).
		First(&liquidation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("liquidation for schedule %s", scheduleID)
		}
		return nil, err
	}
	return &liquidation, nil
}

// AddExpense appends an expense while the liquidation is OPEN; the row
// lock keeps a concurrent close from racing the append.
func (r *repository) AddExpense(ctx context.Context, liquidationID uuid.UUID, expense *LiquidationExpense) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var liquidation Liquidation
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", liquidationID).
			First(&liquidation).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("liquidation %s", liquidationID)
			}
			return err
		}

		if liquidation.Status != StatusOpen {
			return apperrors.Conflict("liquidation %s is %s, expenses can only be added while open",
				liquidationID, liquidation.Status)
		}

		expense.LiquidationID = liquidationID
		return tx.Create(expense).Error
	})
}

func (r *repository) SumExpenses(ctx context.Context, liquidationID uuid.UUID) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&LiquidationExpense{}).
		Where("liquidation_id = ?", liquidationID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

// AggregateIncome sums ticket income (ACTIVE and USED tickets) and
// parcel income (everything not LOST) straight from the booking tables.
func (r *repository) AggregateIncome(ctx context.Context, scheduleID uuid.UUID) (*IncomeSummary, error) {
	summary := &IncomeSummary{}

	var ticketRow struct {
		Total float64
		Count int64
	}
	err := r.db.WithContext(ctx).Table("tickets").
		Where("schedule_id = ? AND status IN ?", scheduleID, []string{"ACTIVE", "USED"}).
		Select("COALESCE(SUM(price), 0) AS total, COUNT(*) AS count").
		Scan(&ticketRow).Error
	if err != nil {
		return nil, err
	}
	summary.TicketIncome = ticketRow.Total
	summary.TicketCount = ticketRow.Count

	var parcelRow struct {
		Total float64
		Count int64
	}
	err = r.db.WithContext(ctx).Table("parcels").
		Where("schedule_id = ? AND status <> ?", scheduleID, "LOST").
		Select("COALESCE(SUM(price), 0) AS total, COUNT(*) AS count").
		Scan(&parcelRow).Error
	if err != nil {
		return nil, err
	}
	summary.ParcelIncome = parcelRow.Total
	summary.ParcelCount = parcelRow.Count

	return summary, nil
}

// Close freezes the computed totals and moves OPEN → CLOSED.
func (r *repository) Close(ctx context.Context, id uuid.UUID, summary *IncomeSummary, byUserID *uuid.UUID) (*Liquidation, error) {
	var liquidation Liquidation

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&liquidation).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("liquidation %s", id)
			}
			return err
		}

		if liquidation.Status != StatusOpen {
			return apperrors.Conflict("liquidation %s is already %s", id, liquidation.Status)
		}

		var expenses float64
		err = tx.Model(&LiquidationExpense{}).
			Where("liquidation_id = ?", id).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&expenses).Error
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		liquidation.Status = StatusClosed
		liquidation.TicketIncome = summary.TicketIncome
		liquidation.ParcelIncome = summary.ParcelIncome
		liquidation.TotalExpenses = expenses
		liquidation.NetTotal = summary.TicketIncome + summary.ParcelIncome - expenses
		liquidation.ClosedAt = &now
		liquidation.ClosedByUserID = byUserID
		return tx.Save(&liquidation).Error
	})
	if err != nil {
		return nil, err
	}
	return &liquidation, nil
}

func (r *repository) Approve(ctx context.Context, id uuid.UUID, byUserID *uuid.UUID) (*Liquidation, error) {
	var liquidation Liquidation

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&liquidation).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("liquidation %s", id)
			}
			return err
		}

		if liquidation.Status != StatusClosed {
			return apperrors.Conflict("liquidation %s is %s, only closed liquidations can be approved",
				id, liquidation.Status)
		}

		now := time.Now().UTC()
		liquidation.Status = StatusApproved
		liquidation.ApprovedAt = &now
		liquidation.ApprovedByUserID = byUserID
		return tx.Save(&liquidation).Error
	})
	if err != nil {
		return nil, err
	}
	return &liquidation, nil
}
