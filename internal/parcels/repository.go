package parcels

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
	CreateWithInitialStatus(ctx context.Context, parcel *Parcel, byUserID *uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*Parcel, error)
	GetByTrackingCode(ctx context.Context, code string) (*Parcel, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, newStatus, notes string, byUserID *uuid.UUID) (*Parcel, error)
	ListBySchedule(ctx context.Context, scheduleID uuid.UUID) ([]Parcel, error)
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

// CreateWithInitialStatus inserts the parcel and its first history row
// together. The unique index on tracking_code rejects a code collision.
func (r *repository) CreateWithInitialStatus(ctx context.Context, parcel *Parcel, byUserID *uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(parcel).Error; err != nil {
			return err
		}
		initial := ParcelStatusUpdate{
			ParcelID:        parcel.ID,
			ToStatus:        parcel.Status,
			UpdatedByUserID: byUserID,
		}
		return tx.Create(&initial).Error
	})
	if isUniqueViolation(err) {
		return apperrors.Conflict("tracking code %s already in use", parcel.TrackingCode)
	}
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Parcel, error) {
	var parcel Parcel
	err := r.db.WithContext(ctx).
		Preload("StatusUpdates", func(db *gorm.DB) *gorm.DB {
			return db.Order("parcel_status_updates.created_at")
		}).
		Where("id = ?", id).
		First(&parcel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("parcel %s", id)
		}
		return nil, err
	}
	return &parcel, nil
}

func (r *repository) GetByTrackingCode(ctx context.Context, code string) (*Parcel, error) {
	var parcel Parcel
	err := r.db.WithContext(ctx).
		Preload("StatusUpdates", func(db *gorm.DB) *gorm.DB {
			return db.Order("parcel_status_updates.created_at")
		}).
		Where("tracking_code = ?", code).
		First(&parcel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("parcel with tracking code %s", code)
		}
		return nil, err
	}
	return &parcel, nil
}

// UpdateStatus validates the transition under a row lock and appends
// the history row in the same transaction.
func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, newStatus, notes string, byUserID *uuid.UUID) (*Parcel, error) {
	var parcel Parcel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&parcel).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("parcel %s", id)
			}
			return err
		}

		if !CanTransition(parcel.Status, newStatus) {
			return apperrors.Conflict("cannot move parcel from %s to %s", parcel.Status, newStatus)
		}

		update := ParcelStatusUpdate{
			ParcelID:        parcel.ID,
			FromStatus:      parcel.Status,
			ToStatus:        newStatus,
			Notes:           notes,
			UpdatedByUserID: byUserID,
		}
		if err := tx.Create(&update).Error; err != nil {
			return err
		}

		parcel.Status = newStatus
		parcel.StatusUpdates = nil
		return tx.Save(&parcel).Error
	})
	if err != nil {
		return nil, err
	}
	return &parcel, nil
}

func (r *repository) ListBySchedule(ctx context.Context, scheduleID uuid.UUID) ([]Parcel, error) {
	var parcels []Parcel
	err := r.db.WithContext(ctx).
		Where("schedule_id = ?", scheduleID).
		Order("created_at").
		Find(&parcels).Error
	return parcels, err
}
