package fleet

import (
	"context"
	"errors"

	"buslink/internal/shared/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	CreateSeatTier(ctx context.Context, tier *SeatTier) error
	GetSeatTierByID(ctx context.Context, id uuid.UUID) (*SeatTier, error)
	GetSeatTiersByCompany(ctx context.Context, companyID uuid.UUID) ([]SeatTier, error)

	CreateBus(ctx context.Context, bus *Bus) error
	GetBusByID(ctx context.Context, id uuid.UUID) (*Bus, error)
	GetBusWithSeats(ctx context.Context, id uuid.UUID) (*Bus, error)
	GetBusesByCompany(ctx context.Context, companyID uuid.UUID) ([]Bus, error)
	UpdateBus(ctx context.Context, bus *Bus) error
	PlateExists(ctx context.Context, companyID uuid.UUID, plate string) (bool, error)

	CreateBusSeat(ctx context.Context, seat *BusSeat) error
	GetBusSeatByID(ctx context.Context, id uuid.UUID) (*BusSeat, error)
	GetSeatsByBus(ctx context.Context, busID uuid.UUID) ([]BusSeat, error)
	CountSeatsByBus(ctx context.Context, busID uuid.UUID) (int64, error)
	UpdateBusSeat(ctx context.Context, seat *BusSeat) error
	DeleteBusSeat(ctx context.Context, seatID uuid.UUID) error
	SeatHasTickets(ctx context.Context, seatID uuid.UUID) (bool, error)

	CreateTemplate(ctx context.Context, template *BusTemplate) error
	GetTemplateByID(ctx context.Context, id uuid.UUID) (*BusTemplate, error)
	GetTemplatesByCompany(ctx context.Context, companyID uuid.UUID) ([]BusTemplate, error)
	ApplyTemplateToBus(ctx context.Context, template *BusTemplate, busID uuid.UUID) ([]BusSeat, error)

	CreateAssignment(ctx context.Context, assignment *BusAssignment) error
	GetAssignmentsBySchedule(ctx context.Context, scheduleID uuid.UUID) ([]BusAssignment, error)
	GetAssignmentsByDriver(ctx context.Context, driverID uuid.UUID, status string) ([]BusAssignment, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateSeatTier(ctx context.Context, tier *SeatTier) error {
	return r.db.WithContext(ctx).Create(tier).Error
}

func (r *repository) GetSeatTierByID(ctx context.Context, id uuid.UUID) (*SeatTier, error) {
	var tier SeatTier
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&tier).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("seat tier %s", id)
		}
		return nil, err
	}
	return &tier, nil
}

func (r *repository) GetSeatTiersByCompany(ctx context.Context, companyID uuid.UUID) ([]SeatTier, error) {
	var tiers []SeatTier
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("price_multiplier").
		Find(&tiers).Error
	return tiers, err
}

func (r *repository) CreateBus(ctx context.Context, bus *Bus) error {
	return r.db.WithContext(ctx).Create(bus).Error
}

func (r *repository) GetBusByID(ctx context.Context, id uuid.UUID) (*Bus, error) {
	var bus Bus
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&bus).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("bus %s", id)
		}
		return nil, err
	}
	return &bus, nil
}

func (r *repository) GetBusWithSeats(ctx context.Context, id uuid.UUID) (*Bus, error) {
	var bus Bus
	err := r.db.WithContext(ctx).
		Preload("Seats", func(db *gorm.DB) *gorm.DB {
			return db.Order("bus_seats.seat_number")
		}).
		Preload("Seats.Tier").
		Where("id = ?", id).
		First(&bus).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("bus %s", id)
		}
		return nil, err
	}
	return &bus, nil
}

func (r *repository) GetBusesByCompany(ctx context.Context, companyID uuid.UUID) ([]Bus, error) {
	var buses []Bus
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("plate").
		Find(&buses).Error
	return buses, err
}

func (r *repository) UpdateBus(ctx context.Context, bus *Bus) error {
	return r.db.WithContext(ctx).Save(bus).Error
}

func (r *repository) PlateExists(ctx context.Context, companyID uuid.UUID, plate string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Bus{}).
		Where("company_id = ? AND plate = ?", companyID, plate).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CreateBusSeat(ctx context.Context, seat *BusSeat) error {
	return r.db.WithContext(ctx).Create(seat).Error
}

func (r *repository) GetBusSeatByID(ctx context.Context, id uuid.UUID) (*BusSeat, error) {
	var seat BusSeat
	err := r.db.WithContext(ctx).Preload("Tier").Where("id = ?", id).First(&seat).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("bus seat %s", id)
		}
		return nil, err
	}
	return &seat, nil
}

func (r *repository) GetSeatsByBus(ctx context.Context, busID uuid.UUID) ([]BusSeat, error) {
	var seats []BusSeat
	err := r.db.WithContext(ctx).
		Preload("Tier").
		Where("bus_id = ?", busID).
		Order("seat_number").
		Find(&seats).Error
	return seats, err
}

func (r *repository) CountSeatsByBus(ctx context.Context, busID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&BusSeat{}).
		Where("bus_id = ?", busID).
		Count(&count).Error
	return count, err
}

func (r *repository) UpdateBusSeat(ctx context.Context, seat *BusSeat) error {
	return r.db.WithContext(ctx).Save(seat).Error
}

func (r *repository) DeleteBusSeat(ctx context.Context, seatID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", seatID).Delete(&BusSeat{}).Error
}

// SeatHasTickets checks the tickets table without importing the tickets
// package to keep the dependency graph acyclic.
func (r *repository) SeatHasTickets(ctx context.Context, seatID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("tickets").
		Where("bus_seat_id = ?", seatID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CreateTemplate(ctx context.Context, template *BusTemplate) error {
	return r.db.WithContext(ctx).Create(template).Error
}

func (r *repository) GetTemplateByID(ctx context.Context, id uuid.UUID) (*BusTemplate, error) {
	var template BusTemplate
	err := r.db.WithContext(ctx).
		Preload("Seats").
		Where("id = ?", id).
		First(&template).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("bus template %s", id)
		}
		return nil, err
	}
	return &template, nil
}

func (r *repository) GetTemplatesByCompany(ctx context.Context, companyID uuid.UUID) ([]BusTemplate, error) {
	var templates []BusTemplate
	err := r.db.WithContext(ctx).
		Preload("Seats").
		Where("company_id = ?", companyID).
		Order("name").
		Find(&templates).Error
	return templates, err
}

// ApplyTemplateToBus materializes one BusSeat per template seat in a
// single transaction. Fails if the bus already has seats.
func (r *repository) ApplyTemplateToBus(ctx context.Context, template *BusTemplate, busID uuid.UUID) ([]BusSeat, error) {
	seats := make([]BusSeat, 0, len(template.Seats))

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&BusSeat{}).Where("bus_id = ?", busID).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return apperrors.Conflict("bus %s already has seats", busID)
		}

		for _, ts := range template.Seats {
			seat := BusSeat{
				BusID:      busID,
				SeatTierID: ts.SeatTierID,
				SeatNumber: ts.SeatNumber,
				Floor:      ts.Floor,
				Row:        ts.Row,
				Column:     ts.Column,
				Status:     SeatStatusActive,
			}
			if err := tx.Create(&seat).Error; err != nil {
				return err
			}
			seats = append(seats, seat)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return seats, nil
}

func (r *repository) CreateAssignment(ctx context.Context, assignment *BusAssignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *repository) GetAssignmentsBySchedule(ctx context.Context, scheduleID uuid.UUID) ([]BusAssignment, error) {
	var assignments []BusAssignment
	err := r.db.WithContext(ctx).
		Where("schedule_id = ?", scheduleID).
		Order("created_at").
		Find(&assignments).Error
	return assignments, err
}

func (r *repository) GetAssignmentsByDriver(ctx context.Context, driverID uuid.UUID, status string) ([]BusAssignment, error) {
	var assignments []BusAssignment
	query := r.db.WithContext(ctx).
		Where("primary_driver_id = ? OR secondary_driver_id = ?", driverID, driverID).
		Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&assignments).Error
	return assignments, err
}
