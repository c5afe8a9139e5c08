package locations

import (
	"context"
	"errors"

	"buslink/internal/shared/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, location *Location) error
	GetByID(ctx context.Context, id uuid.UUID) (*Location, error)
	GetAll(ctx context.Context, activeOnly bool) ([]Location, error)
	Update(ctx context.Context, location *Location) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, location *Location) error {
	return r.db.WithContext(ctx).Create(location).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Location, error) {
	var location Location
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&location).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("location %s", id)
		}
		return nil, err
	}
	return &location, nil
}

func (r *repository) GetAll(ctx context.Context, activeOnly bool) ([]Location, error) {
	var locations []Location
	query := r.db.WithContext(ctx).Order("city, name")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&locations).Error
	return locations, err
}

func (r *repository) Update(ctx context.Context, location *Location) error {
	return r.db.WithContext(ctx).Save(location).Error
}

func (r *repository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&Location{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("location %s", id)
	}
	return nil
}
