package drivers

import (
	"context"
	"errors"

	"buslink/internal/shared/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, driver *Driver) error
	GetByID(ctx context.Context, id uuid.UUID) (*Driver, error)
	GetByCompany(ctx context.Context, companyID uuid.UUID, activeOnly bool) ([]Driver, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Driver, error)
	Update(ctx context.Context, driver *Driver) error
	DocumentExists(ctx context.Context, documentID string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, driver *Driver) error {
	return r.db.WithContext(ctx).Create(driver).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Driver, error) {
	var driver Driver
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&driver).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("driver %s", id)
		}
		return nil, err
	}
	return &driver, nil
}

func (r *repository) GetByCompany(ctx context.Context, companyID uuid.UUID, activeOnly bool) ([]Driver, error) {
	var drivers []Driver
	query := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("last_name, first_name")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&drivers).Error
	return drivers, err
}

func (r *repository) GetByUserID(ctx context.Context, userID uuid.UUID) (*Driver, error) {
	var driver Driver
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&driver).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("driver for user %s", userID)
		}
		return nil, err
	}
	return &driver, nil
}

func (r *repository) Update(ctx context.Context, driver *Driver) error {
	return r.db.WithContext(ctx).Save(driver).Error
}

func (r *repository) DocumentExists(ctx context.Context, documentID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Driver{}).
		Where("document_id = ?", documentID).
		Count(&count).Error
	return count > 0, err
}
