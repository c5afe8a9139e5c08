package customers

import (
	"context"
	"errors"

	"buslink/internal/shared/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, customer *Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	GetByDocumentID(ctx context.Context, documentID string) (*Customer, error)
	Update(ctx context.Context, customer *Customer) error
	Search(ctx context.Context, query string, limit int) ([]Customer, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, customer *Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Customer, error) {
	var customer Customer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("customer %s", id)
		}
		return nil, err
	}
	return &customer, nil
}

func (r *repository) GetByDocumentID(ctx context.Context, documentID string) (*Customer, error) {
	var customer Customer
	err := r.db.WithContext(ctx).Where("document_id = ?", documentID).First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("customer with document %s", documentID)
		}
		return nil, err
	}
	return &customer, nil
}

func (r *repository) Update(ctx context.Context, customer *Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

func (r *repository) Search(ctx context.Context, query string, limit int) ([]Customer, error) {
	var customers []Customer
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Where("document_id ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?", pattern, pattern, pattern).
		Order("last_name, first_name").
		Limit(limit).
		Find(&customers).Error
	return customers, err
}
