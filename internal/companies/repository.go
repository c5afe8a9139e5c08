package companies

import (
	"context"
	"errors"

	"buslink/internal/shared/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	CreateCompany(ctx context.Context, company *Company) error
	GetCompanyByID(ctx context.Context, id uuid.UUID) (*Company, error)
	GetAllCompanies(ctx context.Context, activeOnly bool) ([]Company, error)
	UpdateCompany(ctx context.Context, company *Company) error

	CreateBranch(ctx context.Context, branch *Branch) error
	GetBranchByID(ctx context.Context, id uuid.UUID) (*Branch, error)
	GetBranchesByCompany(ctx context.Context, companyID uuid.UUID) ([]Branch, error)
	UpdateBranch(ctx context.Context, branch *Branch) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateCompany(ctx context.Context, company *Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *repository) GetCompanyByID(ctx context.Context, id uuid.UUID) (*Company, error) {
	var company Company
	err := r.db.WithContext(ctx).
		Preload("Branches").
		Where("id = ?", id).
		First(&company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("company %s", id)
		}
		return nil, err
	}
	return &company, nil
}

func (r *repository) GetAllCompanies(ctx context.Context, activeOnly bool) ([]Company, error) {
	var companies []Company
	query := r.db.WithContext(ctx).Order("name")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&companies).Error
	return companies, err
}

func (r *repository) UpdateCompany(ctx context.Context, company *Company) error {
	return r.db.WithContext(ctx).Save(company).Error
}

func (r *repository) CreateBranch(ctx context.Context, branch *Branch) error {
	return r.db.WithContext(ctx).Create(branch).Error
}

func (r *repository) GetBranchByID(ctx context.Context, id uuid.UUID) (*Branch, error) {
	var branch Branch
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&branch).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("branch %s", id)
		}
		return nil, err
	}
	return &branch, nil
}

func (r *repository) GetBranchesByCompany(ctx context.Context, companyID uuid.UUID) ([]Branch, error) {
	var branches []Branch
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("name").
		Find(&branches).Error
	return branches, err
}

func (r *repository) UpdateBranch(ctx context.Context, branch *Branch) error {
	return r.db.WithContext(ctx).Save(branch).Error
}
