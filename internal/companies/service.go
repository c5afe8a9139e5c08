package companies

import (
	"context"

	"buslink/internal/shared/apperrors"

	"github.com/google/uuid"
)

type Service interface {
	CreateCompany(ctx context.Context, req *CreateCompanyRequest) (*Company, error)
	GetCompany(ctx context.Context, id uuid.UUID) (*Company, error)
	ListCompanies(ctx context.Context, activeOnly bool) ([]Company, error)
	UpdateCompany(ctx context.Context, id uuid.UUID, req *UpdateCompanyRequest) (*Company, error)

	CreateBranch(ctx context.Context, companyID uuid.UUID, req *CreateBranchRequest) (*Branch, error)
	ListBranches(ctx context.Context, companyID uuid.UUID) ([]Branch, error)
	UpdateBranch(ctx context.Context, companyID, branchID uuid.UUID, req *UpdateBranchRequest) (*Branch, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateCompany(ctx context.Context, req *CreateCompanyRequest) (*Company, error) {
	company := &Company{
		Name:         req.Name,
		LegalName:    req.LegalName,
		TaxID:        req.TaxID,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		IsActive:     true,
	}
	if err := s.repo.CreateCompany(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *service) GetCompany(ctx context.Context, id uuid.UUID) (*Company, error) {
	return s.repo.GetCompanyByID(ctx, id)
}

func (s *service) ListCompanies(ctx context.Context, activeOnly bool) ([]Company, error) {
	return s.repo.GetAllCompanies(ctx, activeOnly)
}

func (s *service) UpdateCompany(ctx context.Context, id uuid.UUID, req *UpdateCompanyRequest) (*Company, error) {
	company, err := s.repo.GetCompanyByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.LegalName != nil {
		company.LegalName = *req.LegalName
	}
	if req.ContactEmail != nil {
		company.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		company.ContactPhone = *req.ContactPhone
	}
	if req.IsActive != nil {
		company.IsActive = *req.IsActive
	}

	if err := s.repo.UpdateCompany(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *service) CreateBranch(ctx context.Context, companyID uuid.UUID, req *CreateBranchRequest) (*Branch, error) {
	// The company must exist and be active before branches can be attached.
	company, err := s.repo.GetCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if !company.IsActive {
		return nil, apperrors.Conflict("company %s is inactive", companyID)
	}

	branch := &Branch{
		CompanyID: companyID,
		Name:      req.Name,
		Phone:     req.Phone,
		IsActive:  true,
	}
	if req.LocationID != nil {
		locationID, err := uuid.Parse(*req.LocationID)
		if err != nil {
			return nil, apperrors.Validation("invalid location_id")
		}
		branch.LocationID = &locationID
	}

	if err := s.repo.CreateBranch(ctx, branch); err != nil {
		return nil, err
	}
	return branch, nil
}

func (s *service) ListBranches(ctx context.Context, companyID uuid.UUID) ([]Branch, error) {
	if _, err := s.repo.GetCompanyByID(ctx, companyID); err != nil {
		return nil, err
	}
	return s.repo.GetBranchesByCompany(ctx, companyID)
}

func (s *service) UpdateBranch(ctx context.Context, companyID, branchID uuid.UUID, req *UpdateBranchRequest) (*Branch, error) {
	branch, err := s.repo.GetBranchByID(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if branch.CompanyID != companyID {
		return nil, apperrors.NotFound("branch %s", branchID)
	}

	if req.Name != nil {
		branch.Name = *req.Name
	}
	if req.Phone != nil {
		branch.Phone = *req.Phone
	}
	if req.LocationID != nil {
		locationID, err := uuid.Parse(*req.LocationID)
		if err != nil {
			return nil, apperrors.Validation("invalid location_id")
		}
		branch.LocationID = &locationID
	}
	if req.IsActive != nil {
		branch.IsActive = *req.IsActive
	}

	if err := s.repo.UpdateBranch(ctx, branch); err != nil {
		return nil, err
	}
	return branch, nil
}
