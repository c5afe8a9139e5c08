package drivers

import (
	"context"
	"time"

	"buslink/internal/shared/apperrors"

	"github.com/google/uuid"
)

const licenseDateLayout = "2006-01-02"

type Service interface {
	CreateDriver(ctx context.Context, companyID uuid.UUID, req *CreateDriverRequest) (*Driver, error)
	GetDriver(ctx context.Context, id uuid.UUID) (*Driver, error)
	GetDriverByUser(ctx context.Context, userID uuid.UUID) (*Driver, error)
	ListDrivers(ctx context.Context, companyID uuid.UUID, activeOnly bool) ([]Driver, error)
	UpdateDriver(ctx context.Context, id uuid.UUID, req *UpdateDriverRequest) (*Driver, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateDriver(ctx context.Context, companyID uuid.UUID, req *CreateDriverRequest) (*Driver, error) {
	expiry, err := time.Parse(licenseDateLayout, req.LicenseExpiry)
	if err != nil {
		return nil, apperrors.Validation("license_expiry must be YYYY-MM-DD")
	}

	exists, err := s.repo.DocumentExists(ctx, req.DocumentID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.Conflict("driver with document %s already registered", req.DocumentID)
	}

	driver := &Driver{
		CompanyID:     companyID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		DocumentID:    req.DocumentID,
		LicenseNumber: req.LicenseNumber,
		LicenseClass:  req.LicenseClass,
		LicenseExpiry: expiry,
		Phone:         req.Phone,
		IsActive:      true,
	}
	if req.UserID != nil {
		userID, err := uuid.Parse(*req.UserID)
		if err != nil {
			return nil, apperrors.Validation("invalid user_id")
		}
		driver.UserID = &userID
	}

	if err := s.repo.Create(ctx, driver); err != nil {
		return nil, err
	}
	return driver, nil
}

func (s *service) GetDriver(ctx context.Context, id uuid.UUID) (*Driver, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetDriverByUser(ctx context.Context, userID uuid.UUID) (*Driver, error) {
	return s.repo.GetByUserID(ctx, userID)
}

func (s *service) ListDrivers(ctx context.Context, companyID uuid.UUID, activeOnly bool) ([]Driver, error) {
	return s.repo.GetByCompany(ctx, companyID, activeOnly)
}

func (s *service) UpdateDriver(ctx context.Context, id uuid.UUID, req *UpdateDriverRequest) (*Driver, error) {
	driver, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		driver.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		driver.LastName = *req.LastName
	}
	if req.LicenseNumber != nil {
		driver.LicenseNumber = *req.LicenseNumber
	}
	if req.LicenseClass != nil {
		driver.LicenseClass = *req.LicenseClass
	}
	if req.LicenseExpiry != nil {
		expiry, err := time.Parse(licenseDateLayout, *req.LicenseExpiry)
		if err != nil {
			return nil, apperrors.Validation("license_expiry must be YYYY-MM-DD")
		}
		driver.LicenseExpiry = expiry
	}
	if req.Phone != nil {
		driver.Phone = *req.Phone
	}
	if req.IsActive != nil {
		driver.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, driver); err != nil {
		return nil, err
	}
	return driver, nil
}
