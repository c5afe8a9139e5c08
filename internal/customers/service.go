package customers

import (
	"context"
	"errors"

	"buslink/internal/shared/apperrors"

	"github.com/google/uuid"
)

type Service interface {
	// UpsertByDocument finds a customer by document ID, creating the record
	// if absent and refreshing contact details if present. Ticket and parcel
	// sales call this so walk-in passengers never need a prior registration.
	UpsertByDocument(ctx context.Context, req *UpsertCustomerRequest) (*Customer, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (*Customer, error)
	GetByDocument(ctx context.Context, documentID string) (*Customer, error)
	SearchCustomers(ctx context.Context, query string, limit int) ([]Customer, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) UpsertByDocument(ctx context.Context, req *UpsertCustomerRequest) (*Customer, error) {
	existing, err := s.repo.GetByDocumentID(ctx, req.DocumentID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		existing.FirstName = req.FirstName
		existing.LastName = req.LastName
		if req.Phone != "" {
			existing.Phone = req.Phone
		}
		if req.Email != "" {
			existing.Email = req.Email
		}
		if err := s.repo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	customer := &Customer{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		DocumentID: req.DocumentID,
		Phone:      req.Phone,
		Email:      req.Email,
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *service) GetCustomer(ctx context.Context, id uuid.UUID) (*Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetByDocument(ctx context.Context, documentID string) (*Customer, error) {
	return s.repo.GetByDocumentID(ctx, documentID)
}

func (s *service) SearchCustomers(ctx context.Context, query string, limit int) ([]Customer, error) {
	if len(query) < 2 {
		return nil, apperrors.Validation("search query must be at least 2 characters")
	}
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	return s.repo.Search(ctx, query, limit)
}
