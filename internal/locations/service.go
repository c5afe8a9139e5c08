package locations

import (
	"context"

	"buslink/internal/shared/constants"
	"buslink/pkg/cache"

	"github.com/google/uuid"
)

type Service interface {
	CreateLocation(ctx context.Context, req *CreateLocationRequest) (*Location, error)
	GetLocation(ctx context.Context, id uuid.UUID) (*Location, error)
	ListLocations(ctx context.Context, activeOnly bool) ([]Location, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, req *UpdateLocationRequest) (*Location, error)
	DeactivateLocation(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo  Repository
	cache cache.Service
}

func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{repo: repo, cache: cacheService}
}

func (s *service) CreateLocation(ctx context.Context, req *CreateLocationRequest) (*Location, error) {
	location := &Location{
		Name:      req.Name,
		City:      req.City,
		Region:    req.Region,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		IsActive:  true,
	}

	if err := s.repo.Create(ctx, location); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return location, nil
}

func (s *service) GetLocation(ctx context.Context, id uuid.UUID) (*Location, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListLocations(ctx context.Context, activeOnly bool) ([]Location, error) {
	if activeOnly && s.cache != nil {
		var locations []Location
		err := s.cache.GetOrSet(ctx, constants.CACHE_KEY_LOCATIONS_ACTIVE, constants.TTL_LOCATIONS,
			func() (interface{}, error) {
				return s.repo.GetAll(ctx, true)
			}, &locations)
		if err == nil {
			return locations, nil
		}
		// fall through to the database on cache failure
	}
	return s.repo.GetAll(ctx, activeOnly)
}

func (s *service) UpdateLocation(ctx context.Context, id uuid.UUID, req *UpdateLocationRequest) (*Location, error) {
	location, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		location.Name = *req.Name
	}
	if req.City != nil {
		location.City = *req.City
	}
	if req.Region != nil {
		location.Region = *req.Region
	}
	if req.Address != nil {
		location.Address = *req.Address
	}
	if req.Latitude != nil {
		location.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		location.Longitude = *req.Longitude
	}
	if req.IsActive != nil {
		location.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, location); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return location, nil
}

func (s *service) DeactivateLocation(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.DeletePattern(ctx, constants.PATTERN_INVALIDATE_LOCATIONS)
	}
}
