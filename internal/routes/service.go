package routes

import (
	"context"
	"strings"
	"time"

	"buslink/internal/shared/apperrors"
	"buslink/internal/shared/constants"
	"buslink/pkg/cache"

	"github.com/google/uuid"
)

type Service interface {
	CreateRoute(ctx context.Context, req *CreateRouteRequest) (*Route, error)
	GetRoute(ctx context.Context, id uuid.UUID) (*Route, error)
	ListRoutes(ctx context.Context, companyID uuid.UUID, activeOnly bool) ([]Route, error)
	SearchRoutes(ctx context.Context, originID, destinationID uuid.UUID) ([]Route, error)
	UpdateRoute(ctx context.Context, id uuid.UUID, req *UpdateRouteRequest) (*Route, error)

	CreateTimetableEntry(ctx context.Context, routeID uuid.UUID, req *CreateRouteScheduleRequest) (*RouteSchedule, error)
	ListTimetable(ctx context.Context, routeID uuid.UUID) ([]RouteSchedule, error)
	UpdateTimetableEntry(ctx context.Context, routeID, entryID uuid.UUID, req *UpdateRouteScheduleRequest) (*RouteSchedule, error)
}

type service struct {
	repo  Repository
	cache cache.Service
}

func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{repo: repo, cache: cacheService}
}

func (s *service) CreateRoute(ctx context.Context, req *CreateRouteRequest) (*Route, error) {
	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		return nil, apperrors.Validation("invalid company_id")
	}
	originID, err := uuid.Parse(req.OriginLocationID)
	if err != nil {
		return nil, apperrors.Validation("invalid origin_location_id")
	}
	destinationID, err := uuid.Parse(req.DestinationLocationID)
	if err != nil {
		return nil, apperrors.Validation("invalid destination_location_id")
	}
	if originID == destinationID {
		return nil, apperrors.Validation("origin and destination must differ")
	}

	route := &Route{
		CompanyID:             companyID,
		OriginLocationID:      originID,
		DestinationLocationID: destinationID,
		Name:                  req.Name,
		DistanceKM:            req.DistanceKM,
		EstimatedDurationMin:  req.EstimatedDurationMin,
		BasePrice:             req.BasePrice,
		IsActive:              true,
	}
	if err := s.repo.CreateRoute(ctx, route); err != nil {
		return nil, err
	}
	return route, nil
}

func (s *service) GetRoute(ctx context.Context, id uuid.UUID) (*Route, error) {
	if s.cache != nil {
		var route Route
		err := s.cache.GetOrSet(ctx, constants.CACHE_KEY_ROUTE_DETAIL+id.String(), constants.TTL_SEMI_STATIC_MEDIUM,
			func() (interface{}, error) {
				return s.repo.GetRouteByID(ctx, id)
			}, &route)
		if err == nil {
			return &route, nil
		}
		if err != nil && apperrors.HTTPStatus(err) != 500 {
			return nil, err
		}
	}
	return s.repo.GetRouteByID(ctx, id)
}

func (s *service) ListRoutes(ctx context.Context, companyID uuid.UUID, activeOnly bool) ([]Route, error) {
	return s.repo.GetRoutesByCompany(ctx, companyID, activeOnly)
}

func (s *service) SearchRoutes(ctx context.Context, originID, destinationID uuid.UUID) ([]Route, error) {
	return s.repo.SearchRoutes(ctx, originID, destinationID)
}

func (s *service) UpdateRoute(ctx context.Context, id uuid.UUID, req *UpdateRouteRequest) (*Route, error) {
	route, err := s.repo.GetRouteByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		route.Name = *req.Name
	}
	if req.DistanceKM != nil {
		route.DistanceKM = *req.DistanceKM
	}
	if req.EstimatedDurationMin != nil {
		route.EstimatedDurationMin = *req.EstimatedDurationMin
	}
	if req.BasePrice != nil {
		route.BasePrice = *req.BasePrice
	}
	if req.IsActive != nil {
		route.IsActive = *req.IsActive
	}

	// Save without the preloaded associations touching locations.
	route.Origin = nil
	route.Destination = nil

	if err := s.repo.UpdateRoute(ctx, route); err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Delete(ctx, constants.CACHE_KEY_ROUTE_DETAIL+id.String())
	}
	return route, nil
}

func (s *service) CreateTimetableEntry(ctx context.Context, routeID uuid.UUID, req *CreateRouteScheduleRequest) (*RouteSchedule, error) {
	route, err := s.repo.GetRouteByID(ctx, routeID)
	if err != nil {
		return nil, err
	}
	if !route.IsActive {
		return nil, apperrors.Conflict("route %s is inactive", routeID)
	}
	if _, err := time.Parse("15:04", req.DepartureTime); err != nil {
		return nil, apperrors.Validation("departure_time must be HH:MM (24h)")
	}

	entry := &RouteSchedule{
		RouteID:       routeID,
		DepartureTime: req.DepartureTime,
		DaysOfWeek:    strings.Join(req.DaysOfWeek, ","),
		PriceOverride: req.PriceOverride,
		IsActive:      true,
	}
	if err := s.repo.CreateRouteSchedule(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *service) ListTimetable(ctx context.Context, routeID uuid.UUID) ([]RouteSchedule, error) {
	if _, err := s.repo.GetRouteByID(ctx, routeID); err != nil {
		return nil, err
	}
	return s.repo.GetRouteSchedules(ctx, routeID)
}

func (s *service) UpdateTimetableEntry(ctx context.Context, routeID, entryID uuid.UUID, req *UpdateRouteScheduleRequest) (*RouteSchedule, error) {
	entry, err := s.repo.GetRouteScheduleByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.RouteID != routeID {
		return nil, apperrors.NotFound("route schedule %s", entryID)
	}

	if req.DepartureTime != nil {
		if _, err := time.Parse("15:04", *req.DepartureTime); err != nil {
			return nil, apperrors.Validation("departure_time must be HH:MM (24h)")
		}
		entry.DepartureTime = *req.DepartureTime
	}
	if len(req.DaysOfWeek) > 0 {
		entry.DaysOfWeek = strings.Join(req.DaysOfWeek, ",")
	}
	if req.PriceOverride != nil {
		entry.PriceOverride = req.PriceOverride
	}
	if req.IsActive != nil {
		entry.IsActive = *req.IsActive
	}

	if err := s.repo.UpdateRouteSchedule(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}
