package routes

import (
	"context"
	"errors"

	"buslink/internal/shared/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	CreateRoute(ctx context.Context, route *Route) error
	GetRouteByID(ctx context.Context, id uuid.UUID) (*Route, error)
	GetRoutesByCompany(ctx context.Context, companyID uuid.UUID, activeOnly bool) ([]Route, error)
	SearchRoutes(ctx context.Context, originID, destinationID uuid.UUID) ([]Route, error)
	UpdateRoute(ctx context.Context, route *Route) error

	CreateRouteSchedule(ctx context.Context, rs *RouteSchedule) error
	GetRouteScheduleByID(ctx context.Context, id uuid.UUID) (*RouteSchedule, error)
	GetRouteSchedules(ctx context.Context, routeID uuid.UUID) ([]RouteSchedule, error)
	UpdateRouteSchedule(ctx context.Context, rs *RouteSchedule) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateRoute(ctx context.Context, route *Route) error {
	return r.db.WithContext(ctx).Create(route).Error
}

func (r *repository) GetRouteByID(ctx context.Context, id uuid.UUID) (*Route, error) {
	var route Route
	err := r.db.WithContext(ctx).
		Preload("Origin").
		Preload("Destination").
		Where("id = ?", id).
		First(&route).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("route %s", id)
		}
		return nil, err
	}
	return &route, nil
}

func (r *repository) GetRoutesByCompany(ctx context.Context, companyID uuid.UUID, activeOnly bool) ([]Route, error) {
	var routes []Route
	query := r.db.WithContext(ctx).
		Preload("Origin").
		Preload("Destination").
		Where("company_id = ?", companyID).
		Order("name")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&routes).Error
	return routes, err
}

func (r *repository) SearchRoutes(ctx context.Context, originID, destinationID uuid.UUID) ([]Route, error) {
	var routes []Route
	err := r.db.WithContext(ctx).
		Preload("Origin").
		Preload("Destination").
		Where("origin_location_id = ? AND destination_location_id = ? AND is_active = ?",
			originID, destinationID, true).
		Order("base_price").
		Find(&routes).Error
	return routes, err
}

func (r *repository) UpdateRoute(ctx context.Context, route *Route) error {
	return r.db.WithContext(ctx).Save(route).Error
}

func (r *repository) CreateRouteSchedule(ctx context.Context, rs *RouteSchedule) error {
	return r.db.WithContext(ctx).Create(rs).Error
}

func (r *repository) GetRouteScheduleByID(ctx context.Context, id uuid.UUID) (*RouteSchedule, error) {
	var rs RouteSchedule
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rs).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("route schedule %s", id)
		}
		return nil, err
	}
	return &rs, nil
}

func (r *repository) GetRouteSchedules(ctx context.Context, routeID uuid.UUID) ([]RouteSchedule, error) {
	var entries []RouteSchedule
	err := r.db.WithContext(ctx).
		Where("route_id = ?", routeID).
		Order("departure_time").
		Find(&entries).Error
	return entries, err
}

func (r *repository) UpdateRouteSchedule(ctx context.Context, rs *RouteSchedule) error {
	return r.db.WithContext(ctx).Save(rs).Error
}
