package fleet

import (
	"context"

	"buslink/internal/shared/apperrors"
	"buslink/internal/shared/constants"
	"buslink/pkg/cache"

	"github.com/google/uuid"
)

type Service interface {
	CreateSeatTier(ctx context.Context, companyID uuid.UUID, req *CreateSeatTierRequest) (*SeatTier, error)
	ListSeatTiers(ctx context.Context, companyID uuid.UUID) ([]SeatTier, error)

	CreateBus(ctx context.Context, companyID uuid.UUID, req *CreateBusRequest) (*Bus, error)
	GetBus(ctx context.Context, id uuid.UUID) (*Bus, error)
	ListBuses(ctx context.Context, companyID uuid.UUID) ([]Bus, error)
	UpdateBus(ctx context.Context, id uuid.UUID, req *UpdateBusRequest) (*Bus, error)

	AddBusSeat(ctx context.Context, busID uuid.UUID, req *AddBusSeatRequest) (*BusSeat, error)
	ListBusSeats(ctx context.Context, busID uuid.UUID) ([]BusSeat, error)
	UpdateBusSeat(ctx context.Context, busID, seatID uuid.UUID, req *UpdateBusSeatRequest) (*BusSeat, error)
	RemoveBusSeat(ctx context.Context, busID, seatID uuid.UUID) error

	CreateTemplate(ctx context.Context, companyID uuid.UUID, req *CreateBusTemplateRequest) (*BusTemplate, error)
	ListTemplates(ctx context.Context, companyID uuid.UUID) ([]BusTemplate, error)
	ApplyTemplate(ctx context.Context, busID uuid.UUID, req *ApplyTemplateRequest) ([]BusSeat, error)
}

type service struct {
	repo  Repository
	cache cache.Service
}

func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{repo: repo, cache: cacheService}
}

func (s *service) CreateSeatTier(ctx context.Context, companyID uuid.UUID, req *CreateSeatTierRequest) (*SeatTier, error) {
	tier := &SeatTier{
		CompanyID:       companyID,
		Name:            req.Name,
		Code:            req.Code,
		PriceMultiplier: req.PriceMultiplier,
	}
	if err := s.repo.CreateSeatTier(ctx, tier); err != nil {
		return nil, err
	}
	s.invalidateFleetCache(ctx)
	return tier, nil
}

func (s *service) ListSeatTiers(ctx context.Context, companyID uuid.UUID) ([]SeatTier, error) {
	return s.repo.GetSeatTiersByCompany(ctx, companyID)
}

func (s *service) CreateBus(ctx context.Context, companyID uuid.UUID, req *CreateBusRequest) (*Bus, error) {
	exists, err := s.repo.PlateExists(ctx, companyID, req.Plate)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.Conflict("bus with plate %s already registered", req.Plate)
	}

	bus := &Bus{
		CompanyID: companyID,
		Plate:     req.Plate,
		Model:     req.Model,
		Year:      req.Year,
		Status:    BusStatusActive,
	}
	if err := s.repo.CreateBus(ctx, bus); err != nil {
		return nil, err
	}
	return bus, nil
}

func (s *service) GetBus(ctx context.Context, id uuid.UUID) (*Bus, error) {
	return s.repo.GetBusWithSeats(ctx, id)
}

func (s *service) ListBuses(ctx context.Context, companyID uuid.UUID) ([]Bus, error) {
	return s.repo.GetBusesByCompany(ctx, companyID)
}

func (s *service) UpdateBus(ctx context.Context, id uuid.UUID, req *UpdateBusRequest) (*Bus, error) {
	bus, err := s.repo.GetBusByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Model != nil {
		bus.Model = *req.Model
	}
	if req.Year != nil {
		bus.Year = *req.Year
	}
	if req.Status != nil {
		bus.Status = *req.Status
	}

	if err := s.repo.UpdateBus(ctx, bus); err != nil {
		return nil, err
	}
	s.invalidateFleetCache(ctx)
	return bus, nil
}

func (s *service) AddBusSeat(ctx context.Context, busID uuid.UUID, req *AddBusSeatRequest) (*BusSeat, error) {
	if _, err := s.repo.GetBusByID(ctx, busID); err != nil {
		return nil, err
	}
	tierID, err := uuid.Parse(req.SeatTierID)
	if err != nil {
		return nil, apperrors.Validation("invalid seat_tier_id")
	}
	if _, err := s.repo.GetSeatTierByID(ctx, tierID); err != nil {
		return nil, err
	}

	seat := &BusSeat{
		BusID:      busID,
		SeatTierID: tierID,
		SeatNumber: req.SeatNumber,
		Floor:      req.Floor,
		Row:        req.Row,
		Column:     req.Column,
		Status:     SeatStatusActive,
	}
	if err := s.repo.CreateBusSeat(ctx, seat); err != nil {
		return nil, err
	}
	s.invalidateFleetCache(ctx)
	return seat, nil
}

func (s *service) ListBusSeats(ctx context.Context, busID uuid.UUID) ([]BusSeat, error) {
	if s.cache != nil {
		var seats []BusSeat
		err := s.cache.GetOrSet(ctx, constants.BuildBusSeatsKey(busID.String()), constants.TTL_BUS_SEATS,
			func() (interface{}, error) {
				return s.repo.GetSeatsByBus(ctx, busID)
			}, &seats)
		if err == nil {
			return seats, nil
		}
	}
	return s.repo.GetSeatsByBus(ctx, busID)
}

func (s *service) UpdateBusSeat(ctx context.Context, busID, seatID uuid.UUID, req *UpdateBusSeatRequest) (*BusSeat, error) {
	seat, err := s.repo.GetBusSeatByID(ctx, seatID)
	if err != nil {
		return nil, err
	}
	if seat.BusID != busID {
		return nil, apperrors.NotFound("bus seat %s", seatID)
	}

	if req.SeatTierID != nil {
		tierID, err := uuid.Parse(*req.SeatTierID)
		if err != nil {
			return nil, apperrors.Validation("invalid seat_tier_id")
		}
		if _, err := s.repo.GetSeatTierByID(ctx, tierID); err != nil {
			return nil, err
		}
		seat.SeatTierID = tierID
		seat.Tier = nil
	}
	if req.Status != nil {
		seat.Status = *req.Status
	}

	if err := s.repo.UpdateBusSeat(ctx, seat); err != nil {
		return nil, err
	}
	s.invalidateFleetCache(ctx)
	return seat, nil
}

// RemoveBusSeat deletes a never-ticketed seat outright; a seat with
// ticket history is deactivated instead so past bookings stay coherent.
func (s *service) RemoveBusSeat(ctx context.Context, busID, seatID uuid.UUID) error {
	seat, err := s.repo.GetBusSeatByID(ctx, seatID)
	if err != nil {
		return err
	}
	if seat.BusID != busID {
		return apperrors.NotFound("bus seat %s", seatID)
	}

	ticketed, err := s.repo.SeatHasTickets(ctx, seatID)
	if err != nil {
		return err
	}
	if ticketed {
		seat.Status = SeatStatusInactive
		seat.Tier = nil
		if err := s.repo.UpdateBusSeat(ctx, seat); err != nil {
			return err
		}
	} else {
		if err := s.repo.DeleteBusSeat(ctx, seatID); err != nil {
			return err
		}
	}
	s.invalidateFleetCache(ctx)
	return nil
}

func (s *service) CreateTemplate(ctx context.Context, companyID uuid.UUID, req *CreateBusTemplateRequest) (*BusTemplate, error) {
	template := &BusTemplate{
		CompanyID: companyID,
		Name:      req.Name,
	}

	seen := make(map[string]bool, len(req.Seats))
	for _, spec := range req.Seats {
		if seen[spec.SeatNumber] {
			return nil, apperrors.Validation("duplicate seat number %s in template", spec.SeatNumber)
		}
		seen[spec.SeatNumber] = true

		tierID, err := uuid.Parse(spec.SeatTierID)
		if err != nil {
			return nil, apperrors.Validation("invalid seat_tier_id for seat %s", spec.SeatNumber)
		}
		template.Seats = append(template.Seats, TemplateSeat{
			SeatTierID: tierID,
			SeatNumber: spec.SeatNumber,
			Floor:      spec.Floor,
			Row:        spec.Row,
			Column:     spec.Column,
		})
	}

	if err := s.repo.CreateTemplate(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

func (s *service) ListTemplates(ctx context.Context, companyID uuid.UUID) ([]BusTemplate, error) {
	return s.repo.GetTemplatesByCompany(ctx, companyID)
}

func (s *service) ApplyTemplate(ctx context.Context, busID uuid.UUID, req *ApplyTemplateRequest) ([]BusSeat, error) {
	templateID, err := uuid.Parse(req.TemplateID)
	if err != nil {
		return nil, apperrors.Validation("invalid template_id")
	}

	bus, err := s.repo.GetBusByID(ctx, busID)
	if err != nil {
		return nil, err
	}
	template, err := s.repo.GetTemplateByID(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if template.CompanyID != bus.CompanyID {
		return nil, apperrors.Forbidden("template %s belongs to another company", templateID)
	}
	if len(template.Seats) == 0 {
		return nil, apperrors.Validation("template %s has no seats", templateID)
	}

	seats, err := s.repo.ApplyTemplateToBus(ctx, template, busID)
	if err != nil {
		return nil, err
	}
	s.invalidateFleetCache(ctx)
	return seats, nil
}

func (s *service) invalidateFleetCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.DeletePattern(ctx, constants.PATTERN_INVALIDATE_FLEET)
	}
}
