package finances

import (
	"context"

	"buslink/internal/schedules"
	"buslink/internal/shared/apperrors"
	"buslink/internal/shared/constants"
	"buslink/pkg/cache"

	"github.com/google/uuid"
)

type Service interface {
	OpenLiquidation(ctx context.Context, scheduleID uuid.UUID) (*Liquidation, error)
	GetLiquidation(ctx context.Context, id uuid.UUID) (*Liquidation, error)
	GetBySchedule(ctx context.Context, scheduleID uuid.UUID) (*Liquidation, error)
	AddExpense(ctx context.Context, liquidationID uuid.UUID, req *AddExpenseRequest, byUserID *uuid.UUID) (*LiquidationExpense, error)
	GetSummary(ctx context.Context, id uuid.UUID) (*Liquidation, error)
	CloseLiquidation(ctx context.Context, id uuid.UUID, byUserID *uuid.UUID) (*Liquidation, error)
	ApproveLiquidation(ctx context.Context, id uuid.UUID, byUserID *uuid.UUID) (*Liquidation, error)
}

type service struct {
	repo         Repository
	scheduleRepo schedules.Repository
	cache        cache.Service
}

func NewService(repo Repository, scheduleRepo schedules.Repository, cacheService cache.Service) Service {
	return &service{repo: repo, scheduleRepo: scheduleRepo, cache: cacheService}
}

func (s *service) OpenLiquidation(ctx context.Context, scheduleID uuid.UUID) (*Liquidation, error) {
	if _, err := s.scheduleRepo.GetByID(ctx, scheduleID); err != nil {
		return nil, err
	}

	liquidation := &Liquidation{
		ScheduleID: scheduleID,
		Status:     StatusOpen,
	}
	if err := s.repo.Create(ctx, liquidation); err != nil {
		return nil, err
	}
	return liquidation, nil
}

func (s *service) GetLiquidation(ctx context.Context, id uuid.UUID) (*Liquidation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetBySchedule(ctx context.Context, scheduleID uuid.UUID) (*Liquidation, error) {
	return s.repo.GetByScheduleID(ctx, scheduleID)
}

func (s *service) AddExpense(ctx context.Context, liquidationID uuid.UUID, req *AddExpenseRequest, byUserID *uuid.UUID) (*LiquidationExpense, error) {
	expense := &LiquidationExpense{
		Category:        req.Category,
		Description:     req.Description,
		Amount:          req.Amount,
		CreatedByUserID: byUserID,
	}
	if err := s.repo.AddExpense(ctx, liquidationID, expense); err != nil {
		return nil, err
	}
	s.invalidate(ctx, liquidationID)
	return expense, nil
}

// GetSummary returns the liquidation with live totals while OPEN;
// CLOSED and APPROVED liquidations return their frozen figures.
// Only frozen figures are cached: an OPEN liquidation's totals move
// with every ticket and parcel sale.
func (s *service) GetSummary(ctx context.Context, id uuid.UUID) (*Liquidation, error) {
	key := constants.CACHE_KEY_LIQUIDATION + id.String()
	if s.cache != nil {
		var cached Liquidation
		if err := s.cache.Get(ctx, key, &cached); err == nil {
			return &cached, nil
		}
	}

	liquidation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if liquidation.Status != StatusOpen {
		if s.cache != nil {
			_ = s.cache.Set(ctx, key, liquidation, constants.TTL_LIQUIDATION)
		}
		return liquidation, nil
	}

	income, err := s.repo.AggregateIncome(ctx, liquidation.ScheduleID)
	if err != nil {
		return nil, err
	}
	expenses, err := s.repo.SumExpenses(ctx, id)
	if err != nil {
		return nil, err
	}

	liquidation.TicketIncome = income.TicketIncome
	liquidation.ParcelIncome = income.ParcelIncome
	liquidation.TotalExpenses = expenses
	liquidation.NetTotal = income.TicketIncome + income.ParcelIncome - expenses
	return liquidation, nil
}

func (s *service) CloseLiquidation(ctx context.Context, id uuid.UUID, byUserID *uuid.UUID) (*Liquidation, error) {
	liquidation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	schedule, err := s.scheduleRepo.GetByID(ctx, liquidation.ScheduleID)
	if err != nil {
		return nil, err
	}
	if schedule.Status != schedules.StatusCompleted {
		return nil, apperrors.Conflict("schedule %s must be completed before closing its liquidation", schedule.ID)
	}

	income, err := s.repo.AggregateIncome(ctx, liquidation.ScheduleID)
	if err != nil {
		return nil, err
	}

	closed, err := s.repo.Close(ctx, id, income, byUserID)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return closed, nil
}

func (s *service) ApproveLiquidation(ctx context.Context, id uuid.UUID, byUserID *uuid.UUID) (*Liquidation, error) {
	approved, err := s.repo.Approve(ctx, id, byUserID)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return approved, nil
}

func (s *service) invalidate(ctx context.Context, liquidationID uuid.UUID) {
	if s.cache != nil {
		_ = s.cache.Delete(ctx, constants.CACHE_KEY_LIQUIDATION+liquidationID.String())
	}
}
