package parcels

import (
	"context"
	"crypto/rand"
	"fmt"

	"buslink/internal/notifications"
	"buslink/internal/schedules"
	"buslink/internal/shared/apperrors"
	"buslink/internal/shared/constants"
	"buslink/pkg/cache"
	"buslink/pkg/logger"

	"github.com/google/uuid"
)

type Service interface {
	CreateParcel(ctx context.Context, scheduleID uuid.UUID, req *CreateParcelRequest, byUserID *uuid.UUID) (*Parcel, error)
	GetParcel(ctx context.Context, id uuid.UUID) (*Parcel, error)
	TrackParcel(ctx context.Context, trackingCode string) (*Parcel, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *UpdateParcelStatusRequest, byUserID *uuid.UUID) (*Parcel, error)
	ListBySchedule(ctx context.Context, scheduleID uuid.UUID) ([]Parcel, error)
}

type service struct {
	repo         Repository
	scheduleRepo schedules.Repository
	cache        cache.Service
	publisher    notifications.Publisher
	log          *logger.Logger
}

func NewService(
	repo Repository,
	scheduleRepo schedules.Repository,
	cacheService cache.Service,
	publisher notifications.Publisher,
	log *logger.Logger,
) Service {
	return &service{
		repo:         repo,
		scheduleRepo: scheduleRepo,
		cache:        cacheService,
		publisher:    publisher,
		log:          log,
	}
}

// generateTrackingCode produces a short random code like PK-3F9A2C41.
// The unique index on tracking_code is the collision backstop.
func generateTrackingCode() string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("PK-%s", uuid.New().String()[:8])
	}
	return fmt.Sprintf("PK-%X", buf)
}

func (s *service) CreateParcel(ctx context.Context, scheduleID uuid.UUID, req *CreateParcelRequest, byUserID *uuid.UUID) (*Parcel, error) {
	schedule, err := s.scheduleRepo.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if !schedules.IsBookable(schedule.Status) {
		return nil, apperrors.Conflict("cannot ship on a %s schedule", schedule.Status)
	}

	parcel := &Parcel{
		ScheduleID:    scheduleID,
		TrackingCode:  generateTrackingCode(),
		ReceiverName:  req.ReceiverName,
		ReceiverPhone: req.ReceiverPhone,
		Description:   req.Description,
		WeightKG:      req.WeightKG,
		Price:         *req.Price,
		Status:        StatusReceived,
	}
	if req.SenderCustomerID != nil {
		senderID, err := uuid.Parse(*req.SenderCustomerID)
		if err != nil {
			return nil, apperrors.Validation("invalid sender_customer_id")
		}
		parcel.SenderCustomerID = &senderID
	}
	if req.BranchID != nil {
		branchID, err := uuid.Parse(*req.BranchID)
		if err != nil {
			return nil, apperrors.Validation("invalid branch_id")
		}
		parcel.BranchID = &branchID
	}

	if err := s.repo.CreateWithInitialStatus(ctx, parcel, byUserID); err != nil {
		return nil, err
	}

	s.publish(ctx, notifications.EventParcelReceived, scheduleID, map[string]interface{}{
		"parcel_id":     parcel.ID,
		"tracking_code": parcel.TrackingCode,
	})
	return parcel, nil
}

func (s *service) GetParcel(ctx context.Context, id uuid.UUID) (*Parcel, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) TrackParcel(ctx context.Context, trackingCode string) (*Parcel, error) {
	if trackingCode == "" {
		return nil, apperrors.Validation("tracking code is required")
	}
	if s.cache != nil {
		var parcel Parcel
		err := s.cache.GetOrSet(ctx, constants.BuildParcelTrackingKey(trackingCode), constants.TTL_PARCEL_TRACKING,
			func() (interface{}, error) {
				return s.repo.GetByTrackingCode(ctx, trackingCode)
			}, &parcel)
		if err == nil {
			return &parcel, nil
		}
		if apperrors.HTTPStatus(err) != 500 {
			return nil, err
		}
	}
	return s.repo.GetByTrackingCode(ctx, trackingCode)
}

func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, req *UpdateParcelStatusRequest, byUserID *uuid.UUID) (*Parcel, error) {
	parcel, err := s.repo.UpdateStatus(ctx, id, req.Status, req.Notes, byUserID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.Delete(ctx, constants.BuildParcelTrackingKey(parcel.TrackingCode))
	}
	s.publish(ctx, notifications.EventParcelStatus, parcel.ScheduleID, map[string]interface{}{
		"parcel_id":     parcel.ID,
		"tracking_code": parcel.TrackingCode,
		"status":        parcel.Status,
	})
	return parcel, nil
}

func (s *service) ListBySchedule(ctx context.Context, scheduleID uuid.UUID) ([]Parcel, error) {
	if _, err := s.scheduleRepo.GetByID(ctx, scheduleID); err != nil {
		return nil, err
	}
	return s.repo.ListBySchedule(ctx, scheduleID)
}

func (s *service) publish(ctx context.Context, eventType string, scheduleID uuid.UUID, payload map[string]interface{}) {
	if s.publisher != nil {
		s.publisher.Publish(ctx, notifications.NewEvent(eventType, scheduleID, payload))
	}
}
