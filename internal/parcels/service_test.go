package parcels

import (
	"context"
	"regexp"
	"testing"

	"buslink/internal/schedules"
	"buslink/internal/shared/apperrors"
	"buslink/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeParcelRepo struct {
	Repository
	created []*Parcel
}

func (f *fakeParcelRepo) CreateWithInitialStatus(ctx context.Context, parcel *Parcel, byUserID *uuid.UUID) error {
	parcel.ID = uuid.New()
	f.created = append(f.created, parcel)
	return nil
}

type fakeScheduleRepo struct {
	schedules.Repository
	byID map[uuid.UUID]*schedules.Schedule
}

func (f *fakeScheduleRepo) GetByID(ctx context.Context, id uuid.UUID) (*schedules.Schedule, error) {
	if s, ok := f.byID[id]; ok {
		return s, nil
	}
	return nil, apperrors.NotFound("schedule %s", id)
}

func TestCreateParcel(t *testing.T) {
	ctx := context.Background()
	price := 25.0

	newFixture := func(status string) (Service, *fakeParcelRepo, uuid.UUID) {
		scheduleID := uuid.New()
		repo := &fakeParcelRepo{}
		scheduleRepo := &fakeScheduleRepo{byID: map[uuid.UUID]*schedules.Schedule{
			scheduleID: {ID: scheduleID, Status: status},
		}}
		svc := NewService(repo, scheduleRepo, nil, nil, logger.GetDefault())
		return svc, repo, scheduleID
	}

	t.Run("registers a parcel with a generated tracking code", func(t *testing.T) {
		svc, repo, scheduleID := newFixture(schedules.StatusScheduled)

		parcel, err := svc.CreateParcel(ctx, scheduleID, &CreateParcelRequest{
			ReceiverName: "Carlos Huaman",
			Price:        &price,
		}, nil)
		require.NoError(t, err)

		assert.Equal(t, StatusReceived, parcel.Status)
		assert.Regexp(t, regexp.MustCompile(`^PK-[0-9A-F]{8}$`), parcel.TrackingCode)
		assert.Len(t, repo.created, 1)
	})

	t.Run("unknown schedule is not found", func(t *testing.T) {
		svc, _, _ := newFixture(schedules.StatusScheduled)

		_, err := svc.CreateParcel(ctx, uuid.New(), &CreateParcelRequest{
			ReceiverName: "Carlos Huaman",
			Price:        &price,
		}, nil)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("completed schedule refuses new cargo", func(t *testing.T) {
		svc, repo, scheduleID := newFixture(schedules.StatusCompleted)

		_, err := svc.CreateParcel(ctx, scheduleID, &CreateParcelRequest{
			ReceiverName: "Carlos Huaman",
			Price:        &price,
		}, nil)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
		assert.Empty(t, repo.created)
	})

	t.Run("invalid sender id fails validation", func(t *testing.T) {
		svc, _, scheduleID := newFixture(schedules.StatusScheduled)
		bad := "not-a-uuid"

		_, err := svc.CreateParcel(ctx, scheduleID, &CreateParcelRequest{
			ReceiverName:     "Carlos Huaman",
			SenderCustomerID: &bad,
			Price:            &price,
		}, nil)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestTrackParcelRequiresCode(t *testing.T) {
	svc := NewService(&fakeParcelRepo{}, &fakeScheduleRepo{byID: map[uuid.UUID]*schedules.Schedule{}}, nil, nil, logger.GetDefault())

	_, err := svc.TrackParcel(context.Background(), "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestGenerateTrackingCodeFormat(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := generateTrackingCode()
		assert.Regexp(t, regexp.MustCompile(`^PK-[0-9A-F]{8}$`), code)
		seen[code] = true
	}
	// 100 draws from a 32-bit space should not collide.
	assert.Greater(t, len(seen), 99)
}
