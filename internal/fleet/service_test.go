package fleet

import (
	"context"
	"testing"

	"buslink/internal/shared/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	Repository
	buses     map[uuid.UUID]*Bus
	seats     map[uuid.UUID]*BusSeat
	templates map[uuid.UUID]*BusTemplate
	ticketed  map[uuid.UUID]bool

	deletedSeats []uuid.UUID
	updatedSeats []*BusSeat
	applied      bool
}

func (f *fakeRepo) GetBusByID(ctx context.Context, id uuid.UUID) (*Bus, error) {
	if b, ok := f.buses[id]; ok {
		return b, nil
	}
	return nil, apperrors.NotFound("bus %s", id)
}

func (f *fakeRepo) GetBusSeatByID(ctx context.Context, id uuid.UUID) (*BusSeat, error) {
	if s, ok := f.seats[id]; ok {
		return s, nil
	}
	return nil, apperrors.NotFound("bus seat %s", id)
}

func (f *fakeRepo) GetTemplateByID(ctx context.Context, id uuid.UUID) (*BusTemplate, error) {
	if t, ok := f.templates[id]; ok {
		return t, nil
	}
	return nil, apperrors.NotFound("bus template %s", id)
}

func (f *fakeRepo) SeatHasTickets(ctx context.Context, seatID uuid.UUID) (bool, error) {
	return f.ticketed[seatID], nil
}

func (f *fakeRepo) UpdateBusSeat(ctx context.Context, seat *BusSeat) error {
	f.updatedSeats = append(f.updatedSeats, seat)
	return nil
}

func (f *fakeRepo) DeleteBusSeat(ctx context.Context, seatID uuid.UUID) error {
	f.deletedSeats = append(f.deletedSeats, seatID)
	return nil
}

func (f *fakeRepo) ApplyTemplateToBus(ctx context.Context, template *BusTemplate, busID uuid.UUID) ([]BusSeat, error) {
	f.applied = true
	seats := make([]BusSeat, 0, len(template.Seats))
	for _, ts := range template.Seats {
		seats = append(seats, BusSeat{
			ID:         uuid.New(),
			BusID:      busID,
			SeatTierID: ts.SeatTierID,
			SeatNumber: ts.SeatNumber,
			Status:     SeatStatusActive,
		})
	}
	return seats, nil
}

func TestRemoveBusSeat(t *testing.T) {
	ctx := context.Background()
	busID := uuid.New()
	seatID := uuid.New()

	newFixture := func(ticketed bool) (Service, *fakeRepo) {
		repo := &fakeRepo{
			seats:    map[uuid.UUID]*BusSeat{seatID: {ID: seatID, BusID: busID, Status: SeatStatusActive}},
			ticketed: map[uuid.UUID]bool{seatID: ticketed},
		}
		return NewService(repo, nil), repo
	}

	t.Run("never ticketed seat is deleted", func(t *testing.T) {
		svc, repo := newFixture(false)

		require.NoError(t, svc.RemoveBusSeat(ctx, busID, seatID))
		assert.Equal(t, []uuid.UUID{seatID}, repo.deletedSeats)
		assert.Empty(t, repo.updatedSeats)
	})

	t.Run("ticketed seat is deactivated instead", func(t *testing.T) {
		svc, repo := newFixture(true)

		require.NoError(t, svc.RemoveBusSeat(ctx, busID, seatID))
		assert.Empty(t, repo.deletedSeats)
		require.Len(t, repo.updatedSeats, 1)
		assert.Equal(t, SeatStatusInactive, repo.updatedSeats[0].Status)
	})

	t.Run("seat on another bus is not found", func(t *testing.T) {
		svc, _ := newFixture(false)

		err := svc.RemoveBusSeat(ctx, uuid.New(), seatID)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestApplyTemplate(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	busID := uuid.New()
	templateID := uuid.New()
	tierID := uuid.New()

	newFixture := func() (Service, *fakeRepo) {
		repo := &fakeRepo{
			buses: map[uuid.UUID]*Bus{busID: {ID: busID, CompanyID: companyID, Status: BusStatusActive}},
			templates: map[uuid.UUID]*BusTemplate{templateID: {
				ID:        templateID,
				CompanyID: companyID,
				Seats: []TemplateSeat{
					{SeatTierID: tierID, SeatNumber: "1"},
					{SeatTierID: tierID, SeatNumber: "2"},
				},
			}},
		}
		return NewService(repo, nil), repo
	}

	t.Run("materializes one seat per template seat", func(t *testing.T) {
		svc, repo := newFixture()

		seats, err := svc.ApplyTemplate(ctx, busID, &ApplyTemplateRequest{TemplateID: templateID.String()})
		require.NoError(t, err)
		assert.Len(t, seats, 2)
		assert.True(t, repo.applied)
	})

	t.Run("template from another company is forbidden", func(t *testing.T) {
		svc, repo := newFixture()
		repo.templates[templateID].CompanyID = uuid.New()

		_, err := svc.ApplyTemplate(ctx, busID, &ApplyTemplateRequest{TemplateID: templateID.String()})
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		assert.False(t, repo.applied)
	})

	t.Run("empty template fails validation", func(t *testing.T) {
		svc, repo := newFixture()
		repo.templates[templateID].Seats = nil

		_, err := svc.ApplyTemplate(ctx, busID, &ApplyTemplateRequest{TemplateID: templateID.String()})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestCreateTemplateRejectsDuplicateSeatNumbers(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil)
	tierID := uuid.New().String()

	_, err := svc.CreateTemplate(context.Background(), uuid.New(), &CreateBusTemplateRequest{
		Name: "Duplicated",
		Seats: []TemplateSeatSpec{
			{SeatTierID: tierID, SeatNumber: "1"},
			{SeatTierID: tierID, SeatNumber: "1"},
		},
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
