package customers

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
	byDocument map[string]*Customer
	updated    []*Customer
	created    []*Customer
}

func (f *fakeRepo) GetByDocumentID(ctx context.Context, documentID string) (*Customer, error) {
	if c, ok := f.byDocument[documentID]; ok {
		return c, nil
	}
	return nil, apperrors.NotFound("customer with document %s", documentID)
}

func (f *fakeRepo) Create(ctx context.Context, customer *Customer) error {
	customer.ID = uuid.New()
	f.byDocument[customer.DocumentID] = customer
	f.created = append(f.created, customer)
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, customer *Customer) error {
	f.updated = append(f.updated, customer)
	return nil
}

func (f *fakeRepo) Search(ctx context.Context, query string, limit int) ([]Customer, error) {
	return nil, nil
}

func TestUpsertByDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a new customer for an unknown document", func(t *testing.T) {
		repo := &fakeRepo{byDocument: map[string]*Customer{}}
		svc := NewService(repo)

		customer, err := svc.UpsertByDocument(ctx, &UpsertCustomerRequest{
			FirstName:  "Ana",
			LastName:   "Torres",
			DocumentID: "71234567",
			Phone:      "+51 987 654 321",
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, customer.ID)
		assert.Len(t, repo.created, 1)
		assert.Empty(t, repo.updated)
	})

	t.Run("refreshes contact details on an existing customer", func(t *testing.T) {
		existing := &Customer{
			ID:         uuid.New(),
			FirstName:  "Ana",
			LastName:   "Torres",
			DocumentID: "71234567",
			Phone:      "+51 900 000 000",
			Email:      "old@example.com",
		}
		repo := &fakeRepo{byDocument: map[string]*Customer{"71234567": existing}}
		svc := NewService(repo)

		customer, err := svc.UpsertByDocument(ctx, &UpsertCustomerRequest{
			FirstName:  "Ana Maria",
			LastName:   "Torres",
			DocumentID: "71234567",
			Phone:      "+51 987 654 321",
		})
		require.NoError(t, err)

		assert.Equal(t, existing.ID, customer.ID)
		assert.Equal(t, "Ana Maria", customer.FirstName)
		assert.Equal(t, "+51 987 654 321", customer.Phone)
		// Blank fields never wipe stored contact details.
		assert.Equal(t, "old@example.com", customer.Email)
		assert.Len(t, repo.updated, 1)
		assert.Empty(t, repo.created)
	})
}

func TestSearchCustomersValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&fakeRepo{byDocument: map[string]*Customer{}})

	_, err := svc.SearchCustomers(ctx, "a", 20)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.SearchCustomers(ctx, "ana", 20)
	assert.NoError(t, err)
}
