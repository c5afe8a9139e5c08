package customers

import (
	"context"
	"testing"

	"buslink/internal/shared/apperrors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })
	return gormDB, mock
}

func TestGetByDocumentID(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the matching customer", func(t *testing.T) {
		gormDB, mock := newMockDB(t)
		repo := NewRepository(gormDB)
		id := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "first_name", "last_name", "document_id"}).
			AddRow(id.String(), "Ana", "Torres", "71234567")
		mock.ExpectQuery(`SELECT \* FROM "customers" WHERE document_id =`).
			WithArgs("71234567", 1).
			WillReturnRows(rows)

		customer, err := repo.GetByDocumentID(ctx, "71234567")
		require.NoError(t, err)
		assert.Equal(t, "Ana", customer.FirstName)
		assert.Equal(t, "Ana Torres", customer.FullName())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps a missing row to not found", func(t *testing.T) {
		gormDB, mock := newMockDB(t)
		repo := NewRepository(gormDB)

		mock.ExpectQuery(`SELECT \* FROM "customers" WHERE document_id =`).
			WithArgs("00000000", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByDocumentID(ctx, "00000000")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	gormDB, mock := newMockDB(t)
	repo := NewRepository(gormDB)

	rows := sqlmock.NewRows([]string{"id", "first_name", "last_name", "document_id"}).
		AddRow(uuid.New().String(), "Carlos", "Huaman", "72345678").
		AddRow(uuid.New().String(), "Lucia", "Huaman", "73456789")
	mock.ExpectQuery(`SELECT \* FROM "customers" WHERE document_id ILIKE`).
		WithArgs("%huam%", "%huam%", "%huam%", 20).
		WillReturnRows(rows)

	customers, err := repo.Search(ctx, "huam", 20)
	require.NoError(t, err)
	assert.Len(t, customers, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
