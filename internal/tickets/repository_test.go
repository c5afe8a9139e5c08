package tickets

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

// Every status transition starts by locking the ticket row.
const lockedTicketQuery = `SELECT \* FROM "tickets" WHERE id = \$1 ORDER BY "tickets"\."id" LIMIT \$2 FOR UPDATE`

func ticketRow(id uuid.UUID, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "schedule_id", "bus_seat_id", "price", "status"}).
		AddRow(id.String(), uuid.New().String(), uuid.New().String(), 90.0, status)
}

func TestCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("locks the row and writes the audit record in one transaction", func(t *testing.T) {
		gormDB, mock := newMockDB(t)
		repo := NewRepository(gormDB)
		id := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery(lockedTicketQuery).
			WithArgs(id, 1).
			WillReturnRows(ticketRow(id, StatusActive))
		mock.ExpectExec(`UPDATE "tickets" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`INSERT INTO "ticket_cancellations"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
		mock.ExpectCommit()

		ticket, err := repo.Cancel(ctx, id, "passenger missed departure", nil)
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, ticket.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cancelling an already-cancelled ticket conflicts and rolls back", func(t *testing.T) {
		gormDB, mock := newMockDB(t)
		repo := NewRepository(gormDB)
		id := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery(lockedTicketQuery).
			WithArgs(id, 1).
			WillReturnRows(ticketRow(id, StatusCancelled))
		mock.ExpectRollback()

		_, err := repo.Cancel(ctx, id, "second attempt", nil)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown ticket maps to not found", func(t *testing.T) {
		gormDB, mock := newMockDB(t)
		repo := NewRepository(gormDB)
		id := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery(lockedTicketQuery).
			WithArgs(id, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		_, err := repo.Cancel(ctx, id, "whatever", nil)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReassign(t *testing.T) {
	ctx := context.Background()

	t.Run("moves the ticket and writes exactly one audit record", func(t *testing.T) {
		gormDB, mock := newMockDB(t)
		repo := NewRepository(gormDB)
		id := uuid.New()
		newScheduleID := uuid.New()
		newSeatID := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery(lockedTicketQuery).
			WithArgs(id, 1).
			WillReturnRows(ticketRow(id, StatusActive))
		mock.ExpectQuery(`INSERT INTO "ticket_reassignments"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
		mock.ExpectExec(`UPDATE "tickets" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		ticket, err := repo.Reassign(ctx, id, newScheduleID, newSeatID, "bus swap", nil)
		require.NoError(t, err)
		assert.Equal(t, newScheduleID, ticket.ScheduleID)
		assert.Equal(t, newSeatID, ticket.BusSeatID)
		assert.Equal(t, StatusActive, ticket.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reassigning a non-active ticket conflicts and rolls back", func(t *testing.T) {
		gormDB, mock := newMockDB(t)
		repo := NewRepository(gormDB)
		id := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery(lockedTicketQuery).
			WithArgs(id, 1).
			WillReturnRows(ticketRow(id, StatusUsed))
		mock.ExpectRollback()

		_, err := repo.Reassign(ctx, id, uuid.New(), uuid.New(), "bus swap", nil)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMarkUsedRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("flips an active ticket to used", func(t *testing.T) {
		gormDB, mock := newMockDB(t)
		repo := NewRepository(gormDB)
		id := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery(lockedTicketQuery).
			WithArgs(id, 1).
			WillReturnRows(ticketRow(id, StatusActive))
		mock.ExpectExec(`UPDATE "tickets" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		ticket, err := repo.MarkUsed(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, StatusUsed, ticket.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cancelled ticket cannot be used", func(t *testing.T) {
		gormDB, mock := newMockDB(t)
		repo := NewRepository(gormDB)
		id := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery(lockedTicketQuery).
			WithArgs(id, 1).
			WillReturnRows(ticketRow(id, StatusCancelled))
		mock.ExpectRollback()

		_, err := repo.MarkUsed(ctx, id)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
