package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"jobtracker/internal/db"
	apperrors "jobtracker/internal/errors"
	"jobtracker/internal/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), db.NewConfig(logger.Discard()))
	require.NoError(t, err)
	return gdb, mock
}

func TestJobApplicationRepository_ListSurfacesDriverErrors(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewJobApplicationRepository(gdb)

	driverErr := errors.New("connection reset by peer")
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "job_applications"`).WillReturnError(driverErr)
	mock.ExpectRollback()

	items, total, err := repo.List(context.Background(), uuid.New(), ListFilter{Limit: 20})
	require.ErrorIs(t, err, driverErr)
	assert.Nil(t, items)
	assert.Zero(t, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobApplicationRepository_ListPageErrorRollsBack(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewJobApplicationRepository(gdb)

	driverErr := errors.New("canceling statement due to statement timeout")
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "job_applications"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT \* FROM "job_applications" WHERE user_id = \$1 ORDER BY created_at DESC,application_date DESC,id DESC`).
		WillReturnError(driverErr)
	mock.ExpectRollback()

	_, _, err := repo.List(context.Background(), uuid.New(), ListFilter{Limit: 20})
	require.ErrorIs(t, err, driverErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobApplicationRepository_FindOwnedMapsMissingRow(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewJobApplicationRepository(gdb)

	id, owner := uuid.New(), uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "job_applications" WHERE id = \$1 AND user_id = \$2`).
		WithArgs(id, owner, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}))

	_, err := repo.FindOwned(context.Background(), id, owner)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_CommitFailureSurfaces(t *testing.T) {
	gdb, mock := newMockDB(t)
	uow := NewUnitOfWork(gdb)

	commitErr := errors.New("could not serialize access")
	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(commitErr)

	err := uow.WithTransaction(context.Background(), func(ctx context.Context, repos Repositories) error {
		return nil
	})
	require.ErrorIs(t, err, commitErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}
