package registrations

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boraai/conference-backend/internal/models"
	"github.com/boraai/conference-backend/pkg/database"
	"github.com/boraai/conference-backend/pkg/pgerr"
)

func newRepo(t *testing.T) (pgxmock.PgxPoolIface, *Repository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })
	return mock, NewRepository(database.NewExecutor(mock))
}

func TestCreate(t *testing.T) {
	mock, repo := newRepo(t)
	day := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT role FROM people").
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"role"}).AddRow(models.RoleParticipant))
	mock.ExpectExec("INSERT INTO registrations").
		WithArgs(int64(3), int64(7), day).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	n, err := repo.Create(context.Background(), &models.Registration{
		ParticipantID: 3, TalkID: 7, RegistrationDate: day,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRejectsNonParticipant(t *testing.T) {
	mock, repo := newRepo(t)
	mock.ExpectQuery("SELECT role FROM people").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"role"}).AddRow(models.RoleOrganizer))

	_, err := repo.Create(context.Background(), &models.Registration{
		ParticipantID: 1, TalkID: 7, RegistrationDate: time.Now(),
	})
	assert.ErrorIs(t, err, ErrNotParticipant)
}

// Registering the same pair twice trips the composite primary key.
func TestCreateDuplicatePair(t *testing.T) {
	mock, repo := newRepo(t)
	day := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT role FROM people").
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"role"}).AddRow(models.RoleParticipant))
	mock.ExpectExec("INSERT INTO registrations").
		WithArgs(int64(3), int64(7), day).
		WillReturnError(&pgconn.PgError{
			Code:           "23505",
			Message:        `duplicate key value violates unique constraint "registrations_pkey"`,
			ConstraintName: "registrations_pkey",
		})

	_, err := repo.Create(context.Background(), &models.Registration{
		ParticipantID: 3, TalkID: 7, RegistrationDate: day,
	})
	require.Error(t, err)
	assert.Equal(t, pgerr.UniqueViolation, pgerr.CodeOf(err))
}

func TestGetNotFound(t *testing.T) {
	mock, repo := newRepo(t)
	mock.ExpectQuery("SELECT participant_id, talk_id, registration_date FROM registrations").
		WithArgs(int64(3), int64(99)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.Get(context.Background(), 3, 99)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestList(t *testing.T) {
	mock, repo := newRepo(t)
	day := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM registrations reg").
		WillReturnRows(pgxmock.NewRows([]string{"participant_id", "talk_id", "registration_date", "name", "title"}).
			AddRow(int64(3), int64(7), day, "Bruna", "Generics in Practice"))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Bruna", list[0].ParticipantName)
	assert.Equal(t, "Generics in Practice", list[0].TalkTitle)
}

func TestDeleteZeroMatch(t *testing.T) {
	mock, repo := newRepo(t)
	mock.ExpectExec("DELETE FROM registrations").
		WithArgs(int64(3), int64(99)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	n, err := repo.Delete(context.Background(), 3, 99)
	require.NoError(t, err)
	assert.Zero(t, n)
}
