package talks

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

func expectRole(mock pgxmock.PgxPoolIface, id int64, role models.Role) {
	mock.ExpectQuery("SELECT role FROM people").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"role"}).AddRow(role))
}

func TestCreateAcceptsSpeaker(t *testing.T) {
	mock, repo := newRepo(t)
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	expectRole(mock, 4, models.RoleSpeaker)
	mock.ExpectExec("INSERT INTO talks").
		WithArgs("Generics in Practice", (*string)(nil), date, "10:00", (*string)(nil), int64(1), int64(4)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	n, err := repo.Create(context.Background(), &models.Talk{
		Title: "Generics in Practice", Date: date, Time: "10:00", EventID: 1, SpeakerID: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Organizers can speak at their own events.
func TestCreateAcceptsOrganizerAsSpeaker(t *testing.T) {
	mock, repo := newRepo(t)
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	expectRole(mock, 1, models.RoleOrganizer)
	mock.ExpectExec("INSERT INTO talks").
		WithArgs("Opening Keynote", (*string)(nil), date, "09:00", (*string)(nil), int64(1), int64(1)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	n, err := repo.Create(context.Background(), &models.Talk{
		Title: "Opening Keynote", Date: date, Time: "09:00", EventID: 1, SpeakerID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestCreateRejectsParticipantAsSpeaker(t *testing.T) {
	mock, repo := newRepo(t)
	expectRole(mock, 3, models.RoleParticipant)

	_, err := repo.Create(context.Background(), &models.Talk{
		Title: "Generics in Practice", Date: time.Now(), Time: "10:00", EventID: 1, SpeakerID: 3,
	})
	assert.ErrorIs(t, err, ErrNotSpeaker)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A missing speaker passes the role check so the foreign key can report it.
func TestCreateMissingSpeakerHitsForeignKey(t *testing.T) {
	mock, repo := newRepo(t)
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT role FROM people").
		WithArgs(int64(999)).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectExec("INSERT INTO talks").
		WithArgs("Generics in Practice", (*string)(nil), date, "10:00", (*string)(nil), int64(1), int64(999)).
		WillReturnError(&pgconn.PgError{
			Code:           "23503",
			Message:        `insert or update on table "talks" violates foreign key constraint "talks_speaker_id_fkey"`,
			ConstraintName: "talks_speaker_id_fkey",
		})

	_, err := repo.Create(context.Background(), &models.Talk{
		Title: "Generics in Practice", Date: date, Time: "10:00", EventID: 1, SpeakerID: 999,
	})
	require.Error(t, err)
	assert.Equal(t, pgerr.ForeignKeyViolation, pgerr.CodeOf(err))
}

func TestUpdateRejectsParticipantAsSpeaker(t *testing.T) {
	mock, repo := newRepo(t)
	expectRole(mock, 3, models.RoleParticipant)

	_, err := repo.Update(context.Background(), &models.Talk{
		ID: 7, Title: "Generics in Practice", Date: time.Now(), Time: "10:00", EventID: 1, SpeakerID: 3,
	})
	assert.ErrorIs(t, err, ErrNotSpeaker)
}

func TestList(t *testing.T) {
	mock, repo := newRepo(t)
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	room := "Auditorium A"

	mock.ExpectQuery("FROM talks t").
		WillReturnRows(pgxmock.NewRows([]string{"id", "title", "description", "date", "time", "room", "event_id", "speaker_id", "name", "name"}).
			AddRow(int64(7), "Generics in Practice", (*string)(nil), date, "10:00:00", &room, int64(1), int64(4), "GoConf", "Davi"))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Generics in Practice", list[0].Title)
	assert.Equal(t, "10:00:00", list[0].Time)
	assert.Equal(t, "GoConf", list[0].EventName)
	assert.Equal(t, "Davi", list[0].SpeakerName)
}

func TestDeleteBlockedByRegistrations(t *testing.T) {
	mock, repo := newRepo(t)
	mock.ExpectExec("DELETE FROM talks").
		WithArgs(int64(7)).
		WillReturnError(&pgconn.PgError{
			Code:           "23503",
			Message:        `update or delete on table "talks" violates foreign key constraint "registrations_talk_id_fkey" on table "registrations"`,
			ConstraintName: "registrations_talk_id_fkey",
		})

	_, err := repo.Delete(context.Background(), 7)
	require.Error(t, err)
	assert.Equal(t, pgerr.ForeignKeyViolation, pgerr.CodeOf(err))
}
