package feedback

import (
	"context"
	"testing"

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

func TestUpsertInserts(t *testing.T) {
	mock, repo := newRepo(t)
	comment := "great talk"
	mock.ExpectExec(`ON CONFLICT \(participant_id, talk_id\)`).
		WithArgs(int64(3), int64(7), 5, &comment).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	n, err := repo.Upsert(context.Background(), &models.Feedback{
		ParticipantID: 3, TalkID: 7, Score: 5, Comment: &comment,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A second upsert for the same pair updates in place; the count is still 1.
func TestUpsertReplacesExistingPair(t *testing.T) {
	mock, repo := newRepo(t)
	mock.ExpectExec(`ON CONFLICT \(participant_id, talk_id\)`).
		WithArgs(int64(3), int64(7), 2, (*string)(nil)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	n, err := repo.Upsert(context.Background(), &models.Feedback{
		ParticipantID: 3, TalkID: 7, Score: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestUpsertScoreOutOfRange(t *testing.T) {
	mock, repo := newRepo(t)
	mock.ExpectExec(`ON CONFLICT \(participant_id, talk_id\)`).
		WithArgs(int64(3), int64(7), 9, (*string)(nil)).
		WillReturnError(&pgconn.PgError{
			Code:           "23514",
			Message:        `new row for relation "feedback" violates check constraint "feedback_score_check"`,
			ConstraintName: "feedback_score_check",
		})

	_, err := repo.Upsert(context.Background(), &models.Feedback{
		ParticipantID: 3, TalkID: 7, Score: 9,
	})
	require.Error(t, err)
	assert.Equal(t, pgerr.CheckViolation, pgerr.CodeOf(err))
}

func TestGetByPair(t *testing.T) {
	mock, repo := newRepo(t)
	comment := "great talk"
	mock.ExpectQuery("FROM feedback").
		WithArgs(int64(3), int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "participant_id", "talk_id", "score", "comment"}).
			AddRow(int64(11), int64(3), int64(7), 5, &comment))

	f, err := repo.GetByPair(context.Background(), 3, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(11), f.ID)
	assert.Equal(t, 5, f.Score)
	require.NotNil(t, f.Comment)
	assert.Equal(t, comment, *f.Comment)
}

func TestGetByPairNotFound(t *testing.T) {
	mock, repo := newRepo(t)
	mock.ExpectQuery("FROM feedback").
		WithArgs(int64(3), int64(99)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByPair(context.Background(), 3, 99)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

// Moving feedback onto a pair that already has a row trips the unique
// constraint on (participant_id, talk_id).
func TestUpdateOntoTakenPair(t *testing.T) {
	mock, repo := newRepo(t)
	mock.ExpectExec("UPDATE feedback SET").
		WithArgs(int64(3), int64(8), 4, (*string)(nil), int64(11)).
		WillReturnError(&pgconn.PgError{
			Code:           "23505",
			Message:        `duplicate key value violates unique constraint "feedback_participant_id_talk_id_key"`,
			ConstraintName: "feedback_participant_id_talk_id_key",
		})

	_, err := repo.Update(context.Background(), &models.Feedback{
		ID: 11, ParticipantID: 3, TalkID: 8, Score: 4,
	})
	require.Error(t, err)
	assert.Equal(t, pgerr.UniqueViolation, pgerr.CodeOf(err))
}

func TestDelete(t *testing.T) {
	mock, repo := newRepo(t)
	mock.ExpectExec("DELETE FROM feedback").
		WithArgs(int64(11)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	n, err := repo.Delete(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
