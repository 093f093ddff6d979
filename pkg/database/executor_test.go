package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boraai/conference-backend/pkg/pgerr"
)

func newMock(t *testing.T) (pgxmock.PgxPoolIface, *Executor) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })
	return mock, NewExecutor(mock)
}

func TestExecReturnsRowCount(t *testing.T) {
	mock, exec := newMock(t)
	mock.ExpectExec("INSERT INTO people").
		WithArgs("Ana", "ana@x.com", nil, "Organizer").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	n, err := exec.Exec(context.Background(),
		"INSERT INTO people (name, email, phone, role) VALUES ($1, $2, $3, $4)",
		"Ana", "ana@x.com", nil, "Organizer")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecZeroMatchIsNotAnError(t *testing.T) {
	mock, exec := newMock(t)
	mock.ExpectExec("DELETE FROM events").
		WithArgs(int64(9999)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	n, err := exec.Exec(context.Background(), "DELETE FROM events WHERE id = $1", int64(9999))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestExecClassifiesConstraintViolations(t *testing.T) {
	mock, exec := newMock(t)
	mock.ExpectExec("INSERT INTO events").
		WithArgs("DevConf", "2025-03-01", int64(9999)).
		WillReturnError(&pgconn.PgError{
			Code:           "23503",
			Message:        `insert or update on table "events" violates foreign key constraint`,
			ConstraintName: "events_organizer_id_fkey",
		})

	_, err := exec.Exec(context.Background(),
		"INSERT INTO events (name, start_date, organizer_id) VALUES ($1, $2, $3)",
		"DevConf", "2025-03-01", int64(9999))
	require.Error(t, err)
	assert.Equal(t, pgerr.ForeignKeyViolation, pgerr.CodeOf(err))
	assert.Contains(t, err.Error(), "foreign key constraint")
}

func TestExecPassesThroughOtherErrors(t *testing.T) {
	mock, exec := newMock(t)
	boom := errors.New("connection reset")
	mock.ExpectExec("UPDATE payments").WithArgs("Confirmed").WillReturnError(boom)

	_, err := exec.Exec(context.Background(), "UPDATE payments SET status = $1", "Confirmed")
	require.Error(t, err)
	assert.False(t, pgerr.IsConstraint(err))
}

func TestQueryMaterializesColumnsAndRows(t *testing.T) {
	mock, exec := newMock(t)
	mock.ExpectQuery("SELECT id, name FROM payment_types").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).
			AddRow(int64(1), "Credit Card").
			AddRow(int64(2), "Wire Transfer"))

	res, err := exec.Query(context.Background(), "SELECT id, name FROM payment_types ORDER BY name ASC")
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, res.Columns)
	require.Len(t, res.Rows, 2)
	assert.Equal(t, []any{int64(1), "Credit Card"}, res.Rows[0])
}

func TestQueryEmptyResultIsDistinctFromFailure(t *testing.T) {
	mock, exec := newMock(t)
	mock.ExpectQuery("SELECT id, name FROM payment_types").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}))

	res, err := exec.Query(context.Background(), "SELECT id, name FROM payment_types")
	require.NoError(t, err)
	assert.Empty(t, res.Rows)
	assert.Equal(t, []string{"id", "name"}, res.Columns)

	mock.ExpectQuery("SELECT id, name FROM payment_types").
		WillReturnError(errors.New("relation does not exist"))
	_, err = exec.Query(context.Background(), "SELECT id, name FROM payment_types")
	assert.Error(t, err)
}
