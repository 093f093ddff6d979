package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/boraai/conference-backend/pkg/pgerr"
)

// Querier is the subset of pgxpool.Pool the executor needs. Keeping it
// narrow lets tests substitute a mock pool.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Result is a generic read result: ordered column names plus row tuples.
// Reports and other shape-agnostic reads return it directly.
type Result struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// Executor is the single chokepoint for statements sent to the database.
// Repositories and the report engine never touch the pool directly; every
// call here is one self-contained implicit transaction.
type Executor struct {
	db Querier
}

// NewExecutor creates an Executor over db.
func NewExecutor(db Querier) *Executor {
	return &Executor{db: db}
}

// Exec runs a write statement and returns the affected-row count.
// Constraint violations come back classified via pgerr so callers can
// distinguish "rejected by the schema" from infrastructure failures.
// A zero count with a nil error means the statement matched nothing.
func (e *Executor) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	tag, err := e.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, pgerr.Classify(err)
	}
	return tag.RowsAffected(), nil
}

// Query runs a read statement and materializes columns and rows. A failed
// read returns a non-nil error; an empty Result with a nil error means the
// query legitimately matched no rows.
func (e *Executor) Query(ctx context.Context, sql string, args ...any) (Result, error) {
	rows, err := e.db.Query(ctx, sql, args...)
	if err != nil {
		return Result{}, err
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	res := Result{Columns: make([]string, len(fields))}
	for i, f := range fields {
		res.Columns[i] = f.Name
	}
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return Result{}, err
		}
		res.Rows = append(res.Rows, vals)
	}
	return res, rows.Err()
}

// QueryRows runs a read statement and hands the raw rows to the caller for
// typed scanning. The caller owns Close.
func (e *Executor) QueryRows(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return e.db.Query(ctx, sql, args...)
}

// QueryRow runs a single-row read for typed scanning.
func (e *Executor) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return e.db.QueryRow(ctx, sql, args...)
}
