// Package pgerr classifies PostgreSQL driver errors so callers can tell a
// constraint rejection apart from an infrastructure failure without parsing
// SQLSTATE codes themselves.
package pgerr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Code is the violation class of a database error.
type Code int

const (
	Other Code = iota
	ForeignKeyViolation
	UniqueViolation
	NotNullViolation
	CheckViolation
)

// SQLSTATE class 23 (integrity constraint violation) codes.
const (
	stateNotNull    = "23502"
	stateForeignKey = "23503"
	stateUnique     = "23505"
	stateCheck      = "23514"
)

// Error wraps a pgconn.PgError with its mapped Code. The message is the
// server's own, so callers can surface it verbatim.
type Error struct {
	Code       Code
	Table      string
	Column     string
	Constraint string
	Message    string

	cause *pgconn.PgError
}

func (e *Error) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("%s (constraint %s)", e.Message, e.Constraint)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

func mapCode(sqlstate string) Code {
	switch sqlstate {
	case stateForeignKey:
		return ForeignKeyViolation
	case stateUnique:
		return UniqueViolation
	case stateNotNull:
		return NotNullViolation
	case stateCheck:
		return CheckViolation
	}
	return Other
}

// Classify wraps err in an *Error when it is a Postgres constraint violation;
// all other errors pass through unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var pg *pgconn.PgError
	if !errors.As(err, &pg) {
		return err
	}
	code := mapCode(pg.Code)
	if code == Other {
		return err
	}
	return &Error{
		Code:       code,
		Table:      pg.TableName,
		Column:     pg.ColumnName,
		Constraint: pg.ConstraintName,
		Message:    pg.Message,
		cause:      pg,
	}
}

// CodeOf reports the mapped Code for err, or Other when err carries no
// classified constraint violation.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return Other
}

// IsConstraint reports whether err is any classified constraint violation.
func IsConstraint(err error) bool {
	return CodeOf(err) != Other
}
