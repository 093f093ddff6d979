package events

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/boraai/conference-backend/internal/models"
	"github.com/boraai/conference-backend/pkg/database"
)

// ErrNotOrganizer is returned when the chosen organizer exists but does not
// hold the Organizer role.
var ErrNotOrganizer = errors.New("organizer must have the Organizer role")

// Repository handles event persistence.
type Repository struct {
	exec *database.Executor
}

// NewRepository creates an events repository.
func NewRepository(exec *database.Executor) *Repository {
	return &Repository{exec: exec}
}

// checkOrganizerRole rejects an organizer id whose person exists with the
// wrong role. A missing person passes through: the foreign key produces the
// canonical error on insert.
func (r *Repository) checkOrganizerRole(ctx context.Context, organizerID int64) error {
	const q = `SELECT role FROM people WHERE id = $1`
	var role models.Role
	err := r.exec.QueryRow(ctx, q, organizerID).Scan(&role)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}
	if !role.CanOrganize() {
		return ErrNotOrganizer
	}
	return nil
}

// Create inserts a new event and returns the affected-row count.
func (r *Repository) Create(ctx context.Context, e *models.Event) (int64, error) {
	if err := r.checkOrganizerRole(ctx, e.OrganizerID); err != nil {
		return 0, err
	}
	const q = `INSERT INTO events (name, start_date, end_date, location, organizer_id)
		VALUES ($1, $2, $3, $4, $5)`
	return r.exec.Exec(ctx, q, e.Name, e.StartDate, e.EndDate, e.Location, e.OrganizerID)
}

// List returns all events with the organizer name resolved, newest first.
func (r *Repository) List(ctx context.Context) ([]models.EventRow, error) {
	const q = `SELECT e.id, e.name, e.start_date, e.end_date, e.location, e.organizer_id, p.name
		FROM events e
		JOIN people p ON e.organizer_id = p.id
		ORDER BY e.start_date DESC`
	rows, err := r.exec.QueryRows(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.EventRow
	for rows.Next() {
		var row models.EventRow
		if err := rows.Scan(&row.ID, &row.Name, &row.StartDate, &row.EndDate, &row.Location, &row.OrganizerID, &row.OrganizerName); err != nil {
			return nil, err
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// GetByID returns an event by ID.
func (r *Repository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	const q = `SELECT id, name, start_date, end_date, location, organizer_id FROM events WHERE id = $1`
	var e models.Event
	err := r.exec.QueryRow(ctx, q, id).Scan(&e.ID, &e.Name, &e.StartDate, &e.EndDate, &e.Location, &e.OrganizerID)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Update replaces the event's business fields by id.
func (r *Repository) Update(ctx context.Context, e *models.Event) (int64, error) {
	if err := r.checkOrganizerRole(ctx, e.OrganizerID); err != nil {
		return 0, err
	}
	const q = `UPDATE events SET name = $1, start_date = $2, end_date = $3, location = $4, organizer_id = $5
		WHERE id = $6`
	return r.exec.Exec(ctx, q, e.Name, e.StartDate, e.EndDate, e.Location, e.OrganizerID, e.ID)
}

// Delete removes an event by id. An event that still has talks or payments
// fails with a foreign-key violation.
func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	const q = `DELETE FROM events WHERE id = $1`
	return r.exec.Exec(ctx, q, id)
}

// ListRefs returns id/name pairs for all events, newest first. Used to
// populate foreign-key selections.
func (r *Repository) ListRefs(ctx context.Context) ([]models.EventRef, error) {
	const q = `SELECT id, name FROM events ORDER BY start_date DESC`
	rows, err := r.exec.QueryRows(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []models.EventRef
	for rows.Next() {
		var ref models.EventRef
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}
