package talks

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/boraai/conference-backend/internal/models"
	"github.com/boraai/conference-backend/pkg/database"
)

// ErrNotSpeaker is returned when the chosen speaker exists but holds a role
// that cannot speak.
var ErrNotSpeaker = errors.New("speaker must have the Organizer or Speaker role")

// Repository handles talk persistence.
type Repository struct {
	exec *database.Executor
}

// NewRepository creates a talks repository.
func NewRepository(exec *database.Executor) *Repository {
	return &Repository{exec: exec}
}

// checkSpeakerRole rejects a speaker id whose person exists with a
// non-speaking role. A missing person passes through to the foreign key.
func (r *Repository) checkSpeakerRole(ctx context.Context, speakerID int64) error {
	const q = `SELECT role FROM people WHERE id = $1`
	var role models.Role
	err := r.exec.QueryRow(ctx, q, speakerID).Scan(&role)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}
	if !role.CanSpeak() {
		return ErrNotSpeaker
	}
	return nil
}

// Create inserts a new talk and returns the affected-row count.
func (r *Repository) Create(ctx context.Context, t *models.Talk) (int64, error) {
	if err := r.checkSpeakerRole(ctx, t.SpeakerID); err != nil {
		return 0, err
	}
	const q = `INSERT INTO talks (title, description, date, time, room, event_id, speaker_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	return r.exec.Exec(ctx, q, t.Title, t.Description, t.Date, t.Time, t.Room, t.EventID, t.SpeakerID)
}

// List returns all talks with event and speaker names resolved, newest date
// first, earlier start first within a date.
func (r *Repository) List(ctx context.Context) ([]models.TalkRow, error) {
	const q = `SELECT t.id, t.title, t.description, t.date, t.time::text, t.room, t.event_id, t.speaker_id, e.name, p.name
		FROM talks t
		JOIN events e ON t.event_id = e.id
		JOIN people p ON t.speaker_id = p.id
		ORDER BY t.date DESC, t.time ASC`
	rows, err := r.exec.QueryRows(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.TalkRow
	for rows.Next() {
		var row models.TalkRow
		if err := rows.Scan(&row.ID, &row.Title, &row.Description, &row.Date, &row.Time, &row.Room,
			&row.EventID, &row.SpeakerID, &row.EventName, &row.SpeakerName); err != nil {
			return nil, err
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// GetByID returns a talk by ID.
func (r *Repository) GetByID(ctx context.Context, id int64) (*models.Talk, error) {
	const q = `SELECT id, title, description, date, time::text, room, event_id, speaker_id FROM talks WHERE id = $1`
	var t models.Talk
	err := r.exec.QueryRow(ctx, q, id).Scan(&t.ID, &t.Title, &t.Description, &t.Date, &t.Time, &t.Room, &t.EventID, &t.SpeakerID)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Update replaces the talk's business fields by id.
func (r *Repository) Update(ctx context.Context, t *models.Talk) (int64, error) {
	if err := r.checkSpeakerRole(ctx, t.SpeakerID); err != nil {
		return 0, err
	}
	const q = `UPDATE talks SET title = $1, description = $2, date = $3, time = $4, room = $5, event_id = $6, speaker_id = $7
		WHERE id = $8`
	return r.exec.Exec(ctx, q, t.Title, t.Description, t.Date, t.Time, t.Room, t.EventID, t.SpeakerID, t.ID)
}

// Delete removes a talk by id. A talk that still has registrations or
// feedback fails with a foreign-key violation.
func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	const q = `DELETE FROM talks WHERE id = $1`
	return r.exec.Exec(ctx, q, id)
}

// ListRefs returns id/title pairs for all talks, newest first. Used to
// populate foreign-key selections.
func (r *Repository) ListRefs(ctx context.Context) ([]models.TalkRef, error) {
	const q = `SELECT id, title FROM talks ORDER BY date DESC, time ASC`
	rows, err := r.exec.QueryRows(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []models.TalkRef
	for rows.Next() {
		var ref models.TalkRef
		if err := rows.Scan(&ref.ID, &ref.Title); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}
