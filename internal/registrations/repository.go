package registrations

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/boraai/conference-backend/internal/models"
	"github.com/boraai/conference-backend/pkg/database"
)

// ErrNotParticipant is returned when the person registering exists but does
// not hold the Participant role.
var ErrNotParticipant = errors.New("only people with the Participant role can register for talks")

// Repository handles registration persistence. Registrations are keyed by
// (participant_id, talk_id); a second insert for the same pair fails on the
// primary key.
type Repository struct {
	exec *database.Executor
}

// NewRepository creates a registrations repository.
func NewRepository(exec *database.Executor) *Repository {
	return &Repository{exec: exec}
}

func (r *Repository) checkParticipantRole(ctx context.Context, participantID int64) error {
	const q = `SELECT role FROM people WHERE id = $1`
	var role models.Role
	err := r.exec.QueryRow(ctx, q, participantID).Scan(&role)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}
	if role != models.RoleParticipant {
		return ErrNotParticipant
	}
	return nil
}

// Create inserts a registration and returns the affected-row count.
func (r *Repository) Create(ctx context.Context, reg *models.Registration) (int64, error) {
	if err := r.checkParticipantRole(ctx, reg.ParticipantID); err != nil {
		return 0, err
	}
	const q = `INSERT INTO registrations (participant_id, talk_id, registration_date) VALUES ($1, $2, $3)`
	return r.exec.Exec(ctx, q, reg.ParticipantID, reg.TalkID, reg.RegistrationDate)
}

// List returns all registrations with display names, newest first.
func (r *Repository) List(ctx context.Context) ([]models.RegistrationRow, error) {
	const q = `SELECT reg.participant_id, reg.talk_id, reg.registration_date, p.name, t.title
		FROM registrations reg
		JOIN people p ON reg.participant_id = p.id
		JOIN talks t ON reg.talk_id = t.id
		ORDER BY reg.registration_date DESC, p.name ASC`
	rows, err := r.exec.QueryRows(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.RegistrationRow
	for rows.Next() {
		var row models.RegistrationRow
		if err := rows.Scan(&row.ParticipantID, &row.TalkID, &row.RegistrationDate, &row.ParticipantName, &row.TalkTitle); err != nil {
			return nil, err
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// Get returns the registration for the given pair.
func (r *Repository) Get(ctx context.Context, participantID, talkID int64) (*models.Registration, error) {
	const q = `SELECT participant_id, talk_id, registration_date FROM registrations
		WHERE participant_id = $1 AND talk_id = $2`
	var reg models.Registration
	err := r.exec.QueryRow(ctx, q, participantID, talkID).Scan(&reg.ParticipantID, &reg.TalkID, &reg.RegistrationDate)
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// Delete removes the registration for the given pair. A zero count means no
// such registration.
func (r *Repository) Delete(ctx context.Context, participantID, talkID int64) (int64, error) {
	const q = `DELETE FROM registrations WHERE participant_id = $1 AND talk_id = $2`
	return r.exec.Exec(ctx, q, participantID, talkID)
}
