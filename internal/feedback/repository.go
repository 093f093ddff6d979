package feedback

import (
	"context"

	"github.com/boraai/conference-backend/internal/models"
	"github.com/boraai/conference-backend/pkg/database"
)

// Repository handles feedback persistence. Feedback is unique per
// (participant_id, talk_id); Upsert replaces score and comment in place for
// an existing pair instead of inserting a duplicate.
type Repository struct {
	exec *database.Executor
}

// NewRepository creates a feedback repository.
func NewRepository(exec *database.Executor) *Repository {
	return &Repository{exec: exec}
}

// Upsert inserts feedback for the pair, or replaces score and comment when
// the pair already has a row. The affected-row count is 1 either way.
func (r *Repository) Upsert(ctx context.Context, f *models.Feedback) (int64, error) {
	const q = `INSERT INTO feedback (participant_id, talk_id, score, comment)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (participant_id, talk_id)
		DO UPDATE SET score = EXCLUDED.score, comment = EXCLUDED.comment`
	return r.exec.Exec(ctx, q, f.ParticipantID, f.TalkID, f.Score, f.Comment)
}

// List returns all feedback with display names, newest first.
func (r *Repository) List(ctx context.Context) ([]models.FeedbackRow, error) {
	const q = `SELECT f.id, f.participant_id, f.talk_id, f.score, f.comment, p.name, t.title
		FROM feedback f
		JOIN people p ON f.participant_id = p.id
		JOIN talks t ON f.talk_id = t.id
		ORDER BY f.id DESC`
	rows, err := r.exec.QueryRows(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.FeedbackRow
	for rows.Next() {
		var row models.FeedbackRow
		if err := rows.Scan(&row.ID, &row.ParticipantID, &row.TalkID, &row.Score, &row.Comment,
			&row.ParticipantName, &row.TalkTitle); err != nil {
			return nil, err
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// GetByID returns a feedback row by ID.
func (r *Repository) GetByID(ctx context.Context, id int64) (*models.Feedback, error) {
	const q = `SELECT id, participant_id, talk_id, score, comment FROM feedback WHERE id = $1`
	var f models.Feedback
	err := r.exec.QueryRow(ctx, q, id).Scan(&f.ID, &f.ParticipantID, &f.TalkID, &f.Score, &f.Comment)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// GetByPair returns the feedback row for the natural key.
func (r *Repository) GetByPair(ctx context.Context, participantID, talkID int64) (*models.Feedback, error) {
	const q = `SELECT id, participant_id, talk_id, score, comment FROM feedback
		WHERE participant_id = $1 AND talk_id = $2`
	var f models.Feedback
	err := r.exec.QueryRow(ctx, q, participantID, talkID).Scan(&f.ID, &f.ParticipantID, &f.TalkID, &f.Score, &f.Comment)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Update replaces the feedback's business fields by id. Moving a row onto an
// already-taken pair fails on the unique constraint.
func (r *Repository) Update(ctx context.Context, f *models.Feedback) (int64, error) {
	const q = `UPDATE feedback SET participant_id = $1, talk_id = $2, score = $3, comment = $4 WHERE id = $5`
	return r.exec.Exec(ctx, q, f.ParticipantID, f.TalkID, f.Score, f.Comment, f.ID)
}

// Delete removes a feedback row by id.
func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	const q = `DELETE FROM feedback WHERE id = $1`
	return r.exec.Exec(ctx, q, id)
}
