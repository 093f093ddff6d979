package payments

import (
	"context"

	"github.com/boraai/conference-backend/internal/models"
	"github.com/boraai/conference-backend/pkg/database"
)

// Repository handles payment persistence.
type Repository struct {
	exec *database.Executor
}

// NewRepository creates a payments repository.
func NewRepository(exec *database.Executor) *Repository {
	return &Repository{exec: exec}
}

// Create inserts a new payment and returns the affected-row count. The
// amount check and the participant/event/type foreign keys live in the
// schema.
func (r *Repository) Create(ctx context.Context, p *models.Payment) (int64, error) {
	const q = `INSERT INTO payments (participant_id, event_id, amount, status, payment_type_id)
		VALUES ($1, $2, $3, $4, $5)`
	return r.exec.Exec(ctx, q, p.ParticipantID, p.EventID, p.Amount, p.Status, p.PaymentTypeID)
}

// List returns all payments with display names, newest first.
func (r *Repository) List(ctx context.Context) ([]models.PaymentRow, error) {
	const q = `SELECT pay.id, pay.participant_id, pay.event_id, pay.amount::float8, pay.status, pay.payment_type_id,
			p.name, e.name, pt.name
		FROM payments pay
		JOIN people p ON pay.participant_id = p.id
		JOIN events e ON pay.event_id = e.id
		LEFT JOIN payment_types pt ON pay.payment_type_id = pt.id
		ORDER BY pay.id DESC`
	rows, err := r.exec.QueryRows(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.PaymentRow
	for rows.Next() {
		var row models.PaymentRow
		if err := rows.Scan(&row.ID, &row.ParticipantID, &row.EventID, &row.Amount, &row.Status, &row.PaymentTypeID,
			&row.ParticipantName, &row.EventName, &row.PaymentTypeName); err != nil {
			return nil, err
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// GetByID returns a payment by ID.
func (r *Repository) GetByID(ctx context.Context, id int64) (*models.Payment, error) {
	const q = `SELECT id, participant_id, event_id, amount::float8, status, payment_type_id FROM payments WHERE id = $1`
	var p models.Payment
	err := r.exec.QueryRow(ctx, q, id).Scan(&p.ID, &p.ParticipantID, &p.EventID, &p.Amount, &p.Status, &p.PaymentTypeID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update replaces the payment's business fields by id.
func (r *Repository) Update(ctx context.Context, p *models.Payment) (int64, error) {
	const q = `UPDATE payments SET participant_id = $1, event_id = $2, amount = $3, status = $4, payment_type_id = $5
		WHERE id = $6`
	return r.exec.Exec(ctx, q, p.ParticipantID, p.EventID, p.Amount, p.Status, p.PaymentTypeID, p.ID)
}

// Delete removes a payment by id.
func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	const q = `DELETE FROM payments WHERE id = $1`
	return r.exec.Exec(ctx, q, id)
}
