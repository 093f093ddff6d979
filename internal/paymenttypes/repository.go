package paymenttypes

import (
	"context"

	"github.com/boraai/conference-backend/internal/models"
	"github.com/boraai/conference-backend/pkg/database"
)

// Repository handles payment-type persistence.
type Repository struct {
	exec *database.Executor
}

// NewRepository creates a payment-types repository.
func NewRepository(exec *database.Executor) *Repository {
	return &Repository{exec: exec}
}

// Create inserts a new payment type and returns the affected-row count.
func (r *Repository) Create(ctx context.Context, name string) (int64, error) {
	const q = `INSERT INTO payment_types (name) VALUES ($1)`
	return r.exec.Exec(ctx, q, name)
}

// List returns all payment types ordered by name.
func (r *Repository) List(ctx context.Context) ([]models.PaymentType, error) {
	const q = `SELECT id, name FROM payment_types ORDER BY name ASC`
	rows, err := r.exec.QueryRows(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.PaymentType
	for rows.Next() {
		var pt models.PaymentType
		if err := rows.Scan(&pt.ID, &pt.Name); err != nil {
			return nil, err
		}
		list = append(list, pt)
	}
	return list, rows.Err()
}

// GetByID returns a payment type by ID.
func (r *Repository) GetByID(ctx context.Context, id int64) (*models.PaymentType, error) {
	const q = `SELECT id, name FROM payment_types WHERE id = $1`
	var pt models.PaymentType
	err := r.exec.QueryRow(ctx, q, id).Scan(&pt.ID, &pt.Name)
	if err != nil {
		return nil, err
	}
	return &pt, nil
}

// Update renames a payment type by id.
func (r *Repository) Update(ctx context.Context, id int64, name string) (int64, error) {
	const q = `UPDATE payment_types SET name = $1 WHERE id = $2`
	return r.exec.Exec(ctx, q, name, id)
}

// Delete removes a payment type by id. A type still referenced by payments
// fails with a foreign-key violation.
func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	const q = `DELETE FROM payment_types WHERE id = $1`
	return r.exec.Exec(ctx, q, id)
}
