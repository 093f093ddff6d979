package people

import (
	"context"

	"github.com/boraai/conference-backend/internal/models"
	"github.com/boraai/conference-backend/pkg/database"
)

// Repository handles person persistence.
type Repository struct {
	exec *database.Executor
}

// NewRepository creates a people repository.
func NewRepository(exec *database.Executor) *Repository {
	return &Repository{exec: exec}
}

// Create inserts a new person and returns the affected-row count.
func (r *Repository) Create(ctx context.Context, p *models.Person) (int64, error) {
	const q = `INSERT INTO people (name, email, phone, role) VALUES ($1, $2, $3, $4)`
	return r.exec.Exec(ctx, q, p.Name, p.Email, p.Phone, p.Role)
}

// List returns all people ordered by name.
func (r *Repository) List(ctx context.Context) ([]models.Person, error) {
	const q = `SELECT id, name, email, phone, role FROM people ORDER BY name ASC`
	rows, err := r.exec.QueryRows(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.Person
	for rows.Next() {
		var p models.Person
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.Role); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetByID returns a person by ID.
func (r *Repository) GetByID(ctx context.Context, id int64) (*models.Person, error) {
	const q = `SELECT id, name, email, phone, role FROM people WHERE id = $1`
	var p models.Person
	err := r.exec.QueryRow(ctx, q, id).Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.Role)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update replaces the person's business fields by id. A zero count means no
// such row.
func (r *Repository) Update(ctx context.Context, p *models.Person) (int64, error) {
	const q = `UPDATE people SET name = $1, email = $2, phone = $3, role = $4 WHERE id = $5`
	return r.exec.Exec(ctx, q, p.Name, p.Email, p.Phone, p.Role, p.ID)
}

// Delete removes a person by id. Deleting someone still referenced by
// events, talks, registrations, payments or feedback fails with a
// foreign-key violation.
func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	const q = `DELETE FROM people WHERE id = $1`
	return r.exec.Exec(ctx, q, id)
}

// ListRefsByRole returns id/name pairs for people with the given role,
// ordered by name. Used to populate foreign-key selections.
func (r *Repository) ListRefsByRole(ctx context.Context, role models.Role) ([]models.PersonRef, error) {
	const q = `SELECT id, name FROM people WHERE role = $1 ORDER BY name ASC`
	rows, err := r.exec.QueryRows(ctx, q, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []models.PersonRef
	for rows.Next() {
		var ref models.PersonRef
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}
