// Package reports implements the fixed cross-entity analytical queries. All
// of them are read-only and return the generic column/row result shape; only
// the non-registrants query takes a parameter.
package reports

import (
	"context"

	"github.com/boraai/conference-backend/pkg/database"
)

// Repository runs the report queries through the statement executor.
type Repository struct {
	exec *database.Executor
}

// NewRepository creates a reports repository.
func NewRepository(exec *database.Executor) *Repository {
	return &Repository{exec: exec}
}

// RegistrationsDetail lists every registration with participant, talk and
// event resolved, ordered by event, talk, participant.
func (r *Repository) RegistrationsDetail(ctx context.Context) (database.Result, error) {
	const q = `SELECT p.name AS participant, t.title AS talk, e.name AS event, reg.registration_date
		FROM registrations reg
		JOIN people p ON reg.participant_id = p.id
		JOIN talks t ON reg.talk_id = t.id
		JOIN events e ON t.event_id = e.id
		WHERE p.role = 'Participant'
		ORDER BY e.name, t.title, p.name`
	return r.exec.Query(ctx, q)
}

// NonRegistrants returns participants not registered for any talk under the
// given event. An event with no talks yields every participant.
func (r *Repository) NonRegistrants(ctx context.Context, eventID int64) (database.Result, error) {
	const q = `SELECT name, email
		FROM people
		WHERE role = 'Participant'
		  AND id NOT IN (
			SELECT DISTINCT reg.participant_id
			FROM registrations reg
			JOIN talks t ON reg.talk_id = t.id
			WHERE t.event_id = $1
		  )
		ORDER BY name`
	return r.exec.Query(ctx, q, eventID)
}

// AboveAverageTalks returns talks whose mean feedback score strictly exceeds
// the global mean, best first. Talks without feedback have a NULL mean and
// never satisfy the comparison.
func (r *Repository) AboveAverageTalks(ctx context.Context) (database.Result, error) {
	const q = `SELECT t.title,
			(SELECT AVG(f2.score)::float8 FROM feedback f2 WHERE f2.talk_id = t.id) AS talk_avg
		FROM talks t
		WHERE (SELECT AVG(f.score) FROM feedback f WHERE f.talk_id = t.id) >
			(SELECT AVG(score) FROM feedback)
		ORDER BY talk_avg DESC`
	return r.exec.Query(ctx, q)
}

// OrganizerProductivity counts distinct events and sums collected payments
// per organizer, keeping only organizers with at least one event. Events
// without payments contribute zero to the sum.
func (r *Repository) OrganizerProductivity(ctx context.Context) (database.Result, error) {
	const q = `SELECT o.name AS organizer,
			COUNT(DISTINCT e.id) AS events_organized,
			COALESCE(SUM(pay.amount), 0)::float8 AS total_collected
		FROM people o
		LEFT JOIN events e ON o.id = e.organizer_id
		LEFT JOIN payments pay ON e.id = pay.event_id
		WHERE o.role = 'Organizer'
		GROUP BY o.name
		HAVING COUNT(DISTINCT e.id) > 0
		ORDER BY total_collected DESC, o.name`
	return r.exec.Query(ctx, q)
}

// PaymentStatsByStatus aggregates count, average, max and min payment
// amounts per status.
func (r *Repository) PaymentStatsByStatus(ctx context.Context) (database.Result, error) {
	const q = `SELECT status,
			COUNT(*) AS payments,
			AVG(amount)::float8 AS avg_amount,
			MAX(amount)::float8 AS max_amount,
			MIN(amount)::float8 AS min_amount
		FROM payments
		GROUP BY status
		ORDER BY status`
	return r.exec.Query(ctx, q)
}

// FinancialActors unions all organizers with participants who made at least
// one payment, each row tagged with its source. UNION keeps set semantics:
// a row satisfying both branches appears once.
func (r *Repository) FinancialActors(ctx context.Context) (database.Result, error) {
	const q = `SELECT name, email, 'ORGANIZER' AS category
		FROM people
		WHERE role = 'Organizer'
		UNION
		SELECT p.name, p.email, 'PAYING PARTICIPANT' AS category
		FROM people p
		JOIN payments pay ON p.id = pay.participant_id
		WHERE p.role = 'Participant'
		ORDER BY name`
	return r.exec.Query(ctx, q)
}

// TalksWithoutFeedback returns talks that have registrations but no
// feedback, as a set difference.
func (r *Repository) TalksWithoutFeedback(ctx context.Context) (database.Result, error) {
	const q = `SELECT t.id, t.title
		FROM talks t
		JOIN registrations reg ON t.id = reg.talk_id
		EXCEPT
		SELECT t.id, t.title
		FROM talks t
		JOIN feedback f ON t.id = f.talk_id
		ORDER BY title`
	return r.exec.Query(ctx, q)
}

// EventAttendance counts registrations per talk grouped under its event.
// Talks without registrations show zero.
func (r *Repository) EventAttendance(ctx context.Context) (database.Result, error) {
	const q = `SELECT e.name AS event, t.title AS talk, COUNT(reg.participant_id) AS registrations
		FROM events e
		JOIN talks t ON t.event_id = e.id
		LEFT JOIN registrations reg ON reg.talk_id = t.id
		GROUP BY e.name, t.title
		ORDER BY e.name, registrations DESC, t.title`
	return r.exec.Query(ctx, q)
}
