package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dsvv-tech/prana/pkg/models"
)

func (r *SQLiteRepo) GetByScholarAndDate(ctx context.Context, scholarID, date string) (*models.HealthStatus, error) {
	query := `SELECT id, scholar_id, status, notes, date, created_at FROM health_status WHERE scholar_id = ? AND date = date('now')`
	args := []any{scholarID}
	if date != "" {
		query = `SELECT id, scholar_id, status, notes, date, created_at FROM health_status WHERE scholar_id = ? AND date = ?`
		args = append(args, date)
	}

	row := r.conn.QueryRow(ctx, query, args...)
	var h models.HealthStatus
	var notes sql.NullString
	if err := row.Scan(&h.ID, &h.ScholarID, &h.Status, &notes, &h.Date, &h.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	h.Notes = notes.String

	return &h, nil
}

// UpsertHealth writes today's row for the scholar in one statement. The
// UNIQUE(scholar_id, date) constraint turns the second write of the day into
// an update, so the at-most-one-row-per-day invariant holds even under
// concurrent requests.
func (r *SQLiteRepo) UpsertHealth(ctx context.Context, h *models.HealthStatus) (int64, error) {
	if h == nil {
		return 0, fmt.Errorf("health status is nil")
	}

	row := r.conn.QueryRow(ctx, `
		INSERT INTO health_status (scholar_id, status, notes) VALUES (?, ?, ?)
		ON CONFLICT(scholar_id, date) DO UPDATE SET status = excluded.status, notes = excluded.notes
		RETURNING id`,
		h.ScholarID, h.Status, nullable(h.Notes))

	var id int64
	if err := row.Scan(&id); err != nil {
		return 0, err
	}

	return id, nil
}
