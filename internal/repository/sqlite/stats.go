package sqlite

import (
	"context"
	"math"

	"github.com/dsvv-tech/prana/pkg/models"
)

// DashboardStats computes the admin dashboard aggregates. The three numbers
// come from independent queries; the snapshot is not transactional.
func (r *SQLiteRepo) DashboardStats(ctx context.Context) (*models.Stats, error) {
	var s models.Stats

	row := r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM students`)
	if err := row.Scan(&s.TotalStudents); err != nil {
		return nil, err
	}

	row = r.conn.QueryRow(ctx, `SELECT COUNT(DISTINCT scholar_id) FROM activities WHERE date = date('now') AND status = ?`, models.StatusCompleted)
	if err := row.Scan(&s.ActiveToday); err != nil {
		return nil, err
	}

	var completed, total int64
	row = r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM activities WHERE date = date('now') AND status = ?`, models.StatusCompleted)
	if err := row.Scan(&completed); err != nil {
		return nil, err
	}
	row = r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM activities WHERE date = date('now')`)
	if err := row.Scan(&total); err != nil {
		return nil, err
	}

	// zero activities today reads as 0%, not a division error
	if total == 0 {
		total = 1
	}
	s.CompletionRate = int64(math.Round(float64(completed) / float64(total) * 100))

	return &s, nil
}
