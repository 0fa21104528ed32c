package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dsvv-tech/prana/pkg/models"
)

func (r *SQLiteRepo) CreateActivity(ctx context.Context, a *models.Activity) (int64, error) {
	if a == nil {
		return 0, fmt.Errorf("activity is nil")
	}

	status := a.Status
	if status == "" {
		status = models.StatusPending
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO activities (scholar_id, activity_name, activity_time, status) VALUES (?, ?, ?, ?)`,
		a.ScholarID, a.ActivityName, nullable(a.ActivityTime), status)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) ListByScholar(ctx context.Context, scholarID, date string) ([]models.Activity, error) {
	// "today" is the storage engine's calendar date, matching the column
	// default used at insert time
	query := `SELECT id, scholar_id, activity_name, activity_time, status, date, created_at FROM activities WHERE scholar_id = ? AND date = date('now') ORDER BY created_at DESC, id DESC`
	args := []any{scholarID}
	if date != "" {
		query = `SELECT id, scholar_id, activity_name, activity_time, status, date, created_at FROM activities WHERE scholar_id = ? AND date = ? ORDER BY created_at DESC, id DESC`
		args = append(args, date)
	}

	rows, err := r.conn.QueryRows(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Activity
	for rows.Next() {
		var a models.Activity
		if err := scanActivity(rows.Scan, &a); err != nil {
			return nil, err
		}

		out = append(out, a)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	res, err := r.conn.Exec(ctx, `UPDATE activities SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

func (r *SQLiteRepo) CountActivities(ctx context.Context) (int64, error) {
	row := r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM activities`)
	var cnt int64
	if err := row.Scan(&cnt); err != nil {
		return 0, err
	}
	return cnt, nil
}

func (r *SQLiteRepo) ListTodayWithStudent(ctx context.Context, limit int) ([]models.ActivityWithStudent, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.conn.QueryRows(ctx, `
		SELECT a.id, a.scholar_id, a.activity_name, a.activity_time, a.status, a.date, a.created_at, s.name, s.hostel
		FROM activities a
		JOIN students s ON a.scholar_id = s.scholar_id
		WHERE a.date = date('now')
		ORDER BY a.created_at DESC, a.id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ActivityWithStudent
	for rows.Next() {
		var a models.ActivityWithStudent
		var activityTime, hostel sql.NullString
		if err := rows.Scan(&a.ID, &a.ScholarID, &a.ActivityName, &activityTime, &a.Status, &a.Date, &a.CreatedAt, &a.StudentName, &hostel); err != nil {
			return nil, err
		}

		a.ActivityTime = activityTime.String
		a.Hostel = hostel.String
		out = append(out, a)
	}

	return out, rows.Err()
}

func scanActivity(scan func(...any) error, a *models.Activity) error {
	var activityTime sql.NullString
	if err := scan(&a.ID, &a.ScholarID, &a.ActivityName, &activityTime, &a.Status, &a.Date, &a.CreatedAt); err != nil {
		return err
	}

	a.ActivityTime = activityTime.String
	return nil
}
