package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dsvv-tech/prana/pkg/models"
)

func (r *SQLiteRepo) CreateStudent(ctx context.Context, s *models.Student) (int64, error) {
	if s == nil {
		return 0, fmt.Errorf("student is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO students (scholar_id, name, password_hash, hostel, email) VALUES (?, ?, ?, ?, ?)`,
		s.ScholarID, s.Name, s.PasswordHash, nullable(s.Hostel), nullable(s.Email))
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetByScholarID(ctx context.Context, scholarID string) (*models.Student, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, scholar_id, name, password_hash, hostel, email, created_at FROM students WHERE scholar_id = ?`, scholarID)
	var s models.Student
	var hostel, email sql.NullString
	if err := row.Scan(&s.ID, &s.ScholarID, &s.Name, &s.PasswordHash, &hostel, &email, &s.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	s.Hostel = hostel.String
	s.Email = email.String

	return &s, nil
}

func (r *SQLiteRepo) ListStudents(ctx context.Context) ([]models.Student, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, scholar_id, name, hostel, email, created_at FROM students ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Student
	for rows.Next() {
		var s models.Student
		var hostel, email sql.NullString
		if err := rows.Scan(&s.ID, &s.ScholarID, &s.Name, &hostel, &email, &s.CreatedAt); err != nil {
			return nil, err
		}

		s.Hostel = hostel.String
		s.Email = email.String
		out = append(out, s)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) CountStudents(ctx context.Context) (int64, error) {
	row := r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM students`)
	var cnt int64
	if err := row.Scan(&cnt); err != nil {
		return 0, err
	}
	return cnt, nil
}

// nullable maps an empty optional field to SQL NULL so the stored row matches
// a request that omitted it.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
