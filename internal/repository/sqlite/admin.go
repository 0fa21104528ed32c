package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dsvv-tech/prana/pkg/models"
)

func (r *SQLiteRepo) CreateAdmin(ctx context.Context, a *models.Admin) (int64, error) {
	if a == nil {
		return 0, fmt.Errorf("admin is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO admins (email, password_hash, name) VALUES (?, ?, ?)`,
		a.Email, a.PasswordHash, a.Name)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, email, password_hash, name, created_at FROM admins WHERE email = ?`, email)
	var a models.Admin
	var name sql.NullString
	if err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &name, &a.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	a.Name = name.String

	return &a, nil
}
