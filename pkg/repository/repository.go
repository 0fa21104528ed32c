package repository

import (
	"context"

	"github.com/dsvv-tech/prana/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

type StudentRepo interface {
	CreateStudent(ctx context.Context, s *models.Student) (int64, error)
	GetByScholarID(ctx context.Context, scholarID string) (*models.Student, error)
	ListStudents(ctx context.Context) ([]models.Student, error)
	CountStudents(ctx context.Context) (int64, error)
}

type AdminRepo interface {
	CreateAdmin(ctx context.Context, a *models.Admin) (int64, error)
	GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error)
}

type ActivityRepo interface {
	CreateActivity(ctx context.Context, a *models.Activity) (int64, error)
	// ListByScholar returns the scholar's activities for the given date
	// (YYYY-MM-DD), or for the current date when date is empty, newest
	// created first.
	ListByScholar(ctx context.Context, scholarID, date string) ([]models.Activity, error)
	// UpdateStatus overwrites the status of the row with the given id and
	// reports the number of rows affected. Updating an unknown id is not
	// an error.
	UpdateStatus(ctx context.Context, id int64, status string) (int64, error)
	CountActivities(ctx context.Context) (int64, error)
	// ListTodayWithStudent joins today's activities with their students,
	// newest created first, capped at limit rows.
	ListTodayWithStudent(ctx context.Context, limit int) ([]models.ActivityWithStudent, error)
}

type HealthRepo interface {
	// GetByScholarAndDate returns at most one row per (scholar, date); an
	// empty date means the current date. Missing rows yield (nil, nil).
	GetByScholarAndDate(ctx context.Context, scholarID, date string) (*models.HealthStatus, error)
	// UpsertHealth atomically inserts today's row for the scholar or, if one
	// already exists, overwrites its status and notes. Returns the row id.
	UpsertHealth(ctx context.Context, h *models.HealthStatus) (int64, error)
}

type StatsRepo interface {
	DashboardStats(ctx context.Context) (*models.Stats, error)
}
