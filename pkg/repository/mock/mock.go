package mock

import (
	"context"

	"github.com/dsvv-tech/prana/pkg/models"
)

// Test helpers and mocks
type Mocks struct {
	Students   *StudentRepo
	Admins     *AdminRepo
	Activities *ActivityRepo
	Health     *HealthRepo
	Stats      *StatsRepo
}

func NewMocks() *Mocks {
	return &Mocks{
		Students:   &StudentRepo{},
		Admins:     &AdminRepo{},
		Activities: &ActivityRepo{},
		Health:     &HealthRepo{},
		Stats:      &StatsRepo{},
	}
}

type StudentRepo struct {
	Stored    *models.Student
	All       []models.Student
	CreateErr error
	GetErr    error
	ListErr   error
}

func (m *StudentRepo) CreateStudent(ctx context.Context, s *models.Student) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.Stored = &models.Student{
		ID:           1,
		ScholarID:    s.ScholarID,
		Name:         s.Name,
		Hostel:       s.Hostel,
		Email:        s.Email,
		PasswordHash: s.PasswordHash,
	}
	return 1, nil
}

func (m *StudentRepo) GetByScholarID(ctx context.Context, scholarID string) (*models.Student, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.Stored != nil && m.Stored.ScholarID == scholarID {
		return m.Stored, nil
	}
	return nil, nil
}

func (m *StudentRepo) ListStudents(ctx context.Context) ([]models.Student, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.All, nil
}

func (m *StudentRepo) CountStudents(ctx context.Context) (int64, error) {
	return int64(len(m.All)), nil
}

type AdminRepo struct {
	Stored    *models.Admin
	CreateErr error
	GetErr    error
}

func (m *AdminRepo) CreateAdmin(ctx context.Context, a *models.Admin) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.Stored = &models.Admin{ID: 1, Email: a.Email, Name: a.Name, PasswordHash: a.PasswordHash}
	return 1, nil
}

func (m *AdminRepo) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.Stored != nil && m.Stored.Email == email {
		return m.Stored, nil
	}
	return nil, nil
}

type ActivityRepo struct {
	Items         []models.Activity
	Joined        []models.ActivityWithStudent
	CreateErr     error
	ListErr       error
	UpdateErr     error
	UpdatedID     int64
	UpdatedStatus string
	UpdateCount   int64
}

func (m *ActivityRepo) CreateActivity(ctx context.Context, a *models.Activity) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	id := int64(len(m.Items) + 1)
	row := *a
	row.ID = id
	m.Items = append(m.Items, row)
	return id, nil
}

func (m *ActivityRepo) ListByScholar(ctx context.Context, scholarID, date string) ([]models.Activity, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var out []models.Activity
	for _, a := range m.Items {
		if a.ScholarID == scholarID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *ActivityRepo) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	if m.UpdateErr != nil {
		return 0, m.UpdateErr
	}
	m.UpdatedID = id
	m.UpdatedStatus = status
	for i := range m.Items {
		if m.Items[i].ID == id {
			m.Items[i].Status = status
			return 1, nil
		}
	}
	return m.UpdateCount, nil
}

func (m *ActivityRepo) CountActivities(ctx context.Context) (int64, error) {
	return int64(len(m.Items)), nil
}

func (m *ActivityRepo) ListTodayWithStudent(ctx context.Context, limit int) ([]models.ActivityWithStudent, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	if limit > 0 && len(m.Joined) > limit {
		return m.Joined[:limit], nil
	}
	return m.Joined, nil
}

type HealthRepo struct {
	Row       *models.HealthStatus
	GetErr    error
	UpsertErr error
}

func (m *HealthRepo) GetByScholarAndDate(ctx context.Context, scholarID, date string) (*models.HealthStatus, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.Row != nil && m.Row.ScholarID == scholarID {
		return m.Row, nil
	}
	return nil, nil
}

func (m *HealthRepo) UpsertHealth(ctx context.Context, h *models.HealthStatus) (int64, error) {
	if m.UpsertErr != nil {
		return 0, m.UpsertErr
	}
	if m.Row != nil && m.Row.ScholarID == h.ScholarID {
		m.Row.Status = h.Status
		m.Row.Notes = h.Notes
		return m.Row.ID, nil
	}
	m.Row = &models.HealthStatus{ID: 1, ScholarID: h.ScholarID, Status: h.Status, Notes: h.Notes}
	return 1, nil
}

type StatsRepo struct {
	Snapshot models.Stats
	Err      error
}

func (m *StatsRepo) DashboardStats(ctx context.Context) (*models.Stats, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	s := m.Snapshot
	return &s, nil
}
