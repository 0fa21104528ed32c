package models

// Domain models matching the database schema in db/migrations/0001_init.sql

type Student struct {
	ID           int64  `json:"id" db:"id"`
	ScholarID    string `json:"scholar_id" db:"scholar_id" validate:"required"`
	Name         string `json:"name" db:"name" validate:"required"`
	Hostel       string `json:"hostel,omitempty" db:"hostel"`
	Email        string `json:"email,omitempty" db:"email"`
	CreatedAt    string `json:"created_at" db:"created_at"`
	PasswordHash string `json:"-" db:"password_hash"`
}

// PublicStudent is the projection returned to clients; it never carries
// credential material.
type PublicStudent struct {
	ScholarID string `json:"scholar_id"`
	Name      string `json:"name"`
	Hostel    string `json:"hostel,omitempty"`
	Email     string `json:"email,omitempty"`
}

func (s *Student) Public() PublicStudent {
	return PublicStudent{ScholarID: s.ScholarID, Name: s.Name, Hostel: s.Hostel, Email: s.Email}
}

// Activity status values. Stored as plain text; callers treat anything else
// as unknown.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

type Activity struct {
	ID           int64  `json:"id" db:"id"`
	ScholarID    string `json:"scholar_id" db:"scholar_id" validate:"required"`
	ActivityName string `json:"activity_name" db:"activity_name" validate:"required"`
	ActivityTime string `json:"activity_time,omitempty" db:"activity_time"`
	Status       string `json:"status" db:"status"`
	Date         string `json:"date" db:"date"`
	CreatedAt    string `json:"created_at" db:"created_at"`
}

// ActivityWithStudent is an activity row joined with the owning student,
// as shown on the admin dashboard.
type ActivityWithStudent struct {
	Activity
	StudentName string `json:"name"`
	Hostel      string `json:"hostel,omitempty"`
}

type HealthStatus struct {
	ID        int64  `json:"id" db:"id"`
	ScholarID string `json:"scholar_id" db:"scholar_id" validate:"required"`
	Status    string `json:"status" db:"status" validate:"required"`
	Notes     string `json:"notes,omitempty" db:"notes"`
	Date      string `json:"date" db:"date"`
	CreatedAt string `json:"created_at" db:"created_at"`
}

type Admin struct {
	ID           int64  `json:"id" db:"id"`
	Email        string `json:"email" db:"email" validate:"required,email"`
	Name         string `json:"name" db:"name"`
	CreatedAt    string `json:"created_at" db:"created_at"`
	PasswordHash string `json:"-" db:"password_hash"`
}

// PublicAdmin is the projection returned to clients.
type PublicAdmin struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (a *Admin) Public() PublicAdmin {
	return PublicAdmin{ID: a.ID, Email: a.Email, Name: a.Name}
}

// Stats is the admin dashboard aggregate snapshot. The three numbers are
// read in independent queries and may be skewed by a few milliseconds.
type Stats struct {
	TotalStudents  int64 `json:"totalStudents"`
	ActiveToday    int64 `json:"activeToday"`
	CompletionRate int64 `json:"completionRate"`
}
