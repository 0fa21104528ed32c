package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/qri-io/jsonschema"
	"golang.org/x/crypto/bcrypt"

	"github.com/dsvv-tech/prana/db"
	"github.com/dsvv-tech/prana/internal/metrics"
	"github.com/dsvv-tech/prana/pkg/models"
	"github.com/dsvv-tech/prana/pkg/repository"
)

const (
	seedPath   = "seed/seed_v1.json"
	schemaPath = "seed/seed_schema_v1.json"
)

// document mirrors db/seed/seed_v1.json.
type document struct {
	Student struct {
		ScholarID string `json:"scholar_id"`
		Name      string `json:"name"`
		Password  string `json:"password"`
		Hostel    string `json:"hostel"`
		Email     string `json:"email"`
	} `json:"student"`
	Admin struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	} `json:"admin"`
	Activities []struct {
		ScholarID    string `json:"scholar_id"`
		ActivityName string `json:"activity_name"`
		ActivityTime string `json:"activity_time"`
		Status       string `json:"status"`
	} `json:"activities"`
}

// Apply inserts the demo rows on first startup. It is idempotent: the demo
// student and admin are guarded by exact lookups, and the demo activities are
// inserted only while the activities table is completely empty. The embedded
// seed document is validated against its JSON schema before anything is
// written.
func Apply(
	ctx context.Context,
	logger *slog.Logger,
	students repository.StudentRepo,
	admins repository.AdminRepo,
	activities repository.ActivityRepo,
) error {
	doc, err := load(ctx)
	if err != nil {
		return err
	}

	existing, err := students.GetByScholarID(ctx, doc.Student.ScholarID)
	if err != nil {
		return fmt.Errorf("seed: lookup demo student: %w", err)
	}
	if existing == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(doc.Student.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed: hash student password: %w", err)
		}
		s := &models.Student{
			ScholarID:    doc.Student.ScholarID,
			Name:         doc.Student.Name,
			Hostel:       doc.Student.Hostel,
			Email:        doc.Student.Email,
			PasswordHash: string(hash),
		}
		if _, err := students.CreateStudent(ctx, s); err != nil {
			return fmt.Errorf("seed: insert demo student: %w", err)
		}
		metrics.RecordSeededRows("students", 1)
		logger.Info("seeded demo student", slog.String("scholar_id", s.ScholarID))
	}

	admin, err := admins.GetAdminByEmail(ctx, doc.Admin.Email)
	if err != nil {
		return fmt.Errorf("seed: lookup demo admin: %w", err)
	}
	if admin == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(doc.Admin.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed: hash admin password: %w", err)
		}
		a := &models.Admin{Email: doc.Admin.Email, Name: doc.Admin.Name, PasswordHash: string(hash)}
		if _, err := admins.CreateAdmin(ctx, a); err != nil {
			return fmt.Errorf("seed: insert demo admin: %w", err)
		}
		metrics.RecordSeededRows("admins", 1)
		logger.Info("seeded demo admin", slog.String("email", a.Email))
	}

	count, err := activities.CountActivities(ctx)
	if err != nil {
		return fmt.Errorf("seed: count activities: %w", err)
	}
	if count == 0 {
		for _, row := range doc.Activities {
			a := &models.Activity{
				ScholarID:    row.ScholarID,
				ActivityName: row.ActivityName,
				ActivityTime: row.ActivityTime,
				Status:       row.Status,
			}
			if _, err := activities.CreateActivity(ctx, a); err != nil {
				return fmt.Errorf("seed: insert activity %q: %w", row.ActivityName, err)
			}
		}
		metrics.RecordSeededRows("activities", len(doc.Activities))
		logger.Info("seeded demo activities", slog.Int("count", len(doc.Activities)))
	}

	return nil
}

// load reads the embedded seed document and validates it against the
// embedded JSON schema.
func load(ctx context.Context) (*document, error) {
	raw, err := fs.ReadFile(db.SeedFiles, seedPath)
	if err != nil {
		return nil, fmt.Errorf("seed: read document: %w", err)
	}
	schemaRaw, err := fs.ReadFile(db.SeedFiles, schemaPath)
	if err != nil {
		return nil, fmt.Errorf("seed: read schema: %w", err)
	}

	rs := &jsonschema.Schema{}
	if err := json.Unmarshal(schemaRaw, rs); err != nil {
		return nil, fmt.Errorf("seed: compile schema: %w", err)
	}

	keyErrs, err := rs.ValidateBytes(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("seed: validate document: %w", err)
	}
	if len(keyErrs) > 0 {
		return nil, fmt.Errorf("seed: document does not match schema: %v", keyErrs[0])
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("seed: decode document: %w", err)
	}

	return &doc, nil
}
