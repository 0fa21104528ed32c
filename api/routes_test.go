package api_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"github.com/dsvv-tech/prana/api"
	dbembed "github.com/dsvv-tech/prana/db"
	"github.com/dsvv-tech/prana/internal/config"
	dbpkg "github.com/dsvv-tech/prana/internal/db"
	"github.com/dsvv-tech/prana/internal/repository/sqlite"
	"github.com/dsvv-tech/prana/internal/seed"
)

// setupServer migrates and seeds a fresh database and returns the full
// router, as wired in production.
func setupServer(t *testing.T) *mux.Router {
	t.Helper()
	ctx := context.Background()

	d, err := dbpkg.New(ctx, filepath.Join(t.TempDir(), "prana.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { d.Close() })

	if err := dbpkg.Migrate(ctx, d, dbembed.Migrations); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	api.SetLogger(logger)
	repo := sqlite.New(d, logger)
	if err := seed.Apply(ctx, logger, repo, repo, repo); err != nil {
		t.Fatalf("seed: %v", err)
	}
	// running the seed again must be a no-op
	if err := seed.Apply(ctx, logger, repo, repo, repo); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	cfg := &config.Config{
		Addr:          ":0",
		JWTSecret:     testSecret,
		APITimeout:    15 * time.Second,
		DatabasePath:  "ignored",
		TokenDuration: time.Hour,
	}

	return api.SetupRoutes(cfg, "test", "now", d)
}

func TestSeededServerScenario(t *testing.T) {
	r := setupServer(t)

	// the six demo activities are returned for today, newest created first
	w := doRequest(t, r, http.MethodGet, "/api/activities/23144003", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d (body %s)", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	rows, _ := body["activities"].([]any)
	if len(rows) != 6 {
		t.Fatalf("expected 6 seeded activities, got %d", len(rows))
	}
	first, _ := rows[0].(map[string]any)
	if first["activity_name"] != "Evening Prayer" {
		t.Fatalf("expected newest activity first, got %v", first["activity_name"])
	}
	var completed, pending int
	for _, row := range rows {
		switch row.(map[string]any)["status"] {
		case "completed":
			completed++
		case "pending":
			pending++
		}
	}
	if completed != 3 || pending != 3 {
		t.Fatalf("seed statuses wrong: %d completed, %d pending", completed, pending)
	}

	// dashboard reads 1 student, 1 active scholar, 50% completion
	w = doRequest(t, r, http.MethodGet, "/api/admin/stats", nil, "")
	stats := decodeBody(t, w)
	if stats["totalStudents"] != float64(1) || stats["activeToday"] != float64(1) || stats["completionRate"] != float64(50) {
		t.Fatalf("unexpected stats: %v", stats)
	}

	// the joined admin feed carries student fields
	w = doRequest(t, r, http.MethodGet, "/api/admin/activities", nil, "")
	body = decodeBody(t, w)
	rows, _ = body["activities"].([]any)
	if len(rows) != 6 {
		t.Fatalf("expected 6 joined rows, got %d", len(rows))
	}
	if row := rows[0].(map[string]any); row["name"] != "Akansha Rana" || row["hostel"] != "Nivedita" {
		t.Fatalf("join fields missing: %v", row)
	}

	// demo credentials work; a wrong password does not
	w = doRequest(t, r, http.MethodPost, "/api/student/login",
		map[string]string{"scholar_id": "23144003", "password": "wrong"}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password status = %d", w.Code)
	}
	w = doRequest(t, r, http.MethodPost, "/api/student/login",
		map[string]string{"scholar_id": "23144003", "password": "password123"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d (body %s)", w.Code, w.Body.String())
	}
	student := decodeBody(t, w)["student"].(map[string]any)
	if student["name"] != "Akansha Rana" {
		t.Fatalf("unexpected student: %v", student)
	}

	w = doRequest(t, r, http.MethodPost, "/api/admin/login",
		map[string]string{"email": "admin@prana.com", "password": "admin123"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("admin login status = %d (body %s)", w.Code, w.Body.String())
	}
}

func TestHealthStatusRoundTrip(t *testing.T) {
	r := setupServer(t)

	// two upserts on the same day end as one row, second write winning
	w := doRequest(t, r, http.MethodPost, "/api/health",
		map[string]string{"scholar_id": "23144003", "status": "unwell", "notes": "fever"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("first upsert status = %d (body %s)", w.Code, w.Body.String())
	}
	firstID := decodeBody(t, w)["id"]

	w = doRequest(t, r, http.MethodPost, "/api/health",
		map[string]string{"scholar_id": "23144003", "status": "recovering"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("second upsert status = %d", w.Code)
	}
	if got := decodeBody(t, w)["id"]; got != firstID {
		t.Fatalf("second upsert made a new row: %v != %v", got, firstID)
	}

	w = doRequest(t, r, http.MethodGet, "/api/health/23144003", nil, "")
	row, _ := decodeBody(t, w)["health"].(map[string]any)
	if row == nil || row["status"] != "recovering" {
		t.Fatalf("second write did not win: %v", row)
	}
}

func TestRegisterLoginRoundTrip(t *testing.T) {
	r := setupServer(t)

	w := doRequest(t, r, http.MethodPost, "/api/student/register",
		map[string]string{"scholar_id": "23144050", "name": "Ravi Sharma", "password": "pw1234", "hostel": "Shantikunj"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("register status = %d (body %s)", w.Code, w.Body.String())
	}

	// duplicate registration conflicts and leaves the original row intact
	w = doRequest(t, r, http.MethodPost, "/api/student/register",
		map[string]string{"scholar_id": "23144050", "name": "Imposter", "password": "other"}, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register status = %d", w.Code)
	}
	if decodeBody(t, w)["error"] != "Scholar ID already exists" {
		t.Fatalf("unexpected duplicate error")
	}

	w = doRequest(t, r, http.MethodPost, "/api/student/login",
		map[string]string{"scholar_id": "23144050", "password": "pw1234"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d (body %s)", w.Code, w.Body.String())
	}
	student := decodeBody(t, w)["student"].(map[string]any)
	if student["name"] != "Ravi Sharma" || student["hostel"] != "Shantikunj" {
		t.Fatalf("registered fields not returned: %v", student)
	}

	// both students are now listed, newest first
	w = doRequest(t, r, http.MethodGet, "/api/admin/students", nil, "")
	students, _ := decodeBody(t, w)["students"].([]any)
	if len(students) != 2 {
		t.Fatalf("expected 2 students, got %d", len(students))
	}
}

func TestFrontendEntryDocument(t *testing.T) {
	r := setupServer(t)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Fatalf("content type = %q", ct)
	}
}
