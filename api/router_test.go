package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"github.com/dsvv-tech/prana/api"
	"github.com/dsvv-tech/prana/pkg/repository/mock"
)

const testSecret = "testsecret"

// newTestRouter wires the API routes against mocks, mirroring SetupRoutes
// without the sqlite repository or the middleware chain.
func newTestRouter(m *mock.Mocks) *mux.Router {
	r := mux.NewRouter()

	studentHandler := api.NewStudentHandler(m.Students, testSecret, time.Hour)
	adminHandler := api.NewAdminHandler(m.Admins, m.Students, m.Activities, m.Stats, testSecret, time.Hour)
	activitiesHandler := api.NewActivitiesHandler(m.Activities)
	healthStatusHandler := api.NewHealthStatusHandler(m.Health)

	r.HandleFunc("/api/student/login", studentHandler.Login).Methods("POST")
	r.HandleFunc("/api/student/register", studentHandler.Register).Methods("POST")
	r.HandleFunc("/api/admin/login", adminHandler.Login).Methods("POST")

	r.HandleFunc("/api/activities", activitiesHandler.Create).Methods("POST")
	r.HandleFunc("/api/activities/{id:[0-9]+}", activitiesHandler.Update).Methods("PUT")
	r.HandleFunc("/api/activities/{scholar_id}", activitiesHandler.List).Methods("GET")

	r.HandleFunc("/api/health", healthStatusHandler.Upsert).Methods("POST")
	r.HandleFunc("/api/health/{scholar_id}", healthStatusHandler.Get).Methods("GET")

	r.HandleFunc("/api/admin/stats", adminHandler.Stats).Methods("GET")
	r.HandleFunc("/api/admin/activities", adminHandler.Activities).Methods("GET")
	r.HandleFunc("/api/admin/students", adminHandler.Students).Methods("GET")

	authed := api.JWTAuthMiddlewareWithSecret(testSecret)
	r.Handle("/api/student/me", authed(http.HandlerFunc(studentHandler.Me))).Methods("GET")
	r.Handle("/api/admin/me", authed(http.HandlerFunc(adminHandler.Me))).Methods("GET")

	return r
}

// doRequest performs a request against the router and returns the recorder.
// A nil body sends no payload; a string body is sent raw, anything else is
// JSON-encoded.
func doRequest(t *testing.T, r *mux.Router, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			if err := json.NewEncoder(&buf).Encode(b); err != nil {
				t.Fatalf("encode body: %v", err)
			}
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal response %q: %v", w.Body.String(), err)
	}
	return out
}
