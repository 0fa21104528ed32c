package api

import (
	"fmt"
	"net/http"

	"github.com/dsvv-tech/prana/internal/db"
)

type SystemHandler struct {
	db *db.DB
}

func NewSystemHandler(db *db.DB) *SystemHandler {
	return &SystemHandler{db: db}
}

func (h *SystemHandler) HealthzHandler(w http.ResponseWriter, r *http.Request) {
	dbOK := h.db != nil && h.db.Ping(r.Context()) == nil

	status := http.StatusOK
	if !dbOK {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, map[string]any{"status": "ok", "service": "prana", "db": dbOK}, status)
}

func (h *SystemHandler) VersionHandler(version, buildTime string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"version":"%s","buildTime":"%s"}`, version, buildTime)
	}
}
