package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dsvv-tech/prana/pkg/models"
	"github.com/dsvv-tech/prana/pkg/repository"
)

type HealthStatusHandler struct {
	health repository.HealthRepo
}

func NewHealthStatusHandler(hr repository.HealthRepo) *HealthStatusHandler {
	return &HealthStatusHandler{health: hr}
}

type upsertHealthRequest struct {
	ScholarID string `json:"scholar_id" validate:"required"`
	Status    string `json:"status" validate:"required"`
	Notes     string `json:"notes"`
}

// Get returns the scholar's health row for the requested date (default
// today), or null when none was recorded. At most one row exists per day.
func (h *HealthStatusHandler) Get(w http.ResponseWriter, r *http.Request) {
	scholarID := mux.Vars(r)["scholar_id"]
	date := r.URL.Query().Get("date")

	row, err := h.health.GetByScholarAndDate(r.Context(), scholarID, date)
	if err != nil {
		writeError(w, errDatabase, http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{"health": row}, http.StatusOK)
}

// Upsert records today's health status for the scholar, overwriting any row
// already written today.
func (h *HealthStatusHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req upsertHealthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || invalid(req) {
		writeError(w, "Scholar ID and status required", http.StatusBadRequest)
		return
	}

	row := models.HealthStatus{ScholarID: req.ScholarID, Status: req.Status, Notes: req.Notes}

	id, err := h.health.UpsertHealth(r.Context(), &row)
	if err != nil {
		writeError(w, errDatabase, http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{"success": true, "id": id, "message": "Health status updated"}, http.StatusOK)
}
