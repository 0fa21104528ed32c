package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dsvv-tech/prana/pkg/models"
	"github.com/dsvv-tech/prana/pkg/repository"
)

type ActivitiesHandler struct {
	activities repository.ActivityRepo
}

func NewActivitiesHandler(ar repository.ActivityRepo) *ActivitiesHandler {
	return &ActivitiesHandler{activities: ar}
}

type createActivityRequest struct {
	ScholarID    string `json:"scholar_id" validate:"required"`
	ActivityName string `json:"activity_name" validate:"required"`
	ActivityTime string `json:"activity_time"`
	Status       string `json:"status"`
}

type updateActivityRequest struct {
	Status string `json:"status" validate:"required"`
}

// List returns the scholar's activities for the requested date, defaulting
// to today. An empty day is an empty list, not an error.
func (h *ActivitiesHandler) List(w http.ResponseWriter, r *http.Request) {
	scholarID := mux.Vars(r)["scholar_id"]
	date := r.URL.Query().Get("date")

	rows, err := h.activities.ListByScholar(r.Context(), scholarID, date)
	if err != nil {
		writeError(w, errDatabase, http.StatusInternalServerError)
		return
	}

	if rows == nil {
		rows = []models.Activity{}
	}

	writeJSON(w, map[string]any{"activities": rows}, http.StatusOK)
}

func (h *ActivitiesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || invalid(req) {
		writeError(w, "Scholar ID and activity name required", http.StatusBadRequest)
		return
	}

	if req.Status == "" {
		req.Status = models.StatusPending
	}

	a := models.Activity{
		ScholarID:    req.ScholarID,
		ActivityName: req.ActivityName,
		ActivityTime: req.ActivityTime,
		Status:       req.Status,
	}

	id, err := h.activities.CreateActivity(r.Context(), &a)
	if err != nil {
		writeError(w, errDatabase, http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{"success": true, "id": id}, http.StatusOK)
}

// Update overwrites the status of the activity with the given id. An unknown
// id is a no-op that still succeeds; the `updated` count lets callers detect
// it.
func (h *ActivitiesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, "Invalid activity id", http.StatusBadRequest)
		return
	}

	var req updateActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || invalid(req) {
		writeError(w, "Status required", http.StatusBadRequest)
		return
	}

	updated, err := h.activities.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, errDatabase, http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{"success": true, "message": "Activity updated", "updated": updated}, http.StatusOK)
}
