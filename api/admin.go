package api

import (
	"encoding/json"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dsvv-tech/prana/pkg/models"
	"github.com/dsvv-tech/prana/pkg/repository"
)

type AdminHandler struct {
	admins        repository.AdminRepo
	students      repository.StudentRepo
	activities    repository.ActivityRepo
	stats         repository.StatsRepo
	jwtSecret     string
	tokenDuration time.Duration
}

func NewAdminHandler(
	ar repository.AdminRepo,
	sr repository.StudentRepo,
	actr repository.ActivityRepo,
	str repository.StatsRepo,
	jwtSecret string,
	tokenDuration time.Duration,
) *AdminHandler {
	return &AdminHandler{
		admins:        ar,
		students:      sr,
		activities:    actr,
		stats:         str,
		jwtSecret:     jwtSecret,
		tokenDuration: tokenDuration,
	}
}

type adminLoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type adminLoginResponse struct {
	Success bool               `json:"success"`
	Token   string             `json:"token,omitempty"`
	Admin   models.PublicAdmin `json:"admin"`
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || invalid(req) {
		writeError(w, "Email and password required", http.StatusBadRequest)
		return
	}

	admin, err := h.admins.GetAdminByEmail(r.Context(), req.Email)
	if err != nil {
		writeError(w, errDatabase, http.StatusInternalServerError)
		return
	}
	if admin == nil {
		writeError(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)) != nil {
		writeError(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := signToken(h.jwtSecret, admin.Email, RoleAdmin, h.tokenDuration)
	if err != nil {
		writeError(w, errInternal, http.StatusInternalServerError)
		return
	}

	writeJSON(w, adminLoginResponse{Success: true, Token: token, Admin: admin.Public()}, http.StatusOK)
}

// Stats returns the dashboard aggregates.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.DashboardStats(r.Context())
	if err != nil {
		writeError(w, errDatabase, http.StatusInternalServerError)
		return
	}

	writeJSON(w, stats, http.StatusOK)
}

// Activities returns today's activities joined with their students, newest
// first, capped at 50 rows for display.
func (h *AdminHandler) Activities(w http.ResponseWriter, r *http.Request) {
	rows, err := h.activities.ListTodayWithStudent(r.Context(), 50)
	if err != nil {
		writeError(w, errDatabase, http.StatusInternalServerError)
		return
	}

	if rows == nil {
		rows = []models.ActivityWithStudent{}
	}

	writeJSON(w, map[string]any{"activities": rows}, http.StatusOK)
}

// Students returns all students, newest first, without credential material.
func (h *AdminHandler) Students(w http.ResponseWriter, r *http.Request) {
	rows, err := h.students.ListStudents(r.Context())
	if err != nil {
		writeError(w, errDatabase, http.StatusInternalServerError)
		return
	}

	if rows == nil {
		rows = []models.Student{}
	}

	writeJSON(w, map[string]any{"students": rows}, http.StatusOK)
}

// Me returns the admin identified by the verified session token.
func (h *AdminHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	role, _ := ctx.Value(CtxRole).(string)
	email, _ := ctx.Value(CtxSubject).(string)
	if role != RoleAdmin || email == "" {
		writeError(w, "Invalid or expired token", http.StatusUnauthorized)
		return
	}

	admin, err := h.admins.GetAdminByEmail(ctx, email)
	if err != nil {
		writeError(w, errDatabase, http.StatusInternalServerError)
		return
	}
	if admin == nil {
		writeError(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	writeJSON(w, map[string]any{"success": true, "admin": admin.Public()}, http.StatusOK)
}
