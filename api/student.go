package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dsvv-tech/prana/pkg/models"
	"github.com/dsvv-tech/prana/pkg/repository"
)

type StudentHandler struct {
	students      repository.StudentRepo
	jwtSecret     string
	tokenDuration time.Duration
}

// NewStudentHandler creates a new StudentHandler with required dependencies.
func NewStudentHandler(sr repository.StudentRepo, jwtSecret string, tokenDuration time.Duration) *StudentHandler {
	return &StudentHandler{students: sr, jwtSecret: jwtSecret, tokenDuration: tokenDuration}
}

type studentLoginRequest struct {
	ScholarID string `json:"scholar_id" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

type studentLoginResponse struct {
	Success bool                 `json:"success"`
	Token   string               `json:"token,omitempty"`
	Student models.PublicStudent `json:"student"`
}

type registerRequest struct {
	ScholarID string `json:"scholar_id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Password  string `json:"password" validate:"required"`
	Hostel    string `json:"hostel"`
	Email     string `json:"email"`
}

func (h *StudentHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req studentLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || invalid(req) {
		writeError(w, "Scholar ID and password required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	student, err := h.students.GetByScholarID(ctx, req.ScholarID)
	if err != nil {
		writeError(w, errDatabase, http.StatusInternalServerError)
		return
	}
	if student == nil {
		writeError(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte(req.Password)) != nil {
		writeError(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := signToken(h.jwtSecret, student.ScholarID, RoleStudent, h.tokenDuration)
	if err != nil {
		writeError(w, errInternal, http.StatusInternalServerError)
		return
	}

	writeJSON(w, studentLoginResponse{Success: true, Token: token, Student: student.Public()}, http.StatusOK)
}

func (h *StudentHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || invalid(req) {
		writeError(w, "Scholar ID, name, and password required", http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, errInternal, http.StatusInternalServerError)
		return
	}

	student := models.Student{
		ScholarID:    req.ScholarID,
		Name:         req.Name,
		Hostel:       req.Hostel,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	if _, err := h.students.CreateStudent(r.Context(), &student); err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			writeError(w, "Scholar ID already exists", http.StatusBadRequest)
			return
		}
		writeError(w, errDatabase, http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{"success": true, "message": "Student registered successfully"}, http.StatusOK)
}

// Me returns the public projection of the student identified by the verified
// session token.
func (h *StudentHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	role, _ := ctx.Value(CtxRole).(string)
	scholarID, _ := ctx.Value(CtxSubject).(string)
	if role != RoleStudent || scholarID == "" {
		writeError(w, "Invalid or expired token", http.StatusUnauthorized)
		return
	}

	student, err := h.students.GetByScholarID(ctx, scholarID)
	if err != nil {
		writeError(w, errDatabase, http.StatusInternalServerError)
		return
	}
	if student == nil {
		writeError(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	writeJSON(w, map[string]any{"success": true, "student": student.Public()}, http.StatusOK)
}
