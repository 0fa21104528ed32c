package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dsvv-tech/prana/internal/config"
	"github.com/dsvv-tech/prana/internal/db"
	"github.com/dsvv-tech/prana/internal/repository/sqlite"
	"github.com/dsvv-tech/prana/web"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, db *db.DB) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(MetricsMiddleware)
	r.Use(RecoveryMiddleware)

	// Repository
	repo := sqlite.New(db, logger)

	// Create handlers
	systemHandler := NewSystemHandler(db)
	studentHandler := NewStudentHandler(repo, cfg.JWTSecret, cfg.TokenDuration)
	adminHandler := NewAdminHandler(repo, repo, repo, repo, cfg.JWTSecret, cfg.TokenDuration)
	activitiesHandler := NewActivitiesHandler(repo)
	healthStatusHandler := NewHealthStatusHandler(repo)

	// Operational endpoints
	r.HandleFunc("/healthz", systemHandler.HealthzHandler).Methods("GET")
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	// Auth endpoints
	api.HandleFunc("/student/login", studentHandler.Login).Methods("POST")
	api.HandleFunc("/student/register", studentHandler.Register).Methods("POST")
	api.HandleFunc("/admin/login", adminHandler.Login).Methods("POST")

	// Activity tracking
	api.HandleFunc("/activities", activitiesHandler.Create).Methods("POST")
	api.HandleFunc("/activities/{id:[0-9]+}", activitiesHandler.Update).Methods("PUT")
	api.HandleFunc("/activities/{scholar_id}", activitiesHandler.List).Methods("GET")

	// Health status
	api.HandleFunc("/health", healthStatusHandler.Upsert).Methods("POST")
	api.HandleFunc("/health/{scholar_id}", healthStatusHandler.Get).Methods("GET")

	// Admin dashboard
	api.HandleFunc("/admin/stats", adminHandler.Stats).Methods("GET")
	api.HandleFunc("/admin/activities", adminHandler.Activities).Methods("GET")
	api.HandleFunc("/admin/students", adminHandler.Students).Methods("GET")

	// Token-guarded profile endpoints
	authed := JWTAuthMiddlewareWithSecret(cfg.JWTSecret)
	api.Handle("/student/me", authed(http.HandlerFunc(studentHandler.Me))).Methods("GET")
	api.Handle("/admin/me", authed(http.HandlerFunc(adminHandler.Me))).Methods("GET")

	// Everything else serves the front-end entry document
	r.PathPrefix("/").Handler(web.Handler()).Methods("GET")

	return r
}
