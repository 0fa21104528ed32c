package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dsvv-tech/prana/api"
	dbembed "github.com/dsvv-tech/prana/db"
	"github.com/dsvv-tech/prana/internal/config"
	"github.com/dsvv-tech/prana/internal/db"
	"github.com/dsvv-tech/prana/internal/repository/sqlite"
	"github.com/dsvv-tech/prana/internal/seed"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	var configPath = flag.String("config", "", "Path to config YAML file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	api.SetLogger(logger)

	log.Printf("Starting PRANA server version %s (built at %s)", version, buildTime)

	ctx := context.Background()

	// Open database connection
	database, err := db.New(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}

	// Schema creation is non-destructive and safe on every start
	if err := db.Migrate(ctx, database, dbembed.Migrations); err != nil {
		log.Fatalf("Failed to migrate DB: %v", err)
	}

	// One-time demo seed; idempotent on restarts
	repo := sqlite.New(database, logger)
	if err := seed.Apply(ctx, logger, repo, repo, repo); err != nil {
		log.Fatalf("Failed to seed DB: %v", err)
	}

	handler := api.SetupRoutes(cfg, version, buildTime, database)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.APITimeout,
		WriteTimeout: cfg.APITimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("PRANA server listening on %s", cfg.Addr)
		log.Printf("Database: %s", cfg.DatabasePath)
		log.Println("Default credentials:")
		log.Println("  Student - Scholar ID: 23144003, Password: password123")
		log.Println("  Admin   - Email: admin@prana.com, Password: admin123")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Close database connection
	if err := database.Close(); err != nil {
		log.Printf("Error closing DB: %v", err)
	}

	log.Println("Server exited")
}
