/**
 * @description
 * This is the main entry point for the designation service. Its
 * responsibility is to initialize all components and start the HTTP server.
 *
 * Key features:
 * - Loads application configuration from environment variables.
 * - Builds the in-memory ledger and audit trail (the whole backend is
 *   simulated; nothing is persisted).
 * - Loads the institution directory reference table from configuration.
 * - Wires up the core service with its dependencies and the live audit feed.
 * - Optionally starts the cron-driven institution sync scheduler.
 * - Starts the HTTP server and implements graceful shutdown.
 *
 * @dependencies
 * - The service's internal packages for config, app logic, storage and API.
 * - godotenv for local config, melody for the audit feed, cron for the
 *   optional sync scheduler.
 */
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/trustmark/designation-service/internal/api"
	"github.com/trustmark/designation-service/internal/app"
	"github.com/trustmark/designation-service/internal/config"
	"github.com/trustmark/designation-service/internal/pdfform"
	"github.com/trustmark/designation-service/internal/store"
	"github.com/trustmark/designation-service/pkg/institution"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Load .env file for local development.
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("cannot load config", "error", err)
		os.Exit(1)
	}

	institutions, err := config.LoadInstitutions(cfg.InstitutionsFile)
	if err != nil {
		logger.Error("cannot load institution directory", "error", err)
		os.Exit(1)
	}

	// Set up dependencies. All state is in-memory for the process session.
	ledger := store.NewMemoryLedger()
	audit := store.NewMemoryAuditTrail()
	directory := store.NewDirectory(institutions)
	connector := institution.NewClient(logger)
	renderer := pdfform.NewRenderer()
	feed := api.NewAuditFeed(logger)

	service := app.NewDesignationService(ledger, audit, directory, connector, renderer, feed, logger)

	if cfg.SeedDemoData {
		if err := service.SeedDemoData(context.Background()); err != nil {
			logger.Error("failed to seed demo data", "error", err)
			os.Exit(1)
		}
		logger.Info("demo data seeded")
	}

	// Optional periodic sync of accounts at connected institutions.
	var scheduler *app.Scheduler
	if cfg.SyncEnabled {
		scheduler = app.NewScheduler(app.NewSyncJobs(service, logger), logger, cfg.SyncSchedule)
		scheduler.Start()
	}

	router := api.NewRouter(service, feed)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.ServerPort),
		Handler: router,
	}

	go func() {
		logger.Info("starting HTTP server", "port", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("could not start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for termination signal for graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down designation service")

	if scheduler != nil {
		<-scheduler.Stop().Done()
	}
	if err := feed.Close(); err != nil {
		logger.Warn("audit feed close failed", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}

	logger.Info("server gracefully stopped")
}
