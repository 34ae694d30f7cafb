package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/racelens/racelens/internal/api"
	"github.com/racelens/racelens/internal/config"
	"github.com/racelens/racelens/internal/db"
	"github.com/racelens/racelens/internal/logger"
	"github.com/racelens/racelens/internal/metrics"
	"github.com/racelens/racelens/internal/repository/sqlite"
	"github.com/racelens/racelens/internal/services"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("RaceLens Server Starting")
	log.Info("===========================================")
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("data_source=%s", cfg.DataSource)
	log.Debug("season_label=%s", cfg.SeasonLabel)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("min_team_entries=%d", cfg.MinTeamEntries)

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Load templates
	log.Debug("loading templates")
	tmpl, err := api.LoadTemplates()
	if err != nil {
		log.Error("failed to load templates: %v", err)
		os.Exit(1)
	}
	log.Debug("templates loaded successfully")

	categoryOrder, err := config.LoadCategoryOrder(cfg.CategoryOrderPath)
	if err != nil {
		log.Error("failed to load category order: %v", err)
		os.Exit(1)
	}

	// Initialize services
	entryRepo := sqlite.NewEntryRepository(database.DB)
	datasetService := services.NewDatasetService(entryRepo)
	teamService := services.NewTeamService(entryRepo, cfg.MinTeamEntries, categoryOrder)
	riderService := services.NewRiderService(entryRepo)

	// Load the season dataset before taking traffic. A failed load is
	// surfaced on every page rather than crashing the server.
	loadCtx, loadCancel := context.WithTimeout(context.Background(), 60*time.Second)
	status := datasetService.Load(loadCtx, cfg.DataSource, cfg.SeasonLabel)
	loadCancel()

	metrics.SetDatasetEntries(status.Entries)
	metrics.SetDatasetLoadFailed(status.Failed)
	if status.Failed {
		log.Warn("dataset load failed, serving empty dashboard")
	} else {
		log.Info("dataset loaded: %d entries", status.Entries)
	}

	srv := &api.Server{
		TeamService:    teamService,
		RiderService:   riderService,
		DatasetService: datasetService,
		Templates:      tmpl,
		Dataset:        status,
		RivalTeams:     cfg.RivalTeams,
	}

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("===========================================")
	log.Info("RaceLens Server Stopped")
	log.Info("===========================================")
}
