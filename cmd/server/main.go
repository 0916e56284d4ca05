package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"loadboard-service/internal/adapters/fmcsa"
	"loadboard-service/internal/adapters/repositories"
	"loadboard-service/internal/api"
	"loadboard-service/internal/config"
	"loadboard-service/internal/platform/logging"
)

// main is the application composition root.
// It wires concrete adapters (CSV repository, FMCSA client) behind ports
// and starts the HTTP server. A dataset that fails to load aborts startup:
// the service must not accept lookups against a partial or missing dataset.
func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogsDirectory)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if strings.TrimSpace(cfg.FMCSAAPIKey) == "" {
		logger.Fatal("FMCSA_API_KEY is required")
	}

	repo, err := repositories.LoadFromCSV(cfg.LoadsCSVPath)
	if err != nil {
		logger.Fatal("dataset load failed", zap.Error(err))
	}
	logger.Info("dataset loaded",
		zap.String("path", cfg.LoadsCSVPath),
		zap.Int("loads", repo.Count()),
	)

	validator, err := fmcsa.NewValidator(cfg.FMCSAAPIKey, cfg.FMCSABaseURL, logger)
	if err != nil {
		logger.Fatal("validator setup failed", zap.Error(err))
	}

	router := api.NewRouter(repo, validator, logger)

	// Write timeout leaves headroom for the registry call's own 5s budget.
	logger.Info("server listening", zap.String("addr", ":"+cfg.Port))
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	logger.Fatal("server stopped", zap.Error(srv.ListenAndServe()))
}
