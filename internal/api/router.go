package api

import (
	"net/http"

	"go.uber.org/zap"

	"loadboard-service/internal/api/handlers"
	"loadboard-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.LoadRepository, validator ports.CarrierValidator, log *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	healthHandler := &handlers.HealthHandler{Log: log}
	loadHandler := &handlers.LoadHandler{Repo: repo, Log: log}
	carrierHandler := &handlers.CarrierHandler{Validator: validator, Log: log}

	mux.HandleFunc("/health", healthHandler.Health)
	mux.HandleFunc("/items/", loadHandler.Get)
	mux.HandleFunc("/carriers/validate", carrierHandler.Validate)

	return requestIDMiddleware(loggingMiddleware(log, mux))
}
