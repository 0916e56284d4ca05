package main

import (
	"log"

	"github.com/joho/godotenv"

	"loadboard-service/internal/adapters/repositories"
	"loadboard-service/internal/config"
)

// loadcheck validates a loads CSV without starting the server.
// It runs the exact ingest path cmd/server uses at startup, so dataset
// authors can catch duplicate or malformed rows before a deploy.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	csvPath := config.Get("LOADS_CSV_PATH", "data/loads.csv")

	log.Printf("Checking dataset %s...", csvPath)
	repo, err := repositories.LoadFromCSV(csvPath)
	if err != nil {
		log.Fatalf("dataset check failed: %v", err)
	}

	log.Printf("Dataset OK: %d loads.", repo.Count())
}
