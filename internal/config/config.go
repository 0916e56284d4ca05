package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Runtime configuration, sourced from the environment (optionally via .env).
type Config struct {
	Port          string
	LoadsCSVPath  string
	FMCSAAPIKey   string
	FMCSABaseURL  string
	LogsDirectory string
}

// Load reads configuration from the environment, applying defaults for
// everything except the FMCSA key, which cmd/server fails fast on.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	return &Config{
		Port:          Get("PORT", "8080"),
		LoadsCSVPath:  Get("LOADS_CSV_PATH", "data/loads.csv"),
		FMCSAAPIKey:   os.Getenv("FMCSA_API_KEY"),
		FMCSABaseURL:  Get("FMCSA_BASE_URL", "https://mobile.fmcsa.dot.gov"),
		LogsDirectory: os.Getenv("LOGS_DIRECTORY"),
	}
}

func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
