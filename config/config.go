package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	PGURL            string
	Port             string
	PriceTTL         time.Duration
	PriceConcurrency int
}

// Load reads configuration from a .env file (when present) and the
// environment. PG_URL is optional; without it quotes are cached in memory
// only.
func Load() (*Config, error) {
	// A missing .env file is fine, real env vars win either way.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	ttlHours := 24
	if raw := os.Getenv("PRICE_TTL_HOURS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("invalid PRICE_TTL_HOURS %q", raw)
		}
		ttlHours = parsed
	}

	concurrency := 4
	if raw := os.Getenv("PRICE_CONCURRENCY"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("invalid PRICE_CONCURRENCY %q", raw)
		}
		concurrency = parsed
	}

	return &Config{
		PGURL:            os.Getenv("PG_URL"),
		Port:             port,
		PriceTTL:         time.Duration(ttlHours) * time.Hour,
		PriceConcurrency: concurrency,
	}, nil
}
