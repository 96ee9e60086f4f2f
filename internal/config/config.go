package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port         int
	DevMode      bool
	LogLevel     string
	DatabasePath string
	APIToken     string

	// Market data refresh
	MarketDataURL        string
	PriceRefreshSchedule string        // cron spec for the refresh job
	PriceCooldown        time.Duration // minimum age before an asset is refreshed again
	PriceMaxBatch        int           // assets refreshed per cycle

	// Daily balance snapshots
	SnapshotSchedule string // cron spec for the snapshot job
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:                 getEnvAsInt("PORT", 8080),
		DevMode:              getEnvAsBool("DEV_MODE", false),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		DatabasePath:         getEnv("DATABASE_PATH", "./data/cryptofolio.db"),
		APIToken:             getEnv("API_TOKEN", "dev-token"),
		MarketDataURL:        getEnv("MARKET_DATA_URL", "https://api.coingecko.com/api/v3"),
		PriceRefreshSchedule: getEnv("PRICE_REFRESH_SCHEDULE", "@every 3m"),
		PriceCooldown:        time.Duration(getEnvAsInt("PRICE_COOLDOWN_MINUTES", 5)) * time.Minute,
		PriceMaxBatch:        getEnvAsInt("PRICE_MAX_BATCH", 100),
		SnapshotSchedule:     getEnv("SNAPSHOT_SCHEDULE", "@daily"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}
	if c.PriceMaxBatch <= 0 {
		return fmt.Errorf("PRICE_MAX_BATCH must be positive")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
