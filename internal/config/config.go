package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config is the process configuration, read from the environment.
type Config struct {
	Port string

	// CatalogSource is one of csv, sqlite or postgres.
	CatalogSource string
	CatalogPath   string
	DBPath        string
	DatabaseURL   string

	TravelAPIKey  string
	TravelAPIURL  string
	TravelTimeout time.Duration
	TrafficModel  string

	// EstimateCache is one of memory, redis, sqlite, postgres or none.
	EstimateCache   string
	CacheTTL        time.Duration
	RedisAddress    string
	RedisPassword   string
	RedisDatabase   int
	PrefetchWorkers int

	PolicyPath string
	LogLevel   string
	LogFormat  string
}

// Load reads an optional .env file and then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found (using environment variables)")
	}

	cfg := Config{
		Port:          Get("PORT", "8080"),
		CatalogSource: strings.ToLower(Get("CATALOG_SOURCE", "csv")),
		CatalogPath:   Get("CATALOG_PATH", "data/places.csv"),
		DBPath:        Get("DB_PATH", "data/app.db"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		TravelAPIKey:  os.Getenv("TRAVEL_API_KEY"),
		TravelAPIURL:  Get("TRAVEL_API_URL", ""),
		TrafficModel:  Get("TRAFFIC_MODEL", "best_guess"),
		EstimateCache: strings.ToLower(Get("ESTIMATE_CACHE", "memory")),
		RedisAddress:  Get("REDIS_ADDRESS", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		PolicyPath:    os.Getenv("POLICY_PATH"),
		LogLevel:      Get("LOG_LEVEL", "info"),
		LogFormat:     Get("LOG_FORMAT", "json"),
	}

	var err error
	if cfg.TravelTimeout, err = getDuration("TRAVEL_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.CacheTTL, err = getDuration("ESTIMATE_CACHE_TTL", 15*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.RedisDatabase, err = getInt("REDIS_DATABASE", 0); err != nil {
		return Config{}, err
	}
	if cfg.PrefetchWorkers, err = getInt("PREFETCH_WORKERS", 0); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}
