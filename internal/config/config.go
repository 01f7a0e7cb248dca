package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the car match service.
type Config struct {
	DB        DBConfig
	Redis     RedisConfig
	Catalog   CatalogConfig
	Match     MatchConfig
	Listings  ListingsConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Port      string
}

// DBConfig holds PostgreSQL configuration. Postgres is optional; when
// Enabled is false the service keeps no interaction history.
type DBConfig struct {
	Enabled     bool
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	SSLRootCert string
}

// DSN returns the PostgreSQL connection string.
func (d DBConfig) DSN() string {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
	if d.SSLRootCert != "" {
		dsn += fmt.Sprintf(" sslrootcert=%s", d.SSLRootCert)
	}
	return dsn
}

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// CatalogConfig selects where the seed catalog comes from.
type CatalogConfig struct {
	Source   string // "file" or "postgres"
	SeedFile string
}

// MatchConfig selects the match scoring mode ("static" or "weighted").
type MatchConfig struct {
	Mode string
}

// ListingsConfig holds map listings settings.
type ListingsConfig struct {
	Source   string // "fixture" or "http"
	APIURL   string
	APIKey   string
	CacheTTL time.Duration
}

// AuthConfig holds the fake login settings.
type AuthConfig struct {
	LoginDelay time.Duration
	SessionTTL time.Duration
}

// RateLimitConfig holds the Redis rate limiter settings.
type RateLimitConfig struct {
	Max           int
	WindowSeconds int
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	dbPort, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	cacheTTL, _ := strconv.Atoi(getEnv("LISTINGS_CACHE_TTL_SECONDS", "60"))
	loginDelay, _ := strconv.Atoi(getEnv("LOGIN_DELAY_MS", "300"))
	sessionTTL, _ := strconv.Atoi(getEnv("SESSION_TTL_HOURS", "168"))
	rateLimitMax, _ := strconv.Atoi(getEnv("RATE_LIMIT_MAX", "300"))
	rateLimitWindow, _ := strconv.Atoi(getEnv("RATE_LIMIT_WINDOW_SECONDS", "60"))

	cfg := &Config{
		DB: DBConfig{
			Enabled:     getEnv("DB_ENABLED", "false") == "true",
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        dbPort,
			User:        getEnv("DB_USER", "postgres"),
			Password:    getEnv("DB_PASSWORD", "postgres"),
			DBName:      getEnv("DB_NAME", "carmatch"),
			SSLMode:     getEnv("DB_SSLMODE", "disable"),
			SSLRootCert: getEnv("DB_SSLROOTCERT", ""),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Catalog: CatalogConfig{
			Source:   strings.ToLower(getEnv("CATALOG_SOURCE", "file")),
			SeedFile: getEnv("CATALOG_SEED_FILE", "data/cars.json"),
		},
		Match: MatchConfig{
			Mode: strings.ToLower(getEnv("MATCH_MODE", "static")),
		},
		Listings: ListingsConfig{
			Source:   strings.ToLower(getEnv("LISTINGS_SOURCE", "fixture")),
			APIURL:   strings.TrimRight(getEnv("LISTINGS_API_URL", ""), "/"),
			APIKey:   getEnv("LISTINGS_API_KEY", ""),
			CacheTTL: time.Duration(cacheTTL) * time.Second,
		},
		Auth: AuthConfig{
			LoginDelay: time.Duration(loginDelay) * time.Millisecond,
			SessionTTL: time.Duration(sessionTTL) * time.Hour,
		},
		RateLimit: RateLimitConfig{
			Max:           rateLimitMax,
			WindowSeconds: rateLimitWindow,
		},
		Port: getEnv("SERVER_PORT", "8080"),
	}

	if cfg.Catalog.Source != "file" && cfg.Catalog.Source != "postgres" {
		return nil, fmt.Errorf("invalid CATALOG_SOURCE %q: want file or postgres", cfg.Catalog.Source)
	}
	if cfg.Match.Mode != "static" && cfg.Match.Mode != "weighted" {
		return nil, fmt.Errorf("invalid MATCH_MODE %q: want static or weighted", cfg.Match.Mode)
	}

	switch cfg.Listings.Source {
	case "fixture":
	case "http":
		if cfg.Listings.APIURL == "" {
			return nil, fmt.Errorf("LISTINGS_API_URL is required when LISTINGS_SOURCE=http")
		}
	default:
		return nil, fmt.Errorf("invalid LISTINGS_SOURCE %q: want fixture or http", cfg.Listings.Source)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
