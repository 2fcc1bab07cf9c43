package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Config holds all configuration for the application.
type Config struct {
	AppEnv      string
	DBDriver    string
	DBPath      string
	RedisAddr   string
	HTTPPort    int
	JWTSecret   string
	CacheTTL    time.Duration
	CORSOrigins []string
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() *Config {
	port, err := strconv.Atoi(getEnv("HTTP_PORT", "8080"))
	if err != nil {
		port = 8080
	}

	ttl, err := time.ParseDuration(getEnv("CACHE_TTL", "10m"))
	if err != nil {
		ttl = 10 * time.Minute
	}

	var origins []string
	for _, o := range strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return &Config{
		AppEnv:      getEnv("APP_ENV", "development"),
		DBDriver:    getEnv("DB_DRIVER", "sqlite3"),
		DBPath:      os.Getenv("DB_PATH"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:    port,
		JWTSecret:   getEnv("JWT_SECRET", "development-secret"),
		CacheTTL:    ttl,
		CORSOrigins: origins,
	}
}

// StoreConfigured reports whether a real database path is set. An empty
// or placeholder value leaves the service running on sample data.
func (c *Config) StoreConfigured() bool {
	switch strings.TrimSpace(c.DBPath) {
	case "", "your-database-path", "changeme":
		return false
	}
	return true
}

// NewLogger creates a new Zap logger based on the config.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.AppEnv == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
