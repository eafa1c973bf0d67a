package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds everything the process reads from the environment. Load it
// once in main and pass it down; nothing else touches os.Getenv.
type Config struct {
	Port        string
	Environment string
	CORSOrigin  string

	DatabaseURL string

	JWTSecret string
	TokenTTL  time.Duration

	CloudinaryURL string

	// Optional; rate limiting falls back to the in-memory limiter when empty.
	RedisURL string
}

const defaultTokenTTL = 24 * time.Hour

func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		Environment:   getEnv("APP_ENV", "development"),
		CORSOrigin:    getEnv("CORS_ORIGIN", "http://localhost:5173"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),
		RedisURL:      os.Getenv("REDIS_URL"),
		TokenTTL:      defaultTokenTTL,
	}

	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL %q: %w", raw, err)
		}
		cfg.TokenTTL = ttl
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
