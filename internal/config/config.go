package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries runtime configuration for the API process.
type Config struct {
	HTTPAddress  string
	MongoURI     string
	MongoDB      string
	Environment  string
	CORSOrigin   string
	DefaultLimit int
	MaxListLimit int
}

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

// Load reads .env (when present) and environment variables, applying
// defaults suitable for local development.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddress:  getEnv("HTTP_ADDRESS", ":8080"),
		MongoURI:     getEnv("MONGO_URI", ""),
		MongoDB:      getEnv("MONGO_DB", "lifetracker"),
		Environment:  getEnv("APP_ENV", EnvDevelopment),
		CORSOrigin:   getEnv("CORS_ORIGIN", "*"),
		DefaultLimit: getIntEnv("DEFAULT_PAGE_LIMIT", 50),
		MaxListLimit: getIntEnv("MAX_PAGE_LIMIT", 1000),
	}
}

// IsProduction reports whether the process runs with production semantics.
// Development-only behavior (dev identity, in-memory storage fallback) is
// gated on this.
func (c Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
