// internal/config/config.go
package config

import (
	"errors"
	"os"
	"strconv"
)

type Config struct {
	Port        string
	Environment string
	MongoURL    string
	DBName      string
	RedisURL    string

	// Auth
	AdminPassword string
	JWTSecret     string
	JWTExpiry     int // hours

	// Listing cap on GET /api/projects. The old backend truncated at 100
	// without saying so; here it is explicit and tunable.
	ProjectListLimit int

	// Frontend URL for CORS
	FrontendURL string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("API_PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		MongoURL:    getEnv("MONGO_URL", "mongodb://localhost:27017"),
		DBName:      getEnv("DB_NAME", "architectural_portfolio"),
		RedisURL:    getEnv("REDIS_URL", ""),

		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTExpiry:     getEnvInt("JWT_EXPIRY", 24),

		ProjectListLimit: getEnvInt("PROJECT_LIST_LIMIT", 100),

		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// A fallback secret would let anyone sign admin tokens, so both
	// credentials are hard startup requirements.
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}
	if cfg.AdminPassword == "" {
		return nil, errors.New("ADMIN_PASSWORD must be set")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
